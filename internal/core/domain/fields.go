package domain

// FieldSet is the allowlist of query or body keys a given operation accepts.
// A request carrying any key outside the set is rejected as a whole before it
// reaches persistence.
type FieldSet map[string]struct{}

func NewFieldSet(names ...string) FieldSet {
	set := make(FieldSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Check returns ErrFieldNotAllowed as soon as one key falls outside the set.
func (f FieldSet) Check(keys []string) error {
	for _, k := range keys {
		if _, ok := f[k]; !ok {
			return ErrFieldNotAllowed
		}
	}
	return nil
}

// Search allowlists per resource. "page" and "limit" are pagination controls,
// not filters: they pass the allowlist but are stripped before the filter set
// is tested for emptiness.
var (
	UserSearchFields    = NewFieldSet("id", "email", "name", "surname", "pseudo", "role", "active")
	HotelSearchFields   = NewFieldSet("id", "name", "address", "city", "country", "page", "limit")
	RoomSearchFields    = NewFieldSet("id", "hotel_id", "type_room", "max_nb_people", "number_of_room", "page", "limit")
	BookingSearchFields = NewFieldSet("id", "room_id", "user_id", "number_of_people", "date_in", "date_out", "paid", "active", "page", "limit")
)
