package domain

import "time"

// Room is a room category within a hotel, not a single physical room:
// NumberOfRoom is how many units of this type the hotel has.
type Room struct {
	ID           int64     `json:"id"`
	HotelID      int64     `json:"hotel_id"`
	TypeRoom     string    `json:"type_room"`
	MaxNbPeople  int       `json:"max_nb_people"`
	NumberOfRoom int       `json:"number_of_room"`
	Description  string    `json:"description"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
