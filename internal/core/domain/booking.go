package domain

import "time"

// Booking ties a user to a room for a date range. UserID is the owner used
// by the ownership check on mutation and deletion.
type Booking struct {
	ID             int64     `json:"id"`
	RoomID         int64     `json:"room_id"`
	UserID         int64     `json:"user_id"`
	NumberOfPeople int       `json:"number_of_people"`
	DateIn         time.Time `json:"date_in"`
	DateOut        time.Time `json:"date_out"`
	Paid           bool      `json:"paid"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
