package models

import "strings"

// Reservation is written under carReservations by an external process and
// is read-only from this application's point of view.
type Reservation struct {
	VIN   string `json:"vin"`
	Plate string `json:"plate"`
	Buyer string `json:"buyerName"`
	Date  string `json:"date"`
}

// Matches reports whether query equals the VIN or the plate,
// case-insensitively.
func (r Reservation) Matches(query string) bool {
	return strings.EqualFold(r.VIN, query) || strings.EqualFold(r.Plate, query)
}
