package entity

import "time"

// Room representa una sala visitable. Pertenece a exactamente una Company.
type Room struct {
	ID          string
	Name        string
	Floor       string
	Description string
	CompanyID   string
	CreatedAt   time.Time
}
