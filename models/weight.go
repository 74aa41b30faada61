package models

import "time"

// Weight is one entry in a user's append-only weigh-in log.
type Weight struct {
	ID     int       `json:"id"`
	UserID int       `json:"userId"`
	Weight float64   `json:"weight"`
	Date   time.Time `json:"date"`
}

type InsertWeight struct {
	UserID int        `json:"userId" binding:"required"`
	Weight float64    `json:"weight" binding:"required,gt=0"`
	Date   *time.Time `json:"date"` // defaults to now
}
