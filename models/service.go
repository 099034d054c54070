package models

import "time"

// Service is a bookable catalog entry offered by an artist.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ArtistID        string    `bson:"artist_id" json:"artist_id"`
	Name            string    `bson:"name" json:"name"`
	Price           float64   `bson:"price" json:"price"` // Major currency units; 0 means free consultation
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
