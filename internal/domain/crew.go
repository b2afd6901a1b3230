package domain

import "time"

// Crew is the domain model for a running crew listed in the public directory.
type Crew struct {
	ID          string
	Name        string
	Description string
	Instagram   string
	LogoURL     string
	FoundedOn   *time.Time
	Latitude    float64
	Longitude   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CrewAccount is the login identity controlling a crew's dashboard.
type CrewAccount struct {
	ID           string
	CrewID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
