package dto

import "time"

// CrewResponse is the public shape of a crew profile.
type CrewResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Instagram   string     `json:"instagram,omitempty"`
	LogoURL     string     `json:"logo_url,omitempty"`
	FoundedOn   *time.Time `json:"founded_on,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
}

// CrewUpsertRequest creates or replaces a crew via the admin console.
type CrewUpsertRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Instagram   string     `json:"instagram"`
	LogoURL     string     `json:"logo_url"`
	FoundedOn   *time.Time `json:"founded_on"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
}

// PhotoResponse is a crew profile photo.
type PhotoResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	Position int    `json:"position"`
}
