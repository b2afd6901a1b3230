package domain

import "time"

// CrewPhoto is an image attached to a crew's public profile.
type CrewPhoto struct {
	ID        string
	CrewID    string
	URL       string
	Caption   string
	Position  int
	CreatedAt time.Time
}
