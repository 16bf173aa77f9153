package domain

import "time"

type ActivityType string

const (
	ActivityWorkshop  ActivityType = "workshop"
	ActivityHackathon ActivityType = "hackathon"
	ActivityFormation ActivityType = "formation"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityWorkshop, ActivityHackathon, ActivityFormation:
		return true
	}
	return false
}

type Activity struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Type            ActivityType `json:"type"`
	Date            time.Time    `json:"date"`
	Location        string       `json:"location"`
	Capacity        int          `json:"capacity"`
	RegisteredCount int          `json:"registered_count"`
	ImageURL        string       `json:"image_url,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (a Activity) IsFull() bool {
	return a.RegisteredCount >= a.Capacity
}
