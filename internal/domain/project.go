package domain

import "time"

type ProjectStatus string

const (
	ProjectUpcoming  ProjectStatus = "upcoming"
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectUpcoming, ProjectOngoing, ProjectCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving to next respects the one-way
// upcoming -> ongoing -> completed lifecycle. Staying on the current
// status is always allowed.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case ProjectUpcoming:
		return next == ProjectOngoing || next == ProjectCompleted
	case ProjectOngoing:
		return next == ProjectCompleted
	default:
		return false
	}
}

type Project struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Domain       string        `json:"domain"`
	Status       ProjectStatus `json:"status"`
	Participants int           `json:"participants"`
	ImageURL     string        `json:"image_url,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ProjectParticipation records a user's registration against a project.
// One non-deleted row per (user, project) pair.
type ProjectParticipation struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProjectID uint      `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}
