package domain

import "time"

type ParticipationStatus string

const (
	ParticipationRegistered ParticipationStatus = "registered"
	ParticipationAttended   ParticipationStatus = "attended"
	ParticipationCancelled  ParticipationStatus = "cancelled"
)

func (s ParticipationStatus) IsValid() bool {
	switch s {
	case ParticipationRegistered, ParticipationAttended, ParticipationCancelled:
		return true
	}
	return false
}

type Participation struct {
	ID         uint                `json:"id"`
	UserID     uint                `json:"user_id"`
	ActivityID uint                `json:"activity_id"`
	Status     ParticipationStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

// UserParticipation is a participation joined with its activity for the
// user dashboard.
type UserParticipation struct {
	Participation
	Activity Activity `json:"activity"`
}
