package domain

import "time"

type SpaceRequestType string

const (
	SpaceRequestRoom       SpaceRequestType = "room"
	SpaceRequestMentorship SpaceRequestType = "mentorship"
)

func (t SpaceRequestType) IsValid() bool {
	switch t {
	case SpaceRequestRoom, SpaceRequestMentorship:
		return true
	}
	return false
}

type SpaceRequestStatus string

const (
	SpaceRequestPending  SpaceRequestStatus = "pending"
	SpaceRequestApproved SpaceRequestStatus = "approved"
	SpaceRequestRejected SpaceRequestStatus = "rejected"
)

func (s SpaceRequestStatus) IsValid() bool {
	switch s {
	case SpaceRequestPending, SpaceRequestApproved, SpaceRequestRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the request has been adjudicated. A pending
// request transitions exactly once to approved or rejected.
func (s SpaceRequestStatus) IsTerminal() bool {
	return s == SpaceRequestApproved || s == SpaceRequestRejected
}

type SpaceRequest struct {
	ID        uint               `json:"id"`
	UserID    *uint              `json:"user_id,omitempty"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Type      SpaceRequestType   `json:"type"`
	Details   string             `json:"details"`
	Status    SpaceRequestStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}
