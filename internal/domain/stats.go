package domain

// SiteStats feeds the public landing page counters.
type SiteStats struct {
	Projects        int     `json:"projects"`
	TotalActivities int     `json:"total_activities"`
	Workshops       int     `json:"workshops"`
	TotalUsers      int     `json:"total_users"`
	TotalDonations  float64 `json:"total_donations"`
}

// UserStats feeds the authenticated user's dashboard.
type UserStats struct {
	CompletedProjects  int     `json:"completed_projects"`
	TrainingHours      int     `json:"training_hours"`
	TotalDonated       float64 `json:"total_donated"`
	ActivitiesJoined   int     `json:"activities_joined"`
	ActivitiesAttended int     `json:"activities_attended"`
}
