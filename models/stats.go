package models

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalStudents     int     `json:"totalStudents"`
	TotalTutors       int     `json:"totalTutors"`
	ActiveTutors      int     `json:"activeTutors"`
	PendingTutors     int     `json:"pendingTutors"`
	TotalSessions     int     `json:"totalSessions"`
	CompletedSessions int     `json:"completedSessions"`
	PendingSessions   int     `json:"pendingSessions"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PlatformFee       float64 `json:"platformFee"`

	BookingsByStatus map[BookingStatus]int `json:"bookingsByStatus"`
}
