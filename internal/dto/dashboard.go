package dto

// DashboardParams defines query parameters for the dashboard summary.
type DashboardParams struct {
	UpcomingDays int `form:"upcomingDays,default=30" binding:"min=1,max=366"`
}

// RenewalDigestResponse reports what the renewal digest sent.
type RenewalDigestResponse struct {
	Sent     bool   `json:"sent"`
	Renewals int    `json:"renewals"`
	Message  string `json:"message"`
}
