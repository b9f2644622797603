package model

// DashboardState is a snapshot of the dashboard.
// View may belong to a link other than Selected while a load is pending
// or after it failed.
type DashboardState struct {
	OwnerID  string          `json:"owner_id"`
	Selected *Link           `json:"selected,omitempty"`
	Status   AnalyticsStatus `json:"status"`
	View     *AnalyticsView  `json:"view,omitempty"`
	Error    string          `json:"error,omitempty"`
	Result   *CreationResult `json:"result,omitempty"`
	Creating bool            `json:"creating"`
}
