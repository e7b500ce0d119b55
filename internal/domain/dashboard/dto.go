package dashboard

// DashboardResponse is the combined response for the admin dashboard endpoint
type DashboardResponse struct {
	TotalEmployees   int              `json:"total_employees"`
	TotalPositions   int              `json:"total_positions"`
	TotalAttendances int              `json:"total_attendances"`
	ScansToday       int              `json:"scans_today"`
	LatestScans      []LatestScanItem `json:"latest_scans"`
}

// LatestScanItem represents a single recent scan in the dashboard list
type LatestScanItem struct {
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
	Timestamp    string `json:"timestamp"`
}
