package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres,omitempty"`
	Time     string `json:"time,omitempty"`
	Error    string `json:"error,omitempty"`
}
