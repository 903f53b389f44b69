package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse is the liveness answer served on /health
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-01-01T10:00:00.000Z"`
}

// ComponentsHealthResponse represents the health check response of all application components
type ComponentsHealthResponse struct {
	Status  HealthStatus          `json:"status"`
	Storage ComponentHealthStatus `json:"storage"`
	Events  ComponentHealthStatus `json:"events"`
}
