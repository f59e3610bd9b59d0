package stats

// HealthStatus follows the "status" values of the health check response format for
// HTTP APIs draft.
type HealthStatus string

const (
	StatusPass HealthStatus = "pass"
	StatusWarn HealthStatus = "warn"
	StatusFail HealthStatus = "fail"
)

type Check struct {
	Status        HealthStatus `json:"status"`
	ComponentType string       `json:"componentType,omitempty"`
	Observed      any          `json:"observedValue,omitempty"`
	ObservedUnit  string       `json:"observedUnit,omitempty"`
	ObservedAt    string       `json:"observedAt,omitempty"`
	Output        string       `json:"output,omitempty"`
}

type HealthResponse struct {
	Status    HealthStatus       `json:"status"`
	Version   string             `json:"version,omitempty"`
	ReleaseID string             `json:"releaseId,omitempty"`
	ServiceID string             `json:"serviceId,omitempty"`
	Checks    map[string][]Check `json:"checks,omitempty"`
}

// Checker is one entry of HealthResponse.Checks.
type Checker interface {
	Name() string
	Check() Check
}
