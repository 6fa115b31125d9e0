package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  map[string]Pinger
	names   []string
	service string
	version string
}

// NewHealthHandler creates a HealthHandler that probes every named dependency
// in checks.
func NewHealthHandler(service, version string, checks map[string]Pinger) *HealthHandler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return &HealthHandler{checks: checks, names: names, service: service, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Service    string                `json:"service,omitempty"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Service:    h.service,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.names))
	for _, name := range h.names {
		start := time.Now()
		if err := h.checks[name].Ping(ctx); err != nil {
			components[name] = CompStatus{Status: "down", Error: err.Error()}
			overall = "down"
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return overall, components
}

func httpStatus(health string) int {
	if health != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
