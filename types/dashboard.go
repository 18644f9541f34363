package types

import "encoding/json"

// DashboardMetricsDocument is the stored overview (dashboard/metrics.json).
type DashboardMetricsDocument struct {
	Overview    json.RawMessage `json:"overview"`
	LastUpdated json.RawMessage `json:"last_updated"`
}

// DashboardMetricsResponse is the public shape served by /api/dashboard/metrics.
type DashboardMetricsResponse DashboardMetricsDocument

// TrafficDocument is the stored traffic analytics (dashboard/traffic.json).
type TrafficDocument struct {
	Projects  json.RawMessage `json:"projects"`
	Monthly   json.RawMessage `json:"monthly"`
	Daily     json.RawMessage `json:"daily"`
	ByProject json.RawMessage `json:"by_project"`
}

// TrafficResponse is the public shape served by /api/dashboard/traffic.
type TrafficResponse TrafficDocument

// ErrorLogsDocument is the stored error log snapshot (dashboard/errors.json).
type ErrorLogsDocument struct {
	Summary json.RawMessage `json:"summary"`

	// Recent holds every recorded entry. It is never filtered or paginated
	// server-side; clients filter by level themselves.
	Recent json.RawMessage `json:"recent"`

	LevelConfig json.RawMessage `json:"level_config"`
}

// ErrorLogsResponse is the public shape served by /api/dashboard/errors.
type ErrorLogsResponse ErrorLogsDocument

// DeploymentsDocument is the stored deployment status (dashboard/deployments.json).
type DeploymentsDocument struct {
	Deployments  []Deployment    `json:"deployments"`
	StatusConfig json.RawMessage `json:"status_config"`
	Regions      json.RawMessage `json:"regions"`
}

// Deployment is one stored deployment of a project to an environment.
type Deployment struct {
	// ID is the unique identifier of the deployment.
	ID json.RawMessage `json:"id"`

	// ProjectID references Project.ID.
	ProjectID json.RawMessage `json:"project_id"`

	// ProjectName is the display name of the deployed project.
	ProjectName json.RawMessage `json:"project_name"`

	// Environment is the target environment, e.g. "production".
	Environment json.RawMessage `json:"environment"`

	// Status is a key into DeploymentsDocument.StatusConfig.
	Status json.RawMessage `json:"status"`

	// StatusMessage explains a degraded or failed status. It is usually absent.
	StatusMessage json.RawMessage `json:"status_message"`

	// Version is the deployed release, e.g. "v2.3.1".
	Version json.RawMessage `json:"version"`

	// LastDeployed is the RFC 3339 timestamp of the last rollout.
	LastDeployed json.RawMessage `json:"last_deployed"`

	// Uptime is the availability percentage over the reporting window.
	Uptime json.RawMessage `json:"uptime"`

	// Region is a key into DeploymentsDocument.Regions.
	Region json.RawMessage `json:"region"`

	// CPU is the current CPU utilisation percentage.
	CPU json.RawMessage `json:"cpu"`

	// Memory is the current memory utilisation percentage.
	Memory json.RawMessage `json:"memory"`
}

// DeploymentsResponse is the public shape served by /api/dashboard/deployments.
type DeploymentsResponse struct {
	Deployments  []DeploymentSummary `json:"deployments"`
	StatusConfig json.RawMessage     `json:"status_config"`
	Regions      json.RawMessage     `json:"regions"`
}

// DeploymentSummary is the public shape of a Deployment.
// StatusMessage is always present in JSON output and is null when unset or falsy.
type DeploymentSummary struct {
	ID            json.RawMessage `json:"id"`
	ProjectID     json.RawMessage `json:"project_id"`
	ProjectName   json.RawMessage `json:"project_name"`
	Environment   json.RawMessage `json:"environment"`
	Status        json.RawMessage `json:"status"`
	StatusMessage json.RawMessage `json:"status_message"`
	Version       json.RawMessage `json:"version"`
	LastDeployed  json.RawMessage `json:"last_deployed"`
	Uptime        json.RawMessage `json:"uptime"`
	Region        json.RawMessage `json:"region"`
	CPU           json.RawMessage `json:"cpu"`
	Memory        json.RawMessage `json:"memory"`
}
