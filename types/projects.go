package types

import "encoding/json"

// MaxProjectTechBadges is the number of tech stack entries exposed per project.
const MaxProjectTechBadges = 5

// ProjectsDocument is the stored projects document (projects.json).
type ProjectsDocument struct {
	// Featured lists the showcased projects in display order.
	Featured []Project `json:"featured"`

	// StatusTypes maps project status identifiers to labels and colors.
	StatusTypes json.RawMessage `json:"status_types"`
}

// Project is a stored portfolio project.
type Project struct {
	// ID is the stable identifier of the project.
	ID json.RawMessage `json:"id"`

	// Name is the full project name.
	Name json.RawMessage `json:"name"`

	// ShortName is the abbreviated name used in compact views.
	ShortName json.RawMessage `json:"short_name"`

	// Description is the short summary shown on the card.
	Description json.RawMessage `json:"description"`

	// Status is a key into ProjectsDocument.StatusTypes (e.g. "live").
	Status json.RawMessage `json:"status"`

	// Type is the project category such as "web" or "cli".
	Type json.RawMessage `json:"type"`

	// TechStack lists the technologies used, most important first.
	// Public responses expose at most MaxProjectTechBadges entries.
	TechStack []json.RawMessage `json:"tech_stack"`

	// Metrics is a free-form stats block, passed through untouched.
	Metrics json.RawMessage `json:"metrics"`

	// Color is the accent color of the project card.
	Color json.RawMessage `json:"color"`

	// LongDescription is the case-study text used by the detail page.
	LongDescription json.RawMessage `json:"long_description"`

	// Links holds repository and demo URLs.
	Links json.RawMessage `json:"links"`
}

// ProjectsResponse is the public shape served by /api/projects.
type ProjectsResponse struct {
	Featured    []ProjectSummary `json:"featured"`
	StatusTypes json.RawMessage  `json:"status_types"`
}

// ProjectSummary is the public subset of Project.
type ProjectSummary struct {
	ID          json.RawMessage   `json:"id"`
	Name        json.RawMessage   `json:"name"`
	ShortName   json.RawMessage   `json:"short_name"`
	Description json.RawMessage   `json:"description"`
	Status      json.RawMessage   `json:"status"`
	Type        json.RawMessage   `json:"type"`
	TechStack   []json.RawMessage `json:"tech_stack"`
	Metrics     json.RawMessage   `json:"metrics"`
	Color       json.RawMessage   `json:"color"`
}
