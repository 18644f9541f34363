package types

// LayoutData is shared by every page.
type LayoutData struct {
	SiteConfig SiteConfigResponse `json:"site_config"`
}

// ProfilePage is the render payload of the profile page.
// Each field is shaped exactly like the matching /api response.
type ProfilePage struct {
	Profile       ProfileResponse       `json:"profile"`
	TechStack     TechStackResponse     `json:"tech_stack"`
	Projects      ProjectsResponse      `json:"projects"`
	Contributions ContributionsResponse `json:"contributions"`
}

// DashboardPage is the render payload of the dashboard page.
type DashboardPage struct {
	Metrics     DashboardMetricsResponse `json:"metrics"`
	Deployments DeploymentsResponse      `json:"deployments"`
	Traffic     TrafficResponse          `json:"traffic"`
	Errors      ErrorLogsResponse        `json:"errors"`
}

// PageResponse wraps page data together with the layout data.
type PageResponse[T any] struct {
	Layout LayoutData `json:"layout"`
	Data   T          `json:"data"`
}
