// Package projection maps stored documents to their public response shapes.
//
// Every function here is pure: it only selects allow-listed fields, truncates
// project tech stacks and fills explicit defaults. HTTP handlers and page
// aggregators both go through these functions so the two never drift apart.
package projection

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/devfolio/apiserver/types"
)

// Profile exposes the public personal and professional subset of a profile.
func Profile(doc types.ProfileDocument) types.ProfileResponse {
	return types.ProfileResponse{
		Personal: types.PersonalSummary{
			FullName: doc.Personal.FullName,
			Avatar:   doc.Personal.Avatar,
			Location: doc.Personal.Location,
		},
		Professional: types.ProfessionalSummary{
			Title:             doc.Professional.Title,
			Tagline:           doc.Professional.Tagline,
			Bio:               doc.Professional.Bio,
			YearsOfExperience: doc.Professional.YearsOfExperience,
			CurrentCompany:    doc.Professional.CurrentCompany,
			Availability:      doc.Professional.Availability,
		},
		Social:    doc.Social,
		Education: doc.Education,
	}
}

// TechStack keeps category order and drops editorial fields.
func TechStack(doc types.TechStackDocument) types.TechStackResponse {
	var categories []types.TechCategorySummary
	if doc.Categories != nil {
		categories = make([]types.TechCategorySummary, 0, len(doc.Categories))
	}
	for _, category := range doc.Categories {
		categories = append(categories, types.TechCategorySummary{
			ID:     category.ID,
			Name:   category.Name,
			Icon:   category.Icon,
			Skills: category.Skills,
		})
	}
	return types.TechStackResponse{
		Categories: categories,
		Highlights: doc.Highlights,
	}
}

// Projects exposes featured project cards with at most
// types.MaxProjectTechBadges tech stack entries each.
func Projects(doc types.ProjectsDocument) types.ProjectsResponse {
	var featured []types.ProjectSummary
	if doc.Featured != nil {
		featured = make([]types.ProjectSummary, 0, len(doc.Featured))
	}
	for _, project := range doc.Featured {
		featured = append(featured, types.ProjectSummary{
			ID:          project.ID,
			Name:        project.Name,
			ShortName:   project.ShortName,
			Description: project.Description,
			Status:      project.Status,
			Type:        project.Type,
			TechStack:   truncate(project.TechStack, types.MaxProjectTechBadges),
			Metrics:     project.Metrics,
			Color:       project.Color,
		})
	}
	return types.ProjectsResponse{
		Featured:    featured,
		StatusTypes: doc.StatusTypes,
	}
}

// Contributions exposes the contribution calendar as stored.
func Contributions(doc types.ContributionsDocument) types.ContributionsResponse {
	return types.ContributionsResponse{
		Year:               doc.Year,
		TotalContributions: doc.TotalContributions,
		LongestStreak:      doc.LongestStreak,
		CurrentStreak:      doc.CurrentStreak,
		Weekly:             doc.Weekly,
		HeatmapLevels:      doc.HeatmapLevels,
	}
}

// SiteConfig exposes the layout configuration.
func SiteConfig(doc types.SiteConfigDocument) types.SiteConfigResponse {
	return types.SiteConfigResponse{
		Site:       doc.Site,
		Branding:   doc.Branding,
		Navigation: doc.Navigation,
		Pages:      doc.Pages,
	}
}

// DashboardMetrics exposes the dashboard overview.
func DashboardMetrics(doc types.DashboardMetricsDocument) types.DashboardMetricsResponse {
	return types.DashboardMetricsResponse{
		Overview:    doc.Overview,
		LastUpdated: doc.LastUpdated,
	}
}

// Traffic exposes the traffic analytics series.
func Traffic(doc types.TrafficDocument) types.TrafficResponse {
	return types.TrafficResponse{
		Projects:  doc.Projects,
		Monthly:   doc.Monthly,
		Daily:     doc.Daily,
		ByProject: doc.ByProject,
	}
}

// ErrorLogs exposes every recent entry unfiltered.
func ErrorLogs(doc types.ErrorLogsDocument) types.ErrorLogsResponse {
	return types.ErrorLogsResponse{
		Summary:     doc.Summary,
		Recent:      doc.Recent,
		LevelConfig: doc.LevelConfig,
	}
}

// Deployments exposes deployment statuses. A missing or falsy status
// message becomes an explicit null.
func Deployments(doc types.DeploymentsDocument) types.DeploymentsResponse {
	var deployments []types.DeploymentSummary
	if doc.Deployments != nil {
		deployments = make([]types.DeploymentSummary, 0, len(doc.Deployments))
	}
	for _, d := range doc.Deployments {
		deployments = append(deployments, types.DeploymentSummary{
			ID:            d.ID,
			ProjectID:     d.ProjectID,
			ProjectName:   d.ProjectName,
			Environment:   d.Environment,
			Status:        d.Status,
			StatusMessage: nullIfFalsy(d.StatusMessage),
			Version:       d.Version,
			LastDeployed:  d.LastDeployed,
			Uptime:        d.Uptime,
			Region:        d.Region,
			CPU:           d.CPU,
			Memory:        d.Memory,
		})
	}
	return types.DeploymentsResponse{
		Deployments:  deployments,
		StatusConfig: doc.StatusConfig,
		Regions:      doc.Regions,
	}
}

// truncate returns a copy of at most n leading items. A nil input stays nil.
func truncate[T any](items []T, n int) []T {
	if items == nil {
		return nil
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// nullIfFalsy returns nil (serialized as null) for an absent value and for
// null, false, "", and numeric zero. Anything else is returned unchanged.
func nullIfFalsy(value json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(value)
	switch string(trimmed) {
	case "", "null", "false", `""`:
		return nil
	}
	if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil && f == 0 {
		return nil
	}
	return value
}
