package types

import "encoding/json"

// ProfileDocument is the stored profile document (profile.json).
// It holds everything known about the site owner; only a subset is public.
type ProfileDocument struct {
	// Personal contains identity and contact details.
	Personal PersonalDetails `json:"personal"`

	// Professional describes the owner's current role and career.
	Professional ProfessionalDetails `json:"professional"`

	// Social is the list of social links, passed through untouched.
	Social json.RawMessage `json:"social"`

	// Education is the education history, passed through untouched.
	Education json.RawMessage `json:"education"`
}

// PersonalDetails is the stored personal section of the profile.
type PersonalDetails struct {
	// FullName is the display name of the site owner.
	FullName json.RawMessage `json:"full_name"`

	// Avatar is the URL or asset path of the profile picture.
	Avatar json.RawMessage `json:"avatar"`

	// Location is a free-form location such as "Berlin, Germany".
	Location json.RawMessage `json:"location"`

	// Email is the owner's contact address.
	// This field is never exposed in API responses.
	Email json.RawMessage `json:"email"`

	// Phone is the owner's phone number.
	// This field is never exposed in API responses.
	Phone json.RawMessage `json:"phone"`
}

// ProfessionalDetails is the stored professional section of the profile.
type ProfessionalDetails struct {
	// Title is the job title, e.g. "Senior Backend Engineer".
	Title json.RawMessage `json:"title"`

	// Tagline is a one-line pitch shown under the name.
	Tagline json.RawMessage `json:"tagline"`

	// Bio is the longer about-me text.
	Bio json.RawMessage `json:"bio"`

	// YearsOfExperience is the number of years worked professionally.
	YearsOfExperience json.RawMessage `json:"years_of_experience"`

	// CurrentCompany is the employer name, if any.
	CurrentCompany json.RawMessage `json:"current_company"`

	// Availability describes whether the owner is open to work.
	Availability json.RawMessage `json:"availability"`

	// Resume is the location of the private resume file.
	// This field is never exposed in API responses.
	Resume json.RawMessage `json:"resume"`
}

// ProfileResponse is the public shape served by /api/profile.
type ProfileResponse struct {
	Personal     PersonalSummary     `json:"personal"`
	Professional ProfessionalSummary `json:"professional"`
	Social       json.RawMessage     `json:"social"`
	Education    json.RawMessage     `json:"education"`
}

// PersonalSummary is the public subset of PersonalDetails.
type PersonalSummary struct {
	FullName json.RawMessage `json:"full_name"`
	Avatar   json.RawMessage `json:"avatar"`
	Location json.RawMessage `json:"location"`
}

// ProfessionalSummary is the public subset of ProfessionalDetails.
type ProfessionalSummary struct {
	Title             json.RawMessage `json:"title"`
	Tagline           json.RawMessage `json:"tagline"`
	Bio               json.RawMessage `json:"bio"`
	YearsOfExperience json.RawMessage `json:"years_of_experience"`
	CurrentCompany    json.RawMessage `json:"current_company"`
	Availability      json.RawMessage `json:"availability"`
}

// TechStackDocument is the stored skills document (tech_stack.json).
type TechStackDocument struct {
	// Categories are skill groups in display order.
	Categories []TechCategory `json:"categories"`

	// Highlights is a free-form summary block, passed through untouched.
	Highlights json.RawMessage `json:"highlights"`
}

// TechCategory is one stored skill group.
type TechCategory struct {
	ID     json.RawMessage `json:"id"`
	Name   json.RawMessage `json:"name"`
	Icon   json.RawMessage `json:"icon"`
	Skills json.RawMessage `json:"skills"`

	// Description is editorial copy used only by the authoring tools.
	Description json.RawMessage `json:"description"`
}

// TechStackResponse is the public shape served by /api/tech-stack.
type TechStackResponse struct {
	Categories []TechCategorySummary `json:"categories"`
	Highlights json.RawMessage       `json:"highlights"`
}

// TechCategorySummary is the public subset of TechCategory.
type TechCategorySummary struct {
	ID     json.RawMessage `json:"id"`
	Name   json.RawMessage `json:"name"`
	Icon   json.RawMessage `json:"icon"`
	Skills json.RawMessage `json:"skills"`
}

// ContributionsDocument is the stored contribution calendar (contributions.json).
type ContributionsDocument struct {
	Year               json.RawMessage `json:"year"`
	TotalContributions json.RawMessage `json:"total_contributions"`
	LongestStreak      json.RawMessage `json:"longest_streak"`
	CurrentStreak      json.RawMessage `json:"current_streak"`

	// Weekly holds the weekly buckets in chronological order.
	Weekly json.RawMessage `json:"weekly"`

	// HeatmapLevels maps contribution counts to heatmap intensities.
	HeatmapLevels json.RawMessage `json:"heatmap_levels"`
}

// ContributionsResponse is the public shape served by /api/contributions.
// Every stored field is public.
type ContributionsResponse ContributionsDocument

// SiteConfigDocument is the stored layout configuration (site_config.json).
type SiteConfigDocument struct {
	Site       json.RawMessage `json:"site"`
	Branding   json.RawMessage `json:"branding"`
	Navigation json.RawMessage `json:"navigation"`
	Pages      json.RawMessage `json:"pages"`
}

// SiteConfigResponse is the public shape served by /api/config.
type SiteConfigResponse SiteConfigDocument
