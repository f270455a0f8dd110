// Package types provides type definitions for structured data used throughout the cv-wizard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeProfile is one language's résumé as entered through the wizard.
// Analysis code only reads it.
type ResumeProfile struct {
	Personal     Personal          `json:"personal"`
	Experience   []Experience      `json:"experience,omitempty"`
	Education    []Education       `json:"education,omitempty"`
	Skills       map[string]string `json:"skills,omitempty"` // category -> comma-separated items
	Projects     []Project         `json:"projects,omitempty"`
	Certificates []Certificate     `json:"certificates,omitempty"`
}

// Personal holds contact details and the professional summary
type Personal struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience is a single work history entry
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry
type Education struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Year   string `json:"year,omitempty"`
	GPA    string `json:"gpa,omitempty"`
	Rank   string `json:"rank,omitempty"`
}

// Project is a portfolio entry
type Project struct {
	Name        string `json:"name,omitempty"`
	Tech        string `json:"tech,omitempty"`
	Description string `json:"description,omitempty"`
}

// Certificate is a certification entry
type Certificate struct {
	Name      string `json:"name,omitempty"`
	Authority string `json:"authority,omitempty"`
	Date      string `json:"date,omitempty"`
}

// ProfileBundle stores one ResumeProfile per language tag ("tr", "en").
type ProfileBundle map[string]ResumeProfile
