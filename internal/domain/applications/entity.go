package applications

import (
	"time"
)

// ID tipe untuk Application
type ApplicationID string

// EducationLevel enum (closed set)
type EducationLevel string

const (
	EducationHighSchool EducationLevel = "High School"
	EducationAssociate  EducationLevel = "Associate's"
	EducationBachelor   EducationLevel = "Bachelor's"
	EducationMaster     EducationLevel = "Master's"
	EducationDoctorate  EducationLevel = "Doctorate"
)

// EducationLevels lists every accepted value, in form order.
var EducationLevels = []EducationLevel{
	EducationHighSchool,
	EducationAssociate,
	EducationBachelor,
	EducationMaster,
	EducationDoctorate,
}

// ValidEducationLevel reports whether s is in the closed set.
func ValidEducationLevel(s string) bool {
	for _, lvl := range EducationLevels {
		if string(lvl) == s {
			return true
		}
	}
	return false
}

// Status enum
type Status string

const (
	StatusNew Status = "new"
)

// Aggregate Root: Application
type Application struct {
	ID              ApplicationID  `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address,omitempty"`
	PayRange        string         `json:"pay_range"`
	EducationLevel  EducationLevel `json:"education_level"`
	Certificates    string         `json:"certificates,omitempty"`
	LinkedIn        string         `json:"linkedin,omitempty"`
	AdditionalNotes string         `json:"additional_notes,omitempty"`
	Status          Status         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
