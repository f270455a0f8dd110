// Package types provides type definitions for structured data used throughout the cv-wizard system.
package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so API errors match the request body
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// MatchRequest is the body of POST /match
type MatchRequest struct {
	Profile        *ResumeProfile `json:"profile" validate:"required"`
	JobDescription string         `json:"job_description"`
	Language       string         `json:"language,omitempty" validate:"omitempty,max=16"`
}

// BatchMatchRequest is the body of POST /match/batch
type BatchMatchRequest struct {
	Profile         *ResumeProfile `json:"profile" validate:"required"`
	JobDescriptions []string       `json:"job_descriptions" validate:"required,min=1,max=50"`
	Language        string         `json:"language,omitempty" validate:"omitempty,max=16"`
}

// CoverageRequest is the body of POST /coverage
type CoverageRequest struct {
	Profile *ResumeProfile `json:"profile" validate:"required"`
}

// ReviewRequest is the body of POST /review
type ReviewRequest struct {
	Profile *ResumeProfile `json:"profile" validate:"required"`
}

// SuggestionRequest is the body of POST /suggestions
type SuggestionRequest struct {
	Text string `json:"text" validate:"max=100000"`
}

// KeywordsRequest is the body of POST /keywords
type KeywordsRequest struct {
	Text     string `json:"text" validate:"max=100000"`
	Language string `json:"language,omitempty" validate:"omitempty,max=16"`
	Top      int    `json:"top,omitempty" validate:"gte=0,lte=500"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CoverageRequest using the validator.
func (r *CoverageRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ReviewRequest using the validator.
func (r *ReviewRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SuggestionRequest using the validator.
func (r *SuggestionRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the KeywordsRequest using the validator.
func (r *KeywordsRequest) Validate() error {
	return validate.Struct(r)
}
