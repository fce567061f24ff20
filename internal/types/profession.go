// Package types provides type definitions for the structured profession data
// flowing through the catalog pipeline.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Category is the fixed domain classification of a profession.
type Category string

// Category values mirror the upload API enum.
const (
	CategoryTechnology     Category = "TECHNOLOGY"
	CategoryMedicine       Category = "MEDICINE"
	CategoryEducation      Category = "EDUCATION"
	CategoryFinance        Category = "FINANCE"
	CategoryEngineering    Category = "ENGINEERING"
	CategoryArts           Category = "ARTS"
	CategoryBusiness       Category = "BUSINESS"
	CategoryLaw            Category = "LAW"
	CategoryScience        Category = "SCIENCE"
	CategorySocialSciences Category = "SOCIAL_SCIENCES"
	CategoryGovernment     Category = "GOVERNMENT"
	CategoryAgriculture    Category = "AGRICULTURE"
)

// DefaultCategory is substituted when a fetched record carries no category.
const DefaultCategory = CategoryBusiness

// CategoryValues returns all valid category names in declaration order.
func CategoryValues() []string {
	return []string{
		string(CategoryTechnology), string(CategoryMedicine), string(CategoryEducation),
		string(CategoryFinance), string(CategoryEngineering), string(CategoryArts),
		string(CategoryBusiness), string(CategoryLaw), string(CategoryScience),
		string(CategorySocialSciences), string(CategoryGovernment), string(CategoryAgriculture),
	}
}

// IsValid reports whether c is a member of the category enum.
func (c Category) IsValid() bool {
	for _, v := range CategoryValues() {
		if string(c) == v {
			return true
		}
	}
	return false
}

// Popularity is the three-level demand rating of a profession.
type Popularity string

// Popularity values mirror the upload API enum.
const (
	PopularityLow    Popularity = "LOW"
	PopularityMedium Popularity = "MEDIUM"
	PopularityHigh   Popularity = "HIGH"
)

// PopularityValues returns all valid popularity names.
func PopularityValues() []string {
	return []string{string(PopularityLow), string(PopularityMedium), string(PopularityHigh)}
}

// IsValid reports whether p is a member of the popularity enum.
func (p Popularity) IsValid() bool {
	for _, v := range PopularityValues() {
		if string(p) == v {
			return true
		}
	}
	return false
}

// ProfessionRecord is one validated catalog entry, shaped for the upload API.
// Optional fields serialize as explicit nulls, matching the upload contract.
type ProfessionRecord struct {
	Name        string      `json:"name" validate:"required,min=1"`
	Category    Category    `json:"category" validate:"required,profession_category"`
	Description *string     `json:"description"`
	StartSalary *float64    `json:"startSalary" validate:"omitempty,gte=0"`
	EndSalary   *float64    `json:"endSalary" validate:"omitempty,gte=0"`
	Popularity  *Popularity `json:"popularity" validate:"omitempty,popularity_level"`
	Skills      []string    `json:"skills"`
}

// validate is shared; custom enum validators are registered once.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags, which these are not.
	_ = v.RegisterValidation("profession_category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("popularity_level", func(fl validator.FieldLevel) bool {
		return Popularity(fl.Field().String()).IsValid()
	})
	return v
}

// Normalize applies the self-healing coercions that never reject a record:
// inverted salary bounds are swapped and the skills list is cleaned.
func (r *ProfessionRecord) Normalize() {
	if r.StartSalary != nil && r.EndSalary != nil && *r.StartSalary > *r.EndSalary {
		r.StartSalary, r.EndSalary = r.EndSalary, r.StartSalary
	}
	r.Skills = CleanSkills(r.Skills)
}

// Validate checks the record against the upload constraints.
func (r *ProfessionRecord) Validate() error {
	return validate.Struct(r)
}

// CleanSkills trims entries, drops empties, and removes exact-string
// duplicates while preserving first-seen order. Dedup here is case-sensitive,
// unlike profession-name dedup, which folds case.
func CleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// RejectionEntry describes one profession dropped from the output, with a
// classified reason tag for the preflight report.
type RejectionEntry struct {
	Profession string `json:"profession"`
	Reason     string `json:"reason"`
}

// ValidationReason builds the reason tag for records that failed constraint
// validation.
func ValidationReason(kind string) string {
	return "validation_error:" + kind
}

// FetchReason builds the reason tag for records whose detail fetch produced
// no usable data.
func FetchReason(kind string) string {
	return "fetch_error:" + kind
}
