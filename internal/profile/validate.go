package profile

import (
	"fmt"

	"github.com/shinji-kodama/edo-compare/internal/model"
	"github.com/shinji-kodama/edo-compare/internal/report"
)

// ValidationError is one problem found in a profile.
type ValidationError struct {
	// Field is the profile key that failed validation (e.g. "references[1]").
	Field string

	// Message describes what's wrong with the value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile validation error: %s: %s", e.Field, e.Message)
}

// Validate checks a parsed profile and returns every problem found
// (empty list = valid profile).
//
// Checks performed:
//   - sources and references are non-empty
//   - every temperament token parses
//   - output, when set, is a known format
//   - cellWidth, when set, is at least report.MinCellWidth
func Validate(p *Profile) []ValidationError {
	var errs []ValidationError

	if len(p.Sources) == 0 {
		errs = append(errs, ValidationError{Field: "sources", Message: "at least one source temperament is required"})
	}
	if len(p.References) == 0 {
		errs = append(errs, ValidationError{Field: "references", Message: "at least one reference temperament is required"})
	}

	errs = append(errs, validateTokens("sources", p.Sources)...)
	errs = append(errs, validateTokens("references", p.References)...)

	if p.Output != "" {
		if _, err := model.ParseOutputFormat(p.Output); err != nil {
			errs = append(errs, ValidationError{Field: "output", Message: err.Error()})
		}
	}

	if p.CellWidth != 0 && p.CellWidth < report.MinCellWidth {
		errs = append(errs, ValidationError{
			Field:   "cellWidth",
			Message: fmt.Sprintf("must be at least %d, got %d", report.MinCellWidth, p.CellWidth),
		})
	}

	return errs
}

func validateTokens(field string, tokens []string) []ValidationError {
	var errs []ValidationError
	for i, tok := range tokens {
		if _, err := model.ParseTemperamentSpec(tok); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: err.Error(),
			})
		}
	}
	return errs
}
