package scene

import (
	"fmt"
	"regexp"

	"github.com/chazu/frost/pkg/geom"
)

// LevelWarnThreshold is the recursion level above which validation
// warns about generation cost. Each level quadruples the point count
// per side, so level 9 already means 262144 points per side.
const LevelWarnThreshold = 8

// Severity indicates whether a validation finding blocks tracing or is
// merely advisory.
type Severity int

const (
	SeverityError   Severity = iota // blocks tracing
	SeverityWarning                 // advisory
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ValidationError describes a single blocking validation finding.
type ValidationError struct {
	Flake    string // name of the offending flake ("" if scene-level)
	Message  string
	Severity Severity
}

func (e ValidationError) Error() string {
	if e.Flake == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] flake %q: %s", e.Severity, e.Flake, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Flake   string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the scene has no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// colorPattern matches #RRGGBB stroke colors.
var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate runs all validation checks on the scene. It is read-only
// and never mutates the scene.
func Validate(s *Scene) ValidationResult {
	var result ValidationResult
	result.Errors = append(result.Errors, validateNames(s)...)
	result.Errors = append(result.Errors, validateGeometry(s)...)
	levelErrs, levelWarns := validateLevels(s)
	result.Errors = append(result.Errors, levelErrs...)
	result.Warnings = append(result.Warnings, levelWarns...)
	result.Warnings = append(result.Warnings, validateColors(s)...)
	return result
}

// validateNames checks for empty and duplicate flake names.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(s.Flakes))
	for _, f := range s.Flakes {
		if f.Name == "" {
			errs = append(errs, ValidationError{
				Message:  "flake has no name",
				Severity: SeverityError,
			})
			continue
		}
		if seen[f.Name] {
			errs = append(errs, ValidationError{
				Flake:    f.Name,
				Message:  "duplicate flake name",
				Severity: SeverityError,
			})
		}
		seen[f.Name] = true
	}
	return errs
}

// validateGeometry checks that every flake's starting triangle is
// constructible: finite coordinates and a vertex distinct from the
// centroid. A coincident vertex makes segment subdivision divide by
// zero length, so it must never reach the generator.
func validateGeometry(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, f := range s.Flakes {
		if !geom.Finite(f.Centroid) || !geom.Finite(f.Vertex) {
			errs = append(errs, ValidationError{
				Flake:    f.Name,
				Message:  "centroid and vertex coordinates must be finite",
				Severity: SeverityError,
			})
			continue
		}
		if f.Centroid == f.Vertex {
			errs = append(errs, ValidationError{
				Flake:    f.Name,
				Message:  "vertex coincides with centroid; the starting triangle is degenerate",
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateLevels rejects negative levels and warns about expensive ones.
func validateLevels(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warns []ValidationWarning
	for _, f := range s.Flakes {
		if f.Level < 0 {
			errs = append(errs, ValidationError{
				Flake:    f.Name,
				Message:  fmt.Sprintf("level %d is negative", f.Level),
				Severity: SeverityError,
			})
			continue
		}
		if f.Level > LevelWarnThreshold {
			warns = append(warns, ValidationWarning{
				Flake: f.Name,
				Message: fmt.Sprintf("level %d generates 4^%d points per side; this may be slow",
					f.Level, f.Level),
			})
		}
	}
	return errs, warns
}

// validateColors warns about stroke colors that are not #RRGGBB.
func validateColors(s *Scene) []ValidationWarning {
	var warns []ValidationWarning
	for _, f := range s.Flakes {
		if f.Color != "" && !colorPattern.MatchString(f.Color) {
			warns = append(warns, ValidationWarning{
				Flake:   f.Name,
				Message: fmt.Sprintf("color %q is not of the form #RRGGBB", f.Color),
			})
		}
	}
	return warns
}
