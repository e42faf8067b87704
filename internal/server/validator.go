package server

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("rarity", validateRarity)
	_ = v.RegisterValidation("slug", validateSlug)
	return v
}

// slugPattern matches names that are safe to use as a config file name.
var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// validateRarity accepts any tier name, case-insensitively.
func validateRarity(fl validator.FieldLevel) bool {
	_, ok := gacha.ParseRarity(fl.Field().String())
	return ok
}

// FormatValidationError formats validation errors into a field → message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "rarity":
			errs[field] = "Unknown rarity"
		case "slug":
			errs[field] = "Only lowercase letters, digits, '_' and '-' are allowed"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// parseRarities converts validated tier names.
func parseRarities(names []string) []gacha.Rarity {
	out := make([]gacha.Rarity, 0, len(names))
	for _, n := range names {
		if r, ok := gacha.ParseRarity(n); ok {
			out = append(out, r)
		}
	}
	return out
}
