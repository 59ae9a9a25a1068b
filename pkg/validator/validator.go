package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer *bluemonday.Policy

// Init installs the sanitizer policy and registers the custom rules into
// gin's binding engine, so request structs can carry slug and no_html tags.
func Init() {
	sanitizer = bluemonday.UGCPolicy()

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("no_html", validateNoHTML)
}

// SanitizeHTML strips unsafe markup while keeping editorial formatting.
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString removes all markup from a value.
func SanitizeString(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	matched, _ := regexp.MatchString(`^[a-z0-9-]+$`, slug)
	return matched
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}
