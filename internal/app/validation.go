package app

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"luxe_haven/internal/domain"
)

// Same loose shape check the booking and login forms have always used.
var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names so errors line up with the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// messages maps "field.tag" (or just "field") to the text shown next to the input.
type messages map[string]string

func (m messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// collect runs struct validation and records the first failure per field into verr.
func collect(verr *domain.ValidationError, v any, msgs messages) {
	err := validate.Struct(v)
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		verr.Add("form", err.Error())
		return
	}
	for _, fe := range ves {
		verr.Add(fe.Field(), msgs.lookup(fe.Field(), fe.Tag()))
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts a calendar date or an RFC 3339 timestamp; "" yields the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	var last error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		last = err
	}
	return time.Time{}, last
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
