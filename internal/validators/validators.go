package validators

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation mirrors one failed field check. Handlers may append ad-hoc
// violations discovered through database lookups (duplicate names, missing
// upload files) before responding.
type Violation struct {
	Value    string `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

type Violations []Violation

func (v *Violations) Add(param, msg string) {
	*v = append(*v, Violation{Msg: msg, Param: param, Location: "body"})
}

func (v *Violations) AddWithValue(param, value, msg string) {
	*v = append(*v, Violation{Value: value, Msg: msg, Param: param, Location: "body"})
}

func (v Violations) Empty() bool {
	return len(v) == 0
}

// Has reports whether a violation for the given param was already recorded.
func (v Violations) Has(param string) bool {
	for _, violation := range v {
		if violation.Param == param {
			return true
		}
	}
	return false
}

// Merge appends violations for params v does not already report. A field
// that failed form coercion keeps that message instead of gaining a second
// one from the declarative rules on its zero value.
func (v Violations) Merge(more Violations) Violations {
	merged := v
	for _, violation := range more {
		if !v.Has(violation.Param) {
			merged = append(merged, violation)
		}
	}
	return merged
}

var validate = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire name, not the Go field name.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// Check runs the declarative rules on a sanitized request payload and
// collects every violation instead of failing fast.
func Check(payload interface{}) Violations {
	var violations Violations

	err := validate.Struct(payload)
	if err == nil {
		return violations
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		violations.Add("body", "Invalid request payload")
		return violations
	}

	for _, fe := range fieldErrors {
		violations = append(violations, Violation{
			Value:    fmt.Sprintf("%v", fe.Value()),
			Msg:      messageFor(fe),
			Param:    fe.Field(),
			Location: "body",
		})
	}
	return violations
}

func messageFor(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "eqfield":
		return "Passwords don't match"
	case "url":
		return "Invalid " + strings.ToLower(label) + " URL"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "At least one " + strings.ToLower(strings.TrimSuffix(label, "s")) + " is required"
		}
		return label + " is too short"
	case "gt":
		return label + " must be greater than " + fe.Param()
	default:
		return label + " is invalid"
	}
}

func labelFor(param string) string {
	switch param {
	case "password_conf":
		return "Password confirmation"
	case "videoURL":
		return "Video URL"
	case "releaseDate":
		return "Release date"
	case "contentItems":
		return "Content items"
	}
	label := strings.ReplaceAll(param, "_", " ")
	if label == "" {
		return "Field"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// Sanitize trims and HTML-escapes every string field of the payload in
// place, so the values persisted downstream reflect the escaped form.
func Sanitize(payload interface{}) {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	sanitizeValue(v.Elem())
}

func sanitizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(html.EscapeString(strings.TrimSpace(v.String())))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			sanitizeValue(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			sanitizeValue(v.Index(i))
		}
	case reflect.Ptr:
		if !v.IsNil() {
			sanitizeValue(v.Elem())
		}
	}
}
