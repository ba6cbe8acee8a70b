package kit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var (
	ErrBadJSON   = errors.New("bad json")
	ErrExtraData = errors.New("extra data after json object")
)

var mailAddrRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("mailaddr", func(fl validator.FieldLevel) bool {
		return mailAddrRE.MatchString(fl.Field().String())
	})

	return v
}

// Validate runs the `validate:"..."` tags of s.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors flattens validator errors into field -> message.
// Nested fields are dotted from the top-level json name, e.g. "item.price".
func FormatValidationErrors(err error) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, e := range ve {
		out[fieldPath(e)] = formatFieldError(e)
	}
	return out
}

func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "alpha":
		return "Must contain only letters"
	case "mailaddr", "email":
		return "Must be a valid email address"
	case "url", "http_url":
		return "Must be a valid URL"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lt":
		return fmt.Sprintf("Must be less than %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// DecodeJSON reads exactly one JSON object into dst, rejecting unknown
// fields and trailing data.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrExtraData
	}
	return nil
}

// BindJSON decodes and validates the body, answering the client on failure.
// It reports whether the handler may continue.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := DecodeJSON(w, r, dst); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return false
	}
	if err := Validate(dst); err != nil {
		WriteValidationError(w, r, err)
		return false
	}
	return true
}

// CheckParams reports conversion errors collected by p first, then the
// validate tags of in, answering 422 on either. It reports whether the
// handler may continue.
func CheckParams(w http.ResponseWriter, r *http.Request, p *Params, in any) bool {
	if err := p.Err(); err != nil {
		WriteValidationError(w, r, err)
		return false
	}
	if err := Validate(in); err != nil {
		WriteValidationError(w, r, err)
		return false
	}
	return true
}
