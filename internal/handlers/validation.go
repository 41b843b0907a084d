package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

const bodyField = "body"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate reads a JSON body into dst and checks its validate tags.
// An empty body decodes as an empty object. A JSON type mismatch is
// reported for its field ahead of the tag violations.
func decodeAndValidate(r *http.Request, dst any) []models.FieldViolation {
	var typeErr *json.UnmarshalTypeError

	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.As(err, &typeErr) && typeErr.Field != "":
	case errors.As(err, &typeErr):
		return []models.FieldViolation{{Field: bodyField, Message: "Request body must be a JSON object"}}
	default:
		return []models.FieldViolation{{Field: bodyField, Message: "Request body must be valid JSON"}}
	}

	var violations []models.FieldViolation
	if typeErr != nil {
		violations = append(violations, models.FieldViolation{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", label(typeErr.Field), jsonKind(typeErr.Type)),
		})
	}

	var verrs validator.ValidationErrors
	if err := validate.Struct(dst); errors.As(err, &verrs) {
		for _, fe := range verrs {
			if typeErr != nil && fe.Field() == typeErr.Field {
				continue
			}
			violations = append(violations, models.FieldViolation{
				Field:   fe.Field(),
				Message: formatViolation(fe),
			})
		}
	}

	return violations
}

func formatViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return label(fe.Field()) + " is required"
	default:
		return fmt.Sprintf("%s failed %s validation", label(fe.Field()), fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}

// label turns a json field name into the word used in messages: title -> Title.
func label(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func writeValidationError(w http.ResponseWriter, violations []models.FieldViolation) {
	writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{Errors: violations})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
