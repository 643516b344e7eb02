package dto

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/activity-roster/internal/domain"
)

const (
	msgRequired    = "is required"
	msgInvalidUTF8 = "must be valid UTF-8"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their query tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ParticipantQuery carries the participant identifier for signup and
// unregister requests.
type ParticipantQuery struct {
	Email string `query:"email" validate:"required"`
}

// ParseParticipantQuery reads the participant query parameters from r.
// Surrounding whitespace is trimmed before validation.
func ParseParticipantQuery(r *http.Request) ParticipantQuery {
	return ParticipantQuery{
		Email: strings.TrimSpace(r.URL.Query().Get("email")),
	}
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (q *ParticipantQuery) Validate() error {
	// Emails are echoed in JSON, which cannot carry invalid UTF-8.
	if !utf8.ValidString(q.Email) {
		return domain.NewValidationError("email", msgInvalidUTF8)
	}

	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	default:
		return "failed " + fe.Tag() + " check"
	}
}
