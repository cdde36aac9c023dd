// Package validation holds request shape rules and the uniqueness and ownership checks
// applied before any write.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"simpleadvert/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("advert_kind", func(fl validator.FieldLevel) bool {
		return models.AdvertKind(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
}

// ValidateStruct validates a request body and returns a VALIDATION_ERROR AppError
// listing every failing field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe.Field(), fe))
	}
	return models.NewValidationError(strings.Join(messages, "; "))
}

// ValidateAdvertPatch applies the create rules to every field present in the patch.
func ValidateAdvertPatch(p models.AdvertPatch) error {
	return collect(
		checkOptional("title", p.Title, "required,max=100"),
		checkOptional("description", p.Description, "required"),
		checkOptional("kind", p.Kind, "required,advert_kind"),
		checkOptional("price", p.Price, "gt=0"),
	)
}

// ValidateReviewPatch validates a feedback or complaint patch.
func ValidateReviewPatch(p models.ReviewPatch) error {
	return collect(checkOptional("text", p.Text, "required"))
}

func checkOptional[T any](field string, o models.Optional[T], rules string) string {
	if !o.Set {
		return ""
	}
	if o.Null {
		return field + " cannot be null"
	}
	err := validate.Var(o.Value, rules)
	if err == nil {
		return ""
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return fieldErrorMessage(field, validationErrors[0])
	}
	return field + " is invalid"
}

func collect(messages ...string) error {
	failed := messages[:0]
	for _, m := range messages {
		if m != "" {
			failed = append(failed, m)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return models.NewValidationError(strings.Join(failed, "; "))
}

func fieldErrorMessage(field string, fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "advert_kind":
		kinds := make([]string, 0, len(models.AdvertKinds))
		for _, k := range models.AdvertKinds {
			kinds = append(kinds, string(k))
		}
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(kinds, " "))
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
