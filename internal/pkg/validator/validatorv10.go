package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/quotely/formrelay/internal/pkg/strcase"
	"github.com/samber/lo"
)

// rePhoneChars accepts digits with the separators people actually type:
// spaces, dashes, dots and parentheses, with an optional leading +.
var rePhoneChars = regexp.MustCompile(`^\+?[0-9][0-9\s\-.()]*$`)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// FieldError is one translated rule violation.
type FieldError struct {
	// Field is the snake_case field name.
	Field string
	// Message is the human-readable violation.
	Message string
}

// V10ValidationError is the ordered list of rule violations for one struct.
//
// Order follows struct field declaration order so responses are stable.
type V10ValidationError []FieldError

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}
	return strings.Join(vs.Messages(), "; ")
}

// Messages returns the violation messages in field order.
func (vs V10ValidationError) Messages() []string {
	return lo.Map(vs, func(fe FieldError, _ int) string { return fe.Message })
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v10CustomValidation(validate, enTrans)

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError, 0, len(validateErrs))
		for _, fe := range validateErrs {
			errV10 = append(errV10, FieldError{
				Field:   strcase.ToLowerSnake(fe.Field()),
				Message: fe.Translate(v.translator),
			})
		}

		return errV10
	}

	return nil
}

// validPhone is deliberately lenient: an international mobile number with an
// optional country code prefix, 7 to 15 digits total, common separators allowed.
func validPhone(raw string) bool {
	raw = strings.TrimSpace(raw)
	if !rePhoneChars.MatchString(raw) {
		return false
	}

	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= 7 && digits <= 15
}

//nolint:errcheck,gosec // make linter silent
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) {
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		p, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return validPhone(p)
	})

	validate.RegisterTranslation("phone", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("phone", "{0} must be a valid phone number", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		},
	)
}
