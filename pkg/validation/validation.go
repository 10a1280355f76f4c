package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"dogwalker/pkg/errors"
)

var (
	alphaSpaceRegex    = regexp.MustCompile(`^[a-zA-ZÀ-ÖØ-öø-ÿ ]+$`)
	alphanumSpaceRegex = regexp.MustCompile(`^[a-zA-Z0-9À-ÖØ-öø-ÿ/. ]+$`)
)

// New builds the validator every resource's constraint set runs through.
// Field names are reported by json tag, so the violation records reference
// the fields the client actually submitted.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return alphaSpaceRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("alphanum_space", func(fl validator.FieldLevel) bool {
		return alphanumSpaceRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("senha_forte", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})

	return v
}

// strongPassword requires at least one lowercase, one uppercase, one digit
// and one symbol.
func strongPassword(s string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Check runs every declared constraint against the payload and returns the
// full accumulated violation list; it never short-circuits. A nil result
// means the payload passed.
func Check(v *validator.Validate, payload interface{}) []errors.FieldError {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}
	return Violations(err)
}

// Violations converts a validator result into the API's field-error
// records.
func Violations(err error) []errors.FieldError {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return []errors.FieldError{{Value: err.Error(), Msg: "Payload inválido", Param: "/"}}
	}

	out := make([]errors.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, errors.FieldError{
			Value: fe.Value(),
			Msg:   message(fe),
			Param: fe.Field(),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("É obrigatório informar o campo %s", field)
	case "min":
		return fmt.Sprintf("O campo %s é muito curto. Informe ao menos %s caracteres", field, param)
	case "max":
		return fmt.Sprintf("O campo %s é muito longo. Informe no máximo %s caracteres", field, param)
	case "len":
		return fmt.Sprintf("O tamanho do campo %s é inválido. Informe exatamente %s valores", field, param)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um e-mail válido", field)
	case "url":
		return fmt.Sprintf("O campo %s deve ser uma URL válida", field)
	case "oneof":
		return fmt.Sprintf("O valor do campo %s deve ser um entre: %s", field, param)
	case "eq":
		return fmt.Sprintf("O campo %s deve conter o valor %s", field, param)
	case "gte":
		return fmt.Sprintf("O valor do campo %s deve ser maior ou igual a %s", field, param)
	case "lte":
		return fmt.Sprintf("O valor do campo %s deve ser menor ou igual a %s", field, param)
	case "numeric":
		return fmt.Sprintf("O campo %s deve conter apenas números", field)
	case "datetime":
		return fmt.Sprintf("A data informada no campo %s é inválida", field)
	case "alpha_space":
		return fmt.Sprintf("O campo %s deve conter apenas texto", field)
	case "alphanum_space":
		return fmt.Sprintf("O campo %s deve conter apenas caracteres alfanuméricos", field)
	case "senha_forte":
		return fmt.Sprintf("O campo %s não é seguro. Informe ao menos 1 letra maiúscula, 1 minúscula, 1 número e 1 símbolo", field)
	default:
		return fmt.Sprintf("O campo %s é inválido", field)
	}
}
