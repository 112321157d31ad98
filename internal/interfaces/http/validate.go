package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
)

var validate = newValidator()

// newValidator reporta los campos con su nombre JSON (o de query) en lugar del nombre Go.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// bindJSON decodifica el cuerpo y valida las etiquetas `validate`.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.WithDetail(domain.ErrInvalidInput, "cuerpo inválido")
	}
	return validateStruct(out)
}

// bindQuery decodifica los parámetros de consulta y los valida.
func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return domain.WithDetail(domain.ErrInvalidInput, "parámetros de consulta inválidos")
	}
	return validateStruct(out)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.WithDetail(domain.ErrInvalidInput, fieldMessage(verrs[0]))
	}
	return domain.WithDetail(domain.ErrInvalidInput, "datos inválidos")
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("el campo '%s' es requerido", field)
	case "min", "gte":
		return fmt.Sprintf("el campo '%s' debe ser mayor o igual a %s", field, e.Param())
	case "max", "lte":
		return fmt.Sprintf("el campo '%s' debe ser menor o igual a %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("el campo '%s' debe ser mayor que %s", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("el campo '%s' no puede ser menor que '%s'", field, e.Param())
	default:
		return fmt.Sprintf("el campo '%s' es inválido", field)
	}
}
