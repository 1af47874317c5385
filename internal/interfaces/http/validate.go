package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categories-api/internal/application/dto"
)

var validate = newValidator()

// newValidator usa el nombre JSON de cada campo en los mensajes de error.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requestError error de entrada listo para devolver al cliente.
type requestError struct {
	status int
	body   dto.ErrorResponse
}

func (e *requestError) send(c *fiber.Ctx) error {
	return c.Status(e.status).JSON(e.body)
}

func invalidBody(msg string) *requestError {
	return &requestError{status: fiber.StatusBadRequest, body: dto.ErrorResponse{Code: "INVALID_BODY", Message: msg}}
}

func validationError(msg string) *requestError {
	return &requestError{status: fiber.StatusUnprocessableEntity, body: dto.ErrorResponse{Code: "VALIDATION", Message: msg}}
}

// bindStrict decodifica body en out rechazando campos desconocidos y luego valida los tags.
// JSON mal formado -> 400; tipos incorrectos, campos extra o reglas incumplidas -> 422.
func bindStrict(body []byte, out any) *requestError {
	if len(bytes.TrimSpace(body)) == 0 {
		return invalidBody("cuerpo vacío")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return invalidBody("JSON inválido")
		case errors.As(err, &typeErr):
			return validationError(fmt.Sprintf("%s: tipo inválido", typeErr.Field))
		case strings.HasPrefix(err.Error(), "json: unknown field"):
			return validationError(strings.TrimPrefix(err.Error(), "json: ") + " no permitido")
		default:
			return invalidBody("cuerpo inválido")
		}
	}
	if dec.More() {
		return invalidBody("se esperaba un único objeto JSON")
	}
	if err := validate.Struct(out); err != nil {
		return validationError(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" es requerido")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s debe tener como máximo %s caracteres", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
