package wshandler

import (
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/validator"
	ws "github.com/ilyaskrnz/ezan-uygulamasi/pkg/wsHub"
)

func errorResponse(conn *ws.Conn, message any) error {
	return conn.Send(
		map[string]any{
			"error": message,
		})
}

func failedValidationResponse(conn *ws.Conn, errors map[string]string) error {
	return errorResponse(conn, errors)
}

func newValidator() *validator.Validator {
	return validator.New()
}
