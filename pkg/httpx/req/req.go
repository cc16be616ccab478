package req

import (
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"dnf_rate/pkg/errcodes"
)

// MaxBodySize ограничивает тело JSON-запроса.
const MaxBodySize = 64 << 10

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read декодирует JSON-тело в dest и валидирует его по тегам validate.
// Любая ошибка: InvalidArgument с кодом ValidationError.
func Read(r *http.Request, dest any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		description := "Invalid JSON"

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			description = fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)
		}

		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(description),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(describe(err)),
		)
	}

	return nil
}

// describe оставляет только имена полей и нарушенные правила.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	description := ""

	for i, fe := range verrs {
		if i > 0 {
			description += "; "
		}

		description += fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}

	return description
}
