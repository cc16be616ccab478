package domain

import (
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"dnf_rate/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode сообщает, несёт ли цепочка ошибок указанный код.
func HasCode(err error, code failure.ErrorCode) bool {
	got, ok := GetCode(err)
	return ok && got == code
}

// StatusError описывает ответ upstream с не-2xx статусом.
type StatusError struct {
	URL        string
	Status     int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

// NewFetchFailed строит FetchFailed с текстом message и деталями
// HTTP-статуса ответа url.
func NewFetchFailed(message, url string, status int) *AppError {
	return WrapError(
		&StatusError{URL: url, Status: status, StatusText: http.StatusText(status)},
		errcodes.FetchFailed,
		message,
	)
}
