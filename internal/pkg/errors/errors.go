package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется, когда запрос пришёл без токена и идентичность не установлена.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken используется для предъявленного, но невалидного токена (подпись, срок, формат).
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов уникальности (например, занятый username или email).
	ErrConflict = errors.New("resource conflict")
)
