package activities

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityAlreadyExists возвращается при попытке создать активность с занятым ID
	ErrActivityAlreadyExists = errors.New("activity already exists")

	// ErrActivityInUse возвращается при удалении активности, на которую ссылаются периоды
	ErrActivityInUse = errors.New("activity is used by periods")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
