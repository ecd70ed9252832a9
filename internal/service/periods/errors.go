package periods

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = errors.New("period not found")

	// ErrActivityNotFound возвращается, когда период ссылается на несуществующую активность
	ErrActivityNotFound = errors.New("activity not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
