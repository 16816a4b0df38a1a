package staffservice

import "errors"

var (
	// ErrManagerNotFound возвращается, когда менеджер не найден
	ErrManagerNotFound = errors.New("manager not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
