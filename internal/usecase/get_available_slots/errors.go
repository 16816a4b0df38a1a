package get_available_slots

import "errors"

var (
	// ErrManagerNotFound руководитель не найден в StaffService
	ErrManagerNotFound = errors.New("get_available_slots: manager not found")

	// ErrInvalidInput некорректные параметры запроса
	ErrInvalidInput = errors.New("get_available_slots: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_available_slots: internal error")
)
