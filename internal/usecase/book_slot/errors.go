package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotUnavailable возвращается, когда слот уже забронирован или снят с публикации
	// В том числе при проигранном забеге: забег не перезапускается, посетитель
	// выбирает другой слот из актуальной выдачи
	ErrSlotUnavailable = errors.New("book_slot: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
