package create_schedule

import "errors"

var (
	// ErrManagerNotFound возвращается, когда менеджер не найден
	ErrManagerNotFound = errors.New("create_schedule: manager not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrSlotOverlap возвращается, когда слоты нового расписания пересекаются
	// с уже существующими слотами менеджера
	ErrSlotOverlap = errors.New("create_schedule: slots overlap with existing slots")

	// ErrGenerationInProgress возвращается, когда генерация по шаблону уже идёт
	ErrGenerationInProgress = errors.New("create_schedule: slot generation already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
