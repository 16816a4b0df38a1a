package generate_slots

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("generate_slots: template not found")

	// ErrTemplateInactive возвращается при попытке генерации по выключенному шаблону
	ErrTemplateInactive = errors.New("generate_slots: template is inactive")

	// ErrUnsupportedCadence возвращается для cadence, который генератор не умеет разворачивать
	// В частности для "custom" - его семантика не специфицирована, генератор не угадывает
	ErrUnsupportedCadence = errors.New("generate_slots: cadence cannot be expanded")

	// ErrInvalidTemplate возвращается для шаблона, нарушающего инварианты
	// (startTime >= endTime, неположительная длительность и т.п.)
	// Проверяется до записи: генерация по шаблону - всё или ничего
	ErrInvalidTemplate = errors.New("generate_slots: invalid template")

	// ErrSlotOverlap возвращается, когда новые слоты пересекаются по времени
	// с уже существующими слотами менеджера из другого шаблона
	ErrSlotOverlap = errors.New("generate_slots: slots overlap with existing slots")

	// ErrGenerationInProgress возвращается, когда генерация по этому шаблону уже идёт
	ErrGenerationInProgress = errors.New("generate_slots: generation already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
