package schedules

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	GetByManager(ctx context.Context, managerID int64) ([]*domain.ScheduleTemplate, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
