package create_schedule

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
	generateSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/generate_slots"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
}

// SlotGenerator разворачивает свежесозданный шаблон в слоты
type SlotGenerator interface {
	GenerateForTemplate(ctx context.Context, tpl *domain.ScheduleTemplate) (*generateSlots.Response, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	GetManager(ctx context.Context, managerID int64) (*staffservice.Manager, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
