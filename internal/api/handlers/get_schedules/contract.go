package get_schedules

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/service/schedules/models"
)

type ScheduleService interface {
	ListByManager(ctx context.Context, managerID int64) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
