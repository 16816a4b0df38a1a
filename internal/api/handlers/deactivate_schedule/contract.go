package deactivate_schedule

import "context"

type ScheduleService interface {
	Deactivate(ctx context.Context, templateID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
