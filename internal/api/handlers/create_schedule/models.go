package create_schedule

import (
	"time"

	createSchedule "github.com/m04kA/CMS-ReceptionService/internal/usecase/create_schedule"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	Cadence             string `json:"cadence"`              // nth_weekday_of_month | weekly | daily
	Weekday             int    `json:"weekday"`              // 0 = воскресенье .. 6 = суббота
	WeekNumber          int    `json:"weekNumber,omitempty"` // 1..5, только для nth_weekday_of_month
	StartTime           string `json:"startTime"`            // "09:00"
	EndTime             string `json:"endTime"`              // "12:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes,omitempty"`
	MonthsAhead         int    `json:"monthsAhead,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	TemplateID          int64    `json:"templateId"`
	ManagerID           int64    `json:"managerId"`
	Cadence             string   `json:"cadence"`
	Weekday             int      `json:"weekday"`
	WeekNumber          int      `json:"weekNumber,omitempty"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	MonthsAhead         int      `json:"monthsAhead"`
	IsActive            bool     `json:"isActive"`
	CreatedAt           string   `json:"createdAt"`
	SlotsCreated        int64    `json:"slotsCreated"`
	Dates               []string `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest(managerID int64) (*createSchedule.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createSchedule.Request{
		ManagerID:           managerID,
		Cadence:             r.Cadence,
		Weekday:             r.Weekday,
		WeekNumber:          r.WeekNumber,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		MonthsAhead:         r.MonthsAhead,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		TemplateID:          resp.TemplateID,
		ManagerID:           resp.ManagerID,
		Cadence:             resp.Cadence,
		Weekday:             resp.Weekday,
		WeekNumber:          resp.WeekNumber,
		StartTime:           resp.StartTime.String(),
		EndTime:             resp.EndTime.String(),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		MonthsAhead:         resp.MonthsAhead,
		IsActive:            resp.IsActive,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		SlotsCreated:        resp.SlotsCreated,
		Dates:               resp.Dates,
	}
}
