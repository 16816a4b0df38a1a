package models

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// TemplateResponse ответ с данными шаблона расписания
type TemplateResponse struct {
	ID                  int64  `json:"id"`
	ManagerID           int64  `json:"managerId"`
	Cadence             string `json:"cadence"`
	Weekday             int    `json:"weekday"`
	WeekNumber          int    `json:"weekNumber,omitempty"`
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "12:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	MonthsAhead         int    `json:"monthsAhead"`
	IsActive            bool   `json:"isActive"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

// FromDomainTemplate конвертирует domain модель в response
func FromDomainTemplate(t *domain.ScheduleTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:                  t.ID,
		ManagerID:           t.ManagerID,
		Cadence:             string(t.Cadence),
		Weekday:             int(t.Weekday),
		WeekNumber:          t.WeekNumber,
		StartTime:           t.StartTime.String(),
		EndTime:             t.EndTime.String(),
		SlotDurationMinutes: t.SlotDurationMinutes,
		MonthsAhead:         t.MonthsAhead,
		IsActive:            t.IsActive,
		CreatedAt:           t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           t.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTemplateList конвертирует список domain моделей в response
func FromDomainTemplateList(templates []*domain.ScheduleTemplate) *TemplateListResponse {
	items := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		items = append(items, *FromDomainTemplate(t))
	}
	return &TemplateListResponse{
		Templates: items,
		Total:     len(items),
	}
}
