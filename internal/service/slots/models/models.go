package models

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// Request модели

// GetBookedSlotsRequest запрос на получение календаря записей руководителя
type GetBookedSlotsRequest struct {
	ManagerID int64      `json:"managerId"`
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookedSlotsRequest) ToDomainFilter() domain.SlotFilter {
	return domain.SlotFilter{
		ManagerID:  r.ManagerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		OnlyBooked: true,
	}
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID          int64   `json:"id"`
	ManagerID   int64   `json:"managerId"`
	TemplateID  *int64  `json:"templateId,omitempty"`
	Date        string  `json:"date"`      // "2026-09-07"
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "09:10"
	State       string  `json:"state"`     // "available" / "booked" / "withdrawn"
	BookedBy    *string `json:"bookedBy,omitempty"`
	BookedEmail *string `json:"bookedEmail,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// FromDomainSlot конвертирует domain модель в response
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		ManagerID:   s.ManagerID,
		TemplateID:  s.TemplateID,
		Date:        s.Date.Format(domain.DateFormat),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		State:       string(s.State()),
		BookedBy:    s.BookedBy,
		BookedEmail: s.BookedEmail,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlotList конвертирует список domain моделей в response
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	items := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		items = append(items, *FromDomainSlot(s))
	}
	return &SlotListResponse{
		Slots: items,
		Total: len(items),
	}
}
