package book_slot

import (
	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	bookSlot "github.com/m04kA/CMS-ReceptionService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Notes    *string `json:"notes,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	SlotID      int64   `json:"slotId"`
	ManagerID   int64   `json:"managerId"`
	Date        string  `json:"date"`      // "2026-09-07"
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "09:10"
	BookedBy    string  `json:"bookedBy"`
	BookedEmail string  `json:"bookedEmail"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(slotID int64) *bookSlot.Request {
	return &bookSlot.Request{
		SlotID:   slotID,
		FullName: r.FullName,
		Email:    r.Email,
		Notes:    r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *SlotResponse {
	return &SlotResponse{
		SlotID:      resp.SlotID,
		ManagerID:   resp.ManagerID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		BookedBy:    resp.BookedBy,
		BookedEmail: resp.BookedEmail,
		Notes:       resp.Notes,
	}
}
