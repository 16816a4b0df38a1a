package generate_slots

import (
	generateSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/generate_slots"
)

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	TemplateID   int64    `json:"templateId"`
	ManagerID    int64    `json:"managerId"`
	SlotsCreated int64    `json:"slotsCreated"` // Уже существовавшие слоты не пересоздаются
	Dates        []string `json:"dates"`        // Даты приёма, YYYY-MM-DD
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		TemplateID:   resp.TemplateID,
		ManagerID:    resp.ManagerID,
		SlotsCreated: resp.SlotsCreated,
		Dates:        resp.Dates,
	}
}
