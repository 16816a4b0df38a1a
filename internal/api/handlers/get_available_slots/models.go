package get_available_slots

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	getAvailableSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/get_available_slots"
)

// SlotItem свободный слот в публичной выдаче
type SlotItem struct {
	SlotID    int64  `json:"slotId"`
	Date      string `json:"date"`      // "2026-09-07"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "09:10"
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ManagerID   int64      `json:"managerId"`
	ManagerName string     `json:"managerName"`
	Slots       []SlotItem `json:"slots"`
	Total       int        `json:"total"`
}

// ToUseCaseRequest собирает запрос use case из path и query параметров
func ToUseCaseRequest(managerID int64, startDateStr, endDateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{ManagerID: managerID}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	items := make([]SlotItem, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		items = append(items, SlotItem{
			SlotID:    s.SlotID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}
	return &AvailableSlotsResponse{
		ManagerID:   resp.ManagerID,
		ManagerName: resp.ManagerName,
		Slots:       items,
		Total:       len(items),
	}
}
