package get_booked_slots

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/service/slots/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(managerID int64, startDateStr, endDateStr string) (*models.GetBookedSlotsRequest, error) {
	req := &models.GetBookedSlotsRequest{ManagerID: managerID}

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
