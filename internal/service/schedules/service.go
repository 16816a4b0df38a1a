package schedules

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/schedule"
	"github.com/m04kA/CMS-ReceptionService/internal/service/schedules/models"
)

// Service сервис для работы с шаблонами расписания приёма
type Service struct {
	templateRepo TemplateRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(templateRepo TemplateRepository, logger Logger) *Service {
	return &Service{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// ListByManager получает шаблоны расписания руководителя
// Возвращает и активные, и деактивированные шаблоны
func (s *Service) ListByManager(ctx context.Context, managerID int64) (*models.TemplateListResponse, error) {
	s.logger.Info("ListByManager: fetching templates for manager=%d", managerID)

	if managerID <= 0 {
		s.logger.Warn("ListByManager: invalid managerId=%d", managerID)
		return nil, fmt.Errorf("%w: managerId must be positive", ErrInvalidInput)
	}

	templates, err := s.templateRepo.GetByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("ListByManager: repository error for manager=%d: %v", managerID, err)
		return nil, fmt.Errorf("%w: ListByManager - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByManager: successfully fetched %d templates for manager=%d", len(templates), managerID)
	return models.FromDomainTemplateList(templates), nil
}

// Deactivate выключает шаблон расписания
// Новые слоты по шаблону генерироваться перестают, уже созданные остаются
func (s *Service) Deactivate(ctx context.Context, templateID int64) error {
	s.logger.Info("Deactivate: deactivating template id=%d", templateID)

	if err := s.templateRepo.SetActive(ctx, templateID, false); err != nil {
		if errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
			s.logger.Warn("Deactivate: template id=%d not found", templateID)
			return ErrTemplateNotFound
		}
		s.logger.Error("Deactivate: repository error for template id=%d: %v", templateID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated template id=%d", templateID)
	return nil
}
