package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/pkg/dbmetrics"
	"github.com/m04kA/CMS-ReceptionService/pkg/psqlbuilder"
)

var templateColumns = []string{
	"id",
	"manager_id",
	"cadence",
	"weekday",
	"week_number",
	"start_time",
	"end_time",
	"slot_duration_minutes",
	"months_ahead",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с шаблонами расписания приёма
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый шаблон расписания
func (r *Repository) Create(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_templates").
		Columns(
			"manager_id",
			"cadence",
			"weekday",
			"week_number",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"months_ahead",
			"is_active",
		).
		Values(
			tpl.ManagerID,
			tpl.Cadence,
			int(tpl.Weekday),
			tpl.WeekNumber,
			tpl.StartTime,
			tpl.EndTime,
			tpl.SlotDurationMinutes,
			tpl.MonthsAhead,
			tpl.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return tpl, nil
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tpl, err := scanTemplateRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	return tpl, nil
}

// GetByManager получает все шаблоны менеджера, новые первыми
func (r *Repository) GetByManager(ctx context.Context, managerID int64) ([]*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).
		From("schedule_templates").
		Where(squirrel.Eq{"manager_id": managerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByManager - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByManager - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.ScheduleTemplate, 0)
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByManager - scan row: %v", ErrScanRow, err)
		}
		templates = append(templates, tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByManager - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// SetActive включает или выключает шаблон
// Выключенный шаблон перестаёт порождать слоты, уже сгенерированные остаются
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_templates").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

func scanTemplateRow(row *sql.Row) (*domain.ScheduleTemplate, error) {
	var tpl domain.ScheduleTemplate
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tpl.ID,
		&tpl.ManagerID,
		&tpl.Cadence,
		&weekday,
		&tpl.WeekNumber,
		&tpl.StartTime,
		&tpl.EndTime,
		&tpl.SlotDurationMinutes,
		&tpl.MonthsAhead,
		&tpl.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tpl.Weekday = time.Weekday(weekday)
	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}

func scanTemplate(rows *sql.Rows) (*domain.ScheduleTemplate, error) {
	var tpl domain.ScheduleTemplate
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&tpl.ID,
		&tpl.ManagerID,
		&tpl.Cadence,
		&weekday,
		&tpl.WeekNumber,
		&tpl.StartTime,
		&tpl.EndTime,
		&tpl.SlotDurationMinutes,
		&tpl.MonthsAhead,
		&tpl.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tpl.Weekday = time.Weekday(weekday)
	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}
