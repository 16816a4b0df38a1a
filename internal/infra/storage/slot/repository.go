package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/pkg/dbmetrics"
	"github.com/m04kA/CMS-ReceptionService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"manager_id",
	"template_id",
	"slot_date",
	"start_time",
	"end_time",
	"is_available",
	"is_booked",
	"booked_by",
	"booked_email",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами приёма
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет пачку сгенерированных слотов
// Повторная генерация того же шаблона не создаёт дубликатов: натуральный ключ
// (manager_id, slot_date, start_time) уникален, конфликтующие строки пропускаются.
// Возвращает количество реально вставленных слотов.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reception_slots").
		Columns(
			"manager_id",
			"template_id",
			"slot_date",
			"start_time",
			"end_time",
			"is_available",
			"is_booked",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.ManagerID,
			s.TemplateID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.IsAvailable,
			s.IsBooked,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (manager_id, slot_date, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("reception_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByManagerWithFilter получает слоты менеджера с фильтрацией по периоду и состоянию
// Результат упорядочен по дате, времени начала и ID (стабильный порядок для календаря)
func (r *Repository) GetByManagerWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("reception_slots").
		Where(squirrel.Eq{"manager_id": filter.ManagerID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}

	// Публичная выдача: только свободные и не забронированные
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"is_available": true}).
			Where(squirrel.Eq{"is_booked": false})
	}

	// Календарь администратора: только забронированные
	if filter.OnlyBooked {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": true})
	}

	query, args, err := selectBuilder.
		OrderBy("slot_date ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByManagerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByManagerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Book переводит слот из состояния "свободен" в "забронирован"
// Это единственный путь бронирования: одиночный условный UPDATE с предикатом
// на текущее состояние гарантирует не более одной успешной брони на слот,
// даже при конкурентных запросах - побеждает ровно один.
func (r *Repository) Book(ctx context.Context, id int64, fullName, email string, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reception_slots").
		Set("is_booked", true).
		Set("is_available", false).
		Set("booked_by", fullName).
		Set("booked_email", email).
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":           id,
			"is_available": true,
			"is_booked":    false,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Book - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Book - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Book - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо слота нет, либо проигран забег за него
		return r.classifyMiss(ctx, id, ErrSlotUnavailable)
	}

	return nil
}

// CancelBooking снимает бронь и возвращает слот в пул свободных
// Контакт и заметки очищаются - история брони на слоте не хранится
func (r *Repository) CancelBooking(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reception_slots").
		Set("is_booked", false).
		Set("is_available", true).
		Set("booked_by", nil).
		Set("booked_email", nil).
		Set("notes", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":        id,
			"is_booked": true,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CancelBooking - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelBooking - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelBooking - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.classifyMiss(ctx, id, ErrSlotNotBooked)
	}

	return nil
}

// Withdraw снимает свободный слот с публикации (is_available=false, is_booked=false)
// Забронированный слот снять нельзя - сначала отмена брони
func (r *Repository) Withdraw(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reception_slots").
		Set("is_available", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":           id,
			"is_available": true,
			"is_booked":    false,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Withdraw - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Withdraw - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Withdraw - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.classifyMiss(ctx, id, ErrSlotUnavailable)
	}

	return nil
}

// classifyMiss различает "слот не найден" и "слот в неподходящем состоянии"
// после условного UPDATE, не затронувшего ни одной строки
func (r *Repository) classifyMiss(ctx context.Context, id int64, stateErr error) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	return stateErr
}

// scanSlot сканирует одну строку результата в слот
func scanSlot(row *sql.Row) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ManagerID,
		&s.TemplateID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.IsAvailable,
		&s.IsBooked,
		&s.BookedBy,
		&s.BookedEmail,
		&s.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.ManagerID,
			&s.TemplateID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.IsAvailable,
			&s.IsBooked,
			&s.BookedBy,
			&s.BookedEmail,
			&s.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
