package registerbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var boxColumns = []string{
	"id",
	"name",
	"owner_user_id",
	"opening_amount",
	"state",
	"comment",
	"closed_by",
	"company_id",
	"opened_at",
	"closed_at",
}

var lineColumns = []string{
	"id",
	"box_id",
	"payment_form_id",
	"amount",
	"kind",
	"booking_id",
	"reversed_line_id",
	"comment",
	"company_id",
	"created_by",
	"created_at",
}

// BoxFilter фильтр списка касс.
// OwnerUserID заполняется обязательным предикатом видимости для менеджеров
// и остается nil для админов и суперпользователей.
type BoxFilter struct {
	CompanyID   int64
	OwnerUserID *int64
	State       *domain.BoxState
}

// Repository репозиторий касс и их проводок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория касс
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBox открывает новую кассу.
// Инвариант "одна открытая касса на оператора" дополнительно закреплен
// частичным уникальным индексом в схеме.
func (r *Repository) CreateBox(ctx context.Context, box *domain.RegisterBox) (*domain.RegisterBox, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("register_boxes").
		Columns("name", "owner_user_id", "opening_amount", "state", "company_id").
		Values(box.Name, box.OwnerUserID, box.OpeningAmount, domain.BoxOpen, box.CompanyID).
		Suffix("RETURNING id, opened_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBox - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&box.ID, &box.OpenedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrOpenBoxExists
		}
		return nil, fmt.Errorf("%w: CreateBox - execute insert: %v", ErrExecQuery, err)
	}
	box.State = domain.BoxOpen
	return box, nil
}

// GetBoxByID получает кассу по ID
func (r *Repository) GetBoxByID(ctx context.Context, id int64) (*domain.RegisterBox, error) {
	return r.getBoxByID(ctx, id, false)
}

// GetBoxByIDForUpdate получает кассу по ID с блокировкой строки.
// Используется в транзакциях добавления проводок и закрытия.
func (r *Repository) GetBoxByIDForUpdate(ctx context.Context, id int64) (*domain.RegisterBox, error) {
	return r.getBoxByID(ctx, id, true)
}

func (r *Repository) getBoxByID(ctx context.Context, id int64, forUpdate bool) (*domain.RegisterBox, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(boxColumns...).
		From("register_boxes").
		Where(squirrel.Eq{"id": id})
	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBoxByID - build select query: %v", ErrBuildQuery, err)
	}

	var box domain.RegisterBox
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&box.ID,
		&box.Name,
		&box.OwnerUserID,
		&box.OpeningAmount,
		&box.State,
		&box.Comment,
		&box.ClosedBy,
		&box.CompanyID,
		&box.OpenedAt,
		&box.ClosedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBoxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBoxByID - scan box: %v", ErrScanRow, err)
	}
	return &box, nil
}

// FindOpenByOwner находит открытую кассу оператора, если она есть
func (r *Repository) FindOpenByOwner(ctx context.Context, ownerUserID int64) (*domain.RegisterBox, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(boxColumns...).
		From("register_boxes").
		Where(squirrel.Eq{"owner_user_id": ownerUserID, "state": domain.BoxOpen})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOpenByOwner - build select query: %v", ErrBuildQuery, err)
	}

	var box domain.RegisterBox
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&box.ID,
		&box.Name,
		&box.OwnerUserID,
		&box.OpeningAmount,
		&box.State,
		&box.Comment,
		&box.ClosedBy,
		&box.CompanyID,
		&box.OpenedAt,
		&box.ClosedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBoxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOpenByOwner - scan box: %v", ErrScanRow, err)
	}
	return &box, nil
}

// CloseBox закрывает кассу. Обновление проходит только из состояния open:
// 0 затронутых строк означает попытку закрыть уже закрытую кассу.
// Переход closed -> open не существует ни в одном пути кода.
func (r *Repository) CloseBox(ctx context.Context, id int64, closedBy int64, comment *string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("register_boxes").
		Set("state", domain.BoxClosed).
		Set("closed_by", closedBy).
		Set("comment", comment).
		Set("closed_at", at).
		Where(squirrel.Eq{"id": id, "state": domain.BoxOpen}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CloseBox - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CloseBox - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CloseBox - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBoxNotOpen
	}
	return nil
}

// ListBoxes получает кассы по фильтру, новые первыми
func (r *Repository) ListBoxes(ctx context.Context, filter BoxFilter) ([]*domain.RegisterBox, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(boxColumns...).
		From("register_boxes").
		Where(squirrel.Eq{"company_id": filter.CompanyID}).
		OrderBy("opened_at DESC")
	if filter.OwnerUserID != nil {
		builder = builder.Where(squirrel.Eq{"owner_user_id": *filter.OwnerUserID})
	}
	if filter.State != nil {
		builder = builder.Where(squirrel.Eq{"state": *filter.State})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBoxes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBoxes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boxes := make([]*domain.RegisterBox, 0)
	for rows.Next() {
		var box domain.RegisterBox
		err := rows.Scan(
			&box.ID,
			&box.Name,
			&box.OwnerUserID,
			&box.OpeningAmount,
			&box.State,
			&box.Comment,
			&box.ClosedBy,
			&box.CompanyID,
			&box.OpenedAt,
			&box.ClosedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBoxes - scan row: %v", ErrScanRow, err)
		}
		boxes = append(boxes, &box)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBoxes - rows error: %v", ErrScanRow, err)
	}
	return boxes, nil
}

// CreateLine добавляет проводку. Проводки неизменяемы после создания;
// проверка "касса открыта" выполняется usecase в той же транзакции,
// что блокирует строку кассы.
func (r *Repository) CreateLine(ctx context.Context, line *domain.RegisterLine) (*domain.RegisterLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("register_lines").
		Columns("box_id", "payment_form_id", "amount", "kind", "booking_id", "reversed_line_id", "comment", "company_id", "created_by").
		Values(line.BoxID, line.PaymentFormID, line.Amount, line.Kind, line.BookingID, line.ReversedLineID, line.Comment, line.CompanyID, line.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLine - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&line.ID, &line.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLine - execute insert: %v", ErrExecQuery, err)
	}
	return line, nil
}

// GetLineByID получает проводку по ID
func (r *Repository) GetLineByID(ctx context.Context, id int64) (*domain.RegisterLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lineColumns...).
		From("register_lines").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLineByID - build select query: %v", ErrBuildQuery, err)
	}

	var line domain.RegisterLine
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&line.ID,
		&line.BoxID,
		&line.PaymentFormID,
		&line.Amount,
		&line.Kind,
		&line.BookingID,
		&line.ReversedLineID,
		&line.Comment,
		&line.CompanyID,
		&line.CreatedBy,
		&line.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLineByID - scan line: %v", ErrScanRow, err)
	}
	return &line, nil
}

// ListLinesByBox получает проводки кассы, новые первыми
func (r *Repository) ListLinesByBox(ctx context.Context, boxID int64) ([]*domain.RegisterLine, error) {
	return r.listLines(ctx, squirrel.Eq{"box_id": boxID})
}

// ListLinesByBooking получает проводки, привязанные к бронированию.
// Используется для вычисления remaining и payment status.
func (r *Repository) ListLinesByBooking(ctx context.Context, bookingID int64) ([]*domain.RegisterLine, error) {
	return r.listLines(ctx, squirrel.Eq{"booking_id": bookingID})
}

func (r *Repository) listLines(ctx context.Context, where squirrel.Eq) ([]*domain.RegisterLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lineColumns...).
		From("register_lines").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]*domain.RegisterLine, 0)
	for rows.Next() {
		var line domain.RegisterLine
		err := rows.Scan(
			&line.ID,
			&line.BoxID,
			&line.PaymentFormID,
			&line.Amount,
			&line.Kind,
			&line.BookingID,
			&line.ReversedLineID,
			&line.Comment,
			&line.CompanyID,
			&line.CreatedBy,
			&line.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: listLines - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listLines - rows error: %v", ErrScanRow, err)
	}
	return lines, nil
}

// HasReversal проверяет, выпускалось ли уже сторно по проводке
func (r *Repository) HasReversal(ctx context.Context, lineID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("register_lines").
		Where(squirrel.Eq{"reversed_line_id": lineID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasReversal - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasReversal - scan count: %v", ErrScanRow, err)
	}
	return count > 0, nil
}
