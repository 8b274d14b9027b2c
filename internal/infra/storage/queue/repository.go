package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var queueColumns = []string{
	"id",
	"name",
	"description",
	"client_id",
	"contract_capacity",
	"initial_slot",
	"company_id",
	"state",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с очередями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория очередей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую очередь в состоянии provisional
func (r *Repository) Create(ctx context.Context, q *domain.Queue) (*domain.Queue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("queues").
		Columns("name", "description", "client_id", "contract_capacity", "initial_slot", "company_id", "state", "active").
		Values(q.Name, q.Description, q.ClientID, q.ContractCapacity, q.InitialSlot, q.CompanyID, domain.QueueProvisional, true).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	q.State = domain.QueueProvisional
	q.Active = true
	return q, nil
}

// GetByID получает очередь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Queue, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает очередь по ID с блокировкой строки.
// Используется в транзакции активации, чтобы конкурентный повторный
// вызов увидел уже активную очередь.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Queue, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Queue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(queueColumns...).
		From("queues").
		Where(squirrel.Eq{"id": id})
	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var q domain.Queue
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&q.ID,
		&q.Name,
		&q.Description,
		&q.ClientID,
		&q.ContractCapacity,
		&q.InitialSlot,
		&q.CompanyID,
		&q.State,
		&q.Active,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQueueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan queue: %v", ErrScanRow, err)
	}
	return &q, nil
}

// Activate переводит очередь в состояние active.
// Обновление проходит только из состояния provisional.
func (r *Repository) Activate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("queues").
		Set("state", domain.QueueActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "state": domain.QueueProvisional}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Activate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Activate - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Activate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrQueueNotFound
	}
	return nil
}

// ListByCompany получает очереди двора
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.Queue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(queueColumns...).
		From("queues").
		Where(squirrel.Eq{"company_id": companyID, "active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	queues := make([]*domain.Queue, 0)
	for rows.Next() {
		var q domain.Queue
		err := rows.Scan(
			&q.ID,
			&q.Name,
			&q.Description,
			&q.ClientID,
			&q.ContractCapacity,
			&q.InitialSlot,
			&q.CompanyID,
			&q.State,
			&q.Active,
			&q.CreatedAt,
			&q.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %v", ErrScanRow, err)
		}
		queues = append(queues, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %v", ErrScanRow, err)
	}
	return queues, nil
}
