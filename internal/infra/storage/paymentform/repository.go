// Package paymentform репозиторий форм оплаты
package paymentform

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

var (
	// ErrPaymentFormNotFound возвращается, когда форма оплаты не найдена
	ErrPaymentFormNotFound = errors.New("paymentform.repository: payment form not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("paymentform.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("paymentform.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("paymentform.repository: failed to scan row")
)

// Repository репозиторий форм оплаты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория форм оплаты
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает форму оплаты
func (r *Repository) Create(ctx context.Context, form *domain.PaymentForm) (*domain.PaymentForm, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_forms").
		Columns("name", "company_id", "active").
		Values(form.Name, form.CompanyID, true).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&form.ID, &form.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	form.Active = true
	return form, nil
}

// GetByID получает форму оплаты по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PaymentForm, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "company_id", "active", "created_at").
		From("payment_forms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var form domain.PaymentForm
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&form.ID,
		&form.Name,
		&form.CompanyID,
		&form.Active,
		&form.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentFormNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment form: %v", ErrScanRow, err)
	}
	return &form, nil
}

// ListByCompany получает активные формы оплаты двора
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.PaymentForm, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "company_id", "active", "created_at").
		From("payment_forms").
		Where(squirrel.Eq{"company_id": companyID, "active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	forms := make([]*domain.PaymentForm, 0)
	for rows.Next() {
		var form domain.PaymentForm
		if err := rows.Scan(&form.ID, &form.Name, &form.CompanyID, &form.Active, &form.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %v", ErrScanRow, err)
		}
		forms = append(forms, &form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %v", ErrScanRow, err)
	}
	return forms, nil
}

// NamesByIDs возвращает имена форм оплаты по набору ID.
// Используется при построении display name проводок.
func (r *Repository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("payment_forms").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: NamesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: NamesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	names := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: NamesByIDs - scan row: %v", ErrScanRow, err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: NamesByIDs - rows error: %v", ErrScanRow, err)
	}
	return names, nil
}
