// Package costrule репозиторий правил почасовой тарификации
package costrule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("costrule.repository: cost rule not found")

	// ErrActiveRuleExists возвращается при попытке создать вторую активную
	// ставку для двора; схема закрепляет инвариант частичным уникальным индексом
	ErrActiveRuleExists = errors.New("costrule.repository: active cost rule already exists for this yard")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("costrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("costrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("costrule.repository: failed to scan row")
)

var ruleColumns = []string{
	"id",
	"name",
	"company_id",
	"hourly_rate",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил тарификации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает правило. Вызывается из сериализуемой транзакции,
// предварительно проверившей отсутствие активного правила.
func (r *Repository) Create(ctx context.Context, rule *domain.CostRule) (*domain.CostRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cost_rules").
		Columns("name", "company_id", "hourly_rate", "active").
		Values(rule.Name, rule.CompanyID, rule.HourlyRate, rule.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrActiveRuleExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return rule, nil
}

// GetActiveByCompany получает единственное активное правило двора
func (r *Repository) GetActiveByCompany(ctx context.Context, companyID int64) (*domain.CostRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("cost_rules").
		Where(squirrel.Eq{"company_id": companyID, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.CostRule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&rule.Name,
		&rule.CompanyID,
		&rule.HourlyRate,
		&rule.Active,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCompany - scan rule: %v", ErrScanRow, err)
	}
	return &rule, nil
}

// Deactivate отключает правило
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cost_rules").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// ListByCompany получает все правила двора, активные первыми
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.CostRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("cost_rules").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("active DESC, created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.CostRule, 0)
	for rows.Next() {
		var rule domain.CostRule
		err := rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.CompanyID,
			&rule.HourlyRate,
			&rule.Active,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %v", ErrScanRow, err)
	}
	return rules, nil
}
