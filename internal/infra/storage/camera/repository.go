// Package camera репозиторий реестра камер двора
package camera

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
	// ErrCameraNotFound возвращается, когда камера не найдена
	ErrCameraNotFound = errors.New("camera.repository: camera not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("camera.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("camera.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("camera.repository: failed to scan row")
)

var cameraColumns = []string{
	"id",
	"name",
	"model",
	"ip_address",
	"port",
	"username",
	"password",
	"location",
	"role",
	"company_id",
	"active",
	"last_attachment_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий камер
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория камер
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует камеру. Ограничение "не более двух камер на двор,
// по одной на роль" проверяется usecase в сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, c *domain.Camera) (*domain.Camera, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cameras").
		Columns("name", "model", "ip_address", "port", "username", "password", "location", "role", "company_id", "active").
		Values(c.Name, c.Model, c.IPAddress, c.Port, c.Username, c.Password, c.Location, c.Role, c.CompanyID, true).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	c.Active = true
	return c, nil
}

// GetByID получает камеру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Camera, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cameraColumns...).
		From("cameras").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanCamera(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCameraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan camera: %v", ErrScanRow, err)
	}
	return c, nil
}

// FindByRole находит активную камеру двора для указанной операции
func (r *Repository) FindByRole(ctx context.Context, companyID int64, role domain.CameraRole) (*domain.Camera, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cameraColumns...).
		From("cameras").
		Where(squirrel.Eq{"company_id": companyID, "role": role, "active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRole - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanCamera(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCameraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRole - scan camera: %v", ErrScanRow, err)
	}
	return c, nil
}

// ListByCompany получает активные камеры двора.
// В транзакции блокирует строки для проверки лимита камер.
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.Camera, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(cameraColumns...).
		From("cameras").
		Where(squirrel.Eq{"company_id": companyID, "active": true}).
		OrderBy("id ASC")
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cameras := make([]*domain.Camera, 0)
	for rows.Next() {
		c, err := scanCamera(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %v", ErrScanRow, err)
		}
		cameras = append(cameras, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %v", ErrScanRow, err)
	}
	return cameras, nil
}

// SetLastAttachment сохраняет ссылку на последний тестовый снимок
func (r *Repository) SetLastAttachment(ctx context.Context, cameraID, attachmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cameras").
		Set("last_attachment_id", attachmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cameraID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetLastAttachment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetLastAttachment - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetLastAttachment - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCameraNotFound
	}
	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCamera(row rowScanner) (*domain.Camera, error) {
	var c domain.Camera
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Model,
		&c.IPAddress,
		&c.Port,
		&c.Username,
		&c.Password,
		&c.Location,
		&c.Role,
		&c.CompanyID,
		&c.Active,
		&c.LastAttachmentID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
