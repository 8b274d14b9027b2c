// Package attachment репозиторий бинарных вложений (снимки камер)
package attachment

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
	// ErrAttachmentNotFound возвращается, когда вложение не найдено
	ErrAttachmentNotFound = errors.New("attachment.repository: attachment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("attachment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("attachment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("attachment.repository: failed to scan row")
)

// Repository репозиторий вложений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вложений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет вложение
func (r *Repository) Create(ctx context.Context, a *domain.Attachment) (*domain.Attachment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("attachments").
		Columns("key", "name", "mime_type", "content", "booking_id").
		Values(a.Key, a.Name, a.MimeType, a.Content, a.BookingID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return a, nil
}

// GetByID получает вложение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Attachment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "key", "name", "mime_type", "content", "booking_id", "created_at").
		From("attachments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Attachment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Key,
		&a.Name,
		&a.MimeType,
		&a.Content,
		&a.BookingID,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan attachment: %v", ErrScanRow, err)
	}
	return &a, nil
}
