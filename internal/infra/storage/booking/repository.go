package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"name",
	"tractor_plate",
	"trailer_plate_1",
	"trailer_plate_2",
	"trailer_plate_3",
	"client_id",
	"queue_id",
	"slot_id",
	"company_id",
	"start_date",
	"end_date",
	"checkin_at",
	"checkout_at",
	"checkin_user_id",
	"checkout_user_id",
	"state",
	"active",
	"contract_id",
	"contract_external_id",
	"operation",
	"product",
	"cargo_packaging",
	"booking_cargo_weight",
	"plant_code",
	"parking_lot_code",
	"cargo_client_name",
	"cargo_client_cnpj",
	"carrier_name",
	"carrier_cnpj",
	"driver_name",
	"driver_cpf",
	"driver_mobile",
	"observation",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"name",
			"tractor_plate",
			"trailer_plate_1",
			"trailer_plate_2",
			"trailer_plate_3",
			"client_id",
			"queue_id",
			"slot_id",
			"company_id",
			"start_date",
			"end_date",
			"state",
			"active",
			"contract_id",
			"contract_external_id",
			"operation",
			"product",
			"cargo_packaging",
			"booking_cargo_weight",
			"plant_code",
			"parking_lot_code",
			"cargo_client_name",
			"cargo_client_cnpj",
			"carrier_name",
			"carrier_cnpj",
			"driver_name",
			"driver_cpf",
			"driver_mobile",
			"observation",
		).
		Values(
			b.Name,
			b.TractorPlate,
			b.TrailerPlate1,
			b.TrailerPlate2,
			b.TrailerPlate3,
			b.ClientID,
			b.QueueID,
			b.SlotID,
			b.CompanyID,
			b.StartDate,
			b.EndDate,
			b.State,
			true,
			b.ContractID,
			b.ContractExternalID,
			b.Operation,
			b.Product,
			b.CargoPackaging,
			b.BookingCargoWeight,
			b.PlantCode,
			b.ParkingLotCode,
			b.CargoClientName,
			b.CargoClientCNPJ,
			b.CarrierName,
			b.CarrierCNPJ,
			b.DriverName,
			b.DriverCPF,
			b.DriverMobile,
			b.Observation,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	b.Active = true
	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронирование по ID с блокировкой строки
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})
	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// Update обновляет изменяемые поля бронирования.
// Guard-проверки жизненного цикла выполняются сервисным слоем до вызова.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("name", b.Name).
		Set("tractor_plate", b.TractorPlate).
		Set("trailer_plate_1", b.TrailerPlate1).
		Set("trailer_plate_2", b.TrailerPlate2).
		Set("trailer_plate_3", b.TrailerPlate3).
		Set("queue_id", b.QueueID).
		Set("slot_id", b.SlotID).
		Set("start_date", b.StartDate).
		Set("end_date", b.EndDate).
		Set("state", b.State).
		Set("active", b.Active).
		Set("contract_id", b.ContractID).
		Set("contract_external_id", b.ContractExternalID).
		Set("operation", b.Operation).
		Set("product", b.Product).
		Set("cargo_packaging", b.CargoPackaging).
		Set("booking_cargo_weight", b.BookingCargoWeight).
		Set("plant_code", b.PlantCode).
		Set("parking_lot_code", b.ParkingLotCode).
		Set("cargo_client_name", b.CargoClientName).
		Set("cargo_client_cnpj", b.CargoClientCNPJ).
		Set("carrier_name", b.CarrierName).
		Set("carrier_cnpj", b.CarrierCNPJ).
		Set("driver_name", b.DriverName).
		Set("driver_cpf", b.DriverCPF).
		Set("driver_mobile", b.DriverMobile).
		Set("observation", b.Observation).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetCheckedIn фиксирует заезд: состояние, место, очередь, двор,
// отметку времени и ответственного пользователя.
func (r *Repository) SetCheckedIn(ctx context.Context, id int64, slotID int64, queueID *int64, companyID int64, userID int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("state", domain.StateCheckin).
		Set("slot_id", slotID).
		Set("queue_id", queueID).
		Set("company_id", companyID).
		Set("checkin_at", at).
		Set("checkin_user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCheckedIn - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetCheckedOut фиксирует выезд
func (r *Repository) SetCheckedOut(ctx context.Context, id int64, userID int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("state", domain.StateCheckout).
		Set("checkout_at", at).
		Set("checkout_user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCheckedOut - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCheckedOut - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCheckedOut - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetState обновляет состояние бронирования (scheduled, cancelled)
func (r *Repository) SetState(ctx context.Context, id int64, state domain.BookingState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetState - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetState - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete удаляет бронирование (физическое удаление).
// Guard "нельзя удалить в состоянии checkin" проверяется сервисным слоем.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListByClient получает бронирования клиента, новые первыми
func (r *Repository) ListByClient(ctx context.Context, clientID int64, includeInactive bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC")
	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByClient - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClient - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// AddNote добавляет запись в ленту активности бронирования
func (r *Repository) AddNote(ctx context.Context, note *domain.BookingNote) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_notes").
		Columns("booking_id", "body", "created_by").
		Values(note.BookingID, note.Body, note.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddNote - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: AddNote - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListNotes получает ленту активности бронирования, новые первыми
func (r *Repository) ListNotes(ctx context.Context, bookingID int64) ([]*domain.BookingNote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "body", "created_by", "created_at").
		From("booking_notes").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notes := make([]*domain.BookingNote, 0)
	for rows.Next() {
		var n domain.BookingNote
		if err := rows.Scan(&n.ID, &n.BookingID, &n.Body, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListNotes - scan row: %v", ErrScanRow, err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNotes - rows error: %v", ErrScanRow, err)
	}
	return notes, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.TractorPlate,
		&b.TrailerPlate1,
		&b.TrailerPlate2,
		&b.TrailerPlate3,
		&b.ClientID,
		&b.QueueID,
		&b.SlotID,
		&b.CompanyID,
		&b.StartDate,
		&b.EndDate,
		&b.CheckinAt,
		&b.CheckoutAt,
		&b.CheckinUserID,
		&b.CheckoutUserID,
		&b.State,
		&b.Active,
		&b.ContractID,
		&b.ContractExternalID,
		&b.Operation,
		&b.Product,
		&b.CargoPackaging,
		&b.BookingCargoWeight,
		&b.PlantCode,
		&b.ParkingLotCode,
		&b.CargoClientName,
		&b.CargoClientCNPJ,
		&b.CarrierName,
		&b.CarrierCNPJ,
		&b.DriverName,
		&b.DriverCPF,
		&b.DriverMobile,
		&b.Observation,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
