package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/psqlbuilder"
	"github.com/aldnch/GolfTeeService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"member_id",
	"course_id",
	"tee_id",
	"slot_date",
	"booking_time",
	"participants",
	"status",
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

// Create создает новое бронирование.
// Если в контексте есть активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"member_id",
			"course_id",
			"tee_id",
			"slot_date",
			"booking_time",
			"participants",
			"status",
		).
		Values(
			booking.MemberID,
			booking.CourseID,
			booking.TeeID,
			booking.SlotDate,
			booking.BookingTime,
			booking.Participants,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку: по ней решается вопрос вместимости слота
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return booking, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией.
// Используется и для сетки занятости (course+tee+date), и для проверки
// конкретного слота (плюс booking_time), и для списка участника (member).
//
// В сериализуемой транзакции выборка по конкретному слоту блокируется
// через FOR UPDATE, чтобы параллельные бронирования не превысили вместимость.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"course_id": filter.CourseID})

	if filter.TeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tee_id": *filter.TeeID})
	}
	if filter.SlotDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_date": *filter.SlotDate})
	}
	if filter.BookingTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_time": *filter.BookingTime})
	}
	if filter.MemberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"member_id": *filter.MemberID})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	// Владеющее бронирование - первое созданное в слоте
	selectBuilder = selectBuilder.OrderBy("created_at ASC")

	if txmanager.IsInTransaction(ctx) && filter.SlotDate != nil && filter.BookingTime != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByMember получает все бронирования участника, новые первыми
func (r *Repository) GetByMember(ctx context.Context, memberID int64) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"member_id": memberID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// AddParticipants увеличивает число участников бронирования.
// Условие participants + extra <= capacity продублировано в SQL:
// даже вне транзакции обновление не может превысить вместимость слота.
func (r *Repository) AddParticipants(ctx context.Context, bookingID int64, extra, capacity int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("participants", squirrel.Expr("participants + ?", extra)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bookingID, "status": domain.StatusConfirmed}).
		Where(squirrel.Expr("participants + ? <= ?", extra, capacity)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddParticipants - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddParticipants - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddParticipants - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		// Либо бронирования нет, либо не прошла проверка вместимости
		if _, err := r.GetByID(ctx, bookingID); err != nil {
			return ErrBookingNotFound
		}
		return ErrCapacityExceeded
	}
	return nil
}

// CountByMember считает бронирования участника, опционально по статусу
func (r *Repository) CountByMember(ctx context.Context, memberID int64, status *domain.BookingStatus) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"member_id": memberID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByMember - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByMember - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.MemberID,
		&booking.CourseID,
		&booking.TeeID,
		&booking.SlotDate,
		&booking.BookingTime,
		&booking.Participants,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
