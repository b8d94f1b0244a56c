package joinrequest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/psqlbuilder"
	"github.com/aldnch/GolfTeeService/pkg/txmanager"
)

// Колонки заявки вместе с данными слота из владеющего бронирования.
// JOIN нужен всегда: заявка отображается с датой, временем и владельцем слота.
var requestColumns = []string{
	"jr.id",
	"jr.original_booking_id",
	"jr.requester_id",
	"jr.participants",
	"jr.status",
	"jr.notes",
	"b.member_id",
	"b.course_id",
	"b.tee_id",
	"b.slot_date",
	"b.booking_time",
	"b.participants",
	"jr.created_at",
	"jr.updated_at",
}

// Repository репозиторий для работы с заявками на присоединение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectRequests() squirrel.SelectBuilder {
	return psqlbuilder.Select(requestColumns...).
		From("join_requests jr").
		Join("bookings b ON b.id = jr.original_booking_id")
}

// Create создает новую заявку на присоединение
func (r *Repository) Create(ctx context.Context, request *domain.JoinRequest) (*domain.JoinRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("join_requests").
		Columns(
			"original_booking_id",
			"requester_id",
			"participants",
			"status",
			"notes",
		).
		Values(
			request.OriginalBookingID,
			request.RequesterID,
			request.Participants,
			request.Status,
			request.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return request, nil
}

// GetByID получает заявку по ID вместе с данными слота
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.JoinRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := selectRequests().Where(squirrel.Eq{"jr.id": id})

	// В транзакции блокируем заявку на время решения владельца
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF jr")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}
	return request, nil
}

// FindPendingByBookingAndRequester ищет существующую ожидающую заявку
// от участника на конкретное бронирование. Используется для защиты
// от дублирования: на пару (бронирование, участник) допустима одна заявка.
func (r *Repository) FindPendingByBookingAndRequester(ctx context.Context, bookingID, requesterID int64) (*domain.JoinRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectRequests().
		Where(squirrel.Eq{
			"jr.original_booking_id": bookingID,
			"jr.requester_id":        requesterID,
			"jr.status":              domain.RequestPendingApproval,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingByBookingAndRequester - build select query: %v", ErrBuildQuery, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingByBookingAndRequester - scan request: %v", ErrScanRow, err)
	}
	return request, nil
}

// UpdateStatus переводит заявку в терминальный статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.JoinRequestStatus, notes *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("join_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// GetSentByMember получает заявки, отправленные участником, новые первыми
func (r *Repository) GetSentByMember(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectRequests().
		Where(squirrel.Eq{"jr.requester_id": memberID}).
		OrderBy("jr.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSentByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSentByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// GetReceivedByOwner получает заявки на бронирования, которыми владеет участник
func (r *Repository) GetReceivedByOwner(ctx context.Context, ownerID int64) ([]*domain.JoinRequest, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectRequests().
		Where(squirrel.Eq{"b.member_id": ownerID}).
		OrderBy("jr.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReceivedByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReceivedByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// CountSentByMember считает отправленные заявки участника, опционально по статусу
func (r *Repository) CountSentByMember(ctx context.Context, memberID int64, status *domain.JoinRequestStatus) (int, error) {
	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("join_requests").
		Where(squirrel.Eq{"requester_id": memberID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	return r.count(ctx, selectBuilder, "CountSentByMember")
}

// CountReceivedByOwner считает полученные заявки владельца, опционально по статусу
func (r *Repository) CountReceivedByOwner(ctx context.Context, ownerID int64, status *domain.JoinRequestStatus) (int, error) {
	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("join_requests jr").
		Join("bookings b ON b.id = jr.original_booking_id").
		Where(squirrel.Eq{"b.member_id": ownerID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"jr.status": *status})
	}

	return r.count(ctx, selectBuilder, "CountReceivedByOwner")
}

func (r *Repository) count(ctx context.Context, selectBuilder squirrel.SelectBuilder, op string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.JoinRequest, error) {
	var request domain.JoinRequest
	var notes sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&request.ID,
		&request.OriginalBookingID,
		&request.RequesterID,
		&request.Participants,
		&request.Status,
		&notes,
		&request.OriginalBookerID,
		&request.CourseID,
		&request.TeeID,
		&request.SlotDate,
		&request.BookingTime,
		&request.OriginalParticipants,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		request.Notes = &notes.String
	}
	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time
	return &request, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.JoinRequest, error) {
	requests := make([]*domain.JoinRequest, 0)

	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}
	return requests, nil
}
