package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

const bookingColumns = `b.id, b.title, b.booker_id, b.venue_id, b.start_date_time, b.end_date_time,
			  b.status, b.form_response_data, b.created_at, b.updated_at,
			  u.id, u.organization_id, u.name, u.email, u.role, u.created_at, u.updated_at,
			  v.id, v.organization_id, v.name, v.capacity, v.form_field_data, v.created_at, v.updated_at`

const bookingJoins = `FROM bookings b
			  JOIN users u ON u.id = b.booker_id
			  JOIN venues v ON v.id = b.venue_id`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b domain.Booking
		u domain.User
		v domain.Venue
	)

	if err := row.Scan(
		&b.ID, &b.Title, &b.BookerID, &b.VenueID, &b.StartDateTime, &b.EndDateTime,
		&b.Status, &b.FormResponseData, &b.CreatedAt, &b.UpdatedAt,
		&u.ID, &u.OrganizationID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		&v.ID, &v.OrganizationID, &v.Name, &v.Capacity, &v.FormFieldData, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Booker = &u
	b.Venue = &v

	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  ` + bookingJoins + `
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + bookingColumns + `
			  ` + bookingJoins + `
			  WHERE v.organization_id = $1`)
	args := []any{filter.OrganizationID}

	if filter.BookerID != nil {
		args = append(args, *filter.BookerID)
		fmt.Fprintf(&sb, " AND b.booker_id = $%d", len(args))
	}

	if filter.VenueID != nil {
		args = append(args, *filter.VenueID)
		fmt.Fprintf(&sb, " AND b.venue_id = $%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		args = append(args, pq.Array(filter.Statuses))
		fmt.Fprintf(&sb, " AND b.status = ANY($%d)", len(args))
	}

	// Half-open overlap test: a booking matches unless it ends at/before the
	// window start or starts at/after the window end.
	if filter.StartDateTime != nil {
		args = append(args, *filter.StartDateTime)
		fmt.Fprintf(&sb, " AND b.end_date_time > $%d", len(args))
	}

	if filter.EndDateTime != nil {
		args = append(args, *filter.EndDateTime)
		fmt.Fprintf(&sb, " AND b.start_date_time < $%d", len(args))
	}

	if len(filter.IDs) > 0 {
		args = append(args, pq.Array(filter.IDs))
		fmt.Fprintf(&sb, " AND b.id = ANY($%d)", len(args))
	}

	sb.WriteString(" ORDER BY b.created_at DESC")

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, booking)
	}

	return res, rows.Err()
}

// CreateBatch persists the subset of the candidate bookings that survives
// overlap resolution against the venue's approved bookings. All candidates
// must target the same venue. The approved rows inside the requested window
// are locked so a concurrent approval cannot slip in between the overlap
// check and the insert.
func (r *BookingRepository) CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	if len(bookings) == 0 {
		return nil, nil
	}

	venueID := bookings[0].VenueID
	windowStart := bookings[0].StartDateTime
	windowEnd := bookings[0].EndDateTime
	for _, b := range bookings[1:] {
		if b.StartDateTime.Before(windowStart) {
			windowStart = b.StartDateTime
		}
		if b.EndDateTime.After(windowEnd) {
			windowEnd = b.EndDateTime
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT start_date_time, end_date_time
				  FROM bookings
				  WHERE venue_id = $1 AND status = $2
				    AND end_date_time > $3 AND start_date_time < $4
				  FOR UPDATE`
	rows, err := tx.QueryContext(ctx, lockQuery, venueID, domain.BookingStatusApproved, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("lock approved bookings: %w", err)
	}

	intervals := make([]domain.DateTimeInterval, 0, len(bookings))
	for rows.Next() {
		var start, end time.Time
		if err = rows.Scan(&start, &end); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan approved interval: %w", err)
		}
		intervals = append(intervals, domain.DateTimeInterval{Start: start, End: end})
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("read approved intervals: %w", err)
	}
	rows.Close()

	byRange := make(map[[2]int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, domain.DateTimeInterval{
			Start: b.StartDateTime,
			End:   b.EndDateTime,
			IsNew: true,
		})
		byRange[[2]int64{b.StartDateTime.UnixMilli(), b.EndDateTime.UnixMilli()}] = b
	}

	insertQuery := `INSERT INTO bookings (title, booker_id, venue_id, start_date_time, end_date_time, status, form_response_data)
				    VALUES ($1, $2, $3, $4, $5, $6, $7)
				    RETURNING id, created_at, updated_at`

	var created []*domain.Booking
	for _, interval := range domain.ResolveNonOverlapping(intervals) {
		if !interval.IsNew {
			continue
		}

		b := byRange[[2]int64{interval.Start.UnixMilli(), interval.End.UnixMilli()}]
		if b == nil {
			continue
		}

		b.Status = domain.BookingStatusPending
		if err = tx.QueryRowContext(
			ctx, insertQuery,
			b.Title, b.BookerID, b.VenueID, b.StartDateTime, b.EndDateTime,
			b.Status, b.FormResponseData,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23514" {
				return nil, fmt.Errorf("%w: booking start date/time must be before end date/time", domain.ErrValidation)
			}
			return nil, fmt.Errorf("insert booking: %w", err)
		}

		created = append(created, b)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return created, nil
}

// Transition sets one booking to newStatus inside a single transaction. When
// newStatus is APPROVED it first fails on clashing approved bookings and
// then rejects every clashing pending booking for the same venue. Returns
// all touched bookings and their statuses before this call.
func (r *BookingRepository) Transition(ctx context.Context, bookingID int64, newStatus domain.BookingStatus) ([]*domain.Booking, map[int64]domain.BookingStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		currentStatus domain.BookingStatus
		venueID       int64
		start, end    time.Time
	)
	lockQuery := `SELECT status, venue_id, start_date_time, end_date_time
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, bookingID).Scan(&currentStatus, &venueID, &start, &end); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrBookingNotFound
		}
		return nil, nil, fmt.Errorf("lock booking: %w", err)
	}

	// The caller validated against an unlocked read; re-check against the
	// locked status so a concurrent cancel or duplicate action is not
	// silently overwritten.
	if err = domain.RevalidateTransition(currentStatus, newStatus); err != nil {
		return nil, nil, err
	}

	previous := map[int64]domain.BookingStatus{bookingID: currentStatus}

	if newStatus == domain.BookingStatusApproved {
		if err = cascadeApproval(ctx, tx, bookingID, venueID, start, end, previous); err != nil {
			return nil, nil, err
		}
	}

	updateQuery := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, bookingID, newStatus); err != nil {
		return nil, nil, fmt.Errorf("update booking status: %w", err)
	}

	updated, err := listByIDsTx(ctx, tx, statusMapIDs(previous))
	if err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return updated, previous, nil
}

// TransitionBatch applies a set of already-validated status changes as one
// atomic unit: lock all targets, bulk-update per status group, then re-read
// every booking that should have ended up APPROVED and cascade-reject its
// clashing pending siblings. Any failure rolls back the whole batch.
func (r *BookingRepository) TransitionBatch(ctx context.Context, changes []domain.StatusChange) ([]*domain.Booking, map[int64]domain.BookingStatus, error) {
	if len(changes) == 0 {
		return nil, map[int64]domain.BookingStatus{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(changes))
	for _, change := range changes {
		ids = append(ids, change.BookingID)
	}

	// The service computed the transitions from an unlocked read, so re-read
	// every target status under the row lock before applying anything.
	lockQuery := `SELECT id, status FROM bookings WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, lockQuery, pq.Array(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("lock bookings: %w", err)
	}

	currentByID := make(map[int64]domain.BookingStatus, len(changes))
	for rows.Next() {
		var (
			id     int64
			status domain.BookingStatus
		)
		if err = rows.Scan(&id, &status); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scan booking status: %w", err)
		}
		currentByID[id] = status
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, nil, fmt.Errorf("read booking statuses: %w", err)
	}
	rows.Close()

	previous := make(map[int64]domain.BookingStatus, len(changes))
	byStatus := make(map[domain.BookingStatus][]int64)
	for _, change := range changes {
		current, ok := currentByID[change.BookingID]
		if !ok || domain.RevalidateTransition(current, change.NewStatus) != nil {
			// Row vanished or a concurrent writer got there first; the batch
			// path skips silently.
			continue
		}
		previous[change.BookingID] = current
		byStatus[change.NewStatus] = append(byStatus[change.NewStatus], change.BookingID)
	}

	bulkUpdate := `UPDATE bookings SET status = $1, updated_at = now() WHERE id = ANY($2)`
	for status, groupIDs := range byStatus {
		if _, err = tx.ExecContext(ctx, bulkUpdate, status, pq.Array(groupIDs)); err != nil {
			return nil, nil, fmt.Errorf("bulk update statuses: %w", err)
		}
	}

	// Bulk updates report no per-row outcome, so confirm each would-be
	// approved row from storage before cascading rejections off it.
	approvedIDs := append([]int64(nil), byStatus[domain.BookingStatusApproved]...)
	sort.Slice(approvedIDs, func(i, j int) bool { return approvedIDs[i] < approvedIDs[j] })

	checkQuery := `SELECT status, venue_id, start_date_time, end_date_time FROM bookings WHERE id = $1`
	for _, id := range approvedIDs {
		var (
			status     domain.BookingStatus
			venueID    int64
			start, end time.Time
		)
		if err = tx.QueryRowContext(ctx, checkQuery, id).Scan(&status, &venueID, &start, &end); err != nil {
			return nil, nil, fmt.Errorf("confirm approved booking: %w", err)
		}
		if status != domain.BookingStatusApproved {
			continue
		}
		if err = cascadeApproval(ctx, tx, id, venueID, start, end, previous); err != nil {
			return nil, nil, err
		}
	}

	if len(previous) == 0 {
		return nil, previous, tx.Commit()
	}

	updated, err := listByIDsTx(ctx, tx, statusMapIDs(previous))
	if err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return updated, previous, nil
}

// cascadeApproval locks the venue's rows clashing with [start, end), fails
// when another approved booking clashes and rejects the clashing pending
// ones, recording each pre-cascade status not already recorded.
func cascadeApproval(ctx context.Context, tx *sql.Tx, bookingID, venueID int64, start, end time.Time, previous map[int64]domain.BookingStatus) error {
	clashQuery := `SELECT id FROM bookings
				   WHERE venue_id = $1 AND status = $2 AND id <> $3
				     AND end_date_time > $4 AND start_date_time < $5
				   FOR UPDATE`

	approvedIDs, err := collectIDs(tx.QueryContext(ctx, clashQuery, venueID, domain.BookingStatusApproved, bookingID, start, end))
	if err != nil {
		return fmt.Errorf("lock clashing approved bookings: %w", err)
	}
	if len(approvedIDs) > 0 {
		return domain.ErrClashingApprovedBookings
	}

	pendingIDs, err := collectIDs(tx.QueryContext(ctx, clashQuery, venueID, domain.BookingStatusPending, bookingID, start, end))
	if err != nil {
		return fmt.Errorf("lock clashing pending bookings: %w", err)
	}
	if len(pendingIDs) == 0 {
		return nil
	}

	for _, id := range pendingIDs {
		if _, ok := previous[id]; !ok {
			previous[id] = domain.BookingStatusPending
		}
	}

	rejectQuery := `UPDATE bookings SET status = $1, updated_at = now() WHERE id = ANY($2)`
	if _, err = tx.ExecContext(ctx, rejectQuery, domain.BookingStatusRejected, pq.Array(pendingIDs)); err != nil {
		return fmt.Errorf("reject clashing pending bookings: %w", err)
	}

	return nil
}

func (r *BookingRepository) DeleteByIDs(ctx context.Context, organizationID int64, ids []int64) ([]*domain.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `SELECT ` + bookingColumns + `
			  ` + bookingJoins + `
			  WHERE v.organization_id = $1 AND b.id = ANY($2)
			  ORDER BY b.created_at DESC
			  FOR UPDATE OF b`
	rows, err := tx.QueryContext(ctx, selectQuery, organizationID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("select bookings to delete: %w", err)
	}

	var deleted []*domain.Booking
	deletedIDs := make([]int64, 0, len(ids))
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		deleted = append(deleted, booking)
		deletedIDs = append(deletedIDs, booking.ID)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("read bookings to delete: %w", err)
	}
	rows.Close()

	if len(deletedIDs) == 0 {
		return nil, tx.Commit()
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = ANY($1)`, pq.Array(deletedIDs)); err != nil {
		return nil, fmt.Errorf("delete bookings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return deleted, nil
}

func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM bookings`)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var count int64
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return count, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context, organizationID int64, status domain.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings b
			  JOIN venues v ON v.id = b.venue_id
			  WHERE v.organization_id = $1 AND b.status = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, organizationID, status)
	if err != nil {
		return 0, fmt.Errorf("count bookings by status: %w", err)
	}

	var count int64
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return count, nil
}

func listByIDsTx(ctx context.Context, tx *sql.Tx, ids []int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  ` + bookingJoins + `
			  WHERE b.id = ANY($1)
			  ORDER BY b.created_at DESC`
	rows, err := tx.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list updated bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, booking)
	}

	return res, rows.Err()
}

func collectIDs(rows *sql.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func statusMapIDs(statuses map[int64]domain.BookingStatus) []int64 {
	ids := make([]int64, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	return ids
}
