package repository

import (
	"context"
	"errors"

	"workhive/internal/infra"
	"workhive/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const insertBookingQuery = `
INSERT INTO reservations (workspace_id, user_id, start_date, end_date, category, total, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const insertBookingItemQuery = `
INSERT INTO reservation_items (reservation_id, item_id, name, price, quantity, kind)
VALUES ($1, $2, $3, $4, $5, $6)`

// TxStarter opens transactions; *pgxpool.Pool satisfies it.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type BookingRepository struct {
	db TxStarter
}

func NewBookingRepository(db TxStarter) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking and its line items in one transaction. An
// exclusion or unique violation on the reservation window surfaces as a
// conflict so the caller can report the dates as taken.
func (r *BookingRepository) Create(ctx context.Context, booking commands.NewBooking) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id uuid.UUID
	row := tx.QueryRow(ctx, insertBookingQuery,
		booking.WorkspaceID,
		booking.UserID,
		booking.StartDate,
		booking.EndDate,
		booking.Category,
		booking.Total,
		string(booking.Status),
	)
	if err := row.Scan(&id); err != nil {
		if isOverlapViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation window already taken", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	for _, item := range booking.Items {
		if _, err := tx.Exec(ctx, insertBookingItemQuery,
			id, item.ID, item.Name, item.Price, item.Quantity, string(item.Kind),
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert reservation item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit transaction", err)
	}

	return id, nil
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" || pgErr.Code == "23P01"
}
