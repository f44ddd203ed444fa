package readstore

import (
	"context"

	"workhive/internal/infra"
	"workhive/internal/infra/db"
	"workhive/internal/pkg/pgconv"
	"workhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const workspaceByIDQuery = `
SELECT id, name, address, open_time, close_time, created_at
FROM workspaces
WHERE id = $1`

const workspacePricingQuery = `
SELECT category, price
FROM workspace_pricing
WHERE workspace_id = $1
ORDER BY category`

type WorkspaceReadStore struct {
	db db.DBTX
}

func NewWorkspaceReadStore(db db.DBTX) *WorkspaceReadStore {
	return &WorkspaceReadStore{db: db}
}

func (r *WorkspaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WorkspaceView, error) {
	var (
		view      queries.WorkspaceView
		address   pgtype.Text
		createdAt pgtype.Timestamptz
	)

	row := r.db.QueryRow(ctx, workspaceByIDQuery, id)
	if err := row.Scan(&view.ID, &view.Name, &address, &view.OpenTime, &view.CloseTime, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workspace by ID", err)
	}
	view.Address = pgconv.StringFromPgtype(address)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	pricing, err := r.pricingFor(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Pricing = pricing

	return &view, nil
}

func (r *WorkspaceReadStore) pricingFor(ctx context.Context, id uuid.UUID) ([]queries.PricingView, error) {
	rows, err := r.db.Query(ctx, workspacePricingQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load workspace pricing", err)
	}
	defer rows.Close()

	var pricing []queries.PricingView
	for rows.Next() {
		var p queries.PricingView
		if err := rows.Scan(&p.Category, &p.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing row", err)
		}
		pricing = append(pricing, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rows", err)
	}

	return pricing, nil
}
