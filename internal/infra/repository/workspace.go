package repository

import (
	"context"

	"workhive/internal/infra"
	"workhive/internal/infra/db"
	"workhive/internal/pkg/pgconv"
	"workhive/internal/usecase/commands"

	"github.com/google/uuid"
)

const workspaceSnapshotQuery = `
SELECT id, name, open_time, close_time
FROM workspaces
WHERE id = $1`

const workspacePricingQuery = `
SELECT category, price
FROM workspace_pricing
WHERE workspace_id = $1`

type WorkspaceRepository struct {
	db db.DBTX
}

func NewWorkspaceRepository(db db.DBTX) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.WorkspaceSnapshot, error) {
	var snap commands.WorkspaceSnapshot

	row := r.db.QueryRow(ctx, workspaceSnapshotQuery, id)
	if err := row.Scan(&snap.ID, &snap.Name, &snap.OpenTime, &snap.CloseTime); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workspace by ID", err)
	}

	rows, err := r.db.Query(ctx, workspacePricingQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load workspace pricing", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry commands.PricingEntry
		if err := rows.Scan(&entry.Category, &entry.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing row", err)
		}
		snap.Pricing = append(snap.Pricing, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rows", err)
	}

	return &snap, nil
}
