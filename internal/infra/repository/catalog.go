package repository

import (
	"context"

	"workhive/internal/infra"
	"workhive/internal/infra/db"
	"workhive/internal/pkg/pgconv"
	"workhive/internal/usecase/commands"

	"github.com/google/uuid"
)

const catalogItemQuery = `
SELECT id, name, img_url, price, kind
FROM catalog_items
WHERE id = $1`

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(db db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CatalogItemSnapshot, error) {
	var snap commands.CatalogItemSnapshot

	row := r.db.QueryRow(ctx, catalogItemQuery, id)
	if err := row.Scan(&snap.ID, &snap.Name, &snap.ImgURL, &snap.Price, &snap.Kind); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog item by ID", err)
	}

	return &snap, nil
}
