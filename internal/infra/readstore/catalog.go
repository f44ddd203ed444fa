package readstore

import (
	"context"

	"workhive/internal/infra"
	"workhive/internal/infra/db"
	"workhive/internal/pkg/pgconv"
	"workhive/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const catalogByKindQuery = `
SELECT id, name, img_url, price, kind, description
FROM catalog_items
WHERE kind = $1
ORDER BY name`

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListByKind(ctx context.Context, kind string) ([]*queries.CatalogItemView, error) {
	rows, err := r.db.Query(ctx, catalogByKindQuery, kind)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog items", err)
	}
	defer rows.Close()

	var items []*queries.CatalogItemView
	for rows.Next() {
		var (
			item        queries.CatalogItemView
			description pgtype.Text
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.ImgURL, &item.Price, &item.Kind, &description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog row", err)
		}
		item.Description = pgconv.StringPtrFromPgtype(description)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog rows", err)
	}

	return items, nil
}
