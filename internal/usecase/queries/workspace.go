package queries

import (
	"context"

	"github.com/google/uuid"
)

type WorkspaceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WorkspaceView, error)
	ListCatalog(ctx context.Context, kind string) ([]*CatalogItemView, error)
}

type WorkspaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WorkspaceView, error)
}

type CatalogReadStore interface {
	ListByKind(ctx context.Context, kind string) ([]*CatalogItemView, error)
}

type workspaceQueriesImpl struct {
	workspaces WorkspaceReadStore
	catalog    CatalogReadStore
}

func NewWorkspaceQueries(workspaces WorkspaceReadStore, catalog CatalogReadStore) WorkspaceQueries {
	return &workspaceQueriesImpl{workspaces: workspaces, catalog: catalog}
}

func (q *workspaceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WorkspaceView, error) {
	return q.workspaces.FindByID(ctx, id)
}

func (q *workspaceQueriesImpl) ListCatalog(ctx context.Context, kind string) ([]*CatalogItemView, error) {
	return q.catalog.ListByKind(ctx, kind)
}
