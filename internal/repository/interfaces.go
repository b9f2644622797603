package repository

import (
	"context"

	"qrlinx/internal/model"
)

// LinkStoreInterface defines the query surface of the links table
type LinkStoreInterface interface {
	ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	GetByHash(ctx context.Context, ownerID, shortHash string) (*model.Link, error)
	Delete(ctx context.Context, ownerID string, id int64) error
	Close() error
}

// SessionStoreInterface defines where the auth session is persisted
type SessionStoreInterface interface {
	Save(ctx context.Context, session *model.Session) error
	Load(ctx context.Context) (*model.Session, error)
	Delete(ctx context.Context) error
	Close() error
}
