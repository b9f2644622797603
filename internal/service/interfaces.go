package service

import (
	"context"

	"qrlinx/internal/model"
)

// ShortenerClient defines the backend calls of the creation workflow
type ShortenerClient interface {
	Shorten(ctx context.Context, originalURL, ownerID string) (*model.ShortenResponse, error)
	CreateQRCode(ctx context.Context, link string) (*model.QRCodeResponse, error)
}

// AnalyticsClient defines the backend analytics query
type AnalyticsClient interface {
	Analytics(ctx context.Context, shortHash string) (*model.AnalyticsPayload, error)
}

// LinkStoreInterface defines the link store operations the dashboard uses
type LinkStoreInterface interface {
	ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	GetByHash(ctx context.Context, ownerID, shortHash string) (*model.Link, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}

// EventPublisher broadcasts link list changes
type EventPublisher interface {
	PublishLinkEvent(ctx context.Context, event *model.LinkEvent) error
}

// CreatorInterface defines the link creation workflow
type CreatorInterface interface {
	Create(ctx context.Context, ownerID, originalURL string) (*model.CreationResult, error)
	RetryQR(ctx context.Context, result *model.CreationResult) (*model.CreationResult, error)
}

// AnalyticsServiceInterface defines analytics loading for one link
type AnalyticsServiceInterface interface {
	Load(ctx context.Context, link model.Link) (*model.AnalyticsView, error)
}

// DashboardInterface defines the application state operations
type DashboardInterface interface {
	Start(ctx context.Context, ownerID string) error
	Reset()
	OwnerID() string
	RefreshLinks(ctx context.Context) error
	Links(query string) []model.Link
	Select(ctx context.Context, linkID int64) (*model.AnalyticsView, error)
	Current() model.DashboardState
	Create(ctx context.Context, originalURL string) (*model.CreationResult, error)
	RetryQR(ctx context.Context) (*model.CreationResult, error)
	DismissResult()
	Delete(ctx context.Context, linkID int64, confirmed bool) error
	HandleLinkEvent(ctx context.Context, event *model.LinkEvent) error
}
