package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"qrlinx/internal/backend"
	"qrlinx/internal/metrics"
	"qrlinx/internal/model"
	"qrlinx/pkg/util"

	"github.com/rs/zerolog/log"
)

const (
	StageShorten = "shorten"
	StageQR      = "qr"

	unavailableDetail = "service unavailable, please try again"
)

var (
	// ErrEmptyURL is returned before any network call when the URL is blank
	ErrEmptyURL = errors.New("url is required")
	// ErrNoResult is returned when retrying QR without a created link
	ErrNoResult = errors.New("no creation result")
)

// CreationError reports which step of the creation workflow failed.
// Detail is safe to show to the user.
type CreationError struct {
	Stage  string
	Detail string
	Err    error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Stage, e.Detail)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// IsPartial reports whether the link was committed before the failure
func (e *CreationError) IsPartial() bool {
	return e.Stage == StageQR
}

// Creator runs the shorten then QR workflow
type Creator struct {
	client    ShortenerClient
	publisher EventPublisher
	origin    string
	now       func() time.Time
}

// NewCreator creates a new Creator. publisher may be nil; origin tags
// published events and defaults to a fresh UUID.
func NewCreator(client ShortenerClient, publisher EventPublisher, origin string) *Creator {
	if origin == "" {
		origin = util.GenerateUUID()
	}
	return &Creator{
		client:    client,
		publisher: publisher,
		origin:    origin,
		now:       time.Now,
	}
}

// Create shortens originalURL for ownerID and renders its QR image.
// When only the QR step fails the returned result is non-nil with
// QRStatus unavailable, together with a *CreationError of stage "qr".
func (c *Creator) Create(ctx context.Context, ownerID, originalURL string) (*model.CreationResult, error) {
	originalURL = strings.TrimSpace(originalURL)
	if originalURL == "" {
		return nil, ErrEmptyURL
	}

	shortened, err := c.client.Shorten(ctx, originalURL, ownerID)
	if err != nil {
		metrics.RecordCreation("failed")
		log.Warn().Err(err).Str("url", originalURL).Msg("Failed to shorten link")
		return nil, newCreationError(StageShorten, err)
	}

	result := &model.CreationResult{
		Link: model.Link{
			OwnerID:     ownerID,
			OriginalURL: shortened.OriginalURL,
			ShortHash:   shortened.ShortHash,
			CreatedAt:   c.now(),
		},
		ShortURL: shortened.ShortURL,
	}
	c.publish(ctx, result.Link)

	if err := c.renderQR(ctx, result); err != nil {
		metrics.RecordCreation("partial")
		return result, err
	}

	metrics.RecordCreation("ok")
	log.Info().Str("short_hash", result.Link.ShortHash).Msg("Link created")
	return result, nil
}

// RetryQR re-runs only the QR step for an already committed link.
// The returned result is a copy and is never nil for a non-nil input.
func (c *Creator) RetryQR(ctx context.Context, result *model.CreationResult) (*model.CreationResult, error) {
	if result == nil || result.ShortURL == "" {
		return nil, ErrNoResult
	}

	updated := *result
	if updated.HasQR() {
		return &updated, nil
	}
	if err := c.renderQR(ctx, &updated); err != nil {
		return &updated, err
	}
	return &updated, nil
}

func (c *Creator) renderQR(ctx context.Context, result *model.CreationResult) error {
	qr, err := c.client.CreateQRCode(ctx, result.ShortURL)
	if err != nil {
		cerr := newCreationError(StageQR, err)
		result.QRCodeBase64 = ""
		result.QRStatus = model.QRUnavailable
		result.QRDetail = cerr.Detail
		log.Warn().Err(err).Str("short_hash", result.Link.ShortHash).Msg("QR generation failed, link kept")
		return cerr
	}

	result.QRCodeBase64 = qr.QRCodeBase64
	result.QRStatus = model.QRReady
	result.QRDetail = ""
	return nil
}

func (c *Creator) publish(ctx context.Context, link model.Link) {
	if c.publisher == nil {
		return
	}
	event := &model.LinkEvent{
		ID:         util.GenerateUUID(),
		Type:       model.LinkCreated,
		OwnerID:    link.OwnerID,
		ShortHash:  link.ShortHash,
		Origin:     c.origin,
		OccurredAt: c.now(),
	}
	if err := c.publisher.PublishLinkEvent(ctx, event); err != nil {
		log.Warn().Err(err).Str("short_hash", link.ShortHash).Msg("Failed to publish link event")
	}
}

// newCreationError keeps backend rejections verbatim and hides transport errors
func newCreationError(stage string, err error) *CreationError {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return &CreationError{Stage: stage, Detail: apiErr.Detail, Err: err}
	}
	return &CreationError{Stage: stage, Detail: unavailableDetail, Err: err}
}
