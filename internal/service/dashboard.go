package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"qrlinx/internal/auth"
	"qrlinx/internal/metrics"
	"qrlinx/internal/model"
	"qrlinx/pkg/util"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotStarted is returned when no owner is signed in
	ErrNotStarted = errors.New("dashboard not started")
	// ErrBusy is returned while the same operation is still in flight
	ErrBusy = errors.New("operation already in progress")
	// ErrStaleSelection is returned for analytics superseded by a newer selection
	ErrStaleSelection = errors.New("selection superseded")
	// ErrConfirmationRequired is returned for an unconfirmed delete
	ErrConfirmationRequired = errors.New("delete requires confirmation")
	// ErrLinkNotFound is returned for a link id missing from the owner's list
	ErrLinkNotFound = errors.New("link not found")
)

const sessionStartTimeout = 15 * time.Second

// Dashboard holds the per-owner application state: the link list, the
// selected link with its analytics and the last creation result
type Dashboard struct {
	links     LinkStoreInterface
	analytics AnalyticsServiceInterface
	creator   CreatorInterface
	publisher EventPublisher
	origin    string

	mu        sync.Mutex
	ownerID   string
	all       []model.Link
	selected  *model.Link
	selection uint64
	status    model.AnalyticsStatus
	view      *model.AnalyticsView
	lastErr   string
	result    *model.CreationResult
	creating  bool
	deleting  map[int64]bool
}

// NewDashboard creates a new Dashboard. publisher may be nil.
func NewDashboard(
	links LinkStoreInterface,
	analytics AnalyticsServiceInterface,
	creator CreatorInterface,
	publisher EventPublisher,
	origin string,
) *Dashboard {
	if origin == "" {
		origin = util.GenerateUUID()
	}
	return &Dashboard{
		links:     links,
		analytics: analytics,
		creator:   creator,
		publisher: publisher,
		origin:    origin,
		status:    model.AnalyticsIdle,
		deleting:  make(map[int64]bool),
	}
}

// Start binds the dashboard to ownerID and loads its links.
// Starting again for the same owner only refreshes.
func (d *Dashboard) Start(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return ErrNotStarted
	}

	d.mu.Lock()
	if d.ownerID != ownerID {
		d.resetLocked()
		d.ownerID = ownerID
	}
	d.mu.Unlock()

	return d.RefreshLinks(ctx)
}

// Reset drops all owner state. In-flight loads are discarded.
func (d *Dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
}

func (d *Dashboard) resetLocked() {
	d.ownerID = ""
	d.all = nil
	d.selected = nil
	d.selection++
	d.status = model.AnalyticsIdle
	d.view = nil
	d.lastErr = ""
	d.result = nil
	d.creating = false
	d.deleting = make(map[int64]bool)
}

// OwnerID returns the signed-in owner, or "" when not started
func (d *Dashboard) OwnerID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ownerID
}

// RefreshLinks reloads the owner's links from the store
func (d *Dashboard) RefreshLinks(ctx context.Context) error {
	owner := d.OwnerID()
	if owner == "" {
		return ErrNotStarted
	}

	links, err := d.links.ListByOwner(ctx, owner)
	if err != nil {
		log.Error().Err(err).Str("owner_id", owner).Msg("Failed to list links")
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ownerID != owner {
		return nil
	}
	d.all = links
	if d.selected != nil {
		if _, ok := findLink(links, d.selected.ID); !ok {
			d.clearSelectionLocked()
		}
	}
	if d.view != nil {
		if _, ok := findLink(links, d.view.LinkID); !ok {
			d.view = nil
		}
	}
	return nil
}

// Links returns the filtered, sorted link list
func (d *Dashboard) Links(query string) []model.Link {
	d.mu.Lock()
	all := d.all
	d.mu.Unlock()

	return VisibleLinks(all, query)
}

// Select makes linkID the selected link and loads its analytics.
// Only the latest selection may install a view; earlier ones return
// ErrStaleSelection. A failed load keeps the previous view.
func (d *Dashboard) Select(ctx context.Context, linkID int64) (*model.AnalyticsView, error) {
	d.mu.Lock()
	if d.ownerID == "" {
		d.mu.Unlock()
		return nil, ErrNotStarted
	}
	link, ok := findLink(d.all, linkID)
	if !ok {
		d.mu.Unlock()
		return nil, ErrLinkNotFound
	}
	d.selection++
	token := d.selection
	owner := d.ownerID
	d.selected = &link
	d.status = model.AnalyticsLoading
	d.lastErr = ""
	d.mu.Unlock()

	view, err := d.analytics.Load(ctx, link)

	d.mu.Lock()
	defer d.mu.Unlock()

	if token != d.selection || owner != d.ownerID {
		metrics.RecordAnalyticsLoad("stale")
		log.Debug().Int64("link_id", linkID).Msg("Discarding stale analytics")
		return nil, ErrStaleSelection
	}
	if err != nil {
		metrics.RecordAnalyticsLoad("unavailable")
		d.status = model.AnalyticsUnavailable
		d.lastErr = ErrAnalyticsUnavailable.Error()
		return nil, err
	}

	metrics.RecordAnalyticsLoad("ready")
	d.view = view
	d.status = model.AnalyticsReady
	return view, nil
}

// Current returns a snapshot of the dashboard
func (d *Dashboard) Current() model.DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := model.DashboardState{
		OwnerID:  d.ownerID,
		Status:   d.status,
		View:     d.view,
		Error:    d.lastErr,
		Creating: d.creating,
	}
	if d.selected != nil {
		sel := *d.selected
		state.Selected = &sel
	}
	if d.result != nil {
		res := *d.result
		state.Result = &res
	}
	return state
}

// Create runs the creation workflow for the signed-in owner. A committed
// link stays as the current result even when its QR step failed.
func (d *Dashboard) Create(ctx context.Context, originalURL string) (*model.CreationResult, error) {
	// a blank submit leaves the current result on screen
	if strings.TrimSpace(originalURL) == "" {
		return nil, ErrEmptyURL
	}

	d.mu.Lock()
	if d.ownerID == "" {
		d.mu.Unlock()
		return nil, ErrNotStarted
	}
	if d.creating {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	d.creating = true
	d.result = nil
	owner := d.ownerID
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.creating = false
		d.mu.Unlock()
	}()

	result, err := d.creator.Create(ctx, owner, originalURL)
	if result == nil {
		return nil, err
	}

	var stored *model.Link
	if rerr := d.RefreshLinks(ctx); rerr != nil {
		log.Warn().Err(rerr).Msg("Link list not refreshed after create")
		if l, gerr := d.links.GetByHash(ctx, owner, result.Link.ShortHash); gerr == nil {
			stored = l
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if stored != nil && d.ownerID == owner {
		if _, ok := findLink(d.all, stored.ID); !ok {
			d.all = append(d.all, *stored)
		}
	}
	for _, l := range d.all {
		if l.ShortHash == result.Link.ShortHash {
			result.Link = l
			break
		}
	}
	if d.ownerID == owner {
		res := *result
		d.result = &res
	}
	return result, err
}

// RetryQR re-runs only the QR step of the current result
func (d *Dashboard) RetryQR(ctx context.Context) (*model.CreationResult, error) {
	d.mu.Lock()
	if d.result == nil {
		d.mu.Unlock()
		return nil, ErrNoResult
	}
	current := *d.result
	if current.HasQR() {
		d.mu.Unlock()
		return &current, nil
	}
	if d.creating {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	d.creating = true
	d.mu.Unlock()

	updated, err := d.creator.RetryQR(ctx, &current)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.creating = false
	if updated != nil && d.result != nil && d.result.Link.ShortHash == updated.Link.ShortHash {
		res := *updated
		d.result = &res
	}
	return updated, err
}

// DismissResult clears the current creation result
func (d *Dashboard) DismissResult() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.result = nil
}

// Delete removes linkID after explicit confirmation. Deleting the
// selected link clears the selection and its analytics.
func (d *Dashboard) Delete(ctx context.Context, linkID int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	d.mu.Lock()
	if d.ownerID == "" {
		d.mu.Unlock()
		return ErrNotStarted
	}
	if d.deleting[linkID] {
		d.mu.Unlock()
		return ErrBusy
	}
	link, ok := findLink(d.all, linkID)
	if !ok {
		d.mu.Unlock()
		return ErrLinkNotFound
	}
	d.deleting[linkID] = true
	owner := d.ownerID
	d.mu.Unlock()

	err := d.links.Delete(ctx, owner, linkID)

	d.mu.Lock()
	delete(d.deleting, linkID)
	if err != nil {
		d.mu.Unlock()
		log.Error().Err(err).Int64("link_id", linkID).Msg("Failed to delete link")
		return err
	}
	if d.ownerID == owner {
		d.removeLocked(linkID)
	}
	d.mu.Unlock()

	metrics.RecordDelete()
	log.Info().Int64("link_id", linkID).Str("short_hash", link.ShortHash).Msg("Link deleted")
	d.publish(ctx, model.LinkDeleted, link)
	return nil
}

func (d *Dashboard) removeLocked(linkID int64) {
	d.all = removeLink(d.all, linkID)
	if d.selected != nil && d.selected.ID == linkID {
		d.clearSelectionLocked()
	}
	if d.view != nil && d.view.LinkID == linkID {
		d.view = nil
	}
}

func (d *Dashboard) clearSelectionLocked() {
	d.selected = nil
	d.selection++
	d.status = model.AnalyticsIdle
	d.lastErr = ""
}

// OnSessionChange follows the auth provider: sign-in starts the dashboard
// for the new owner, sign-out resets it
func (d *Dashboard) OnSessionChange(event auth.Event, session *model.Session) {
	switch event {
	case auth.EventSignedIn, auth.EventRestored:
		ctx, cancel := context.WithTimeout(context.Background(), sessionStartTimeout)
		defer cancel()
		if err := d.Start(ctx, session.OwnerID()); err != nil {
			log.Error().Err(err).Str("owner_id", session.OwnerID()).Msg("Failed to start dashboard")
		}
	case auth.EventSignedOut:
		d.Reset()
	}
}

// HandleLinkEvent refreshes the list when another instance changed links
// of the signed-in owner
func (d *Dashboard) HandleLinkEvent(ctx context.Context, event *model.LinkEvent) error {
	if event == nil || event.Origin == d.origin {
		return nil
	}
	if owner := d.OwnerID(); owner == "" || owner != event.OwnerID {
		return nil
	}

	log.Debug().Str("type", string(event.Type)).Str("short_hash", event.ShortHash).Msg("Refreshing links after remote change")
	return d.RefreshLinks(ctx)
}

func (d *Dashboard) publish(ctx context.Context, eventType model.LinkEventType, link model.Link) {
	if d.publisher == nil {
		return
	}
	event := &model.LinkEvent{
		ID:         util.GenerateUUID(),
		Type:       eventType,
		OwnerID:    link.OwnerID,
		LinkID:     link.ID,
		ShortHash:  link.ShortHash,
		Origin:     d.origin,
		OccurredAt: time.Now(),
	}
	if err := d.publisher.PublishLinkEvent(ctx, event); err != nil {
		log.Warn().Err(err).Str("short_hash", link.ShortHash).Msg("Failed to publish link event")
	}
}
