package handler

import (
	"time"

	"qrlinx/internal/model"
	"qrlinx/internal/service"
	"qrlinx/pkg/util"
)

const (
	unknownLabel = "Unknown"
	directLabel  = "Direct"
	missingLabel = "-"
	clickLayout  = "Jan 2, 15:04"
)

// LinkView is a link as listed in the sidebar
type LinkView struct {
	ID          int64     `json:"id"`
	OriginalURL string    `json:"original_url"`
	Host        string    `json:"host"`
	ShortHash   string    `json:"short_hash"`
	ShortURL    string    `json:"short_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntryView is a labelled breakdown entry
type EntryView struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// ClickView is one row of the recent activity log
type ClickView struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Referrer string `json:"referrer"`
	Device   string `json:"device"`
	Browser  string `json:"browser"`
}

// AnalyticsView is the presented analytics of one link
type AnalyticsView struct {
	LinkID         int64                  `json:"link_id"`
	ShortHash      string                 `json:"short_hash"`
	TotalClicks    int                    `json:"total_clicks"`
	UniqueClicks   int                    `json:"unique_clicks"`
	TopLocation    string                 `json:"top_location"`
	Devices        []EntryView            `json:"devices"`
	Browsers       []EntryView            `json:"browsers"`
	Countries      []EntryView            `json:"countries"`
	Timeline       []model.TimelineBucket `json:"timeline"`
	RecentActivity []ClickView            `json:"recent_activity"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// AnalyticsState is the body of GET /api/v1/analytics
type AnalyticsState struct {
	Status   model.AnalyticsStatus `json:"status"`
	Error    string                `json:"error,omitempty"`
	Selected *LinkView             `json:"selected,omitempty"`
	View     *AnalyticsView        `json:"view,omitempty"`
}

// Presenter turns domain values into display values
type Presenter struct {
	loc         *time.Location
	redirectURL func(shortHash string) string
}

// NewPresenter creates a new Presenter. redirectURL composes the public
// short URL of a hash.
func NewPresenter(loc *time.Location, redirectURL func(shortHash string) string) *Presenter {
	if loc == nil {
		loc = time.Local
	}
	return &Presenter{loc: loc, redirectURL: redirectURL}
}

// Link presents one link
func (p *Presenter) Link(l model.Link) LinkView {
	v := LinkView{
		ID:          l.ID,
		OriginalURL: l.OriginalURL,
		Host:        util.Hostname(l.OriginalURL),
		ShortHash:   l.ShortHash,
		CreatedAt:   l.CreatedAt,
	}
	if p.redirectURL != nil {
		v.ShortURL = p.redirectURL(l.ShortHash)
	}
	return v
}

// Links presents a link list, keeping its order
func (p *Presenter) Links(links []model.Link) []LinkView {
	out := make([]LinkView, 0, len(links))
	for _, l := range links {
		out = append(out, p.Link(l))
	}
	return out
}

// Analytics presents an analytics view; nil stays nil
func (p *Presenter) Analytics(v *model.AnalyticsView) *AnalyticsView {
	if v == nil {
		return nil
	}

	recent := make([]ClickView, 0, len(v.RecentActivity))
	for _, ev := range v.RecentActivity {
		recent = append(recent, p.click(ev))
	}

	top := v.TopLocation
	if top != service.TopLocationPlaceholder {
		top = CategoryLabel(top)
	}

	return &AnalyticsView{
		LinkID:         v.LinkID,
		ShortHash:      v.ShortHash,
		TotalClicks:    v.TotalClicks,
		UniqueClicks:   v.UniqueClicks,
		TopLocation:    top,
		Devices:        entries(v.Breakdowns.Device),
		Browsers:       entries(v.Breakdowns.Browser),
		Countries:      entries(v.Breakdowns.Country),
		Timeline:       v.Timeline,
		RecentActivity: recent,
		GeneratedAt:    v.GeneratedAt,
	}
}

// State presents the analytics part of a dashboard snapshot
func (p *Presenter) State(s model.DashboardState) AnalyticsState {
	out := AnalyticsState{
		Status: s.Status,
		Error:  s.Error,
		View:   p.Analytics(s.View),
	}
	if s.Selected != nil {
		sel := p.Link(*s.Selected)
		out.Selected = &sel
	}
	return out
}

func (p *Presenter) click(ev model.ClickEvent) ClickView {
	when := missingLabel
	switch {
	case ev.HasTimestamp():
		when = ev.CreatedAt.In(p.loc).Format(clickLayout)
	case ev.RawCreatedAt != "":
		when = ev.RawCreatedAt
	}

	return ClickView{
		Time:     when,
		Location: CityLabel(ev.City) + ", " + CategoryLabel(ev.Country),
		Referrer: ReferrerLabel(ev.Referrer),
		Device:   CategoryLabel(ev.DeviceType),
		Browser:  CategoryLabel(ev.Browser),
	}
}

func entries(in []model.BreakdownEntry) []EntryView {
	out := make([]EntryView, 0, len(in))
	for _, e := range in {
		out = append(out, EntryView{Label: CategoryLabel(e.Key), Count: e.Count, Percent: e.Percent})
	}
	return out
}

// CategoryLabel shows missing categories as "Unknown"
func CategoryLabel(key string) string {
	if key == "" || key == "None" {
		return unknownLabel
	}
	return key
}

// ReferrerLabel shows the referring host, or "Direct" when there is none
func ReferrerLabel(referrer string) string {
	if referrer == "" || referrer == "None" {
		return directLabel
	}
	return util.Hostname(referrer)
}

// CityLabel shows a missing city as "-"
func CityLabel(city string) string {
	if city == "" || city == "None" {
		return missingLabel
	}
	return city
}
