package service

import (
	"math"
	"sort"
	"time"

	"qrlinx/internal/model"
)

const (
	// DefaultRecentLimit bounds the recent activity log
	DefaultRecentLimit = 10
	// TopLocationPlaceholder is reported when no country is known
	TopLocationPlaceholder = "-"

	dayLayout   = "2006-01-02"
	labelLayout = "Jan 2"
)

// AggregateOptions tune the presentation-dependent parts of Aggregate
type AggregateOptions struct {
	// Location is the display timezone used for day buckets
	Location *time.Location
	// RecentLimit bounds RecentActivity
	RecentLimit int
	// Now stamps GeneratedAt
	Now func() time.Time
}

func (o AggregateOptions) withDefaults() AggregateOptions {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.RecentLimit <= 0 {
		o.RecentLimit = DefaultRecentLimit
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Aggregate derives the analytics view of one click snapshot.
// It does not mutate events and never fails: unparseable timestamps are
// left out of the timeline and sorted last in the activity log.
func Aggregate(events []model.ClickEvent, totals model.Totals, opts AggregateOptions) *model.AnalyticsView {
	opts = opts.withDefaults()

	device := make(map[string]int)
	browser := make(map[string]int)
	country := make(map[string]int)
	for _, ev := range events {
		device[ev.DeviceType]++
		browser[ev.Browser]++
		country[ev.Country]++
	}

	countryEntries := rankBreakdown(country, totals.Total)

	return &model.AnalyticsView{
		TotalClicks:  totals.Total,
		UniqueClicks: totals.Unique,
		Breakdowns: model.Breakdowns{
			Device:  rankBreakdown(device, totals.Total),
			Browser: rankBreakdown(browser, totals.Total),
			Country: countryEntries,
		},
		Timeline:       buildTimeline(events, opts.Location),
		RecentActivity: recentActivity(events, opts.RecentLimit),
		TopLocation:    topLocation(countryEntries),
		GeneratedAt:    opts.Now(),
	}
}

// Percent is round(count/total*100), or 0 when total is 0
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// rankBreakdown orders by count descending, then key ascending
func rankBreakdown(counts map[string]int, total int) []model.BreakdownEntry {
	entries := make([]model.BreakdownEntry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, model.BreakdownEntry{
			Key:     key,
			Count:   count,
			Percent: Percent(count, total),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// buildTimeline buckets by calendar day in loc. Days without clicks are
// not synthesized.
func buildTimeline(events []model.ClickEvent, loc *time.Location) []model.TimelineBucket {
	counts := make(map[string]int)
	labels := make(map[string]string)
	for _, ev := range events {
		if !ev.HasTimestamp() {
			continue
		}
		local := ev.CreatedAt.In(loc)
		day := local.Format(dayLayout)
		counts[day]++
		labels[day] = local.Format(labelLayout)
	}

	timeline := make([]model.TimelineBucket, 0, len(counts))
	for day, count := range counts {
		timeline = append(timeline, model.TimelineBucket{Day: day, Label: labels[day], Count: count})
	}
	// ISO dates sort chronologically as strings
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Day < timeline[j].Day
	})
	return timeline
}

// recentActivity returns the newest events first, at most limit of them
func recentActivity(events []model.ClickEvent, limit int) []model.ClickEvent {
	sorted := make([]model.ClickEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.HasTimestamp() != b.HasTimestamp() {
			return a.HasTimestamp()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func topLocation(country []model.BreakdownEntry) string {
	if len(country) == 0 {
		return TopLocationPlaceholder
	}
	return country[0].Key
}
