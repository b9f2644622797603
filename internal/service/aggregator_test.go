package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrlinx/internal/model"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testOptions() AggregateOptions {
	return AggregateOptions{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	}
}

func click(at string, country, device, browser string) model.ClickEvent {
	ev := model.ClickEvent{Country: country, DeviceType: device, Browser: browser, RawCreatedAt: at}
	if t, ok := model.ParseTimestamp(at); ok {
		ev.CreatedAt = t
	}
	return ev
}

func sumEntries(entries []model.BreakdownEntry) int {
	n := 0
	for _, e := range entries {
		n += e.Count
	}
	return n
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.count, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.count, tt.total))
		})
	}
}

func TestAggregate_Breakdowns(t *testing.T) {
	events := []model.ClickEvent{
		click("2026-03-01T10:00:00Z", "US", "mobile", "Chrome"),
		click("2026-03-01T11:00:00Z", "US", "desktop", "Firefox"),
		click("2026-03-02T09:00:00Z", "DE", "mobile", "Chrome"),
		click("2026-03-02T09:30:00Z", "", "mobile", "None"),
		click("2026-03-03T08:00:00Z", "None", "tablet", "Safari"),
	}

	view := Aggregate(events, model.Totals{Total: 5, Unique: 3}, testOptions())

	t.Run("every breakdown sums to the event count", func(t *testing.T) {
		assert.Equal(t, len(events), sumEntries(view.Breakdowns.Device))
		assert.Equal(t, len(events), sumEntries(view.Breakdowns.Browser))
		assert.Equal(t, len(events), sumEntries(view.Breakdowns.Country))
	})

	t.Run("ranked by count then key", func(t *testing.T) {
		require.Len(t, view.Breakdowns.Device, 3)
		assert.Equal(t, model.BreakdownEntry{Key: "mobile", Count: 3, Percent: 60}, view.Breakdowns.Device[0])
		assert.Equal(t, "desktop", view.Breakdowns.Device[1].Key)
		assert.Equal(t, "tablet", view.Breakdowns.Device[2].Key)
	})

	t.Run("missing values keep their raw keys", func(t *testing.T) {
		keys := map[string]int{}
		for _, e := range view.Breakdowns.Country {
			keys[e.Key] = e.Count
		}
		assert.Equal(t, map[string]int{"US": 2, "DE": 1, "": 1, "None": 1}, keys)
	})

	t.Run("totals are passed through", func(t *testing.T) {
		assert.Equal(t, 5, view.TotalClicks)
		assert.Equal(t, 3, view.UniqueClicks)
		assert.Equal(t, "US", view.TopLocation)
		assert.Equal(t, fixedNow, view.GeneratedAt)
	})
}

func TestAggregate_ZeroTotal(t *testing.T) {
	events := []model.ClickEvent{
		click("2026-03-01T10:00:00Z", "US", "mobile", "Chrome"),
	}

	view := Aggregate(events, model.Totals{}, testOptions())

	for _, e := range view.Breakdowns.Device {
		assert.Equal(t, 0, e.Percent)
	}
	assert.Equal(t, 0, view.TotalClicks)
}

func TestAggregate_Empty(t *testing.T) {
	view := Aggregate(nil, model.Totals{}, testOptions())

	assert.Empty(t, view.Breakdowns.Device)
	assert.Empty(t, view.Breakdowns.Browser)
	assert.Empty(t, view.Breakdowns.Country)
	assert.Empty(t, view.Timeline)
	assert.Empty(t, view.RecentActivity)
	assert.Equal(t, TopLocationPlaceholder, view.TopLocation)
}

func TestAggregate_Timeline(t *testing.T) {
	events := []model.ClickEvent{
		click("2026-03-03T08:00:00Z", "US", "mobile", "Chrome"),
		click("2026-03-01T10:00:00Z", "US", "mobile", "Chrome"),
		click("2026-03-01T23:30:00Z", "US", "mobile", "Chrome"),
		click("not a time", "US", "mobile", "Chrome"),
	}

	t.Run("days in ascending order without gaps filled", func(t *testing.T) {
		view := Aggregate(events, model.Totals{Total: 4}, testOptions())

		require.Len(t, view.Timeline, 2)
		assert.Equal(t, model.TimelineBucket{Day: "2026-03-01", Label: "Mar 1", Count: 2}, view.Timeline[0])
		assert.Equal(t, model.TimelineBucket{Day: "2026-03-03", Label: "Mar 3", Count: 1}, view.Timeline[1])
	})

	t.Run("sum equals events with a timestamp", func(t *testing.T) {
		view := Aggregate(events, model.Totals{Total: 4}, testOptions())

		n := 0
		for _, b := range view.Timeline {
			n += b.Count
		}
		assert.Equal(t, 3, n)
	})

	t.Run("days follow the display timezone", func(t *testing.T) {
		opts := testOptions()
		opts.Location = time.FixedZone("UTC+2", 2*60*60)

		view := Aggregate(events, model.Totals{Total: 4}, opts)

		require.Len(t, view.Timeline, 3)
		assert.Equal(t, "2026-03-01", view.Timeline[0].Day)
		assert.Equal(t, "2026-03-02", view.Timeline[1].Day)
		assert.Equal(t, "2026-03-03", view.Timeline[2].Day)
	})
}

func TestAggregate_RecentActivity(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var events []model.ClickEvent
	for i := 0; i < 15; i++ {
		// shuffle the order a little
		at := base.Add(time.Duration((i*7)%15) * time.Hour)
		events = append(events, click(at.Format(time.RFC3339), "US", "mobile", fmt.Sprintf("b%d", i)))
	}
	original := make([]model.ClickEvent, len(events))
	copy(original, events)

	view := Aggregate(events, model.Totals{Total: 15}, testOptions())

	t.Run("bounded by the limit", func(t *testing.T) {
		assert.Len(t, view.RecentActivity, DefaultRecentLimit)
	})

	t.Run("newest first", func(t *testing.T) {
		for i := 1; i < len(view.RecentActivity); i++ {
			assert.False(t, view.RecentActivity[i].CreatedAt.After(view.RecentActivity[i-1].CreatedAt))
		}
		assert.Equal(t, base.Add(14*time.Hour), view.RecentActivity[0].CreatedAt)
	})

	t.Run("every entry comes from the input", func(t *testing.T) {
		seen := map[string]bool{}
		for _, ev := range original {
			seen[ev.Browser] = true
		}
		for _, ev := range view.RecentActivity {
			assert.True(t, seen[ev.Browser])
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		assert.Equal(t, original, events)
	})

	t.Run("fewer events than the limit", func(t *testing.T) {
		v := Aggregate(events[:3], model.Totals{Total: 3}, testOptions())
		assert.Len(t, v.RecentActivity, 3)
	})

	t.Run("unparseable timestamps sort last", func(t *testing.T) {
		mixed := []model.ClickEvent{
			click("garbage", "US", "mobile", "x"),
			click("2026-03-01T10:00:00Z", "US", "mobile", "y"),
		}
		v := Aggregate(mixed, model.Totals{Total: 2}, testOptions())
		require.Len(t, v.RecentActivity, 2)
		assert.Equal(t, "y", v.RecentActivity[0].Browser)
		assert.Equal(t, "x", v.RecentActivity[1].Browser)
	})

	t.Run("custom limit", func(t *testing.T) {
		opts := testOptions()
		opts.RecentLimit = 4
		v := Aggregate(events, model.Totals{Total: 15}, opts)
		assert.Len(t, v.RecentActivity, 4)
	})
}
