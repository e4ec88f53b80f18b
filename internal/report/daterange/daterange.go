// Package daterange resolves logical report filters into concrete time
// ranges and plans the time-bucket axis used by every report.
package daterange

import (
	"math"
	"strings"
	"time"
)

type Preset string

const (
	PresetToday   Preset = "today"
	PresetWeek    Preset = "week"
	PresetMonth   Preset = "month"
	PresetQuarter Preset = "quarter"
	PresetYear    Preset = "year"
	PresetCustom  Preset = "custom"
)

// Filter is the caller-supplied date selection. From/To only matter for
// the custom preset.
type Filter struct {
	Preset Preset     `json:"preset"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

// Range is a resolved [From, To] pair, From <= To.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Resolve turns a filter into a concrete range. It never fails: an
// incomplete custom filter or an unknown preset degrades to a rolling
// 30-day window, because half-built filters are routine during UI
// transitions and a crashed report is worse than a default one.
//
// Named presets other than today are rolling windows that preserve the
// time of day. Bucket keys are calendar-aligned separately (see
// BucketKey); the two must not be unified.
func Resolve(f Filter, now time.Time) Range {
	switch normalizePreset(f.Preset) {
	case PresetToday:
		return Range{From: StartOfDay(now), To: EndOfDay(now)}
	case PresetWeek:
		return Range{From: now.AddDate(0, 0, -7), To: now}
	case PresetMonth:
		return Range{From: now.AddDate(0, -1, 0), To: now}
	case PresetQuarter:
		return Range{From: now.AddDate(0, -3, 0), To: now}
	case PresetYear:
		return Range{From: now.AddDate(-1, 0, 0), To: now}
	case PresetCustom:
		if f.From != nil && f.To != nil && !f.To.Before(*f.From) {
			return Range{From: StartOfDay(*f.From), To: EndOfDay(*f.To)}
		}
	}
	return Range{From: now.AddDate(0, 0, -30), To: now}
}

// Plan picks the bucket granularity for a range so the series stays
// between roughly 31 and 90 buckets regardless of the span.
func Plan(r Range) Granularity {
	days := int(math.Ceil(r.To.Sub(r.From).Hours() / 24))
	switch {
	case days <= 31:
		return GranularityDay
	case days <= 90:
		return GranularityWeek
	default:
		return GranularityMonth
	}
}

// BucketKey renders the canonical, lexicographically sortable key for
// the bucket containing t. Week buckets normalize to the Monday that
// starts the ISO week; Sunday is the last day of its week, not the
// first of the next.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		return WeekStart(t).Format("2006-01-02")
	case GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// WeekStart returns midnight of the Monday beginning the ISO week
// containing t.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday closes the week
	}
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// Buckets enumerates the canonical keys for every bucket boundary of
// the range, ascending. Boundaries start at r.From and advance by one
// granularity unit while strictly before r.To; custom ranges carry an
// end-of-day To, so their final day is always covered. The loop is
// bounded by the Plan policy (at most ~90 steps for planned ranges).
func Buckets(r Range, g Granularity) []string {
	cursor := r.From
	if g == GranularityMonth {
		cursor = time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
	}

	var keys []string
	for cursor.Before(r.To) {
		key := BucketKey(cursor, g)
		if len(keys) == 0 || keys[len(keys)-1] != key {
			keys = append(keys, key)
		}
		switch g {
		case GranularityWeek:
			cursor = cursor.AddDate(0, 0, 7)
		case GranularityMonth:
			cursor = cursor.AddDate(0, 1, 0)
		default:
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return keys
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func normalizePreset(p Preset) Preset {
	switch Preset(strings.ToLower(strings.TrimSpace(string(p)))) {
	case PresetToday:
		return PresetToday
	case PresetWeek:
		return PresetWeek
	case PresetMonth:
		return PresetMonth
	case PresetQuarter:
		return PresetQuarter
	case PresetYear:
		return PresetYear
	case PresetCustom:
		return PresetCustom
	default:
		return ""
	}
}
