package validation

import (
	"strings"
	"time"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// DateLayout is the ISO calendar date format used for pickup and delivery.
const DateLayout = "2006-01-02"

// ScheduleKind tells which endpoint dates drive the shipment schedule.
type ScheduleKind int

const (
	// ScheduleNone means neither date was given.
	ScheduleNone ScheduleKind = iota
	// ScheduleBoth means pickup and delivery dates were both given.
	ScheduleBoth
	// ScheduleFromOnly means only the pickup date governs.
	ScheduleFromOnly
	// ScheduleToOnly means only the delivery date governs.
	ScheduleToOnly
)

// Schedule is the tagged form of the two date fields. The record still
// stores sentinel strings for the omitted side so the wire payload keeps the
// backend contract.
type Schedule struct {
	Kind ScheduleKind
	From string
	To   string
}

// ScheduleOf classifies the dates held by data. Sentinel strings count as
// omitted dates.
func ScheduleOf(data model.FormData) Schedule {
	from := dateValue(data.FromDate)
	to := dateValue(data.ToDate)
	switch {
	case from != "" && to != "":
		return Schedule{Kind: ScheduleBoth, From: from, To: to}
	case from != "":
		return Schedule{Kind: ScheduleFromOnly, From: from}
	case to != "":
		return Schedule{Kind: ScheduleToOnly, To: to}
	default:
		return Schedule{Kind: ScheduleNone}
	}
}

// Patch returns the record fields representing s, writing the sentinel for
// the side that was left out.
func (s Schedule) Patch() model.Patch {
	switch s.Kind {
	case ScheduleBoth:
		return model.Patch{FromDate: model.String(s.From), ToDate: model.String(s.To)}
	case ScheduleFromOnly:
		return model.Patch{FromDate: model.String(s.From), ToDate: model.String(model.OnlyFromDate)}
	case ScheduleToOnly:
		return model.Patch{FromDate: model.String(model.OnlyToDate), ToDate: model.String(s.To)}
	default:
		return model.Patch{}
	}
}

func dateValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == model.OnlyToDate || trimmed == model.OnlyFromDate {
		return ""
	}
	return trimmed
}

// ParseDate parses an ISO calendar date in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NotInPast reports whether date falls on today or later relative to now.
func NotInPast(date, now time.Time) bool {
	return !StartOfDay(date).Before(StartOfDay(now))
}

// InOrder reports whether to is on or after from, comparing dates only.
func InOrder(from, to time.Time) bool {
	return !StartOfDay(to).Before(StartOfDay(from))
}
