package timex

import (
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
)

// ErrDurationTooShort is returned when a resolved duration is below one minute.
var ErrDurationTooShort = common.NewValidationError("Duration must be at least 1 minute")

// DurationSpec is how a caller describes the length of a time entry: either
// a start/end range or an explicit number of minutes. It is resolved once,
// at the service boundary, into canonical minutes.
type DurationSpec interface {
	// Minutes returns the canonical length in whole minutes.
	Minutes() int
	isDurationSpec()
}

// Range derives minutes from two instants, rounding up: ceil((end-start)/1m).
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Minutes() int {
	return int(ceilDiv(r.End.Sub(r.Start).Milliseconds(), 60000))
}

func (Range) isDurationSpec() {}

// Explicit is a caller supplied number of minutes.
type Explicit struct {
	Value int
}

func (e Explicit) Minutes() int { return e.Value }

func (Explicit) isDurationSpec() {}

// SpecFrom picks the spec for the given optional inputs. A non-zero explicit
// value wins; otherwise a complete start/end pair becomes a Range. It returns
// nil when neither is available.
func SpecFrom(minutes *int, start, end *time.Time) DurationSpec {
	if minutes != nil && *minutes != 0 {
		return Explicit{Value: *minutes}
	}
	if start != nil && end != nil {
		return Range{Start: *start, End: *end}
	}
	return nil
}

// Resolve validates spec and returns its minutes. A nil spec or a result
// below one minute yields ErrDurationTooShort.
func Resolve(spec DurationSpec) (int, error) {
	if spec == nil {
		return 0, ErrDurationTooShort
	}
	m := spec.Minutes()
	if m < 1 {
		return 0, ErrDurationTooShort
	}
	return m, nil
}
