package timex

import "fmt"

// FormatDuration renders whole minutes as "Nm" below one hour and "Hh Mm" above.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatTime renders seconds as MM:SS. Minutes are not wrapped into hours,
// so 3661 becomes "61:01".
func FormatTime(seconds int64) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func MinutesToSeconds(minutes int) int64 {
	return int64(minutes) * 60
}

// SecondsToMinutes floors; the round trip with MinutesToSeconds is lossy.
func SecondsToMinutes(seconds int64) int {
	return int(seconds / 60)
}

// FormatHours renders minutes as decimal hours with two digits ("1.50").
func FormatHours(minutes int) string {
	return fmt.Sprintf("%.2f", float64(minutes)/60)
}
