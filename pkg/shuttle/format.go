package shuttle

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDistance renders metres as "350 m" under a kilometre, otherwise as
// kilometres rounded to at most two decimals with trailing zeros trimmed,
// e.g. 9350 -> "9.35 km", 9400 -> "9.4 km".
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}

	km := math.Round(meters/10) / 100

	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

// FormatDuration renders minutes as "45 min" under an hour, otherwise
// "1 hr 5 min", omitting the minutes segment when it is exactly zero.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 60 {
		return fmt.Sprintf("%d min", totalMinutes)
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}

	return fmt.Sprintf("%d hr %d min", hours, minutes)
}
