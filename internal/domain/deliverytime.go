package domain

import (
	"fmt"
	"regexp"
	"strconv"

	"service-orders/internal/apperr"
)

// MinutesPerDay is the number of distinct delivery times in a day.
const MinutesPerDay = 24 * 60

// DeliveryTime is a time of day expressed in minutes since midnight.
type DeliveryTime int

// reClock matches "H:mm" and "HH:mm"; ranges are checked after parsing.
var reClock = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// ParseDeliveryTime converts an "HH:mm" string into minutes since midnight.
// Hours must be in 0–23 and minutes in 0–59.
func ParseDeliveryTime(s string) (DeliveryTime, error) {
	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not HH:mm", apperr.ErrInvalidFormat, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q is out of range", apperr.ErrInvalidFormat, s)
	}
	return DeliveryTime(hours*60 + minutes), nil
}

// Valid reports whether t falls within a single day.
func (t DeliveryTime) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Minutes returns t as a plain minute count.
func (t DeliveryTime) Minutes() int { return int(t) }

// String formats t as zero-padded "HH:mm".
func (t DeliveryTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
