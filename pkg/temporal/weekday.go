// Package temporal provides immutable UTC date and time value types with
// nanosecond precision: Date, Time, DateTime, Duration, UtcOffset and
// OffsetDateTime, together with strict ISO 8601 / RFC 3339 parsing and
// formatting.
//
// Every type is a plain value; operations return new values and report
// invalid inputs or overflowing arithmetic as errors rather than clamping.
// Calendar conversions are delegated to pkg/civil and run in constant time.
package temporal

// Weekday is a day of the week in ISO order, Monday = 1 through Sunday = 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NumberFromMonday returns the ISO weekday number, 1 for Monday through 7
// for Sunday.
func (w Weekday) NumberFromMonday() int { return int(w) }

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(invalid)"
	}
	return weekdayNames[w-1]
}
