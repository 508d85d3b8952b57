package datemath

// ISODate is the calendar date layout produced by Format.
const ISODate = "2006-01-02"

var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}
