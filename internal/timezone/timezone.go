package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "Asia/Yangon"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns the clinic-local calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}

func Tomorrow() string {
	return Now().AddDate(0, 0, 1).Format("2006-01-02")
}

var burmeseMonths = [...]string{
	"ဇန်နဝါရီ", "ဖေဖော်ဝါရီ", "မတ်", "ဧပြီ", "မေ", "ဇွန်",
	"ဇူလိုင်", "သြဂုတ်", "စက်တင်ဘာ", "အောက်တိုဘာ", "နိုဝင်ဘာ", "ဒီဇင်ဘာ",
}

// FormatMM renders a YYYY-MM-DD date with Burmese month names,
// e.g. "1 မတ် 2025". Unparseable input is returned verbatim.
func FormatMM(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d", d.Day(), burmeseMonths[d.Month()-1], d.Year())
}
