package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/oarkflow/date"
)

// tsLayouts maps the length of a timestamp's date-time portion to its HL7v2
// TS layout, from year precision down to seconds.
var tsLayouts = map[int]string{
	4:  "2006",
	6:  "200601",
	8:  "20060102",
	10: "2006010215",
	12: "200601021504",
	14: "20060102150405",
}

// TimeLayout is the full-precision HL7v2 TS layout used when writing.
const TimeLayout = "20060102150405"

// DateLayout is the HL7v2 DT layout.
const DateLayout = "20060102"

// ParseTime parses an HL7v2 TS value: YYYY[MM[DD[HH[MM[SS[.S+]]]]]] with an
// optional ±HHMM zone suffix. Values that do not match any TS precision fall
// back to lenient free-form parsing.
func ParseTime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, errEmptyValue
	}

	rest := v
	zone := ""
	if i := strings.IndexAny(rest, "+-"); i > 0 {
		zone = rest[i:]
		rest = rest[:i]
	}
	frac := ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		frac = rest[i+1:]
		rest = rest[:i]
	}

	layout, ok := tsLayouts[len(rest)]
	if !ok || (zone != "" && len(zone) != 5) {
		return parseLenient(v)
	}
	if frac != "" {
		layout += "." + strings.Repeat("0", len(frac))
	}
	if zone != "" {
		layout += "-0700"
	}

	t, err := time.Parse(layout, v)
	if err != nil {
		return parseLenient(v)
	}

	return t, nil
}

func parseLenient(v string) (time.Time, error) {
	t, err := date.Parse(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", v, err)
	}

	return t, nil
}

// FormatTime renders a time at full TS precision (seconds).
func FormatTime(t time.Time) string { return t.Format(TimeLayout) }

// FormatDate renders a date-only DT value.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// Time parses the bound element's value as an HL7v2 timestamp.
func (c *Codec) Time() (time.Time, error) {
	return ParseTime(c.el.Value())
}

// SetTime writes a timestamp at full TS precision.
func (c *Codec) SetTime(t time.Time) error {
	return c.el.SetValue(FormatTime(t))
}

// SetDate writes a date-only DT value.
func (c *Codec) SetDate(t time.Time) error {
	return c.el.SetValue(FormatDate(t))
}
