package utils

import (
	"strconv"
	"strings"
	"time"
)

// Offset-qualified timestamp layout, rendered against the local wall clock so
// submitted documents carry the clinician's time zone rather than UTC.
const offsetTimestampLayout = "2006-01-02T15:04:05-07:00"

var localFormInputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ToCanonicalDate converts user-entered dates into the canonical YYYY-MM-DD
// form. YYYY-MM-DD passes through, DD-MM-YYYY and DD/MM/YYYY are reordered and
// zero-padded. Anything else yields the empty string and the caller simply
// omits the field. Applying it to an already-canonical date is a no-op.
func ToCanonicalDate(input string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(input), func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(parts) != 3 {
		return ""
	}

	var yearPart, monthPart, dayPart string
	switch {
	case len(parts[0]) == 4:
		yearPart, monthPart, dayPart = parts[0], parts[1], parts[2]
	case len(parts[2]) == 4:
		dayPart, monthPart, yearPart = parts[0], parts[1], parts[2]
	default:
		return ""
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return ""
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil || day < 1 || day > 31 {
		return ""
	}

	return formatCanonicalDate(year, month, day)
}

func formatCanonicalDate(year, month, day int) string {
	var b strings.Builder
	pad := func(value, width int) {
		s := strconv.Itoa(value)
		for len(s) < width {
			s = "0" + s
		}
		b.WriteString(s)
	}
	pad(year, 4)
	b.WriteByte('-')
	pad(month, 2)
	b.WriteByte('-')
	pad(day, 2)
	return b.String()
}

// ToOffsetTimestamp renders t as YYYY-MM-DDTHH:MM:SS±HH:MM in t's own zone.
// Holds for negative and zero offsets.
func ToOffsetTimestamp(t time.Time) string {
	return t.Format(offsetTimestampLayout)
}

// LocalFormInputToOffsetTimestamp parses a local-naive form value and renders
// it with the local UTC offset. An empty or unparseable value defaults to the
// current moment; a malformed optional date never fails a build.
func LocalFormInputToOffsetTimestamp(local string) string {
	local = strings.TrimSpace(local)
	if local == "" {
		return ToOffsetTimestamp(time.Now())
	}
	for _, layout := range localFormInputLayouts {
		if t, err := time.ParseInLocation(layout, local, time.Local); err == nil {
			return ToOffsetTimestamp(t)
		}
	}
	return ToOffsetTimestamp(time.Now())
}
