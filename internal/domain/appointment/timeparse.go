package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/barberbook/api/internal/httperr"
)

// NormalizeTime turns the loose time inputs clients send into "HH:MM".
// Accepted forms: "9" → "09:00", "09" → "09:00", "9:00" → "09:00",
// "09:00" → "09:00". Normalizing an already-normalized value is a no-op.
func NormalizeTime(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", httperr.ErrValidation("missing_time", "Orario obbligatorio.")
	}

	// Bare hour number, e.g. "9".
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 23 {
			return "", httperr.ErrValidation("invalid_time", "Orario non valido.")
		}
		return fmt.Sprintf("%02d:00", n), nil
	}

	// Values that omit minutes, e.g. "9h" never happens but "9:" does.
	if !strings.Contains(s, ":") {
		s += ":00"
	}
	s = strings.TrimSuffix(s, ":")
	if strings.HasSuffix(s, ":") {
		s += "00"
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", httperr.ErrValidation("invalid_time", "Orario non valido. Usa il formato HH:MM.")
	}
	return t.Format("15:04"), nil
}

// ParseDate parses a shop-local "YYYY-MM-DD" day.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date", "Formato data non valido. Usa il formato YYYY-MM-DD.")
	}
	return d, nil
}

// CombineDateTime builds the shop-local start timestamp from a date and an
// already-normalized "HH:MM" time.
func CombineDateTime(dateStr, hhmm string, loc *time.Location) (time.Time, error) {
	ts, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(dateStr)+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date_or_time", "Data o orario non validi.")
	}
	return ts, nil
}

// DayBounds returns [00:00, next day 00:00) for the day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
