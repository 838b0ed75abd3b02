package appointment

import (
	"fmt"
	"time"

	"github.com/barberbook/api/internal/models"
)

// Slot is a derived view, regenerated on every availability query; it is
// never persisted.
type Slot struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"isBooked"`

	AppointmentID *uint  `json:"appointmentId,omitempty"`
	ClientName    string `json:"client_name,omitempty"`
	ClientEmail   string `json:"client_email,omitempty"`
	ClientPhone   string `json:"client_phone,omitempty"`
	ServiceType   string `json:"service_type,omitempty"`
}

// GenerateTimes enumerates candidate start times from opening to closing,
// stepping by granularity. A candidate is included only if
// candidate+granularity fits before (or exactly at) closing; a slot that
// would run past closing is dropped. Empty when opening >= closing.
func GenerateTimes(w Window, granularityMin int) []string {
	open, err := hhmmToMinutes(w.Opening)
	if err != nil {
		return nil
	}
	closeAt, err := hhmmToMinutes(w.Closing)
	if err != nil {
		return nil
	}
	if granularityMin <= 0 || open >= closeAt {
		return nil
	}

	var times []string
	for cur := open; cur+granularityMin <= closeAt; cur += granularityMin {
		times = append(times, minutesToHHMM(cur))
	}
	return times
}

// Project merges the candidate grid with the day's non-cancelled
// appointments. A slot is flagged booked when an appointment's formatted
// start time equals the slot time exactly; this is the display policy of
// the availability view, not the booking conflict rule.
func Project(times []string, appointments []models.Appointment) []Slot {
	byStart := make(map[string]*models.Appointment, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		if !Status(ap.Status).Occupies() {
			continue
		}
		if _, taken := byStart[ap.StartHHMM()]; !taken {
			byStart[ap.StartHHMM()] = ap
		}
	}

	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		slot := Slot{Time: t}
		if ap, ok := byStart[t]; ok {
			id := ap.ID
			slot.IsBooked = true
			slot.AppointmentID = &id
			slot.ClientName = ap.ClientName
			slot.ClientEmail = ap.ClientEmail
			slot.ClientPhone = ap.ClientPhone
			slot.ServiceType = ap.ServiceType
		}
		slots = append(slots, slot)
	}
	return slots
}

// Overlaps reports whether [start, start+durationMin) intersects any other
// non-cancelled appointment, skipping excludeID (0 means exclude nothing).
// Returns the first conflicting appointment.
func Overlaps(
	appointments []models.Appointment,
	start time.Time,
	durationMin int,
	excludeID uint,
) (*models.Appointment, bool) {

	end := start.Add(time.Duration(durationMin) * time.Minute)

	for i := range appointments {
		ap := &appointments[i]
		if ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).Occupies() {
			continue
		}
		if ap.AppointmentDate.Before(end) && ap.End().After(start) {
			return ap, true
		}
	}
	return nil, false
}

func hhmmToMinutes(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesToHHMM(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
