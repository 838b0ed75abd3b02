package dto

import "github.com/barberbook/api/internal/models"

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	BarberID    uint   `json:"barber_id"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
}

func AppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for i := range aps {
		ap := &aps[i]

		name := ap.ClientName
		if ap.User != nil {
			name = ap.User.Name
		}

		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.AppointmentDate.Format("2006-01-02"),
			Time:        ap.StartHHMM(),
			Duration:    ap.Duration,
			BarberID:    ap.BarberID,
			ServiceType: ap.ServiceType,
			Status:      ap.Status,
			ClientName:  name,
		})
	}
	return out
}
