package services

import (
	"errors"
	"fmt"
	"time"

	"hms-backend/models"
	"hms-backend/repository"

	"gorm.io/gorm"
)

// Slots are hour-granular. A doctor without a stored template gets hourly
// slots from 09:00 through 17:00.
const (
	templateStartHour = 9
	templateEndHour   = 17
)

// AvailabilityService computes a doctor's free slots for a date and validates
// requested bookings against them. It is read-only.
type AvailabilityService struct {
	doctors      repository.DoctorStore
	appointments repository.AppointmentStore
}

func NewAvailabilityService(doctors repository.DoctorStore, appointments repository.AppointmentStore) *AvailabilityService {
	return &AvailabilityService{doctors: doctors, appointments: appointments}
}

// DailyTemplate returns the doctor's bookable slots for any day, independent
// of what is already booked.
func (s *AvailabilityService) DailyTemplate(doctor *models.Doctor) []string {
	if len(doctor.AvailableTimes) > 0 {
		return doctor.AvailableTimes
	}
	slots := make([]string, 0, templateEndHour-templateStartHour+1)
	for h := templateStartHour; h <= templateEndHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// FreeSlots returns the template minus the slots occupied by the doctor's
// appointments on the given calendar date. The date boundary is local
// midnight to next local midnight, start inclusive, end exclusive.
func (s *AvailabilityService) FreeSlots(doctorID uint, date time.Time) ([]string, error) {
	doctor, err := s.doctors.FindByID(doctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("looking up doctor: %w", err)
	}

	start, end := DayBounds(date)
	booked, err := s.appointments.FindByDoctorIDAndTimeBetween(doctorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing booked appointments: %w", err)
	}

	occupied := make(map[string]bool, len(booked))
	for _, appt := range booked {
		// hour granularity: a 10:30 booking occupies the 10:00 slot
		occupied[fmt.Sprintf("%02d:00", appt.AppointmentTime.Hour())] = true
	}

	template := s.DailyTemplate(doctor)
	free := make([]string, 0, len(template))
	for _, slot := range template {
		if !occupied[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}

// ValidateBooking checks that the appointment's doctor exists and that the
// requested time is one of the doctor's free slots. A request off the hour
// grid never matches a template slot, so it is rejected here.
func (s *AvailabilityService) ValidateBooking(appointment *models.Appointment) error {
	free, err := s.FreeSlots(appointment.DoctorID, appointment.AppointmentTime)
	if err != nil {
		return err
	}

	requested := appointment.AppointmentTime.Format("15:04")
	for _, slot := range free {
		if slot == requested {
			return nil
		}
	}
	return ErrSlotUnavailable
}

// DayBounds returns [local midnight, next local midnight) for the given time.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
