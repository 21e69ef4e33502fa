package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hms-backend/models"
	"hms-backend/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppointmentService orchestrates booking, reschedule, cancel and listing.
// Every entry point assumes the caller already passed the role middleware;
// ownership checks against the token subject still happen here.
type AppointmentService struct {
	appointments repository.AppointmentStore
	doctors      repository.DoctorStore
	patients     repository.PatientStore
	availability *AvailabilityService

	// revalidateOnUpdate guards the reschedule path with the same slot check
	// as booking. Kept off by default to preserve the long-standing behavior
	// where updates bypass availability.
	revalidateOnUpdate bool
	log                *zap.Logger
}

func NewAppointmentService(
	appointments repository.AppointmentStore,
	doctors repository.DoctorStore,
	patients repository.PatientStore,
	availability *AvailabilityService,
	revalidateOnUpdate bool,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments:       appointments,
		doctors:            doctors,
		patients:           patients,
		availability:       availability,
		revalidateOnUpdate: revalidateOnUpdate,
		log:                log,
	}
}

// Book validates the requested slot and persists the appointment. Nothing is
// written when validation fails. The availability check races with other
// bookings; the unique index on (doctor_id, appointment_time) settles the
// race, and the duplicate-key error comes back as ErrSlotUnavailable.
func (s *AppointmentService) Book(subject string, appointment *models.Appointment) error {
	patient, err := s.patients.FindByEmail(subject)
	if err != nil {
		return ErrUnauthorized
	}
	appointment.PatientID = patient.PatientID
	appointment.PatientName = patient.Name

	if err := s.availability.ValidateBooking(appointment); err != nil {
		return err
	}

	appointment.Status = models.StatusBooked
	if err := s.appointments.Save(appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("saving appointment: %w", err)
	}

	s.log.Info("appointment booked",
		zap.Uint("appointment_id", appointment.AppointmentID),
		zap.Uint("doctor_id", appointment.DoctorID),
		zap.Time("time", appointment.AppointmentTime))
	return nil
}

// Update reschedules an existing appointment. The referenced doctor and
// patient must still exist. Slot availability is only re-checked when the
// service was built with revalidateOnUpdate.
func (s *AppointmentService) Update(appointment *models.Appointment) error {
	existing, err := s.appointments.FindByID(appointment.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("loading appointment: %w", err)
	}

	doctorOK, err := s.doctors.ExistsByID(appointment.DoctorID)
	if err != nil {
		return fmt.Errorf("checking doctor: %w", err)
	}
	patientOK, err := s.patients.ExistsByID(appointment.PatientID)
	if err != nil {
		return fmt.Errorf("checking patient: %w", err)
	}
	if !doctorOK || !patientOK {
		return ErrValidation
	}

	if s.revalidateOnUpdate {
		if err := s.availability.ValidateBooking(appointment); err != nil {
			return err
		}
	}

	if appointment.Status == "" {
		appointment.Status = existing.Status
	}
	if err := s.appointments.Save(appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("updating appointment: %w", err)
	}
	return nil
}

// Cancel deletes the appointment if and only if the token subject is the
// patient who owns it. A valid token for some other patient gets Forbidden.
func (s *AppointmentService) Cancel(id uint, subject string) error {
	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("loading appointment: %w", err)
	}

	patient, err := s.patients.FindByEmail(subject)
	if err != nil {
		return ErrUnauthorized
	}
	if patient.PatientID != appointment.PatientID {
		return ErrForbidden
	}

	if err := s.appointments.Delete(id); err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	s.log.Info("appointment cancelled", zap.Uint("appointment_id", id))
	return nil
}

// ListForDoctor lists the appointments of the doctor identified by the token
// subject for one calendar date, optionally filtered by a case-insensitive
// substring of the patient name.
func (s *AppointmentService) ListForDoctor(subject string, date time.Time, patientName string) ([]models.Appointment, error) {
	doctor, err := s.doctors.FindByEmail(subject)
	if err != nil {
		return nil, ErrUnauthorized
	}

	start, end := DayBounds(date)
	appointments, err := s.appointments.FindByDoctorIDAndTimeBetween(doctor.DoctorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	if patientName == "" {
		return appointments, nil
	}
	needle := strings.ToLower(patientName)
	filtered := make([]models.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if strings.Contains(strings.ToLower(appt.PatientName), needle) {
			filtered = append(filtered, appt)
		}
	}
	return filtered, nil
}
