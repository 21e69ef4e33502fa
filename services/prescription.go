package services

import (
	"errors"
	"fmt"

	"hms-backend/models"
	"hms-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PrescriptionMailer is the slice of the mailer the prescription flow needs.
type PrescriptionMailer interface {
	SendPrescription(to, body, attachmentName string, attachmentData []byte) error
}

// PrescriptionService records prescriptions written by doctors after an
// appointment and mails a PDF copy to the patient.
type PrescriptionService struct {
	prescriptions repository.PrescriptionStore
	appointments  repository.AppointmentStore
	patients      repository.PatientStore
	doctors       repository.DoctorStore
	mailer        PrescriptionMailer
	log           *zap.Logger
}

func NewPrescriptionService(
	prescriptions repository.PrescriptionStore,
	appointments repository.AppointmentStore,
	patients repository.PatientStore,
	doctors repository.DoctorStore,
	mailer PrescriptionMailer,
	log *zap.Logger,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		appointments:  appointments,
		patients:      patients,
		doctors:       doctors,
		mailer:        mailer,
		log:           log,
	}
}

// Save validates and persists a prescription against an existing appointment,
// then mails the PDF copy. Mail delivery is best effort: a failed send is
// logged, not surfaced, since the prescription is already on record.
func (s *PrescriptionService) Save(prescription *models.Prescription) error {
	if err := validate.Struct(prescription); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	appointment, err := s.appointments.FindByID(prescription.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("loading appointment: %w", err)
	}

	prescription.ID = uuid.NewString()
	if err := s.prescriptions.Save(prescription); err != nil {
		return fmt.Errorf("saving prescription: %w", err)
	}
	s.log.Info("prescription saved",
		zap.String("prescription_id", prescription.ID),
		zap.Uint("appointment_id", prescription.AppointmentID))

	s.mailCopy(appointment, prescription)
	return nil
}

// GetByAppointment returns the prescriptions written for an appointment.
func (s *PrescriptionService) GetByAppointment(appointmentID uint) ([]models.Prescription, error) {
	prescriptions, err := s.prescriptions.FindByAppointmentID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("loading prescriptions: %w", err)
	}
	if len(prescriptions) == 0 {
		return nil, ErrNotFound
	}
	return prescriptions, nil
}

func (s *PrescriptionService) mailCopy(appointment *models.Appointment, prescription *models.Prescription) {
	patient, err := s.patients.FindByID(appointment.PatientID)
	if err != nil {
		s.log.Warn("prescription mail skipped: patient lookup failed", zap.Error(err))
		return
	}
	doctor, err := s.doctors.FindByID(appointment.DoctorID)
	if err != nil {
		s.log.Warn("prescription mail skipped: doctor lookup failed", zap.Error(err))
		return
	}

	pdf, err := prescriptionPDF(appointment, doctor, patient, prescription)
	if err != nil {
		s.log.Warn("prescription pdf generation failed", zap.Error(err))
		return
	}
	if err := s.mailer.SendPrescription(patient.Email, "Your prescription is attached.", "prescription.pdf", pdf); err != nil {
		s.log.Warn("prescription mail failed", zap.Error(err))
	}
}
