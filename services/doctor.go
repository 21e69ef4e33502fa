package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hms-backend/authentication"
	"hms-backend/models"
	"hms-backend/repository"

	"github.com/go-playground/validator"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validate = validator.New()

// DoctorService covers the admin-managed doctor lifecycle, doctor login, and
// the public doctor search filters.
type DoctorService struct {
	doctors      repository.DoctorStore
	appointments repository.AppointmentStore
	tokens       *authentication.TokenService
	log          *zap.Logger
}

func NewDoctorService(doctors repository.DoctorStore, appointments repository.AppointmentStore, tokens *authentication.TokenService, log *zap.Logger) *DoctorService {
	return &DoctorService{doctors: doctors, appointments: appointments, tokens: tokens, log: log}
}

// Save registers a new doctor. Email is the identity credential and must be
// unique.
func (s *DoctorService) Save(doctor *models.Doctor) error {
	if err := validate.Struct(doctor); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.doctors.FindByEmail(doctor.Email); err == nil {
		return ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking doctor email: %w", err)
	}

	hashed, err := hashPassword(doctor.Password)
	if err != nil {
		return err
	}
	doctor.Password = hashed

	if err := s.doctors.Save(doctor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("saving doctor: %w", err)
	}
	s.log.Info("doctor registered", zap.Uint("doctor_id", doctor.DoctorID))
	return nil
}

// Update replaces an existing doctor record.
func (s *DoctorService) Update(doctor *models.Doctor) error {
	ok, err := s.doctors.ExistsByID(doctor.DoctorID)
	if err != nil {
		return fmt.Errorf("checking doctor: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.doctors.Save(doctor); err != nil {
		return fmt.Errorf("updating doctor: %w", err)
	}
	return nil
}

// Delete removes a doctor and cascades to every appointment booked with them.
func (s *DoctorService) Delete(id uint) error {
	ok, err := s.doctors.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("checking doctor: %w", err)
	}
	if !ok {
		return ErrNotFound
	}

	if err := s.appointments.DeleteAllByDoctorID(id); err != nil {
		return fmt.Errorf("deleting doctor appointments: %w", err)
	}
	if err := s.doctors.DeleteByID(id); err != nil {
		return fmt.Errorf("deleting doctor: %w", err)
	}
	s.log.Info("doctor deleted", zap.Uint("doctor_id", id))
	return nil
}

// List returns all doctors.
func (s *DoctorService) List() ([]models.Doctor, error) {
	doctors, err := s.doctors.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	return doctors, nil
}

// Login checks the doctor's credentials and issues a token with the email as
// subject.
func (s *DoctorService) Login(login models.Login) (string, error) {
	doctor, err := s.doctors.FindByEmail(login.Identifier)
	if err != nil {
		return "", ErrUnauthorized
	}
	if !checkPassword(doctor.Password, login.Password) {
		return "", ErrUnauthorized
	}
	return s.tokens.Issue(doctor.Email)
}

// Filter searches doctors by any combination of partial name, specialty and
// availability period ("AM"/"PM"). Empty arguments are ignored; with nothing
// set it lists everyone.
func (s *DoctorService) Filter(name, specialty, amOrPm string) ([]models.Doctor, error) {
	var (
		doctors []models.Doctor
		err     error
	)
	switch {
	case name != "" && specialty != "":
		doctors, err = s.doctors.FindByNameLikeAndSpecialty(name, specialty)
	case name != "":
		doctors, err = s.doctors.FindByNameLike(name)
	case specialty != "":
		doctors, err = s.doctors.FindBySpecialty(specialty)
	default:
		doctors, err = s.doctors.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("filtering doctors: %w", err)
	}
	return filterDoctorsByPeriod(doctors, amOrPm), nil
}

// filterDoctorsByPeriod keeps doctors with at least one template slot in the
// requested half of the day.
func filterDoctorsByPeriod(doctors []models.Doctor, amOrPm string) []models.Doctor {
	if amOrPm == "" {
		return doctors
	}
	wantAM := strings.EqualFold(amOrPm, "AM")
	filtered := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		slots := d.AvailableTimes
		if len(slots) == 0 {
			for h := templateStartHour; h <= templateEndHour; h++ {
				slots = append(slots, fmt.Sprintf("%02d:00", h))
			}
		}
		for _, slot := range slots {
			h := hourOfSlot(slot)
			if h < 0 {
				continue
			}
			if (h < 12) == wantAM {
				filtered = append(filtered, d)
				break
			}
		}
	}
	return filtered
}

func hourOfSlot(slot string) int {
	parts := strings.SplitN(slot, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return h
}
