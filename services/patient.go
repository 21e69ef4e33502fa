package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms-backend/authentication"
	"hms-backend/models"
	"hms-backend/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pending signups expire from redis after this long.
const signupTTL = 5 * time.Minute

// OTPMailer is the slice of the mailer the patient flow needs.
type OTPMailer interface {
	SendOTP(to, otp string) error
}

// PatientService handles self-signup with email OTP verification, login, and
// the patient-facing appointment listings.
type PatientService struct {
	patients     repository.PatientStore
	doctors      repository.DoctorStore
	appointments repository.AppointmentStore
	tokens       *authentication.TokenService
	cache        *redis.Client
	mailer       OTPMailer
	log          *zap.Logger
}

func NewPatientService(
	patients repository.PatientStore,
	doctors repository.DoctorStore,
	appointments repository.AppointmentStore,
	tokens *authentication.TokenService,
	cache *redis.Client,
	mailer OTPMailer,
	log *zap.Logger,
) *PatientService {
	return &PatientService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		tokens:       tokens,
		cache:        cache,
		mailer:       mailer,
		log:          log,
	}
}

// Signup stages a new patient record in redis and mails a verification code.
// Nothing is persisted until VerifyOTP succeeds.
func (s *PatientService) Signup(patient *models.Patient) error {
	if err := validate.Struct(patient); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.patients.FindByEmailOrPhone(patient.Email, patient.Phone); err == nil {
		return ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking patient identity: %w", err)
	}

	hashed, err := hashPassword(patient.Password)
	if err != nil {
		return err
	}
	patient.Password = hashed

	data, err := json.Marshal(patient)
	if err != nil {
		return fmt.Errorf("marshalling pending patient: %w", err)
	}

	otp := authentication.GenerateOTP(6)
	ctx := context.Background()
	if err := s.cache.Set(ctx, pendingKey(patient.Email), data, signupTTL).Err(); err != nil {
		return fmt.Errorf("staging pending signup: %w", err)
	}
	if err := s.cache.Set(ctx, otpKey(patient.Email), otp, signupTTL).Err(); err != nil {
		return fmt.Errorf("staging signup otp: %w", err)
	}

	if err := s.mailer.SendOTP(patient.Email, otp); err != nil {
		return fmt.Errorf("sending otp mail: %w", err)
	}
	return nil
}

// VerifyOTP checks the submitted code against the staged one and, on success,
// creates the patient.
func (s *PatientService) VerifyOTP(email, otp string) error {
	ctx := context.Background()
	expected, err := s.cache.Get(ctx, otpKey(email)).Result()
	if err != nil {
		return ErrUnauthorized
	}
	if !authentication.ValidateOTP(otp, expected) {
		return ErrUnauthorized
	}

	data, err := s.cache.Get(ctx, pendingKey(email)).Result()
	if err != nil {
		return ErrUnauthorized
	}
	var patient models.Patient
	if err := json.Unmarshal([]byte(data), &patient); err != nil {
		return fmt.Errorf("unmarshalling pending patient: %w", err)
	}

	if err := s.patients.Save(&patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("saving patient: %w", err)
	}

	s.cache.Del(ctx, otpKey(email), pendingKey(email))
	s.log.Info("patient registered", zap.Uint("patient_id", patient.PatientID))
	return nil
}

// Login checks the patient's credentials and issues a token with the email as
// subject.
func (s *PatientService) Login(login models.Login) (string, error) {
	patient, err := s.patients.FindByEmail(login.Identifier)
	if err != nil {
		return "", ErrUnauthorized
	}
	if !checkPassword(patient.Password, login.Password) {
		return "", ErrUnauthorized
	}
	return s.tokens.Issue(patient.Email)
}

// Details resolves the token subject to the patient record.
func (s *PatientService) Details(subject string) (*models.Patient, error) {
	patient, err := s.patients.FindByEmail(subject)
	if err != nil {
		return nil, ErrUnauthorized
	}
	patient.Password = ""
	return patient, nil
}

// Appointments lists the appointments of the patient identified by the token
// subject. The path id must match the subject's own id.
func (s *PatientService) Appointments(subject string, id uint) ([]models.Appointment, error) {
	patient, err := s.patients.FindByEmail(subject)
	if err != nil || patient.PatientID != id {
		return nil, ErrUnauthorized
	}
	appointments, err := s.appointments.FindByPatientID(id)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}

// FilterAppointments narrows the patient's appointments by condition
// ("past"/"future") and/or the treating doctor's name. At least one criterion
// must be present.
func (s *PatientService) FilterAppointments(subject, condition, doctorName string) ([]models.Appointment, error) {
	if condition == "" && doctorName == "" {
		return nil, ErrValidation
	}

	patient, err := s.patients.FindByEmail(subject)
	if err != nil {
		return nil, ErrUnauthorized
	}
	appointments, err := s.appointments.FindByPatientID(patient.PatientID)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	if doctorName != "" {
		matching, err := s.doctors.FindByNameLike(doctorName)
		if err != nil {
			return nil, fmt.Errorf("resolving doctor filter: %w", err)
		}
		ids := make(map[uint]bool, len(matching))
		for _, d := range matching {
			ids[d.DoctorID] = true
		}
		kept := appointments[:0]
		for _, appt := range appointments {
			if ids[appt.DoctorID] {
				kept = append(kept, appt)
			}
		}
		appointments = kept
	}

	if condition != "" {
		past := strings.EqualFold(condition, "past")
		now := time.Now()
		kept := appointments[:0]
		for _, appt := range appointments {
			if appt.AppointmentTime.Before(now) == past {
				kept = append(kept, appt)
			}
		}
		appointments = kept
	}

	return appointments, nil
}

func pendingKey(email string) string { return "pending:" + email }
func otpKey(email string) string     { return "otp:" + email }
