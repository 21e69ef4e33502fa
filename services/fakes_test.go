package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hms-backend/models"

	"gorm.io/gorm"
)

// In-memory stores backing the service tests. The appointment store enforces
// the same (doctor, time) uniqueness the real schema does.

type fakeDoctorStore struct {
	mu      sync.Mutex
	doctors map[uint]*models.Doctor
	nextID  uint
}

func newFakeDoctorStore(doctors ...*models.Doctor) *fakeDoctorStore {
	s := &fakeDoctorStore{doctors: make(map[uint]*models.Doctor), nextID: 1}
	for _, d := range doctors {
		s.Save(d)
	}
	return s
}

func (s *fakeDoctorStore) FindByID(id uint) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.doctors[id]; ok {
		copy := *d
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeDoctorStore) FindByEmail(email string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.doctors {
		if d.Email == email {
			copy := *d
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeDoctorStore) ExistsByID(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.doctors[id]
	return ok, nil
}

func (s *fakeDoctorStore) Save(doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doctor.DoctorID == 0 {
		doctor.DoctorID = s.nextID
		s.nextID++
	}
	copy := *doctor
	s.doctors[doctor.DoctorID] = &copy
	return nil
}

func (s *fakeDoctorStore) DeleteByID(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.doctors, id)
	return nil
}

func (s *fakeDoctorStore) FindAll() ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Doctor
	for _, d := range s.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (s *fakeDoctorStore) FindByNameLike(name string) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Doctor
	for _, d := range s.doctors {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(name)) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *fakeDoctorStore) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Doctor
	for _, d := range s.doctors {
		if strings.EqualFold(d.Specialty, specialty) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *fakeDoctorStore) FindByNameLikeAndSpecialty(name, specialty string) ([]models.Doctor, error) {
	byName, _ := s.FindByNameLike(name)
	var out []models.Doctor
	for _, d := range byName {
		if strings.EqualFold(d.Specialty, specialty) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakePatientStore struct {
	mu       sync.Mutex
	patients map[uint]*models.Patient
	nextID   uint
}

func newFakePatientStore(patients ...*models.Patient) *fakePatientStore {
	s := &fakePatientStore{patients: make(map[uint]*models.Patient), nextID: 1}
	for _, p := range patients {
		s.Save(p)
	}
	return s
}

func (s *fakePatientStore) FindByID(id uint) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.patients[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakePatientStore) FindByEmail(email string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.Email == email {
			copy := *p
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakePatientStore) FindByEmailOrPhone(email, phone string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.Email == email || p.Phone == phone {
			copy := *p
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakePatientStore) ExistsByID(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.patients[id]
	return ok, nil
}

func (s *fakePatientStore) Save(patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patient.PatientID == 0 {
		patient.PatientID = s.nextID
		s.nextID++
	}
	copy := *patient
	s.patients[patient.PatientID] = &copy
	return nil
}

type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments map[uint]*models.Appointment
	nextID       uint

	// staleReads makes listings return nothing, simulating a racing reader
	// whose availability check passed before a concurrent insert landed.
	staleReads bool
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{appointments: make(map[uint]*models.Appointment), nextID: 1}
}

func slotKey(a *models.Appointment) string {
	return fmt.Sprintf("%d|%s", a.DoctorID, a.AppointmentTime.Format(time.RFC3339))
}

func (s *fakeAppointmentStore) FindByID(id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.appointments[id]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAppointmentStore) Save(appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.appointments {
		if id != appointment.AppointmentID && slotKey(existing) == slotKey(appointment) {
			return gorm.ErrDuplicatedKey
		}
	}
	if appointment.AppointmentID == 0 {
		appointment.AppointmentID = s.nextID
		s.nextID++
	}
	copy := *appointment
	s.appointments[appointment.AppointmentID] = &copy
	return nil
}

func (s *fakeAppointmentStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.appointments, id)
	return nil
}

func (s *fakeAppointmentStore) FindByDoctorIDAndTimeBetween(doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staleReads {
		return nil, nil
	}
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.DoctorID == doctorID && !a.AppointmentTime.Before(start) && a.AppointmentTime.Before(end) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAppointmentStore) FindByPatientID(patientID uint) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAppointmentStore) DeleteAllByDoctorID(doctorID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.appointments {
		if a.DoctorID == doctorID {
			delete(s.appointments, id)
		}
	}
	return nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
}

func newFakeAdminStore(admins ...*models.Admin) *fakeAdminStore {
	s := &fakeAdminStore{admins: make(map[string]*models.Admin)}
	for _, a := range admins {
		s.admins[a.Username] = a
	}
	return s
}

func (s *fakeAdminStore) FindByUsername(username string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.admins[username]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeAdminStore) Save(admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *admin
	s.admins[admin.Username] = &copy
	return nil
}

type fakePrescriptionStore struct {
	mu            sync.Mutex
	prescriptions map[string]*models.Prescription
}

func newFakePrescriptionStore() *fakePrescriptionStore {
	return &fakePrescriptionStore{prescriptions: make(map[string]*models.Prescription)}
}

func (s *fakePrescriptionStore) Save(prescription *models.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *prescription
	s.prescriptions[prescription.ID] = &copy
	return nil
}

func (s *fakePrescriptionStore) FindByAppointmentID(appointmentID uint) ([]models.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Prescription
	for _, p := range s.prescriptions {
		if p.AppointmentID == appointmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeMailer struct {
	mu            sync.Mutex
	otps          map[string]string
	prescriptions []string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{otps: make(map[string]string)}
}

func (m *fakeMailer) SendOTP(to, otp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps[to] = otp
	return nil
}

func (m *fakeMailer) SendPrescription(to, body, attachmentName string, attachmentData []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prescriptions = append(m.prescriptions, to)
	return nil
}
