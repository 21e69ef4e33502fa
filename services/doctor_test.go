package services

import (
	"testing"

	"hms-backend/authentication"
	"hms-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDoctorFixture(t *testing.T) (*DoctorService, *fakeDoctorStore, *fakeAppointmentStore, *authentication.TokenService) {
	t.Helper()
	doctors := newFakeDoctorStore()
	appointments := newFakeAppointmentStore()
	tokens := authentication.NewTokenService("test-secret", newFakeAdminStore(), doctors, newFakePatientStore())
	svc := NewDoctorService(doctors, appointments, tokens, zap.NewNop())
	return svc, doctors, appointments, tokens
}

func validDoctor() *models.Doctor {
	return &models.Doctor{
		Name:      "Dr. Grey",
		Specialty: "Cardiology",
		Email:     "grey@example.com",
		Password:  "s3cret pw",
		Phone:     "5550001111",
	}
}

func TestDoctorSaveHashesPassword(t *testing.T) {
	svc, doctors, _, _ := newDoctorFixture(t)

	doctor := validDoctor()
	require.NoError(t, svc.Save(doctor))

	saved, err := doctors.FindByID(doctor.DoctorID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret pw", saved.Password)
	assert.True(t, checkPassword(saved.Password, "s3cret pw"))
}

func TestDoctorSaveRejectsInvalid(t *testing.T) {
	svc, _, _, _ := newDoctorFixture(t)

	doctor := validDoctor()
	doctor.Phone = "not-a-phone"
	assert.ErrorIs(t, svc.Save(doctor), ErrValidation)
}

func TestDoctorSaveDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newDoctorFixture(t)

	require.NoError(t, svc.Save(validDoctor()))

	dup := validDoctor()
	dup.Name = "Dr. Someone Else"
	assert.ErrorIs(t, svc.Save(dup), ErrConflict)
}

func TestDoctorUpdateUnknown(t *testing.T) {
	svc, _, _, _ := newDoctorFixture(t)

	doctor := validDoctor()
	doctor.DoctorID = 42
	assert.ErrorIs(t, svc.Update(doctor), ErrNotFound)
}

func TestDoctorDeleteCascadesAppointments(t *testing.T) {
	svc, _, appointments, _ := newDoctorFixture(t)

	doctor := validDoctor()
	require.NoError(t, svc.Save(doctor))
	require.NoError(t, appointments.Save(&models.Appointment{
		DoctorID: doctor.DoctorID, PatientID: 1, AppointmentTime: testDate(10, 0),
	}))

	require.NoError(t, svc.Delete(doctor.DoctorID))

	remaining, err := appointments.FindByDoctorIDAndTimeBetween(doctor.DoctorID, testDate(0, 0), testDate(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDoctorDeleteUnknown(t *testing.T) {
	svc, _, _, _ := newDoctorFixture(t)

	assert.ErrorIs(t, svc.Delete(42), ErrNotFound)
}

func TestDoctorLogin(t *testing.T) {
	svc, _, _, tokens := newDoctorFixture(t)
	require.NoError(t, svc.Save(validDoctor()))

	token, err := svc.Login(models.Login{Identifier: "grey@example.com", Password: "s3cret pw"})
	require.NoError(t, err)
	assert.True(t, tokens.Verify(token, authentication.RoleDoctor))
	assert.False(t, tokens.Verify(token, authentication.RolePatient))
}

func TestDoctorLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newDoctorFixture(t)
	require.NoError(t, svc.Save(validDoctor()))

	_, err := svc.Login(models.Login{Identifier: "grey@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDoctorFilter(t *testing.T) {
	svc, doctors, _, _ := newDoctorFixture(t)
	require.NoError(t, doctors.Save(&models.Doctor{Name: "Dr. Grey", Specialty: "Cardiology", Email: "grey@example.com", AvailableTimes: []string{"09:00", "10:00"}}))
	require.NoError(t, doctors.Save(&models.Doctor{Name: "Dr. Shepherd", Specialty: "Neurology", Email: "shep@example.com", AvailableTimes: []string{"14:00", "15:00"}}))

	byName, err := svc.Filter("grey", "", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Dr. Grey", byName[0].Name)

	bySpecialty, err := svc.Filter("", "neurology", "")
	require.NoError(t, err)
	require.Len(t, bySpecialty, 1)
	assert.Equal(t, "Dr. Shepherd", bySpecialty[0].Name)

	morning, err := svc.Filter("", "", "AM")
	require.NoError(t, err)
	require.Len(t, morning, 1)
	assert.Equal(t, "Dr. Grey", morning[0].Name)

	afternoon, err := svc.Filter("", "", "pm")
	require.NoError(t, err)
	require.Len(t, afternoon, 1)
	assert.Equal(t, "Dr. Shepherd", afternoon[0].Name)

	all, err := svc.Filter("", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDoctorFilterDefaultTemplateCoversBothPeriods(t *testing.T) {
	svc, doctors, _, _ := newDoctorFixture(t)
	require.NoError(t, doctors.Save(&models.Doctor{Name: "Dr. Grey", Specialty: "Cardiology", Email: "grey@example.com"}))

	morning, err := svc.Filter("", "", "AM")
	require.NoError(t, err)
	assert.Len(t, morning, 1)

	afternoon, err := svc.Filter("", "", "PM")
	require.NoError(t, err)
	assert.Len(t, afternoon, 1)
}
