package controllers

import (
	"net/http"
	"strconv"

	"hms-backend/authentication"
	"hms-backend/models"
	"hms-backend/services"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	patients *services.PatientService
}

func NewPatientController(patients *services.PatientService) *PatientController {
	return &PatientController{patients: patients}
}

// Signup stages a new patient and sends the verification code.
func (ctl *PatientController) Signup(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.patients.Signup(&patient); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent. Proceed to verification."})
}

// Verify confirms the signup code and creates the patient record.
func (ctl *PatientController) Verify(c *gin.Context) {
	var req models.VerifyOTP
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Otp == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP is required"})
		return
	}

	if err := ctl.patients.VerifyOTP(req.Email, req.Otp); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful"})
}

// Login handles patient login by email.
func (ctl *PatientController) Login(c *gin.Context) {
	var login models.Login
	if err := c.BindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.patients.Login(login)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// Details returns the authenticated patient's record.
func (ctl *PatientController) Details(c *gin.Context) {
	patient, err := ctl.patients.Details(c.GetString(authentication.SubjectKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// Appointments lists the authenticated patient's appointments.
func (ctl *PatientController) Appointments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	appointments, err := ctl.patients.Appointments(c.GetString(authentication.SubjectKey), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// FilterAppointments narrows the patient's appointments by past/future
// condition and/or doctor name.
func (ctl *PatientController) FilterAppointments(c *gin.Context) {
	appointments, err := ctl.patients.FilterAppointments(
		c.GetString(authentication.SubjectKey),
		c.Query("condition"),
		c.Query("doctor"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}
