package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hms-backend/authentication"
	"hms-backend/models"
	"hms-backend/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// Book creates an appointment for the authenticated patient.
func (ctl *AppointmentController) Book(c *gin.Context) {
	var appointment models.Appointment
	if err := c.BindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.appointments.Book(c.GetString(authentication.SubjectKey), &appointment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment booked successfully", "appointment": appointment})
}

// Update reschedules an existing appointment.
func (ctl *AppointmentController) Update(c *gin.Context) {
	var appointment models.Appointment
	if err := c.BindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.appointments.Update(&appointment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

// Cancel deletes an appointment owned by the authenticated patient.
func (ctl *AppointmentController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := ctl.appointments.Cancel(uint(id), c.GetString(authentication.SubjectKey)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

// ListForDoctor lists the authenticated doctor's appointments for a date,
// optionally filtered by patient name.
func (ctl *AppointmentController) ListForDoctor(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	appointments, err := ctl.appointments.ListForDoctor(
		c.GetString(authentication.SubjectKey),
		date,
		c.Query("patient_name"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}
