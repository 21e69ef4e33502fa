package controllers

import (
	"net/http"
	"strconv"

	"hms-backend/models"
	"hms-backend/services"

	"github.com/gin-gonic/gin"
)

type PrescriptionController struct {
	prescriptions *services.PrescriptionService
}

func NewPrescriptionController(prescriptions *services.PrescriptionService) *PrescriptionController {
	return &PrescriptionController{prescriptions: prescriptions}
}

// Save records a prescription for an appointment. Doctor only.
func (ctl *PrescriptionController) Save(c *gin.Context) {
	var prescription models.Prescription
	if err := c.BindJSON(&prescription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.prescriptions.Save(&prescription); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Prescription saved successfully", "prescription": prescription})
}

// GetByAppointment returns the prescriptions for an appointment. Doctor only.
func (ctl *PrescriptionController) GetByAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("appointment_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	prescriptions, err := ctl.prescriptions.GetByAppointment(uint(appointmentID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": prescriptions})
}
