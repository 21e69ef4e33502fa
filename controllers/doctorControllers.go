package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hms-backend/models"
	"hms-backend/services"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	doctors      *services.DoctorService
	availability *services.AvailabilityService
}

func NewDoctorController(doctors *services.DoctorService, availability *services.AvailabilityService) *DoctorController {
	return &DoctorController{doctors: doctors, availability: availability}
}

// Login handles doctor login by email.
func (ctl *DoctorController) Login(c *gin.Context) {
	var login models.Login
	if err := c.BindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.doctors.Login(login)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// List returns all doctors.
func (ctl *DoctorController) List(c *gin.Context) {
	doctors, err := ctl.doctors.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// Filter searches doctors by name, specialty and AM/PM availability, all
// optional query parameters.
func (ctl *DoctorController) Filter(c *gin.Context) {
	doctors, err := ctl.doctors.Filter(c.Query("name"), c.Query("specialty"), c.Query("time"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// AvailableSlots returns a doctor's free slots for a date.
func (ctl *DoctorController) AvailableSlots(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("doctor_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	slots, err := ctl.availability.FreeSlots(uint(doctorID), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":                 c.Query("date"),
		"available_time_slots": slots,
	})
}

// Save registers a new doctor. Admin only.
func (ctl *DoctorController) Save(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.doctors.Save(&doctor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Doctor added to db"})
}

// Update replaces a doctor record. Admin only.
func (ctl *DoctorController) Update(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.doctors.Update(&doctor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor updated"})
}

// Delete removes a doctor and cascades to their appointments. Admin only.
func (ctl *DoctorController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	if err := ctl.doctors.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}
