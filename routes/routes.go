package routes

import (
	"hms-backend/authentication"
	"hms-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles the handler sets the router wires up.
type Controllers struct {
	Admin        *controllers.AdminController
	Doctor       *controllers.DoctorController
	Patient      *controllers.PatientController
	Appointment  *controllers.AppointmentController
	Prescription *controllers.PrescriptionController
}

// SetupRouter registers every route. All mutating and role-scoped reads sit
// behind RequireRole for the matching role.
func SetupRouter(ctl Controllers, tokens *authentication.TokenService) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// public
	r.POST("/admin/login", ctl.Admin.Login)
	r.POST("/doctor/login", ctl.Doctor.Login)
	r.POST("/patient/signup", ctl.Patient.Signup)
	r.POST("/patient/verify", ctl.Patient.Verify)
	r.POST("/patient/login", ctl.Patient.Login)
	r.GET("/doctors", ctl.Doctor.List)
	r.GET("/doctors/filter", ctl.Doctor.Filter)

	patient := r.Group("/patient")
	patient.Use(authentication.RequireRole(tokens, authentication.RolePatient))
	{
		patient.GET("/profile", ctl.Patient.Details)
		patient.GET("/appointments/:id", ctl.Patient.Appointments)
		patient.GET("/appointments", ctl.Patient.FilterAppointments)
		patient.POST("/book/appointment", ctl.Appointment.Book)
		patient.PUT("/update/appointment", ctl.Appointment.Update)
		patient.DELETE("/cancel/appointment/:id", ctl.Appointment.Cancel)
		patient.GET("/doctors/:doctor_id/available-slots", ctl.Doctor.AvailableSlots)
	}

	doctor := r.Group("/doctor")
	doctor.Use(authentication.RequireRole(tokens, authentication.RoleDoctor))
	{
		doctor.GET("/appointments", ctl.Appointment.ListForDoctor)
		doctor.GET("/availability/:doctor_id", ctl.Doctor.AvailableSlots)
		doctor.POST("/add/prescription", ctl.Prescription.Save)
		doctor.GET("/prescription/:appointment_id", ctl.Prescription.GetByAppointment)
	}

	admin := r.Group("/admin")
	admin.Use(authentication.RequireRole(tokens, authentication.RoleAdmin))
	{
		admin.POST("/add/doctor", ctl.Doctor.Save)
		admin.PUT("/update/doctor", ctl.Doctor.Update)
		admin.DELETE("/remove/doctor/:id", ctl.Doctor.Delete)
	}

	return r
}
