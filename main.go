package main

import (
	"log"

	"hms-backend/authentication"
	"hms-backend/configuration"
	"hms-backend/controllers"
	"hms-backend/mail"
	"hms-backend/repository"
	"hms-backend/routes"
	"hms-backend/services"
)

func main() {
	cfg, err := configuration.Load()
	if err != nil {
		log.Fatal("configuration error: ", err)
	}

	logger, err := configuration.NewLogger()
	if err != nil {
		log.Fatal("logger error: ", err)
	}
	defer logger.Sync()

	db, err := configuration.ConfigDB(cfg)
	if err != nil {
		log.Fatal("database error: ", err)
	}

	cache, err := configuration.InitRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis error: ", err)
	}

	admins := repository.NewAdminRepository(db)
	doctors := repository.NewDoctorRepository(db)
	patients := repository.NewPatientRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	prescriptions := repository.NewPrescriptionRepository(db)

	tokens := authentication.NewTokenService(cfg.JWTSecret, admins, doctors, patients)
	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPass)

	availability := services.NewAvailabilityService(doctors, appointments)
	appointmentSvc := services.NewAppointmentService(appointments, doctors, patients, availability, cfg.RevalidateOnUpdate, logger)
	doctorSvc := services.NewDoctorService(doctors, appointments, tokens, logger)
	patientSvc := services.NewPatientService(patients, doctors, appointments, tokens, cache, mailer, logger)
	adminSvc := services.NewAdminService(admins, tokens, logger)
	prescriptionSvc := services.NewPrescriptionService(prescriptions, appointments, patients, doctors, mailer, logger)

	r := routes.SetupRouter(routes.Controllers{
		Admin:        controllers.NewAdminController(adminSvc),
		Doctor:       controllers.NewDoctorController(doctorSvc, availability),
		Patient:      controllers.NewPatientController(patientSvc),
		Appointment:  controllers.NewAppointmentController(appointmentSvc),
		Prescription: controllers.NewPrescriptionController(prescriptionSvc),
	}, tokens)

	addr := ":8080"
	if cfg.Port != "" {
		addr = ":" + cfg.Port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
