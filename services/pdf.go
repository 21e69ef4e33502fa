package services

import (
	"bytes"
	"fmt"

	"hms-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// prescriptionPDF renders the prescription copy mailed to the patient.
func prescriptionPDF(appointment *models.Appointment, doctor *models.Doctor, patient *models.Patient, prescription *models.Prescription) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Doctor Prescription", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdfDetail(pdf, "Doctor Name:", doctor.Name, true)
	pdfDetail(pdf, "Specialty:", doctor.Specialty, false)

	pdf.SetY(pdf.GetY() + 10)
	pdfDetail(pdf, "Patient Name:", patient.Name, true)
	pdfDetail(pdf, "Appointment Date:", appointment.AppointmentTime.Format("2006-01-02"), false)
	pdfDetail(pdf, "Time Slot:", appointment.AppointmentTime.Format("15:04"), false)

	pdf.SetY(pdf.GetY() + 10)
	pdfDetail(pdf, "Prescription ID:", prescription.ID, true)
	pdfDetail(pdf, "Medication:", prescription.Medication, false)
	pdfDetail(pdf, "Dosage:", prescription.Dosage, false)
	if prescription.DoctorNotes != "" {
		pdfDetail(pdf, "Notes:", prescription.DoctorNotes, false)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, "Follow the instructions given by the doctor properly.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 12)
	}
	pdf.CellFormat(0, 10, label, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "", 1, "", false, 0, "")
}
