package mail

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// Mailer sends transactional mail (signup OTPs, prescription copies) over SMTP.
type Mailer struct {
	host     string
	port     int
	email    string
	password string
}

func New(host string, port int, email, password string) *Mailer {
	return &Mailer{host: host, port: port, email: email, password: password}
}

// SendOTP mails a signup verification code to the given address.
func (m *Mailer) SendOTP(to, otp string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.email)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Signup verification code")
	msg.SetBody("text/plain", "Your verification code is "+otp)

	d := gomail.NewDialer(m.host, m.port, m.email, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

// SendPrescription mails the prescription PDF to the patient.
func (m *Mailer) SendPrescription(to, body string, attachmentName string, attachmentData []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.email)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your prescription")
	msg.SetBody("text/plain", body)

	msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))

	d := gomail.NewDialer(m.host, m.port, m.email, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
