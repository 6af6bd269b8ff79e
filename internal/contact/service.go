package contact

import (
	"fmt"
	"log"
	"net/smtp"

	"facevoice-api/config"

	"gorm.io/gorm"
)

type ContactService struct {
	DB  *gorm.DB
	CFG *config.Config
}

var sendMail = smtp.SendMail

// Submit stores the message and then sends a notification mail. The mail
// is best-effort: once the message is persisted, an SMTP failure is
// logged but does not fail the request.
func (s *ContactService) Submit(req SubmitContactRequest) (*ContactMessage, error) {
	msg := ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}

	if err := s.notify(msg); err != nil {
		log.Printf("Failed to send contact notification: %v", err)
	}
	return &msg, nil
}

func (s *ContactService) notify(msg ContactMessage) error {
	from := s.CFG.GmailUser
	password := s.CFG.GmailPass
	if from == "" || password == "" {
		return fmt.Errorf("mail credentials not configured")
	}

	to := []string{from}
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	subject := fmt.Sprintf("Contact form message from %s", msg.Name)
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s <%s> wrote:\r\n\r\n%s\r\n",
		from, to[0], subject, msg.Name, msg.Email, msg.Message,
	)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return sendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(body))
}
