package utils

import (
	"fmt"
	"log"
	"net/smtp"

	config "github.com/yantrika/yantrika-backend-go/config"
	models "github.com/yantrika/yantrika-backend-go/models"
)

// NotifyAdmin emails the configured admin address about a new contact
// message. When SMTP_HOST or ADMIN_EMAIL is missing the send is skipped
// with a log line and nil is returned: the notification is advisory and
// the persisted message is the source of truth.
func NotifyAdmin(cfg *config.Config, m models.Message) error {
	if cfg.SMTPHost == "" || cfg.AdminEmail == "" {
		log.Println("SMTP not configured, skipping contact notification")
		return nil
	}

	subject := "New message: " + m.Subject
	body := fmt.Sprintf("You've got a new message from %s <%s>:\r\n\r\n%s\r\n", m.Name, m.Email, m.Message)

	msg := []byte("To: " + cfg.AdminEmail + "\r\n" +
		"From: Yantrika Site <" + cfg.SMTPUser + ">\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, cfg.SMTPUser, []string{cfg.AdminEmail}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Printf("contact notification sent to %s", cfg.AdminEmail)
	return nil
}
