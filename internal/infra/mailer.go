package infra

import (
	"fmt"
	"net/smtp"

	log "github.com/sirupsen/logrus"
)

type SMTPMailer struct {
	addr    string
	from    string
	enabled bool
}

func NewSMTPMailer(host, port, from string, enabled bool) *SMTPMailer {
	return &SMTPMailer{
		addr:    host + ":" + port,
		from:    from,
		enabled: enabled,
	}
}

func (m *SMTPMailer) Send(to, subject, body string, isHTML bool) bool {
	if !m.enabled {
		log.WithFields(log.Fields{
			"to":      to,
			"subject": subject,
		}).Info("email sending disabled, would have sent")
		return true
	}

	contentType := "text/plain"
	if isHTML {
		contentType = "text/html"
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: %s; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, contentType, body)

	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		log.WithFields(log.Fields{
			"to":    to,
			"error": err,
		}).Error("failed to send email")
		return false
	}

	log.WithField("to", to).Info("email sent")
	return true
}
