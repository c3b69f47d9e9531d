package services

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/gomail.v2"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPDraftMailer sends rendered traites as PDF attachments.
type SMTPDraftMailer struct {
	sender mailSender
	from   string
}

func NewSMTPDraftMailer(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) *SMTPDraftMailer {
	return &SMTPDraftMailer{
		sender: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

func (s *SMTPDraftMailer) SendDrafts(to, subject, body string, attachments []Attachment) error {
	m := s.buildMessage(to, subject, body, attachments)
	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send drafts email: %w", err)
	}
	log.Printf("[mail][drafts] to=%s files=%d", to, len(attachments))
	return nil
}

func (s *SMTPDraftMailer) buildMessage(to, subject, body string, attachments []Attachment) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	for _, a := range attachments {
		data := a.Data
		m.Attach(a.Name,
			gomail.SetHeader(map[string][]string{"Content-Type": {`application/pdf; name="` + a.Name + `"`}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		)
	}
	return m
}
