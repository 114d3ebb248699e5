package services

import (
	"bytes"
	"html/template"
	"log"
	"time"
)

// logMailService stands in for SMTP when no transport is configured.
// The message preview is written to the log instead of being delivered,
// which keeps local setups and tests independent of a mail server.
type logMailService struct {
	appName string
	textTpl *template.Template
}

func NewLogMailService(appName string) IMailService {
	return &logMailService{
		appName: appName,
		textTpl: template.Must(template.New("mailText").Parse(mailTextTemplate)),
	}
}

func (s *logMailService) SendTripConfirmationRequest(
	toName, toEmail, destination string,
	startsAt, endsAt time.Time,
	confirmURL string,
) error {
	subject, data := tripConfirmationEmail(s.appName, toName, destination, startsAt, endsAt, confirmURL)
	return s.preview(toEmail, subject, data)
}

func (s *logMailService) SendParticipantInvite(
	toEmail, destination string,
	startsAt, endsAt time.Time,
	confirmURL string,
) error {
	subject, data := participantInviteEmail(s.appName, destination, startsAt, endsAt, confirmURL)
	return s.preview(toEmail, subject, data)
}

func (s *logMailService) preview(to, subject string, data EmailData) error {
	var tb bytes.Buffer
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	log.Printf("mail preview (to=%s, subject=%q):\n%s", to, subject, tb.String())
	return nil
}
