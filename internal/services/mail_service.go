// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"planner/pkg/utils"
)

// IMailService dispatches the two confirmation emails of the trip
// workflow. Callers treat delivery as best effort: a failed send is
// logged by the workflow, never surfaced to the client.
type IMailService interface {
	SendTripConfirmationRequest(toName, toEmail, destination string, startsAt, endsAt time.Time, confirmURL string) error
	SendParticipantInvite(toEmail, destination string, startsAt, endsAt time.Time, confirmURL string) error
}

// SMTPConfig holds transport + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@planner.local"
	FromName   string // display name
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail when STARTTLS is not offered

	AppName string // used in subjects and footer
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("mailHTML").Parse(mailHTMLTemplate)),
		textTpl: template.Must(template.New("mailText").Parse(mailTextTemplate)),
	}
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendTripConfirmationRequest(
	toName, toEmail, destination string,
	startsAt, endsAt time.Time,
	confirmURL string,
) error {
	subject, data := tripConfirmationEmail(s.cfg.AppName, toName, destination, startsAt, endsAt, confirmURL)

	html, text, err := s.renderEmail(data)
	if err != nil {
		return err
	}
	return s.send(toEmail, subject, html, text)
}

func (s *smtpMailService) SendParticipantInvite(
	toEmail, destination string,
	startsAt, endsAt time.Time,
	confirmURL string,
) error {
	subject, data := participantInviteEmail(s.cfg.AppName, destination, startsAt, endsAt, confirmURL)

	html, text, err := s.renderEmail(data)
	if err != nil {
		return err
	}
	return s.send(toEmail, subject, html, text)
}

// ------------------- Message content -------------------

type EmailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

func tripConfirmationEmail(
	appName, ownerName, destination string,
	startsAt, endsAt time.Time,
	confirmURL string,
) (string, EmailData) {
	start := utils.FormatLongDate(startsAt)
	end := utils.FormatLongDate(endsAt)

	subject := fmt.Sprintf("Confirm your trip to %s on %s!", destination, start)
	return subject, EmailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"Hello %s! You requested the creation of a trip to %s from %s to %s. To confirm your trip, use the link below.",
			ownerName, destination, start, end,
		),
		ButtonURL: confirmURL,
		ButtonTxt: "Confirm trip",
		AppName:   appName,
		Year:      time.Now().Year(),
	}
}

func participantInviteEmail(
	appName, destination string,
	startsAt, endsAt time.Time,
	confirmURL string,
) (string, EmailData) {
	start := utils.FormatLongDate(startsAt)
	end := utils.FormatLongDate(endsAt)

	subject := fmt.Sprintf("Confirm your presence on the trip to %s on %s!", destination, start)
	return subject, EmailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"You have been invited to a trip to %s from %s to %s. To confirm your presence, use the link below.",
			destination, start, end,
		),
		ButtonURL: confirmURL,
		ButtonTxt: "Confirm presence",
		AppName:   appName,
		Year:      time.Now().Year(),
	}
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="font-family: sans-serif; font-size: 16px; line-height: 1.6; color: #1e293b;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px;">
    <p>{{.Intro}}</p>
    {{if .ButtonURL}}
      <p><a href="{{.ButtonURL}}" style="color: #2563eb; font-weight: 600;">{{.ButtonTxt}}</a></p>
      <p style="font-size: 13px; color: #64748b;">
        If the link does not open, copy and paste this address into your browser:<br>
        {{.ButtonURL}}
      </p>
    {{end}}
    <p>If you don't know what this email is about, just ignore it.</p>
    <p style="color: #64748b;">&mdash; {{.AppName}}, {{.Year}}</p>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}{{.ButtonTxt}}:
{{.ButtonURL}}
{{end}}
If you don't know what this email is about, just ignore it.

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	// Headers
	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	// Plaintext part
	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	// HTML part
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	// End
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err := s.transmit(c, auth, to, msg.Bytes()); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrMailDelivery, err)
		}
		return nil
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	if err := s.transmit(c, auth, to, msg.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMailDelivery, err)
	}
	return nil
}

func (s *smtpMailService) transmit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
