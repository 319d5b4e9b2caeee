package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"gopkg.in/mail.v2"
)

type SMTPMailer struct {
	fromEmail string
	dialer    *mail.Dialer
	backoff   time.Duration
}

func NewSMTPMailer(host string, port int, username, password, fromEmail string) (*SMTPMailer, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}
	if fromEmail == "" {
		return nil, errors.New("from email is required")
	}

	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 10 * time.Second

	return &SMTPMailer{
		fromEmail: fromEmail,
		dialer:    dialer,
		backoff:   time.Second,
	}, nil
}

// Render executes the "subject" and "body" blocks of a template.
func Render(templateFile string, data any) (subject, body string, err error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", err
	}

	s := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(s, "subject", data); err != nil {
		return "", "", err
	}

	b := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(b, "body", data); err != nil {
		return "", "", err
	}
	return s.String(), b.String(), nil
}

func (m *SMTPMailer) Send(templateFile, username, email string, data any) (int, error) {
	subject, body, err := Render(templateFile, data)
	if err != nil {
		return -1, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.fromEmail, FromName))
	msg.SetHeader("To", msg.FormatAddress(email, username))
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	for i := 0; i < maxRetires; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			return http.StatusOK, nil
		}
		// exponential backoff
		time.Sleep(m.backoff * time.Duration(1<<i))
	}

	return -1, fmt.Errorf("failed to send email after %d attempts, error: %v", maxRetires, err)
}
