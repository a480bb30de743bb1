package mailer

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"text/template"
	"time"

	mail "github.com/go-mail/mail/v2"
)

//go:embed templates
var templateFS embed.FS

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

type SMTPMailer struct {
	dialer *mail.Dialer
	sender string
}

func NewSMTPMailer(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		dialer: dialer,
		sender: sender,
	}
}

// Send renders the named template and delivers it. Templates define three
// sections: subject, plainBody and htmlBody.
func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	subject, plainBody, htmlBody, err := renderTemplate(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// renderTemplate renders all three sections of an email template. The HTML
// part goes through html/template so template data is escaped.
func renderTemplate(templateFile string, data any) (subject, plainBody, htmlBody string, err error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", "", err
	}

	subjectBuf := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(subjectBuf, "subject", data)
	if err != nil {
		return "", "", "", err
	}

	plainBuf := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(plainBuf, "plainBody", data)
	if err != nil {
		return "", "", "", err
	}

	htmlTmpl, err := htmltemplate.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", "", err
	}

	htmlBuf := new(bytes.Buffer)
	err = htmlTmpl.ExecuteTemplate(htmlBuf, "htmlBody", data)
	if err != nil {
		return "", "", "", err
	}

	return subjectBuf.String(), plainBuf.String(), htmlBuf.String(), nil
}
