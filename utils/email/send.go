package email

import (
	"errors"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp server is not configured")

func newMessage(from, to, subject, htmlContent string) *gomail.Message {
	msg := gomail.NewMessage()

	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	msg.SetBody("text/html", htmlContent)
	return msg
}

func SendHtml(email string, subject string, htmlContent string) error {
	if !Enabled() {
		return ErrNotConfigured
	}
	cfg := getConfig()

	msg := newMessage(cfg.SMTP.UserName, email, subject, htmlContent)

	dialer := gomail.NewDialer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.UserName,
		cfg.SMTP.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	return nil
}
