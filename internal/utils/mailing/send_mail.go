package mailing

import (
	"Foodgram-Backend/internal/utils"
	"fmt"
	"gopkg.in/gomail.v2"
	"strconv"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// VerificationBody renders the email-verification mail pointing at the
// verify endpoint with the signed token.
func VerificationBody(token string) string {
	cfg := LoadMailConfig()
	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", cfg.AppURL, token)
	return fmt.Sprintf(
		"<p>Welcome to Foodgram!</p><p>Confirm your email by following <a href=%q>this link</a>.</p>",
		link,
	)
}

// ResetPasswordBody renders the password-reset mail with the one-time token.
func ResetPasswordBody(token string) string {
	return fmt.Sprintf(
		"<p>A password reset was requested for your Foodgram account.</p>"+
			"<p>Use this token to set a new password: <b>%s</b></p>"+
			"<p>If you did not request a reset, ignore this message.</p>",
		token,
	)
}
