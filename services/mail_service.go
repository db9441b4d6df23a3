package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"

	"go.uber.org/zap"
)

type IMailService interface {
	SendMail(to, subject, body string) error
}

type MailService struct {
	host        string
	port        string
	username    string
	password    string
	fromAddress string
	fromName    string
	encryption  string
}

func NewMailService() IMailService {
	encryption := strings.ToLower(envconfig.String("MAIL_ENCRYPTION", "tls"))
	port := envconfig.String("MAIL_PORT", "")

	if port == "" {
		switch encryption {
		case "ssl":
			port = "465"
		case "tls":
			port = "587"
		default:
			port = "25"
		}
	}

	return &MailService{
		host:        envconfig.String("MAIL_HOST", "localhost"),
		port:        port,
		username:    envconfig.String("MAIL_USERNAME", ""),
		password:    envconfig.String("MAIL_PASSWORD", ""),
		fromAddress: envconfig.String("MAIL_FROM_ADDRESS", ""),
		fromName:    envconfig.String("MAIL_FROM_NAME", "The Wellington Offices"),
		encryption:  encryption,
	}
}

func (m *MailService) SendMail(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient address must not be empty")
	}
	if m.fromAddress == "" {
		return fmt.Errorf("MAIL_FROM_ADDRESS is not configured")
	}

	message := m.buildMessage(to, subject, body)

	if err := m.send(to, message); err != nil {
		logconfig.Log.Error("Mail delivery failed", zap.Error(err), zap.String("to", to))
		return err
	}

	logconfig.Log.Info("Mail delivered", zap.String("to", to))
	return nil
}

func (m *MailService) buildMessage(to, subject, body string) []byte {
	if subject == "" {
		subject = "(no subject)"
	}

	fromHeader := m.fromAddress
	if m.fromName != "" {
		fromHeader = fmt.Sprintf("%q <%s>", m.fromName, m.fromAddress)
	}

	header := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n\r\n",
		fromHeader, to, subject)

	return []byte(header + body)
}

func (m *MailService) send(to string, message []byte) error {
	address := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	switch m.encryption {
	case "tls":
		client, err := smtp.Dial(address)
		if err != nil {
			return fmt.Errorf("SMTP connection failed: %w", err)
		}
		defer client.Quit()

		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
		return sendMailWithClient(client, m.fromAddress, to, message)

	case "ssl":
		conn, err := tls.Dial("tcp", address, &tls.Config{ServerName: m.host})
		if err != nil {
			return fmt.Errorf("TLS connection failed: %w", err)
		}

		client, err := smtp.NewClient(conn, m.host)
		if err != nil {
			return fmt.Errorf("SMTP client over TLS failed: %w", err)
		}
		defer client.Quit()

		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
		return sendMailWithClient(client, m.fromAddress, to, message)

	default:
		return smtp.SendMail(address, auth, m.fromAddress, []string{to}, message)
	}
}

func sendMailWithClient(client *smtp.Client, from, to string, message []byte) error {
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("SMTP MAIL FROM (%s) failed: %w", from, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("SMTP RCPT TO (%s) failed: %w", to, err)
	}
	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		writer.Close()
		return fmt.Errorf("message body could not be written: %w", err)
	}
	return writer.Close()
}

var _ IMailService = (*MailService)(nil)
