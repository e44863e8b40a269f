package email

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// SendComplianceReport emails a plain-text report to the configured
// recipients. Unset SMTP configuration disables the integration
// without erroring out the caller.
func SendComplianceReport(subject, body string) error {
	server := os.Getenv("SMTP_SERVER")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	to := os.Getenv("REPORT_RECIPIENTS")
	if server == "" || from == "" || to == "" {
		return nil
	}
	if port == "" {
		port = "587"
	}

	recipients := strings.Split(to, ",")
	for i := range recipients {
		recipients[i] = strings.TrimSpace(recipients[i])
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(recipients, ", "),
		"Subject":      subject,
		"Content-Type": "text/plain; charset=UTF-8",
	}

	var message strings.Builder
	for key, value := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, server)
	}
	addr := fmt.Sprintf("%s:%s", server, port)

	if err := smtp.SendMail(addr, auth, from, recipients, []byte(message.String())); err != nil {
		return fmt.Errorf("error sending report email: %w", err)
	}
	return nil
}
