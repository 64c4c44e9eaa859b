package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"

	"github.com/shingu-dev/club-server/internal/adapters/logger"
)

// Client is the outgoing mail client.
type Client struct {
	dialer *gomail.Dialer
}

// NewClient wraps a configured gomail dialer.
func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendConfirmationEmail sends the signup verification code. Delivery
// failures are logged, not surfaced; the code stays valid in storage.
func (c *Client) SendConfirmationEmail(to string, code string) {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")
	messageID := generateMessageID(domain)

	msg.SetHeader("Message-ID", messageID)
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "이메일 인증코드")
	msg.SetBody("text/plain", fmt.Sprintf("인증코드: %s", code))
	msg.AddAlternative("text/html", fmt.Sprintf("<b>%s</b>", code))
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Error(err)
		return
	}

	logger.Log.Info("Email successfully sent")
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
