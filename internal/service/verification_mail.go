package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// SendVerificationMail delivers the verification link for token to
// sendTo over SMTP
func SendVerificationMail(sendTo, token string) error {
	from := viper.GetString("mail.sender")
	if sendTo == from {
		return errors.New("invalid email address")
	}

	var s string
	if viper.GetBool("host.ssl.enabled") {
		s = "s"
	}

	verifLink := fmt.Sprintf("http%v://%v/verify-email?token=%v",
		s, viper.GetString("host.domain"), token)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", "Verify your email to start using DD-bot")
	m.SetBody("text/html", fmt.Sprintf("Click <a href='%v'>here</a> to verify your account.<br><br>This link will expire in %v minutes. If you didn't create this account, just ignore this email.",
		verifLink, viper.GetInt("jwt.verification_ttl_minutes")))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
