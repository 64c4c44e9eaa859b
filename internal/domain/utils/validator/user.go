package validator

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

var phoneFormat = regexp.MustCompile(`^[0-9]{9,11}$`)

func Email(email string, _ map[string]interface{}) bool {
	return emailFormat(email) && emailDomain(email)
}

func emailFormat(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func emailDomain(email string) bool {
	validDomains := viper.GetStringSlice("auth.valid-email-domains")

	for _, domain := range validDomains {
		if strings.HasSuffix(email, domain) {
			return true
		}
	}
	return false
}

func Phone(phone string, _ map[string]interface{}) bool {
	return phoneFormat.MatchString(phone)
}
