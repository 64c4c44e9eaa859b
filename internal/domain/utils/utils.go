package utils

import (
	"slices"

	"github.com/spf13/viper"
)

// IsAdmin reports whether the user may manage the club directory
// itself (creating clubs). Regular club administration is role-based
// and does not go through here.
func IsAdmin(userID string) bool {
	return slices.Contains(viper.GetStringSlice("service.admin-ids"), userID)
}
