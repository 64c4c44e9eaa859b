package validator

import (
	"unicode/utf8"
)

func ClubName(name string, _ map[string]interface{}) bool {
	return utf8.RuneCountInString(name) >= 2 && utf8.RuneCountInString(name) <= 30
}

func ClubShortDesc(shortDesc string, _ map[string]interface{}) bool {
	return utf8.RuneCountInString(shortDesc) <= 100
}

func ClubDescription(description string, _ map[string]interface{}) bool {
	return utf8.RuneCountInString(description) <= 2000
}

func ApplicationIntro(intro string, _ map[string]interface{}) bool {
	return utf8.RuneCountInString(intro) >= 1 && utf8.RuneCountInString(intro) <= 1000
}
