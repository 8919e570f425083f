package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/moodiary/internal/calendar"
	"github.com/dmitrijs2005/moodiary/internal/common"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func checkEmail(v *common.ValidationError, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		v.Add("email", "is required")
	case !emailPattern.MatchString(email):
		v.Add("email", "is not a valid address")
	}
}

func checkRequired(v *common.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func checkNewPassword(v *common.ValidationError, password, confirm string) {
	if utf8.RuneCountInString(password) < minPasswordLength {
		v.Add("password", "must be at least 6 characters")
	}
	if password != confirm {
		v.Add("confirm", "does not match the password")
	}
}

func checkDate(v *common.ValidationError, date string) {
	if date == "" {
		return
	}
	if _, ok := calendar.ParseDate(date); !ok || len(date) != len("2006-01-02") {
		v.Add("date", "must be YYYY-MM-DD")
	}
}
