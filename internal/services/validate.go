package services

import "regexp"

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

func isValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}
