package service

import (
	"strings"
	"unicode"
)

// Column layout of a registration row.
const (
	firstNameIndex = iota
	middleNameIndex
	lastNameIndex
	phoneNumberIndex
	socialIDIndex
	registrationColumns
)

const (
	phoneNumberLength = 10
	socialIDLength    = 9
)

// isNumeric reports whether s is non-empty and consists of digits only.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isValidName requires a non-blank value that is not purely numeric.
func isValidName(name string) bool {
	return strings.TrimSpace(name) != "" && !isNumeric(name)
}

func isValidPhoneNumber(phone string) bool {
	return len(phone) == phoneNumberLength && isNumeric(phone)
}

func isValidSocialID(socialID string) bool {
	return len(socialID) == socialIDLength && isNumeric(socialID)
}

// ValidateRegistrationRow checks one raw row against the structural rules.
// It is a pure predicate: no side effects and no batch state. Uniqueness
// against earlier rows is the classifier's job.
func ValidateRegistrationRow(row []string) bool {
	if len(row) < registrationColumns {
		return false
	}
	return isValidName(row[firstNameIndex]) &&
		isValidName(row[lastNameIndex]) &&
		isValidPhoneNumber(row[phoneNumberIndex]) &&
		isValidSocialID(row[socialIDIndex])
}
