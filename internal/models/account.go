package models

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	accountNumberPrefix = "IB"

	shortDateLayout = "020106"   // DDMMYY
	dobLayout       = "02012006" // DDMMYYYY
	isoDateLayout   = "2006-01-02"
)

// Account is one accepted registration. It is created only for rows that
// passed structural validation and the batch uniqueness checks.
type Account struct {
	FirstName   string    `json:"first_name"`
	MiddleName  string    `json:"middle_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	SocialID    string    `json:"social_id"`
	CreatedDate time.Time `json:"created_date"`

	accountNumber string
}

// FullName joins first, middle and last name with single spaces. An empty
// middle name yields a double space, matching the exported report format.
func (a *Account) FullName() string {
	return fmt.Sprintf("%s %s %s", a.FirstName, a.MiddleName, a.LastName)
}

// AccountNumber returns the synthesized account number, generating it on the
// first call and returning the same value on every call after that. The
// number is the product prefix, the created date as DDMMYY and a random
// 8-digit suffix. The suffix is not checked against previously issued
// numbers, so uniqueness across a batch is not guaranteed.
func (a *Account) AccountNumber() string {
	if a.accountNumber == "" {
		suffix := rand.Intn(100000000)
		a.accountNumber = fmt.Sprintf("%s%s%08d", accountNumberPrefix, a.CreatedDate.Format(shortDateLayout), suffix)
	}
	return a.accountNumber
}

// DedupeAccount is one row of the identifier-based deduplication batch.
type DedupeAccount struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

// FormatDOB renders the stored date of birth (DDMMYYYY) as an ISO date.
// Unparsable values are returned unchanged instead of failing the row.
func (a DedupeAccount) FormatDOB() string {
	dob, err := time.Parse(dobLayout, a.DOB)
	if err != nil {
		return a.DOB
	}
	return dob.Format(isoDateLayout)
}

// RosterMember is one row of a roster batch, enriched with an identifier
// from the UUID lookup service.
type RosterMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IPAddress string `json:"ip_address"`

	uuid string
}

// UUID returns the member's remote identifier, calling fetch at most once
// for the lifetime of the member and memoizing the result.
func (m *RosterMember) UUID(fetch func() (string, error)) (string, error) {
	if m.uuid != "" {
		return m.uuid, nil
	}

	id, err := fetch()
	if err != nil {
		return "", err
	}
	m.uuid = id

	return m.uuid, nil
}
