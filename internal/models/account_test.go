package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	account := &Account{FirstName: "Jane", MiddleName: "Q", LastName: "Doe"}
	assert.Equal(t, "Jane Q Doe", account.FullName())
}

func TestFullNameEmptyMiddleKeepsDoubleSpace(t *testing.T) {
	account := &Account{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane  Doe", account.FullName())
}

func TestAccountNumberFormat(t *testing.T) {
	account := &Account{CreatedDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}

	number := account.AccountNumber()
	require.Regexp(t, regexp.MustCompile(`^IB\d{6}\d{8}$`), number)
	assert.Equal(t, "IB050324", number[:8])
}

func TestAccountNumberIsStable(t *testing.T) {
	account := &Account{CreatedDate: time.Now()}

	first := account.AccountNumber()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, account.AccountNumber())
	}
}

func TestFormatDOB(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		want string
	}{
		{"valid date", "31011990", "1990-01-31"},
		{"another valid date", "01022000", "2000-02-01"},
		{"unparsable passes through", "notadate", "notadate"},
		{"wrong length passes through", "311990", "311990"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := DedupeAccount{DOB: tt.dob}
			assert.Equal(t, tt.want, account.FormatDOB())
		})
	}
}

func TestFormatDOBRoundTrip(t *testing.T) {
	original := time.Date(1985, 12, 15, 0, 0, 0, 0, time.UTC)
	account := DedupeAccount{DOB: original.Format("02012006")}

	parsed, err := time.Parse("2006-01-02", account.FormatDOB())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}

func TestRosterMemberUUIDMemoizes(t *testing.T) {
	member := &RosterMember{FirstName: "Jane", LastName: "Doe"}

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "uuid-1", nil
	}

	first, err := member.UUID(fetch)
	require.NoError(t, err)
	second, err := member.UUID(fetch)
	require.NoError(t, err)

	assert.Equal(t, "uuid-1", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestRosterMemberUUIDFetchErrorNotCached(t *testing.T) {
	member := &RosterMember{}

	calls := 0
	failing := func() (string, error) {
		calls++
		return "", assert.AnError
	}

	_, err := member.UUID(failing)
	require.Error(t, err)

	id, err := member.UUID(func() (string, error) { return "uuid-2", nil })
	require.NoError(t, err)
	assert.Equal(t, "uuid-2", id)
	assert.Equal(t, 1, calls)
}
