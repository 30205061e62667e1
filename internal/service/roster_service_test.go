package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registration-web/internal/config"
	"registration-web/internal/models"
)

var rosterHeader = []string{"First Name", "Last Name", "IP Address"}

func newRosterService(apiURL string) *RosterService {
	return NewRosterService(NewTabularService(), &config.Config{
		UUIDAPIURL:    apiURL,
		LookupTimeout: time.Second,
	})
}

func writeRoster(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, NewTabularService().WriteRows(path, rosterHeader, rows))
	return path
}

func TestLoadSkipsHeaderAndIncompleteRows(t *testing.T) {
	svc := newRosterService("")
	path := writeRoster(t, [][]string{
		{"Jane", "Doe", "10.0.0.1"},
		{"John", "Smith"},
		{"Alice", "Brown", ""},
	})

	members, err := svc.Load(path)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Jane", members[0].FirstName)
	assert.Equal(t, "Alice", members[1].FirstName)
}

func TestSortByLastNameDesc(t *testing.T) {
	members := []*models.RosterMember{
		{LastName: "Brown"},
		{LastName: "Smith"},
		{LastName: "Doe"},
	}

	SortByLastNameDesc(members)

	assert.Equal(t, "Smith", members[0].LastName)
	assert.Equal(t, "Doe", members[1].LastName)
	assert.Equal(t, "Brown", members[2].LastName)
}

func TestWithIPAddress(t *testing.T) {
	members := []*models.RosterMember{
		{FirstName: "Jane", IPAddress: "10.0.0.1"},
		{FirstName: "John", IPAddress: ""},
	}

	filtered := WithIPAddress(members)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Jane", filtered[0].FirstName)
}

func TestExportFetchesUUIDOncePerMember(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"uuid":"uuid-%d"}`, calls)
	}))
	defer server.Close()

	svc := newRosterService(server.URL)
	members := []*models.RosterMember{
		{FirstName: "Jane", LastName: "Doe", IPAddress: "10.0.0.1"},
		{FirstName: "John", LastName: "Smith", IPAddress: "10.0.0.2"},
	}

	dir := t.TempDir()
	require.NoError(t, svc.Export(members, filepath.Join(dir, "first.csv")))
	require.NoError(t, svc.Export(members, filepath.Join(dir, "second.csv")))

	// Two members, two lookups; the second export reuses memoized UUIDs.
	assert.Equal(t, 2, calls)

	rows, err := NewTabularService().ReadRows(filepath.Join(dir, "second.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, rosterExportHeader, rows[0])
	assert.Equal(t, "uuid-1", rows[1][0])
	assert.Equal(t, []string{"uuid-2", "John", "Smith", "10.0.0.2"}, rows[2])
}

func TestExportUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newRosterService(server.URL)
	members := []*models.RosterMember{{FirstName: "Jane", LastName: "Doe"}}

	err := svc.Export(members, filepath.Join(t.TempDir(), "out.csv"))
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "uuid", upstream.Service)
}
