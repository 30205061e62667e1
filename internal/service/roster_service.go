package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"registration-web/internal/config"
	"registration-web/internal/models"
)

// Column layout of a roster row.
const (
	rosterFirstNameIndex = iota
	rosterLastNameIndex
	rosterIPAddressIndex
	rosterColumns
)

var rosterExportHeader = []string{"UUID", "FIRST NAME", "LAST NAME", "IP ADDRESS"}

// RosterService loads roster batches and enriches each member with an
// identifier from the UUID lookup service.
type RosterService struct {
	tabular *TabularService
	apiURL  string
	client  *http.Client
}

func NewRosterService(tabular *TabularService, cfg *config.Config) *RosterService {
	return &RosterService{
		tabular: tabular,
		apiURL:  cfg.UUIDAPIURL,
		client:  &http.Client{Timeout: cfg.LookupTimeout},
	}
}

// Load reads roster members from the resource at path. The header row is
// skipped and incomplete rows are dropped.
func (s *RosterService) Load(path string) ([]*models.RosterMember, error) {
	rows, err := s.tabular.ReadRows(path)
	if err != nil {
		return nil, err
	}

	members := make([]*models.RosterMember, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < rosterColumns {
			continue
		}
		members = append(members, &models.RosterMember{
			FirstName: row[rosterFirstNameIndex],
			LastName:  row[rosterLastNameIndex],
			IPAddress: row[rosterIPAddressIndex],
		})
	}
	return members, nil
}

// SortByLastNameDesc orders members by last name, descending.
func SortByLastNameDesc(members []*models.RosterMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].LastName > members[j].LastName
	})
}

// WithIPAddress returns the members whose IP address is not empty.
func WithIPAddress(members []*models.RosterMember) []*models.RosterMember {
	filtered := make([]*models.RosterMember, 0, len(members))
	for _, member := range members {
		if member.IPAddress != "" {
			filtered = append(filtered, member)
		}
	}
	return filtered
}

// FetchUUID performs one lookup call against the UUID service.
func (s *RosterService) FetchUUID() (string, error) {
	resp, err := s.client.Get(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("failed to reach uuid service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Service: "uuid", StatusCode: resp.StatusCode}
	}

	var body struct {
		UUID string `json:"uuid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode uuid response: %w", err)
	}
	return body.UUID, nil
}

// Export writes every member with its looked-up UUID to outputPath. Each
// member fetches its UUID at most once; repeated exports reuse it.
func (s *RosterService) Export(members []*models.RosterMember, outputPath string) error {
	rows := make([][]string, 0, len(members))
	for _, member := range members {
		id, err := member.UUID(s.FetchUUID)
		if err != nil {
			return err
		}
		rows = append(rows, []string{id, member.FirstName, member.LastName, member.IPAddress})
	}
	return s.tabular.WriteRows(outputPath, rosterExportHeader, rows)
}
