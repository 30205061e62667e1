package service

import (
	"registration-web/internal/models"
)

// Column layout of a dedupe row.
const (
	dedupeIDIndex = iota
	dedupeFirstNameIndex
	dedupeLastNameIndex
	dedupeDOBIndex
	dedupeColumns
)

var dedupeExportHeader = []string{"ID", "First Name", "Last Name", "DOB"}

// DedupeService partitions a batch by repeated primary identifier: every row
// whose ID occurs more than once in the batch is a duplicate, including the
// first occurrence. Only IDs occurring exactly once are valid.
type DedupeService struct {
	tabular *TabularService
}

func NewDedupeService(tabular *TabularService) *DedupeService {
	return &DedupeService{tabular: tabular}
}

// Partition classifies the whole batch. This is a batch-wide split, not a
// streaming one: occurrences are counted first, then every row is placed.
// rows includes the header row; incomplete rows are dropped.
func (s *DedupeService) Partition(rows [][]string) *models.DedupeResult {
	accounts := make([]models.DedupeAccount, 0, len(rows))
	occurrences := make(map[string]int)

	for i, row := range rows {
		if i == 0 || len(row) < dedupeColumns {
			continue
		}
		account := models.DedupeAccount{
			ID:        row[dedupeIDIndex],
			FirstName: row[dedupeFirstNameIndex],
			LastName:  row[dedupeLastNameIndex],
			DOB:       row[dedupeDOBIndex],
		}
		accounts = append(accounts, account)
		occurrences[account.ID]++
	}

	result := &models.DedupeResult{
		TotalRows:  len(accounts),
		Duplicates: []models.DedupeRow{},
		Valid:      []models.DedupeRow{},
	}
	for _, account := range accounts {
		if occurrences[account.ID] > 1 {
			result.Duplicates = append(result.Duplicates, models.DedupeRow{
				ID:        account.ID,
				FirstName: account.FirstName,
				LastName:  account.LastName,
				DOB:       account.DOB,
			})
			continue
		}
		result.Valid = append(result.Valid, models.DedupeRow{
			ID:        account.ID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			DOB:       account.FormatDOB(),
		})
		result.ValidAccounts = append(result.ValidAccounts, account)
	}

	return result
}

// PartitionFile reads the tabular resource at path and partitions it.
func (s *DedupeService) PartitionFile(path string) (*models.DedupeResult, error) {
	rows, err := s.tabular.ReadRows(path)
	if err != nil {
		return nil, err
	}
	return s.Partition(rows), nil
}

// ExportValid writes the valid partition to outputPath, one row per account
// with the date of birth formatted.
func (s *DedupeService) ExportValid(result *models.DedupeResult, outputPath string) error {
	rows := make([][]string, 0, len(result.ValidAccounts))
	for _, account := range result.ValidAccounts {
		rows = append(rows, []string{
			account.ID,
			account.FirstName,
			account.LastName,
			account.FormatDOB(),
		})
	}
	return s.tabular.WriteRows(outputPath, dedupeExportHeader, rows)
}
