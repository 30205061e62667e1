package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"registration-web/internal/models"
	"registration-web/internal/utils"
)

var registrationExportHeader = []string{"Full name", "Phone number", "Social ID", "Account number"}

// RegisterService runs the account intake pipeline: one sequential pass over
// a row stream, classifying every row as accepted or rejected and building
// accounts for the accepted ones.
type RegisterService struct {
	tabular *TabularService

	// now supplies the processing date stamped on accepted accounts.
	now func() time.Time
}

func NewRegisterService(tabular *TabularService) *RegisterService {
	return &RegisterService{
		tabular: tabular,
		now:     time.Now,
	}
}

// Process classifies every data row of one batch. rows includes the header
// row, which is skipped. Each run owns a fresh uniqueness registry, so
// values accepted in an earlier batch never reject rows of a later one.
//
// Structural failures and duplicate identifiers land in the same error
// counter; the report deliberately has a single failure bucket.
func (s *RegisterService) Process(rows [][]string) *models.RegistrationResult {
	registry := NewUniquenessRegistry()
	result := &models.RegistrationResult{Accounts: []*models.Account{}}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		result.TotalRowsUpload++

		if !ValidateRegistrationRow(row) {
			result.TotalError++
			continue
		}

		phone := row[phoneNumberIndex]
		socialID := row[socialIDIndex]
		if registry.Known(KindPhoneNumber, phone) || registry.Known(KindSocialID, socialID) {
			result.TotalError++
			continue
		}

		// Only fully accepted rows consume uniqueness slots.
		registry.Register(KindPhoneNumber, phone)
		registry.Register(KindSocialID, socialID)

		result.Accounts = append(result.Accounts, &models.Account{
			FirstName:   row[firstNameIndex],
			MiddleName:  row[middleNameIndex],
			LastName:    row[lastNameIndex],
			PhoneNumber: phone,
			SocialID:    socialID,
			CreatedDate: s.now(),
		})
		result.TotalSuccess++
	}

	utils.GetLogger().WithFields(logrus.Fields{
		"total_rows": result.TotalRowsUpload,
		"success":    result.TotalSuccess,
		"failed":     result.TotalError,
	}).Info("Registration batch processed")

	return result
}

// ProcessFile reads the tabular resource at path and classifies it.
func (s *RegisterService) ProcessFile(path string) (*models.RegistrationResult, error) {
	rows, err := s.tabular.ReadRows(path)
	if err != nil {
		return nil, err
	}
	return s.Process(rows), nil
}

// ExportAccounts writes one row per accepted account to outputPath.
func (s *RegisterService) ExportAccounts(accounts []*models.Account, outputPath string) error {
	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, []string{
			account.FullName(),
			account.PhoneNumber,
			account.SocialID,
			account.AccountNumber(),
		})
	}
	return s.tabular.WriteRows(outputPath, registrationExportHeader, rows)
}
