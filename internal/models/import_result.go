package models

// AccountSummary is the per-account entry of the registration report.
type AccountSummary struct {
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phone_number"`
	SocialID      string `json:"social_id"`
	AccountNumber string `json:"account_number"`
}

// RegistrationSummary is the external report of one intake batch.
type RegistrationSummary struct {
	TotalRowsUpload int              `json:"totalRowsUpload"`
	TotalSuccess    int              `json:"totalSuccess"`
	TotalError      int              `json:"totalError"`
	NewAccounts     []AccountSummary `json:"newAccounts"`
}

// RegistrationResult is the outcome of one intake batch: aggregate counters
// plus the accepted accounts in input order. TotalRowsUpload always equals
// TotalSuccess + TotalError once processing finishes.
type RegistrationResult struct {
	TotalRowsUpload int
	TotalSuccess    int
	TotalError      int
	Accounts        []*Account
}

// Summary converts the result into its external report representation.
func (r *RegistrationResult) Summary() RegistrationSummary {
	summary := RegistrationSummary{
		TotalRowsUpload: r.TotalRowsUpload,
		TotalSuccess:    r.TotalSuccess,
		TotalError:      r.TotalError,
		NewAccounts:     make([]AccountSummary, 0, len(r.Accounts)),
	}
	for _, account := range r.Accounts {
		summary.NewAccounts = append(summary.NewAccounts, AccountSummary{
			FullName:      account.FullName(),
			PhoneNumber:   account.PhoneNumber,
			SocialID:      account.SocialID,
			AccountNumber: account.AccountNumber(),
		})
	}
	return summary
}

// DedupeRow is the external representation of one dedupe-batch row.
type DedupeRow struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

// DedupeResult partitions a batch by repeated primary identifier. Valid rows
// carry the formatted date of birth; duplicate rows keep the raw value.
type DedupeResult struct {
	TotalRows  int         `json:"total_rows"`
	Duplicates []DedupeRow `json:"duplicates"`
	Valid      []DedupeRow `json:"valid"`

	// ValidAccounts backs the tabular export of the valid partition.
	ValidAccounts []DedupeAccount `json:"-"`
}

// RosterRow is the external representation of one roster member.
type RosterRow struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IPAddress string `json:"ip_address"`
}

// ExchangeResult is the conversion report of a latest-rates lookup.
type ExchangeResult struct {
	BaseCurrency     string             `json:"baseCurrency"`
	Amount           float64            `json:"amount"`
	ExchangeRateDate string             `json:"exchangeRateDate"`
	ExchangeValues   map[string]float64 `json:"exchangeValues"`
}

// HistoricalRates is the report of a specific-day rates lookup.
type HistoricalRates struct {
	BaseCurrency     string             `json:"baseCurrency"`
	ExchangeRateDate string             `json:"exchangeRateDate"`
	Rates            map[string]float64 `json:"rates"`
}
