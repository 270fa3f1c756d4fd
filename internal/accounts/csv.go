// Package accounts reads and writes the account list as CSV, for users
// who maintain their accounts in a spreadsheet instead of editing the
// JSON snapshot directly.
package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/moneymap-dev/moneymap/internal/model"
)

const (
	numFields      = 7
	colID          = 0
	colName        = 1
	colInstitution = 2
	colType        = 3
	colBalance     = 4
	colCurrency    = 5
	colExclude     = 6
)

// Header is the CSV header for accounts.csv.
var Header = []string{"account_id", "name", "institution", "type", "balance", "currency", "exclude_from_net_worth"}

// ReadAccounts reads an accounts.csv document, header row first.
// Account types are normalized at this boundary: unknown type strings
// become "other".
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes an accounts.csv document.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID
	row[colName] = acct.Name
	row[colInstitution] = acct.Institution
	row[colType] = string(acct.Type)
	row[colBalance] = acct.Balance.String()
	row[colCurrency] = acct.Currency
	row[colExclude] = strconv.FormatBool(acct.ExcludeFromNetWorth)
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colID] == "" {
		return model.Account{}, fmt.Errorf("missing account_id")
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	exclude := false
	if record[colExclude] != "" {
		exclude, err = strconv.ParseBool(record[colExclude])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing exclude_from_net_worth %q: %w", record[colExclude], err)
		}
	}

	return model.Account{
		ID:                  record[colID],
		Name:                record[colName],
		Institution:         record[colInstitution],
		Type:                model.ParseAccountType(record[colType]),
		Balance:             balance,
		Currency:            record[colCurrency],
		ExcludeFromNetWorth: exclude,
	}, nil
}
