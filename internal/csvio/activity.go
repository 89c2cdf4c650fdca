// Package csvio implements the two CSV boundary contracts spec.md §6
// describes: import of TSP.gov account activity exports, and export of a
// completed projection.
package csvio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// RowError reports a 1-indexed row that failed to parse, per spec.md §6.
type RowError struct {
	Row int
	Msg string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// stripBOM trims a leading UTF-8 byte-order mark from r's first bytes.
func stripBOM(r io.Reader) io.Reader {
	buffered := bufio.NewReader(r)
	peek, err := buffered.Peek(len(bom))
	if err == nil && bytes.Equal(peek, bom) {
		buffered.Discard(len(bom))
	}
	return buffered
}

// ImportActivity parses a TSP.gov account-activity CSV export, per spec.md
// §6: header `Date, Transaction Description, Fund, Source, Amount, Share
// Price, Shares, Running Balance`, MM/DD/YYYY dates, $/comma-stripped
// amounts, BOM-tolerant, blank lines skipped. Returns every transaction
// successfully parsed; the first malformed row aborts with a RowError
// reporting its 1-indexed position among data rows.
func ImportActivity(r io.Reader) ([]domain.TSPTransaction, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var transactions []domain.TSPTransaction
	row := 0
	header := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			row++
			return transactions, &RowError{Row: row, Msg: err.Error()}
		}

		if header {
			header = false
			continue
		}
		row++

		if len(record) < 8 {
			return transactions, &RowError{Row: row, Msg: fmt.Sprintf("expected 8 columns, got %d", len(record))}
		}

		tx, err := parseActivityRow(record)
		if err != nil {
			return transactions, &RowError{Row: row, Msg: err.Error()}
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func parseActivityRow(record []string) (domain.TSPTransaction, error) {
	date, err := time.Parse("01/02/2006", strings.TrimSpace(record[0]))
	if err != nil {
		return domain.TSPTransaction{}, fmt.Errorf("invalid date %q: %w", record[0], err)
	}

	amount, err := parseMoney(record[4])
	if err != nil {
		return domain.TSPTransaction{}, fmt.Errorf("invalid amount %q: %w", record[4], err)
	}
	sharePrice, err := parseMoney(record[5])
	if err != nil {
		return domain.TSPTransaction{}, fmt.Errorf("invalid share price %q: %w", record[5], err)
	}
	shares, err := parseMoney(record[6])
	if err != nil {
		return domain.TSPTransaction{}, fmt.Errorf("invalid shares %q: %w", record[6], err)
	}
	runningBalance, err := parseMoney(record[7])
	if err != nil {
		return domain.TSPTransaction{}, fmt.Errorf("invalid running balance %q: %w", record[7], err)
	}

	return domain.TSPTransaction{
		Date:           date,
		Description:    strings.TrimSpace(record[1]),
		Fund:           mapFund(record[2]),
		Source:         mapSource(record[3]),
		Amount:         amount,
		SharePrice:     sharePrice,
		Shares:         shares,
		RunningBalance: runningBalance,
	}, nil
}

// parseMoney strips a leading "$" and thousands-separator commas before
// decimal parsing, per spec.md §6.
func parseMoney(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		v = v.Neg()
	}
	return v, nil
}

// mapFund normalizes a TSP.gov fund string to the known fund codes;
// anything unrecognized (administrative rows with no associated fund)
// parses to the zero value, per spec.md §6.
func mapFund(raw string) domain.TSPFundCode {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, " FUND")
	switch s {
	case "G":
		return domain.FundG
	case "F":
		return domain.FundF
	case "C":
		return domain.FundC
	case "S":
		return domain.FundS
	case "I":
		return domain.FundI
	default:
		return ""
	}
}

// mapSource classifies the Source column of a TSP.gov activity row into the
// Source enum of spec.md §3. Unrecognized values fall back to the
// "no fund" bucket the enum reserves for non-investment-fund activity.
func mapSource(raw string) domain.TSPTransactionSource {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "employee"):
		return domain.SourceEmployeeContribution
	case strings.Contains(s, "automatic"):
		return domain.SourceAgencyAutomatic
	case strings.Contains(s, "match"):
		return domain.SourceAgencyMatching
	case strings.Contains(s, "loan"):
		return domain.SourceLoanPayment
	case strings.Contains(s, "distribution") || strings.Contains(s, "withdrawal"):
		return domain.SourceDistribution
	case strings.Contains(s, "interfund") || strings.Contains(s, "inter-fund") || strings.Contains(s, "transfer"):
		return domain.SourceInterFundTransfer
	default:
		return domain.SourceNoFund
	}
}
