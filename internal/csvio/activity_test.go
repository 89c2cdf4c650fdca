package csvio

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

func TestImportActivityParsesWellFormedRows(t *testing.T) {
	csvData := "Date,Transaction Description,Fund,Source,Amount,Share Price,Shares,Running Balance\n" +
		"01/15/2026,Employee Contribution,C,Employee Contribution,\"$1,250.00\",65.43,19.108,\"$401,250.00\"\n" +
		"02/15/2026,Agency Matching,G,Agency Matching,$500.00,15.21,32.874,\"$401,750.00\"\n"

	txs, err := ImportActivity(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, domain.FundC, txs[0].Fund)
	assert.Equal(t, domain.SourceEmployeeContribution, txs[0].Source)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromFloat(1250.00)), "got %s", txs[0].Amount)
	assert.True(t, txs[0].RunningBalance.Equal(decimal.NewFromFloat(401250.00)))

	assert.Equal(t, domain.FundG, txs[1].Fund)
	assert.Equal(t, domain.SourceAgencyMatching, txs[1].Source)
}

func TestImportActivityTolersatesBOM(t *testing.T) {
	csvData := "﻿Date,Transaction Description,Fund,Source,Amount,Share Price,Shares,Running Balance\n" +
		"03/01/2026,Loan Payment,No Fund,Loan Payment,$100.00,0,0,\"$400,000.00\"\n"

	txs, err := ImportActivity(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.SourceLoanPayment, txs[0].Source)
	assert.Equal(t, domain.TSPFundCode(""), txs[0].Fund)
}

func TestImportActivitySkipsBlankLines(t *testing.T) {
	csvData := "Date,Transaction Description,Fund,Source,Amount,Share Price,Shares,Running Balance\n" +
		"\n" +
		"01/15/2026,Employee Contribution,C,Employee Contribution,$1250.00,65.43,19.108,$401250.00\n" +
		"\n"

	txs, err := ImportActivity(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, txs, 1)
}

func TestImportActivityReportsOneIndexedRowOnBadDate(t *testing.T) {
	csvData := "Date,Transaction Description,Fund,Source,Amount,Share Price,Shares,Running Balance\n" +
		"01/15/2026,Employee Contribution,C,Employee Contribution,$1250.00,65.43,19.108,$401250.00\n" +
		"not-a-date,Agency Matching,G,Agency Matching,$500.00,15.21,32.874,$401750.00\n"

	_, err := ImportActivity(strings.NewReader(csvData))
	require.Error(t, err)
	rowErr, ok := err.(*RowError)
	require.True(t, ok)
	assert.Equal(t, 2, rowErr.Row)
}

func TestParseMoneyHandlesDollarSignsAndCommas(t *testing.T) {
	v, err := parseMoney("$12,345.67")
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromFloat(12345.67)))
}
