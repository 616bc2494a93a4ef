package parser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterestRateModelEvent(t *testing.T) {
	fields := []string{"0xabc", "1", "2", "3", "4", "100000000000000000", "6", "7", "200000000000000000"}

	record, err := ParseInterestRateModelEvent(fields)
	require.NoError(t, err)

	assert.Equal(t, "0xabc", record.DebtToken)
	assert.True(t, record.LendingIndex.Equal(decimal.RequireFromString("100000000000000000")))
	assert.True(t, record.BorrowIndex.Equal(decimal.RequireFromString("200000000000000000")))
}

func TestParseInterestRateModelEventHexIndices(t *testing.T) {
	fields := []string{"0xabc", "0", "0", "0", "0", "0x16345785d8a0000", "0", "0x2c68af0bb140000", "0"}

	record, err := ParseInterestRateModelEvent(fields)
	require.NoError(t, err)

	assert.True(t, record.LendingIndex.Equal(decimal.NewFromInt(100000000000000000)))
	assert.True(t, record.BorrowIndex.Equal(decimal.NewFromInt(200000000000000000)))
}

func TestParseInterestRateModelEventTooShort(t *testing.T) {
	_, err := ParseInterestRateModelEvent([]string{"0xabc", "1", "2", "3", "4", "5", "6"})
	require.Error(t, err)

	var malformed *MalformedEventError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, EventInterestRateModel, malformed.Event)
	assert.Equal(t, 8, malformed.Expected)
	assert.Equal(t, 7, malformed.Actual)
}

func TestParseInterestBearingCollateralMintEvent(t *testing.T) {
	record, err := ParseInterestBearingCollateralMintEvent([]string{"0xuser", "1000"})
	require.NoError(t, err)

	assert.Equal(t, "0xuser", record.User)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(1000)))
}

func TestParseInterestBearingCollateralBurnEvent(t *testing.T) {
	record, err := ParseInterestBearingCollateralBurnEvent([]string{"0xuser", "0x3e8"})
	require.NoError(t, err)

	assert.Equal(t, "0xuser", record.User)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(1000)))
}

func TestParseBearingCollateralEventsTooShort(t *testing.T) {
	_, err := ParseInterestBearingCollateralMintEvent([]string{"0xuser"})
	var malformed *MalformedEventError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Expected)
	assert.Equal(t, 1, malformed.Actual)

	_, err = ParseInterestBearingCollateralBurnEvent([]string{})
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 0, malformed.Actual)
}

func TestParseNonInterestBearingCollateralEventsNotImplemented(t *testing.T) {
	record, err := ParseNonInterestBearingCollateralMintEvent([]string{"0xuser", "1"})
	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Contains(t, err.Error(), EventNonInterestBearingCollateralMint)

	burn, err := ParseNonInterestBearingCollateralBurnEvent([]string{"0xuser", "1"})
	assert.Nil(t, burn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Contains(t, err.Error(), EventNonInterestBearingCollateralBurn)
}

func TestParseDebtTransferEvent(t *testing.T) {
	fields := []string{"0xsender", "0xrecipient", "500", "0xextra"}

	record, err := ParseDebtTransferEvent(fields, "0xtoken")
	require.NoError(t, err)

	assert.Equal(t, "0xsender", record.Sender)
	assert.Equal(t, "0xrecipient", record.Recipient)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "0xtoken", record.Token)
	// token comes from the emitting contract, never from the payload
	assert.NotEqual(t, fields[3], record.Token)
}

func TestParseDebtTransferEventTooShort(t *testing.T) {
	_, err := ParseDebtTransferEvent([]string{"0xsender", "0xrecipient"}, "0xtoken")
	var malformed *MalformedEventError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, EventDebtTransfer, malformed.Event)
	assert.Equal(t, 3, malformed.Expected)
	assert.Equal(t, 2, malformed.Actual)
}

func TestParseDebtMintEvent(t *testing.T) {
	record, err := ParseDebtMintEvent([]string{"0xuser", "0xdead"})
	require.NoError(t, err)

	assert.Equal(t, "0xuser", record.User)
	assert.Equal(t, "0xdead", record.Token)
}

func TestParseDebtMintEventTooShort(t *testing.T) {
	_, err := ParseDebtMintEvent([]string{"0xuser"})
	var malformed *MalformedEventError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, EventDebtMint, malformed.Event)
}

func TestParseDebtBurnEvent(t *testing.T) {
	record, err := ParseDebtBurnEvent([]string{"0xuser", "42"})
	require.NoError(t, err)

	assert.Equal(t, "0xuser", record.User)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(42)))
}

func TestParseDebtBurnEventTooShort(t *testing.T) {
	_, err := ParseDebtBurnEvent([]string{"0xuser"})
	var malformed *MalformedEventError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, EventDebtBurn, malformed.Event)
	assert.Equal(t, 2, malformed.Expected)
	assert.Equal(t, 1, malformed.Actual)
}

func TestParseBadValues(t *testing.T) {
	_, err := ParseDebtBurnEvent([]string{"user", "42"})
	assert.Error(t, err)

	_, err = ParseDebtBurnEvent([]string{"0xuser", "0xzz"})
	assert.Error(t, err)

	_, err = ParseDebtBurnEvent([]string{"0xuser", "not-a-number"})
	assert.Error(t, err)
}

func TestParseIsIdempotent(t *testing.T) {
	fields := []string{"0xabc", "1", "2", "3", "4", "100000000000000000", "6", "7", "200000000000000000"}

	first, err := ParseInterestRateModelEvent(fields)
	require.NoError(t, err)
	second, err := ParseInterestRateModelEvent(fields)
	require.NoError(t, err)

	assert.Equal(t, first.DebtToken, second.DebtToken)
	assert.True(t, first.LendingIndex.Equal(second.LendingIndex))
	assert.True(t, first.BorrowIndex.Equal(second.BorrowIndex))

	burnFields := []string{"0xuser", "42"}
	firstBurn, err := ParseDebtBurnEvent(burnFields)
	require.NoError(t, err)
	secondBurn, err := ParseDebtBurnEvent(burnFields)
	require.NoError(t, err)
	assert.Equal(t, firstBurn.User, secondBurn.User)
	assert.True(t, firstBurn.Amount.Equal(secondBurn.Amount))
}
