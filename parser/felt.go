package parser

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// parseAmount converts a decoded felt into a decimal. Values arrive either
// hex encoded with a 0x prefix or as plain decimal digits, depending on the
// upstream decoder.
func parseAmount(event string, value string, index int) (decimal.Decimal, error) {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		n, ok := new(big.Int).SetString(value[2:], 16)
		if !ok {
			return decimal.Zero, errors.Errorf("%s event: field %d: invalid hex value %q", event, index, value)
		}
		return decimal.NewFromBigInt(n, 0), nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "%s event: field %d", event, index)
	}
	return d, nil
}

// parseAddress validates a decoded felt used as an address. Addresses stay
// hex strings, only the prefix is checked so the stored value matches the
// payload byte for byte.
func parseAddress(event string, value string, index int) (string, error) {
	if !strings.HasPrefix(value, "0x") && !strings.HasPrefix(value, "0X") {
		return "", errors.Errorf("%s event: field %d: address %q is not 0x prefixed", event, index, value)
	}
	return value, nil
}
