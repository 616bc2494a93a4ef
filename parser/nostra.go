// Package parser maps decoded Nostra event payloads into typed records.
//
// Every function works on the ordered felt values produced by the upstream
// log decoder, reads fixed positions, and is safe to call concurrently.
package parser

import (
	"github.com/pkg/errors"

	"github.com/0xprinc/derisk-research/model"
)

// Event names as labelled by the upstream decoder.
const (
	EventInterestRateModel                = "interest_rate_model"
	EventInterestBearingCollateralMint    = "interest_bearing_collateral_mint"
	EventInterestBearingCollateralBurn    = "interest_bearing_collateral_burn"
	EventNonInterestBearingCollateralMint = "non_interest_bearing_collateral_mint"
	EventNonInterestBearingCollateralBurn = "non_interest_bearing_collateral_burn"
	EventDebtTransfer                     = "debt_transfer"
	EventDebtMint                         = "debt_mint"
	EventDebtBurn                         = "debt_burn"
)

// ParseInterestRateModelEvent maps an InterestStateUpdated payload.
//
// Expected order: [debt_token, lending_rate, _, borrow_rate, _,
// lending_index, _, borrow_index, _]. Only positions 0, 5 and 7 are kept,
// the indices are 1e18-scaled fixed point.
func ParseInterestRateModelEvent(fields []string) (*model.InterestRateModelEvent, error) {
	if err := checkLength(EventInterestRateModel, fields, 8); err != nil {
		return nil, err
	}
	debtToken, err := parseAddress(EventInterestRateModel, fields[0], 0)
	if err != nil {
		return nil, err
	}
	lendingIndex, err := parseAmount(EventInterestRateModel, fields[5], 5)
	if err != nil {
		return nil, err
	}
	borrowIndex, err := parseAmount(EventInterestRateModel, fields[7], 7)
	if err != nil {
		return nil, err
	}
	return &model.InterestRateModelEvent{
		DebtToken:    debtToken,
		LendingIndex: lendingIndex,
		BorrowIndex:  borrowIndex,
	}, nil
}

// ParseInterestBearingCollateralMintEvent maps a bearing collateral Mint
// payload: [user, amount]. The amount interpretation is still an open
// question with the upstream schema owners.
func ParseInterestBearingCollateralMintEvent(fields []string) (*model.BearingCollateralMintEvent, error) {
	if err := checkLength(EventInterestBearingCollateralMint, fields, 2); err != nil {
		return nil, err
	}
	user, err := parseAddress(EventInterestBearingCollateralMint, fields[0], 0)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(EventInterestBearingCollateralMint, fields[1], 1)
	if err != nil {
		return nil, err
	}
	return &model.BearingCollateralMintEvent{User: user, Amount: amount}, nil
}

// ParseInterestBearingCollateralBurnEvent maps a bearing collateral Burn
// payload, same shape as the mint.
func ParseInterestBearingCollateralBurnEvent(fields []string) (*model.BearingCollateralBurnEvent, error) {
	if err := checkLength(EventInterestBearingCollateralBurn, fields, 2); err != nil {
		return nil, err
	}
	user, err := parseAddress(EventInterestBearingCollateralBurn, fields[0], 0)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(EventInterestBearingCollateralBurn, fields[1], 1)
	if err != nil {
		return nil, err
	}
	return &model.BearingCollateralBurnEvent{User: user, Amount: amount}, nil
}

// ParseNonInterestBearingCollateralMintEvent is not implemented, the event
// layout is unknown until the upstream schema is published.
func ParseNonInterestBearingCollateralMintEvent(fields []string) (*model.BearingCollateralMintEvent, error) {
	return nil, errors.Wrap(ErrNotImplemented, EventNonInterestBearingCollateralMint)
}

// ParseNonInterestBearingCollateralBurnEvent is not implemented, see
// ParseNonInterestBearingCollateralMintEvent.
func ParseNonInterestBearingCollateralBurnEvent(fields []string) (*model.BearingCollateralBurnEvent, error) {
	return nil, errors.Wrap(ErrNotImplemented, EventNonInterestBearingCollateralBurn)
}

// ParseDebtTransferEvent maps a debt Transfer payload: [sender, recipient,
// amount, _]. The token address comes from fromAddress, the contract that
// emitted the event, never from the payload.
func ParseDebtTransferEvent(fields []string, fromAddress string) (*model.DebtTransferEvent, error) {
	if err := checkLength(EventDebtTransfer, fields, 3); err != nil {
		return nil, err
	}
	sender, err := parseAddress(EventDebtTransfer, fields[0], 0)
	if err != nil {
		return nil, err
	}
	recipient, err := parseAddress(EventDebtTransfer, fields[1], 1)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(EventDebtTransfer, fields[2], 2)
	if err != nil {
		return nil, err
	}
	return &model.DebtTransferEvent{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Token:     fromAddress,
	}, nil
}

// ParseDebtMintEvent maps a debt Mint payload: [user, token]. The second
// field is kept as the raw felt under Token, matching the upstream schema;
// its naming is disputed there and is not resolved here.
func ParseDebtMintEvent(fields []string) (*model.DebtMintEvent, error) {
	if err := checkLength(EventDebtMint, fields, 2); err != nil {
		return nil, err
	}
	user, err := parseAddress(EventDebtMint, fields[0], 0)
	if err != nil {
		return nil, err
	}
	return &model.DebtMintEvent{User: user, Token: fields[1]}, nil
}

// ParseDebtBurnEvent maps a debt Burn payload: [user, amount].
func ParseDebtBurnEvent(fields []string) (*model.DebtBurnEvent, error) {
	if err := checkLength(EventDebtBurn, fields, 2); err != nil {
		return nil, err
	}
	user, err := parseAddress(EventDebtBurn, fields[0], 0)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(EventDebtBurn, fields[1], 1)
	if err != nil {
		return nil, err
	}
	return &model.DebtBurnEvent{User: user, Amount: amount}, nil
}
