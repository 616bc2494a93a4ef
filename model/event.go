package model

import (
	"github.com/shopspring/decimal"
)

// InterestRateModelEvent holds the state of a debt token's interest rate
// model after an update. Both indices are 1e18-scaled fixed point values,
// kept unscaled as emitted on chain.
type InterestRateModelEvent struct {
	DebtToken    string
	LendingIndex decimal.Decimal
	BorrowIndex  decimal.Decimal
}

// BearingCollateralMintEvent is a mint of interest bearing collateral
// tokens. The exact interpretation of Amount is still unresolved upstream,
// the value is stored as emitted.
type BearingCollateralMintEvent struct {
	User   string
	Amount decimal.Decimal
}

// BearingCollateralBurnEvent is a burn of interest bearing collateral
// tokens. Same Amount caveat as the mint event.
type BearingCollateralBurnEvent struct {
	User   string
	Amount decimal.Decimal
}

// DebtTransferEvent is a transfer of debt between two users. Token is the
// address of the debt token contract that emitted the event, it is supplied
// by the caller and never comes from the event payload.
type DebtTransferEvent struct {
	Sender    string
	Recipient string
	Amount    decimal.Decimal
	Token     string
}

// DebtMintEvent is a mint of debt tokens against a user. The second payload
// field is stored under Token, mirroring the upstream schema; whether it is
// a token address or an amount has not been settled by the schema owners,
// so the raw felt is kept untouched.
type DebtMintEvent struct {
	User  string
	Token string
}

// DebtBurnEvent is a burn of debt tokens from a user.
type DebtBurnEvent struct {
	User   string
	Amount decimal.Decimal
}
