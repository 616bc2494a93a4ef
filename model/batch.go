package model

// ParsedBatch collects everything one processing pass produced, grouped the
// way it is written out.
type ParsedBatch struct {
	RawEvents             []*RawEvent
	InterestRateUpdates   []*InterestRateRecord
	BearingCollateralMint []*BearingCollateralMintRecord
	BearingCollateralBurn []*BearingCollateralBurnRecord
	DebtTransfers         []*DebtTransferRecord
	DebtMints             []*DebtMintRecord
	DebtBurns             []*DebtBurnRecord
	Skipped               int
}

// Parsed is the number of typed records in the batch.
func (b *ParsedBatch) Parsed() int {
	return len(b.InterestRateUpdates) +
		len(b.BearingCollateralMint) +
		len(b.BearingCollateralBurn) +
		len(b.DebtTransfers) +
		len(b.DebtMints) +
		len(b.DebtBurns)
}
