package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InterestRateRecord struct {
	BlockTimestamp time.Time       `gorm:"column:block_timestamp;type:datetime(3)"`
	BlockNumber    uint64          `gorm:"column:block_number"`
	TxHash         string          `gorm:"column:tx_hash;primaryKey"`
	EventIndex     uint32          `gorm:"column:event_index;primaryKey"`
	DebtToken      string          `gorm:"column:debt_token"`
	LendingIndex   decimal.Decimal `gorm:"column:lending_index;type:decimal(65,0)"`
	BorrowIndex    decimal.Decimal `gorm:"column:borrow_index;type:decimal(65,0)"`
}

func (InterestRateRecord) TableName() string {
	return "interest_rate_updates"
}

type BearingCollateralMintRecord struct {
	BlockTimestamp time.Time       `gorm:"column:block_timestamp;type:datetime(3)"`
	BlockNumber    uint64          `gorm:"column:block_number"`
	TxHash         string          `gorm:"column:tx_hash;primaryKey"`
	EventIndex     uint32          `gorm:"column:event_index;primaryKey"`
	User           string          `gorm:"column:user"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(65,0)"`
}

func (BearingCollateralMintRecord) TableName() string {
	return "bearing_collateral_mints"
}

type BearingCollateralBurnRecord struct {
	BlockTimestamp time.Time       `gorm:"column:block_timestamp;type:datetime(3)"`
	BlockNumber    uint64          `gorm:"column:block_number"`
	TxHash         string          `gorm:"column:tx_hash;primaryKey"`
	EventIndex     uint32          `gorm:"column:event_index;primaryKey"`
	User           string          `gorm:"column:user"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(65,0)"`
}

func (BearingCollateralBurnRecord) TableName() string {
	return "bearing_collateral_burns"
}

type DebtTransferRecord struct {
	BlockTimestamp time.Time       `gorm:"column:block_timestamp;type:datetime(3)"`
	BlockNumber    uint64          `gorm:"column:block_number"`
	TxHash         string          `gorm:"column:tx_hash;primaryKey"`
	EventIndex     uint32          `gorm:"column:event_index;primaryKey"`
	Sender         string          `gorm:"column:sender"`
	Recipient      string          `gorm:"column:recipient"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(65,0)"`
	Token          string          `gorm:"column:token"`
}

func (DebtTransferRecord) TableName() string {
	return "debt_transfers"
}

type DebtMintRecord struct {
	BlockTimestamp time.Time `gorm:"column:block_timestamp;type:datetime(3)"`
	BlockNumber    uint64    `gorm:"column:block_number"`
	TxHash         string    `gorm:"column:tx_hash;primaryKey"`
	EventIndex     uint32    `gorm:"column:event_index;primaryKey"`
	User           string    `gorm:"column:user"`
	Token          string    `gorm:"column:token"`
}

func (DebtMintRecord) TableName() string {
	return "debt_mints"
}

type DebtBurnRecord struct {
	BlockTimestamp time.Time       `gorm:"column:block_timestamp;type:datetime(3)"`
	BlockNumber    uint64          `gorm:"column:block_number"`
	TxHash         string          `gorm:"column:tx_hash;primaryKey"`
	EventIndex     uint32          `gorm:"column:event_index;primaryKey"`
	User           string          `gorm:"column:user"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(65,0)"`
}

func (DebtBurnRecord) TableName() string {
	return "debt_burns"
}
