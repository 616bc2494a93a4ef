package model

type RawEvent struct {
	Hash        string `gorm:"column:hash;primaryKey"`
	FromAddress string `gorm:"column:from_address"`
	EventName   string `gorm:"column:event_name"`
	Data        string `gorm:"column:data"`
	Block       uint64 `gorm:"column:block_number"`
	Timestamp   uint64 `gorm:"column:block_timestamp"`
	TxHash      string `gorm:"column:tx_hash"`
	EventIndex  uint32 `gorm:"column:event_index"`
}

func (RawEvent) TableName() string {
	return "raw_events"
}
