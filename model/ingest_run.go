package model

import "time"

// IngestRun keeps bookkeeping for one indexer invocation.
type IngestRun struct {
	ID         string    `gorm:"column:id;primaryKey"`
	StartedAt  time.Time `gorm:"column:started_at;type:datetime(3)"`
	FinishedAt time.Time `gorm:"column:finished_at;type:datetime(3)"`
	Events     int       `gorm:"column:events"`
	Parsed     int       `gorm:"column:parsed"`
	Skipped    int       `gorm:"column:skipped"`
	LastBlock  uint64    `gorm:"column:last_block"`
}

func (IngestRun) TableName() string {
	return "ingest_runs"
}
