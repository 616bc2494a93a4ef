package loader

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/0xprinc/derisk-research/connector/tidb"
	"github.com/0xprinc/derisk-research/logger"
	"github.com/0xprinc/derisk-research/model"
	"github.com/0xprinc/derisk-research/parser"
	"github.com/0xprinc/derisk-research/utils"
)

var maxBlockNumber uint64 = 0

// LoadEventData reads decoded event rows from a comma separated input file.
// Expected order per line: event_index, tx_hash, from_address, event_name,
// data (felts joined by spaces), block_timestamp, block_number.
func LoadEventData(fname string) ([]*model.RawEvent, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []*model.RawEvent
	scanner := bufio.NewScanner(file)
	max := 4 * 1024 * 1024
	buf := make([]byte, max)
	scanner.Buffer(buf, max)

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ",")

		if len(fields) != 7 {
			return nil, fmt.Errorf("invalid data format, %d fields: %s", len(fields), line)
		}

		blockNumber, err := strconv.ParseUint(fields[6], 10, 64)
		if err != nil {
			return nil, err
		}
		if blockNumber <= maxBlockNumber {
			continue
		}

		var event model.RawEvent

		eventIdx, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, err
		}
		event.EventIndex = uint32(eventIdx)

		event.TxHash = fields[1]
		event.FromAddress = fields[2]
		event.EventName = fields[3]
		event.Data = fields[4]

		blockTimestamp, err := strconv.ParseUint(fields[5], 10, 64)
		if err != nil {
			return nil, err
		}
		event.Timestamp = blockTimestamp
		event.Block = blockNumber

		event.Hash = utils.Keccak256(event.TxHash + ":" + fields[0])

		events = append(events, &event)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Fields splits a raw event payload into its ordered felt values.
func Fields(event *model.RawEvent) []string {
	return strings.Fields(event.Data)
}

// ProcessEvents maps raw events to typed records, grouped per table. Rows
// with an unknown event name are logged and skipped, everything else either
// parses or aborts the batch with the parser's error.
func ProcessEvents(events []*model.RawEvent) (*model.ParsedBatch, error) {
	var log = logger.GetLogger()

	batch := &model.ParsedBatch{RawEvents: events}

	for _, event := range events {
		fields := Fields(event)

		switch event.EventName {
		case parser.EventInterestRateModel:
			record, err := parser.ParseInterestRateModelEvent(fields)
			if err != nil {
				return nil, err
			}
			batch.InterestRateUpdates = append(batch.InterestRateUpdates, convertInterestRate(event, record))
		case parser.EventInterestBearingCollateralMint:
			record, err := parser.ParseInterestBearingCollateralMintEvent(fields)
			if err != nil {
				return nil, err
			}
			batch.BearingCollateralMint = append(batch.BearingCollateralMint, convertBearingMint(event, record))
		case parser.EventInterestBearingCollateralBurn:
			record, err := parser.ParseInterestBearingCollateralBurnEvent(fields)
			if err != nil {
				return nil, err
			}
			batch.BearingCollateralBurn = append(batch.BearingCollateralBurn, convertBearingBurn(event, record))
		case parser.EventNonInterestBearingCollateralMint:
			_, err := parser.ParseNonInterestBearingCollateralMintEvent(fields)
			return nil, err
		case parser.EventNonInterestBearingCollateralBurn:
			_, err := parser.ParseNonInterestBearingCollateralBurnEvent(fields)
			return nil, err
		case parser.EventDebtTransfer:
			record, err := parser.ParseDebtTransferEvent(fields, event.FromAddress)
			if err != nil {
				return nil, err
			}
			batch.DebtTransfers = append(batch.DebtTransfers, convertDebtTransfer(event, record))
		case parser.EventDebtMint:
			record, err := parser.ParseDebtMintEvent(fields)
			if err != nil {
				return nil, err
			}
			batch.DebtMints = append(batch.DebtMints, convertDebtMint(event, record))
		case parser.EventDebtBurn:
			record, err := parser.ParseDebtBurnEvent(fields)
			if err != nil {
				return nil, err
			}
			batch.DebtBurns = append(batch.DebtBurns, convertDebtBurn(event, record))
		default:
			log.Infof("skip unknown event %s at block %d", event.EventName, event.Block)
			batch.Skipped++
		}
	}

	return batch, nil
}

func blockTime(event *model.RawEvent) time.Time {
	return time.Unix(int64(event.Timestamp), 0)
}

func convertInterestRate(event *model.RawEvent, record *model.InterestRateModelEvent) *model.InterestRateRecord {
	return &model.InterestRateRecord{
		BlockTimestamp: blockTime(event),
		BlockNumber:    event.Block,
		TxHash:         event.TxHash,
		EventIndex:     event.EventIndex,
		DebtToken:      record.DebtToken,
		LendingIndex:   record.LendingIndex,
		BorrowIndex:    record.BorrowIndex,
	}
}

func convertBearingMint(event *model.RawEvent, record *model.BearingCollateralMintEvent) *model.BearingCollateralMintRecord {
	return &model.BearingCollateralMintRecord{
		BlockTimestamp: blockTime(event),
		BlockNumber:    event.Block,
		TxHash:         event.TxHash,
		EventIndex:     event.EventIndex,
		User:           record.User,
		Amount:         record.Amount,
	}
}

func convertBearingBurn(event *model.RawEvent, record *model.BearingCollateralBurnEvent) *model.BearingCollateralBurnRecord {
	return &model.BearingCollateralBurnRecord{
		BlockTimestamp: blockTime(event),
		BlockNumber:    event.Block,
		TxHash:         event.TxHash,
		EventIndex:     event.EventIndex,
		User:           record.User,
		Amount:         record.Amount,
	}
}

func convertDebtTransfer(event *model.RawEvent, record *model.DebtTransferEvent) *model.DebtTransferRecord {
	return &model.DebtTransferRecord{
		BlockTimestamp: blockTime(event),
		BlockNumber:    event.Block,
		TxHash:         event.TxHash,
		EventIndex:     event.EventIndex,
		Sender:         record.Sender,
		Recipient:      record.Recipient,
		Amount:         record.Amount,
		Token:          record.Token,
	}
}

func convertDebtMint(event *model.RawEvent, record *model.DebtMintEvent) *model.DebtMintRecord {
	return &model.DebtMintRecord{
		BlockTimestamp: blockTime(event),
		BlockNumber:    event.Block,
		TxHash:         event.TxHash,
		EventIndex:     event.EventIndex,
		User:           record.User,
		Token:          record.Token,
	}
}

func convertDebtBurn(event *model.RawEvent, record *model.DebtBurnEvent) *model.DebtBurnRecord {
	return &model.DebtBurnRecord{
		BlockTimestamp: blockTime(event),
		BlockNumber:    event.Block,
		TxHash:         event.TxHash,
		EventIndex:     event.EventIndex,
		User:           record.User,
		Amount:         record.Amount,
	}
}

// DumpSummary writes per-table record counts of a processed batch.
func DumpSummary(fname string, batch *model.ParsedBatch) error {
	file, err := os.OpenFile(fname, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0777)
	if err != nil {
		return err
	}
	defer file.Close()

	counts := map[string]int{
		model.InterestRateRecord{}.TableName():          len(batch.InterestRateUpdates),
		model.BearingCollateralMintRecord{}.TableName(): len(batch.BearingCollateralMint),
		model.BearingCollateralBurnRecord{}.TableName(): len(batch.BearingCollateralBurn),
		model.DebtTransferRecord{}.TableName():          len(batch.DebtTransfers),
		model.DebtMintRecord{}.TableName():              len(batch.DebtMints),
		model.DebtBurnRecord{}.TableName():              len(batch.DebtBurns),
	}

	var tables []string
	for table := range counts {
		tables = append(tables, table)
	}
	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i] < tables[j]
	})

	for _, table := range tables {
		fmt.Fprintf(file, "%s records: %d\n", table, counts[table])
	}
	fmt.Fprintf(file, "events: %d, parsed: %d, skipped: %d\n", len(batch.RawEvents), batch.Parsed(), batch.Skipped)

	return nil
}

func SetMaxBlockNumber(max uint64) {
	maxBlockNumber = max
}

// GetMaxBlockNumberFromDB loads the resume point from the raw events table.
func GetMaxBlockNumberFromDB(db *gorm.DB) error {
	exist, err := tidb.JudgeTableExistOrNot(db, model.RawEvent{}.TableName())
	if exist {
		var maxBlock *uint64
		db.Raw("SELECT MAX(block_number) FROM raw_events").Scan(&maxBlock)
		if maxBlock != nil && maxBlockNumber < *maxBlock {
			maxBlockNumber = *maxBlock
		}
	}
	return err
}
