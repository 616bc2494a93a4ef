package main

import (
	"flag"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/0xprinc/derisk-research/connector/tidb"
	"github.com/0xprinc/derisk-research/loader"
	"github.com/0xprinc/derisk-research/logger"
	"github.com/0xprinc/derisk-research/model"
)

var (
	inputfile  string
	outputfile string
)

func init() {
	flag.StringVar(&inputfile, "events", "", "the filename of input data, default(./data/events.input.txt)")
	flag.StringVar(&outputfile, "output", "./data/nostra.output.txt", "the filename of output result, default(./data/nostra.output.txt)")

	flag.Parse()

	if inputfile == "" {
		log.Fatal("Please specify the events file path.")
	}
}

func main() {

	var log = logger.GetLogger()

	log.Info("start index")

	startedAt := time.Now()

	db, err := tidb.GetDBInstanceByEnv()
	if err != nil {
		log.Fatalf("connect db failed, %s", err)
	}

	err = loader.GetMaxBlockNumberFromDB(db)
	if err != nil {
		log.Fatalf("load max block number failed, %s", err)
	}

	events, err := loader.LoadEventData(inputfile)
	if err != nil {
		log.Fatalf("invalid input, %s", err)
	}

	batch, err := loader.ProcessEvents(events)
	if err != nil {
		log.Fatalf("process error, %s", err)
	}

	log.Info("successed")

	var lastBlock uint64
	for _, event := range events {
		if event.Block > lastBlock {
			lastBlock = event.Block
		}
	}

	run := &model.IngestRun{
		ID:         uuid.NewString(),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Events:     len(events),
		Parsed:     batch.Parsed(),
		Skipped:    batch.Skipped,
		LastBlock:  lastBlock,
	}

	if err := tidb.ProcessUpsert(db, batch, run); err != nil {
		log.Fatalf("upsert error, %s", err)
	}

	if err := loader.DumpSummary(outputfile, batch); err != nil {
		log.Fatalf("dump summary failed, %s", err)
	}
}
