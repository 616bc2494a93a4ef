package tidb

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	logger2 "github.com/0xprinc/derisk-research/logger"
	"github.com/0xprinc/derisk-research/model"
)

var (
	db   *gorm.DB
	once sync.Once
)

type Config struct {
	User     string `envconfig:"USER" json:"tidb_user"`
	Password string `envconfig:"PASSWORD" json:"tidb_password"`
	Host     string `envconfig:"HOST" json:"tidb_host"`
	Port     string `envconfig:"PORT" json:"tidb_port"`
	DBName   string `envconfig:"DB_NAME" json:"tidb_db_name"`
}

func getConfigFromFile(file_name string) (*Config, error) {
	configFile, err := os.Open(file_name)
	if err != nil {
		return nil, err
	}
	defer configFile.Close()

	var config Config
	jsonParser := json.NewDecoder(configFile)
	if err = jsonParser.Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func createDB(config *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True",
		config.User, config.Password, config.Host, config.Port, config.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})

	if err != nil {
		return nil, err
	}

	return db, nil
}

func JudgeTableExistOrNot(db *gorm.DB, tableName string) (bool, error) {
	var count int
	db.Raw("SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?", tableName).Scan(&count)

	if count == 0 {
		return false, nil
	}
	return true, nil
}

func CreateTableIfNotExist[T any](db *gorm.DB, table T, tableName string) error {
	exist, err := JudgeTableExistOrNot(db, tableName)
	if err != nil {
		return err
	}
	if !exist {
		if err := db.AutoMigrate(&table); err != nil {
			return fmt.Errorf("create table %s failed: %w", tableName, err)
		}
	}
	return nil
}

func GetDBInstanceByConfigFile(file_name string) (*gorm.DB, error) {
	var err error
	once.Do(func() {
		var config *Config
		config, err = getConfigFromFile("./connector/tidb/" + file_name)
		if err != nil {
			return
		}
		db, err = createDB(config)
	})
	return db, err
}

func GetDBInstanceByEnv() (*gorm.DB, error) {
	var err error
	once.Do(func() {
		var config Config
		if err = envconfig.Process("tidb", &config); err != nil {
			return
		}
		db, err = createDB(&config)
	})
	return db, err
}

func batchUpsert[T any](db *gorm.DB, datas []T, batchSize int, table_name string) error {
	if len(datas) == 0 {
		return nil
	}

	var logger = logger2.GetLogger()
	for i := 0; i < len(datas); i += batchSize {
		end := i + batchSize
		if end > len(datas) {
			end = len(datas)
		}

		err := db.Table(table_name).Clauses(clause.OnConflict{
			UpdateAll: true,
		}).Create(datas[i:end]).Error

		if err != nil {
			return err
		}
	}

	logger.Infof("Upsert into db successed, items %d %s", len(datas), table_name)
	return nil
}

// ProcessUpsert writes a processed batch and its ingest run in one
// transaction, creating missing tables first.
func ProcessUpsert(db *gorm.DB, batch *model.ParsedBatch, run *model.IngestRun) error {
	if err := CreateTableIfNotExist(db, model.RawEvent{}, model.RawEvent{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.InterestRateRecord{}, model.InterestRateRecord{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.BearingCollateralMintRecord{}, model.BearingCollateralMintRecord{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.BearingCollateralBurnRecord{}, model.BearingCollateralBurnRecord{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.DebtTransferRecord{}, model.DebtTransferRecord{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.DebtMintRecord{}, model.DebtMintRecord{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.DebtBurnRecord{}, model.DebtBurnRecord{}.TableName()); err != nil {
		return err
	}
	if err := CreateTableIfNotExist(db, model.IngestRun{}, model.IngestRun{}.TableName()); err != nil {
		return err
	}

	var defaultBatchSize = 200
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := batchUpsert(tx, batch.RawEvents, defaultBatchSize, model.RawEvent{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, batch.InterestRateUpdates, defaultBatchSize, model.InterestRateRecord{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, batch.BearingCollateralMint, defaultBatchSize, model.BearingCollateralMintRecord{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, batch.BearingCollateralBurn, defaultBatchSize, model.BearingCollateralBurnRecord{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, batch.DebtTransfers, defaultBatchSize, model.DebtTransferRecord{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, batch.DebtMints, defaultBatchSize, model.DebtMintRecord{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, batch.DebtBurns, defaultBatchSize, model.DebtBurnRecord{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	if err := batchUpsert(tx, []*model.IngestRun{run}, defaultBatchSize, model.IngestRun{}.TableName()); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
