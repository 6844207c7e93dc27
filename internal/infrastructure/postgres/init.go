package postgres

import (
	"log"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RewardConfig) *gorm.DB {
	dsn := cfg.RewardDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.WalletModel{},
		&models.LedgerEntryModel{},
		&models.AdModel{},
		&models.CampaignModel{},
		&models.AdViewModel{},
		&models.DailyEarningModel{},
		&models.FraudFlagModel{},
		&models.MediaIngestJobModel{},
	)

	return db
}
