package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultViewRepository struct {
	DB *gorm.DB
}

func NewDefaultViewRepository(db *gorm.DB) *DefaultViewRepository {
	return &DefaultViewRepository{DB: db}
}

func (r *DefaultViewRepository) CreateView(ctx context.Context, view *domain.AdView) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMAdView(view)).Error
}

func (r *DefaultViewRepository) GetView(ctx context.Context, viewID, adID, viewerID string) (*domain.AdView, error) {
	var viewModel models.AdViewModel
	err := r.DB.WithContext(ctx).
		First(&viewModel, "id = ? AND ad_id = ? AND viewer_id = ?", viewID, adID, viewerID).Error
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainAdView(&viewModel), nil
}

func (r *DefaultViewRepository) ListViewedAdIDs(ctx context.Context, viewerID string, since time.Time) ([]string, error) {
	var adIDs []string
	err := r.DB.WithContext(ctx).
		Model(&models.AdViewModel{}).
		Where("viewer_id = ? AND started_at >= ?", viewerID, since).
		Distinct().
		Pluck("ad_id", &adIDs).Error
	if err != nil {
		return nil, err
	}
	return adIDs, nil
}

func (r *DefaultViewRepository) CountDistinctViewersByIP(ctx context.Context, ip string, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.AdViewModel{}).
		Where("ip_address = ? AND started_at >= ?", ip, since).
		Distinct("viewer_id").
		Count(&count).Error
	return count, err
}

func (r *DefaultViewRepository) CountDistinctViewersByFingerprint(ctx context.Context, fingerprint string, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.AdViewModel{}).
		Where("fingerprint = ? AND started_at >= ?", fingerprint, since).
		Distinct("viewer_id").
		Count(&count).Error
	return count, err
}

func (r *DefaultViewRepository) GetDailyEarning(ctx context.Context, userID, day string) (int64, error) {
	var earningModel models.DailyEarningModel
	err := r.DB.WithContext(ctx).
		First(&earningModel, "user_id = ? AND day = ?", userID, day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return earningModel.Coins, nil
}

// CommitReward is the one place a validated view turns into coin movement.
// Every guard is a conditional update checked through RowsAffected, so
// concurrent completions and exhausted budgets fail inside the transaction
// and roll everything back.
func (r *DefaultViewRepository) CommitReward(ctx context.Context, commit *domain.RewardCommit) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Idempotency guard: only one completion ever flips valid
		res := tx.Model(&models.AdViewModel{}).
			Where("id = ? AND valid = ?", commit.View.ID, false).
			Updates(map[string]interface{}{
				"valid":                  true,
				"completed_at":           commit.View.CompletedAt,
				"client_watched_seconds": commit.View.ClientWatchedSeconds,
				"client_completed":       commit.View.ClientCompleted,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyCompleted
		}

		if err := tx.Create(mappers.ToGORMLedgerEntry(commit.Entry)).Error; err != nil {
			return err
		}

		res = tx.Model(&models.WalletModel{}).
			Where("user_id = ?", commit.Entry.UserID).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", commit.Entry.Delta),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// No wallet row for the viewer; the entry created above must
			// not survive without the matching credit
			return gorm.ErrRecordNotFound
		}

		// Spend may never pass the budget: the guard admits at most
		// floor(remaining/reward) concurrent completions
		res = tx.Model(&models.CampaignModel{}).
			Where("id = ? AND status = ? AND spend_coins + ? <= budget_coins",
				commit.CampaignID, domain.CampaignActive, commit.Entry.Delta).
			Updates(map[string]interface{}{
				"spend_coins": gorm.Expr("spend_coins + ?", commit.Entry.Delta),
				"updated_at":  time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCampaignInactive
		}

		// Completed-transition checks the committed spend value, not one
		// read earlier in the transaction
		if err := tx.Model(&models.CampaignModel{}).
			Where("id = ? AND spend_coins >= budget_coins AND status <> ?",
				commit.CampaignID, domain.CampaignCompleted).
			Updates(map[string]interface{}{
				"status":     domain.CampaignCompleted,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		// Daily earning upsert with the cap enforced in the same unit.
		// Create-first keeps two first-of-day commits off the primary key:
		// the loser's insert is a no-op and falls through to the guarded
		// increment.
		if commit.Entry.Delta > commit.DailyCap {
			return domain.ErrDailyCapReached
		}
		earning := &models.DailyEarningModel{
			UserID: commit.Entry.UserID,
			Day:    commit.Day,
			Coins:  commit.Entry.Delta,
		}
		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(earning)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			res = tx.Model(&models.DailyEarningModel{}).
				Where("user_id = ? AND day = ? AND coins + ? <= ?",
					commit.Entry.UserID, commit.Day, commit.Entry.Delta, commit.DailyCap).
				Update("coins", gorm.Expr("coins + ?", commit.Entry.Delta))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrDailyCapReached
			}
		}

		return nil
	})
}
