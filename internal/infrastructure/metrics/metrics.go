package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RewardMetrics covers the reward path, campaign accounting and the
// ingestion queue.
type RewardMetrics struct {
	// Rewards
	RewardsGrantedTotal   prometheus.CounterVec
	RewardCoinsTotal      prometheus.CounterVec
	RewardRejectionsTotal prometheus.CounterVec

	// Campaigns
	CampaignsCreatedTotal   prometheus.CounterVec
	CampaignsCompletedTotal prometheus.Counter
	CampaignSpendCoinsTotal prometheus.CounterVec

	// Queue serving
	CandidateServedTotal prometheus.CounterVec

	// Fraud
	FraudFlagsTotal prometheus.CounterVec

	// Ingestion
	IngestJobsTotal     prometheus.CounterVec
	IngestProbeDuration prometheus.Histogram
}

func NewRewardMetrics() *RewardMetrics {
	return &RewardMetrics{
		RewardsGrantedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_granted_total",
				Help: "Validated view completions credited to wallets",
			},
			[]string{"ad_type"},
		),

		RewardCoinsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_coins_total",
				Help: "Total coins credited for watched ads",
			},
			[]string{"ad_type"},
		),

		RewardRejectionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_rejections_total",
				Help: "Completion attempts rejected, by reason",
			},
			[]string{"reason"},
		),

		CampaignsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaigns_created_total",
				Help: "Campaigns funded by advertisers",
			},
			[]string{"owner_id"},
		),

		CampaignsCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campaigns_completed_total",
				Help: "Campaigns that exhausted their budget",
			},
		),

		CampaignSpendCoinsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_spend_coins_total",
				Help: "Coins debited from campaign budgets",
			},
			[]string{"campaign_id"},
		),

		CandidateServedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ad_candidates_served_total",
				Help: "Queue selections, split by outcome",
			},
			[]string{"outcome"},
		),

		FraudFlagsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_flags_total",
				Help: "Advisory fraud flags written, by reason",
			},
			[]string{"reason"},
		),

		IngestJobsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingest_jobs_total",
				Help: "Media ingestion job outcomes per tick",
			},
			[]string{"result"},
		),

		IngestProbeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingest_probe_duration_seconds",
				Help:    "Wall time of a single duration probe",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}
