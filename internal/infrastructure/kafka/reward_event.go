package kafka

import "time"

const (
	TopicRewardEvents   = "reward-events"
	TopicCampaignEvents = "campaign-events"
	TopicFraudEvents    = "fraud-events"
)

type ViewCompletedEvent struct {
	ViewID      string    `json:"view_id"`
	AdID        string    `json:"ad_id"`
	ViewerID    string    `json:"viewer_id"`
	CampaignID  string    `json:"campaign_id"`
	RewardCoins int64     `json:"reward_coins"`
	CompletedAt time.Time `json:"completed_at"`
}

type CampaignCreatedEvent struct {
	CampaignID  string `json:"campaign_id"`
	OwnerID     string `json:"owner_id"`
	AdID        string `json:"ad_id"`
	BudgetCoins int64  `json:"budget_coins"`
}

type FraudFlagEvent struct {
	UserID   string `json:"user_id"`
	Reason   string `json:"reason"`
	Severity int32  `json:"severity"`
}
