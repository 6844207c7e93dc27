package domain

import "errors"

var (
	ErrInvalidPayload          = errors.New("invalid_payload")
	ErrViewNotFound            = errors.New("view_not_found")
	ErrAlreadyCompleted        = errors.New("already_completed")
	ErrWatchTimeTooShort       = errors.New("watch_time_too_short")
	ErrVideoNotFullyWatched    = errors.New("video_not_fully_watched")
	ErrDailyCapReached         = errors.New("daily_cap_reached")
	ErrCampaignInactive        = errors.New("campaign_inactive")
	ErrInsufficientBalance     = errors.New("insufficient_balance")
	ErrCampaignBudgetExhausted = errors.New("campaign_budget_exhausted")
	ErrDurationProbeFailed     = errors.New("duration_probe_failed")
	ErrNotAVideo               = errors.New("not_a_video")
	ErrForbidden               = errors.New("forbidden")
)
