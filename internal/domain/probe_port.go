package domain

import "context"

// DurationProber resolves a media URL to a whole-second duration. It must
// enforce its own bounded timeout and return an error rather than hang.
type DurationProber interface {
	ProbeDuration(ctx context.Context, mediaURL string) (int64, error)
}

// MediaURLResolver turns a stored media key into a public URL.
type MediaURLResolver interface {
	PublicMediaURL(mediaKey string) string
}
