package probe

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FFProbe shells out to ffprobe to read a media file's container duration.
// The timeout bounds every probe so a stuck download cannot starve the
// single-job-per-tick ingestion loop.
type FFProbe struct {
	Path    string
	Timeout time.Duration
}

func NewFFProbe(path string, timeout time.Duration) *FFProbe {
	return &FFProbe{Path: path, Timeout: timeout}
}

func (p *FFProbe) ProbeDuration(ctx context.Context, mediaURL string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, p.Path,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		mediaURL,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned non-numeric duration: %w", err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("ffprobe returned invalid duration %f", value)
	}

	return int64(math.Floor(value)), nil
}

// CDNMediaResolver builds the public URL the probe and clients fetch from.
type CDNMediaResolver struct {
	BaseURL string
}

func NewCDNMediaResolver(baseURL string) *CDNMediaResolver {
	return &CDNMediaResolver{BaseURL: baseURL}
}

func (r *CDNMediaResolver) PublicMediaURL(mediaKey string) string {
	return strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(mediaKey, "/")
}
