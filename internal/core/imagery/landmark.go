package imagery

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryingSuggester retries a landmark suggester while the service reports it is overloaded
type RetryingSuggester struct {
	next       ports.LandmarkSuggester
	maxRetries int
	baseDelay  time.Duration
	sleep      SleepFunc
	logger     ports.Logger
}

// NewRetryingSuggester wraps next; a nil sleep waits on real timers
func NewRetryingSuggester(next ports.LandmarkSuggester, maxRetries int, baseDelay time.Duration, sleep SleepFunc, logger ports.Logger) *RetryingSuggester {
	if sleep == nil {
		sleep = sleepContext
	}
	return &RetryingSuggester{
		next:       next,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		sleep:      sleep,
		logger:     logger,
	}
}

// SuggestLandmark returns "" with no error once every retry hit an overloaded service.
// Any other failure is returned immediately.
func (r *RetryingSuggester) SuggestLandmark(ctx context.Context, city, country string) (string, error) {
	delay := r.baseDelay
	for attempt := 0; ; attempt++ {
		landmark, err := r.next.SuggestLandmark(ctx, city, country)
		if err == nil {
			return strings.TrimSpace(landmark), nil
		}
		if errors.StatusCodeOf(err) != http.StatusServiceUnavailable {
			return "", err
		}
		if attempt >= r.maxRetries {
			r.logger.Warn("Landmark service still overloaded, giving up",
				ports.F("city", city),
				ports.F("attempts", attempt+1))
			return "", nil
		}

		r.logger.Debug("Landmark service overloaded, retrying",
			ports.F("city", city),
			ports.F("attempt", attempt+1),
			ports.F("delay", delay.String()))
		if err := r.sleep(ctx, delay); err != nil {
			return "", fmt.Errorf("wait before landmark retry: %w", err)
		}
		delay *= 2
	}
}
