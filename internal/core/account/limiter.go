package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// Subject identifies who a request counts against
type Subject struct {
	// Key is a user id or an anonymous client id
	Key     string
	IsAdmin bool
}

// LimitStatus reports the state of a subject's daily allowance
type LimitStatus struct {
	Limit     int       `json:"limit"`
	Used      int       `json:"used"`
	Remaining int       `json:"remaining"`
	Unlimited bool      `json:"unlimited"`
	ResetsAt  time.Time `json:"resetsAt"`
}

// Limiter enforces the daily recommendation allowance
type Limiter struct {
	counter ports.RequestCounter
	config  ports.ConfigProvider
	logger  ports.Logger
	now     func() time.Time
}

type LimiterDependencies struct {
	Counter ports.RequestCounter
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Now     func() time.Time
}

func NewLimiter(deps LimiterDependencies) (*Limiter, error) {
	if deps.Counter == nil {
		return nil, errors.NewValidationError("request counter is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Limiter{
		counter: deps.Counter,
		config:  deps.Config,
		logger:  deps.Logger,
		now:     deps.Now,
	}, nil
}

// CheckAndConsume counts one request and fails with a rate limit error once the allowance is spent.
// Counter failures let the request through.
func (l *Limiter) CheckAndConsume(ctx context.Context, subject Subject) (LimitStatus, error) {
	status, key, bypass, err := l.prepare(subject)
	if err != nil || bypass {
		return status, err
	}

	count, err := l.counter.Increment(ctx, key, status.ResetsAt)
	if err != nil {
		l.logger.Warn("Request counter unavailable, allowing request",
			ports.F("subject", subject.Key),
			ports.F("error", err))
		return status, nil
	}

	status = fill(status, count)
	if count > int64(status.Limit) {
		return status, errors.NewRateLimitError(fmt.Sprintf("daily limit of %d recommendations reached", status.Limit))
	}
	return status, nil
}

// Status reports the allowance without consuming it
func (l *Limiter) Status(ctx context.Context, subject Subject) (LimitStatus, error) {
	status, key, bypass, err := l.prepare(subject)
	if err != nil || bypass {
		return status, err
	}

	count, err := l.counter.Current(ctx, key)
	if err != nil {
		return status, fmt.Errorf("read request counter: %w", err)
	}
	return fill(status, count), nil
}

func (l *Limiter) prepare(subject Subject) (LimitStatus, string, bool, error) {
	key := strings.TrimSpace(subject.Key)
	if key == "" {
		return LimitStatus{}, "", false, errors.NewValidationError("client id is required")
	}

	cfg := l.config.GetRequestLimitConfig()
	now := l.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	status := LimitStatus{
		Limit:     cfg.DailyLimit,
		Remaining: cfg.DailyLimit,
		ResetsAt:  day.AddDate(0, 0, 1),
	}

	if subject.IsAdmin || cfg.PortfolioMode {
		status.Unlimited = true
		return status, "", true, nil
	}
	return status, fmt.Sprintf("requests:%s:%s", key, day.Format("2006-01-02")), false, nil
}

func fill(status LimitStatus, count int64) LimitStatus {
	used := int(count)
	if used > status.Limit {
		used = status.Limit
	}
	status.Used = used
	status.Remaining = status.Limit - used
	return status
}
