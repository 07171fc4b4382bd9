package integration

import (
	"context"
	"net/http"
	"time"

	"sunsip.app/internal/core/account"
)

func (s *IntegrationTestSuite) TestDailyLimitIsSharedThroughRedis() {
	for i := 0; i < s.config.RequestLimit.DailyLimit; i++ {
		w := s.request(http.MethodPost, "/api/recommendations", lisbon, client("limited-client")...)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}

	w := s.request(http.MethodPost, "/api/recommendations", lisbon, client("limited-client")...)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("0", w.Header().Get("X-RateLimit-Remaining"))

	w = s.request(http.MethodGet, "/api/limits", nil, client("limited-client")...)
	s.Require().Equal(http.StatusOK, w.Code)

	var status account.LimitStatus
	s.decode(w, &status)
	s.Equal(s.config.RequestLimit.DailyLimit, status.Used)
	s.Zero(status.Remaining)
	s.True(status.ResetsAt.After(time.Now()))

	// the counter lives in Redis and also counts the refused request
	key := "requests:client:limited-client:" + time.Now().UTC().Format("2006-01-02")
	count, err := s.ports.RequestCounter.Current(context.Background(), key)
	s.Require().NoError(err)
	s.EqualValues(s.config.RequestLimit.DailyLimit+1, count)
}

func (s *IntegrationTestSuite) TestAdminIsNotLimited() {
	token := s.SignUp(adminEmail)

	for i := 0; i <= s.config.RequestLimit.DailyLimit; i++ {
		w := s.request(http.MethodPost, "/api/recommendations", lisbon, bearer(token)...)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}
}
