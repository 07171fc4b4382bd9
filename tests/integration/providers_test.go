package integration

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"os"

	"sunsip.app/internal/adapters/api"
	"sunsip.app/internal/core/weather"
)

func (s *IntegrationTestSuite) TestCitySearchUsesUpstream() {
	w := s.request(http.MethodGet, "/api/cities?q=li", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var response api.CitiesResponse
	s.decode(w, &response)
	s.Require().Len(response.Cities, 1)
	s.Equal("Lisbon", response.Cities[0].City)
	s.Equal("Portugal", response.Cities[0].Country)
	s.Equal("pt", response.Cities[0].CountryCode)

	// the second lookup is served from Redis
	cached, err := s.ports.Cache.Exists(context.Background(), "cities:li")
	s.Require().NoError(err)
	s.True(cached)
}

func (s *IntegrationTestSuite) TestCitySearchFallsBackOnUpstreamError() {
	w := s.request(http.MethodGet, "/api/cities?q=servererror", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var response api.CitiesResponse
	s.decode(w, &response)
	s.Require().Len(response.Cities, 1)
	s.Equal("Servererror", response.Cities[0].City)
	s.Equal("xx", response.Cities[0].CountryCode)
}

func (s *IntegrationTestSuite) TestWeatherFallsBackToSynthetic() {
	w := s.request(http.MethodGet, "/api/weather?lat=-89.5&lon=0&city=Amundsen", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var snapshot weather.Snapshot
	s.decode(w, &snapshot)
	s.True(snapshot.Synthetic)
	s.Equal("Amundsen", snapshot.City)
}

func (s *IntegrationTestSuite) TestProviderCallsAreWrittenToLogFile() {
	w := s.request(http.MethodGet, "/api/weather?lat=64.1466&lon=-21.9426&city=Reykjavik", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var snapshot weather.Snapshot
	s.decode(w, &snapshot)
	s.False(snapshot.Synthetic)
	s.Equal(-4, snapshot.Temperature)

	file, err := os.Open(s.config.Logging.FilePath)
	s.Require().NoError(err)
	defer file.Close()

	found := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		if json.Unmarshal(scanner.Bytes(), &entry) != nil {
			continue
		}
		if entry["provider"] == "open-meteo" {
			found = true
		}
	}
	s.Require().NoError(scanner.Err())
	s.True(found, "expected an open-meteo entry in %s", s.config.Logging.FilePath)
}
