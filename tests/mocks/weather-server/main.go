package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ForecastResponse mirrors the hourly Open-Meteo forecast payload
type ForecastResponse struct {
	UTCOffsetSeconds int    `json:"utc_offset_seconds"`
	Hourly           Hourly `json:"hourly"`
}

type Hourly struct {
	Time             []string  `json:"time"`
	Temperature      []float64 `json:"temperature_2m"`
	RelativeHumidity []float64 `json:"relative_humidity_2m"`
	WindSpeed        []float64 `json:"wind_speed_10m"`
	WeatherCode      []int     `json:"weather_code"`
	IsDay            []int     `json:"is_day"`
}

// CityResult mirrors one entry of the city lookup payload
type CityResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type station struct {
	Temperature float64
	Humidity    float64
	WindSpeed   float64
	WeatherCode int
}

// stations are keyed by latitude rounded to a whole degree
var stations = map[int]station{
	52: {Temperature: 15.0, Humidity: 76.0, WindSpeed: 14.0, WeatherCode: 2},   // london
	49: {Temperature: 18.0, Humidity: 68.0, WindSpeed: 9.0, WeatherCode: 0},    // paris
	39: {Temperature: 24.0, Humidity: 60.0, WindSpeed: 11.0, WeatherCode: 1},   // lisbon
	64: {Temperature: -4.0, Humidity: 85.0, WindSpeed: 20.0, WeatherCode: 73}, // reykjavik
}

var cities = []CityResult{
	{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Country: "GB"},
	{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Country: "FR"},
	{Name: "Lisbon", Latitude: 38.7223, Longitude: -9.1393, Country: "PT"},
	{Name: "Reykjavik", Latitude: 64.1466, Longitude: -21.9426, Country: "IS"},
	{Name: "Portland", Latitude: 45.5152, Longitude: -122.6784, Country: "US"},
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/v1/forecast", forecast)
	r.GET("/v1/city", searchCities)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Mock upstream server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func forecast(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude parameter required"})
		return
	}
	if _, err := strconv.ParseFloat(c.Query("longitude"), 64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude parameter required"})
		return
	}

	// the south pole stands in for an upstream outage
	if latitude <= -89 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	s, ok := stations[int(latitude+0.5)]
	if !ok {
		s = station{Temperature: 21.0, Humidity: 55.0, WindSpeed: 8.0, WeatherCode: 0}
	}
	c.JSON(http.StatusOK, hourlyForecast(s, time.Now().UTC()))
}

func hourlyForecast(s station, now time.Time) ForecastResponse {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var h Hourly
	for i := 0; i < 24; i++ {
		isDay := 0
		if i >= 7 && i < 20 {
			isDay = 1
		}
		h.Time = append(h.Time, day.Add(time.Duration(i)*time.Hour).Format("2006-01-02T15:04"))
		h.Temperature = append(h.Temperature, s.Temperature)
		h.RelativeHumidity = append(h.RelativeHumidity, s.Humidity)
		h.WindSpeed = append(h.WindSpeed, s.WindSpeed)
		h.WeatherCode = append(h.WeatherCode, s.WeatherCode)
		h.IsDay = append(h.IsDay, isDay)
	}
	return ForecastResponse{Hourly: h}
}

func searchCities(c *gin.Context) {
	if c.GetHeader("X-Api-Key") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
		return
	}

	name := strings.ToLower(strings.TrimSpace(c.Query("name")))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name parameter required"})
		return
	}
	if name == "servererror" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid limit %q", c.Query("limit"))})
		return
	}

	matches := make([]CityResult, 0, limit)
	for _, city := range cities {
		if strings.HasPrefix(strings.ToLower(city.Name), name) && len(matches) < limit {
			matches = append(matches, city)
		}
	}
	c.JSON(http.StatusOK, matches)
}
