package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"sunsip.app/internal/core/city"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/weather"
)

// CitiesResponse lists the candidates for a search query
type CitiesResponse struct {
	Cities []city.CityOption `json:"cities"`
}

// WeatherQuery represents the query parameters of GET /api/weather
type WeatherQuery struct {
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lon" binding:"required,min=-180,max=180"`
	City      string   `form:"city" binding:"max=120"`
	Country   string   `form:"country" binding:"max=120"`
}

// CocktailQuery represents the query parameters of GET /api/cocktail
type CocktailQuery struct {
	CountryCode string   `form:"country_code" binding:"max=8"`
	Condition   string   `form:"condition" binding:"max=64"`
	Temperature *float64 `form:"temperature" binding:"required,min=-90,max=60"`
}

// CatalogResponse lists every cocktail the selector can pick
type CatalogResponse struct {
	Cocktails []cocktail.Cocktail `json:"cocktails"`
}

// searchCities handles GET /api/cities requests; an empty query yields the sentinel entry
func (s *HTTPServerAdapter) searchCities(c *gin.Context) {
	query := c.Query("q")
	slog.Debug("Searching cities", "query", query)

	c.JSON(http.StatusOK, CitiesResponse{
		Cities: s.cityUseCase.SearchCities(c.Request.Context(), query),
	})
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if !s.bindQuery(c, &query) {
		return
	}

	slog.Debug("Getting weather", "city", query.City, "lat", *query.Latitude, "lon", *query.Longitude)

	snapshot := s.weatherUseCase.GetWeather(c.Request.Context(), weather.Request{
		Latitude:  *query.Latitude,
		Longitude: *query.Longitude,
		City:      query.City,
		Country:   query.Country,
	})
	c.JSON(http.StatusOK, snapshot)
}

// selectCocktail handles GET /api/cocktail requests
func (s *HTTPServerAdapter) selectCocktail(c *gin.Context) {
	var query CocktailQuery
	if !s.bindQuery(c, &query) {
		return
	}

	c.JSON(http.StatusOK, s.cocktailUseCase.SelectCocktail(c.Request.Context(), cocktail.Request{
		CountryCode: query.CountryCode,
		Condition:   query.Condition,
		Temperature: *query.Temperature,
	}))
}

// listCocktails handles GET /api/cocktails requests
func (s *HTTPServerAdapter) listCocktails(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{Cocktails: s.cocktailUseCase.Catalog()})
}
