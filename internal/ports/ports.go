package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Lookups
	GeocodingProvider GeocodingProvider
	WeatherProvider   WeatherProvider
	ImageBackends     []ImageBackend
	LandmarkSuggester LandmarkSuggester

	// Persistence
	CombinationRepository CombinationRepository
	UserRepository        UserRepository
	SessionRepository     SessionRepository
	PasswordHasher        PasswordHasher

	// Cache
	Cache          CacheProvider
	CacheMetrics   CacheMetrics
	RequestCounter RequestCounter

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}
