package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Store     StoreConfig
	Mongo     MongoConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	NSQ       NSQConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Dashboard DashboardConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name           string
	Environment    string
	Debug          bool
	Version        string
	SeedSampleData bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// StoreConfig selects the backing record store
type StoreConfig struct {
	Driver      string // mongo, postgres or sqlite3
	PingTimeout int    // seconds
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	URI      string
	Database string
}

// DatabaseConfig contains SQL database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	Path      string // sqlite3 file
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// CacheConfig controls the active-record list cache
type CacheConfig struct {
	Enabled      bool
	TTLSeconds   int
	WarmSchedule string // cron schedule, empty disables warming
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string // empty disables event publishing
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DashboardConfig configures the terminal dashboard client
type DashboardConfig struct {
	APIBaseURL      string
	RequestTimeout  int // seconds
	LocationEnabled bool
	Latitude        *float64
	Longitude       *float64
}
