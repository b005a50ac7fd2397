package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/spf13/viper"
)

// defaults holds every recognised key with its fallback value
var defaults = map[string]interface{}{
	"app.name":             "smartdustbin",
	"app.env":              "local",
	"app.debug":            true,
	"app.version":          "development",
	"app.seed_sample_data": true,

	"server.host":             "",
	"server.port":             3000,
	"server.read_timeout":     15,
	"server.write_timeout":    15,
	"server.shutdown_timeout": 30,

	"store.driver":       "mongo",
	"store.ping_timeout": 2,

	"mongodb.uri":      "mongodb://localhost:27017",
	"mongodb.database": "smartdustbin",

	"db.host":       "localhost",
	"db.port":       5432,
	"db.username":   "",
	"db.password":   "",
	"db.database":   "smartdustbin",
	"db.ssl_mode":   "disable",
	"db.path":       "smartdustbin.db",
	"db.max_conns":  10,
	"db.idle_conns": 2,

	"redis.host":      "",
	"redis.port":      6379,
	"redis.password":  "",
	"redis.db":        0,
	"redis.pool_size": 10,

	"cache.enabled":       false,
	"cache.ttl_seconds":   30,
	"cache.warm_schedule": "@every 1m",

	"nsq.address": "",

	"new_relic.license_key":  "",
	"new_relic.app_name":     "smartdustbin",
	"new_relic.enabled":      false,
	"new_relic.logs_enabled": false,
	"new_relic.forward_logs": false,

	"log.level":     "info",
	"log.file_path": "",

	"dashboard.api_base_url":     "http://localhost:3000",
	"dashboard.request_timeout":  10,
	"dashboard.location_enabled": true,
	"dashboard.latitude":         "",
	"dashboard.longitude":        "",
}

// InitConfig loads configuration from an optional file and the environment.
// Environment variables use the upper-cased key with dots replaced by
// underscores, e.g. SERVER_PORT or MONGODB_URI.
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				log.Printf("config file %s not found, using environment", configPath)
			} else {
				log.Println("error loading config from file", err)
			}
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.env")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")
	configs.App.SeedSampleData = v.GetBool("app.seed_sample_data")

	// Server config
	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read_timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write_timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")

	// Store selection
	configs.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	configs.Store.PingTimeout = v.GetInt("store.ping_timeout")

	// MongoDB config
	configs.Mongo.URI = v.GetString("mongodb.uri")
	configs.Mongo.Database = v.GetString("mongodb.database")

	// SQL database config
	configs.Database.Host = v.GetString("db.host")
	configs.Database.Port = v.GetInt("db.port")
	configs.Database.Username = v.GetString("db.username")
	configs.Database.Password = v.GetString("db.password")
	configs.Database.Database = v.GetString("db.database")
	configs.Database.SSLMode = v.GetString("db.ssl_mode")
	configs.Database.Path = v.GetString("db.path")
	configs.Database.MaxConns = v.GetInt("db.max_conns")
	configs.Database.IdleConns = v.GetInt("db.idle_conns")

	// Redis config
	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	// Cache config
	configs.Cache.Enabled = v.GetBool("cache.enabled")
	configs.Cache.TTLSeconds = v.GetInt("cache.ttl_seconds")
	configs.Cache.WarmSchedule = v.GetString("cache.warm_schedule")

	// NSQ config
	configs.NSQ.Address = v.GetString("nsq.address")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("new_relic.license_key")
	configs.NewRelic.AppName = v.GetString("new_relic.app_name")
	configs.NewRelic.Enabled = v.GetBool("new_relic.enabled")
	configs.NewRelic.LogsEnabled = v.GetBool("new_relic.logs_enabled")
	configs.NewRelic.ForwardLogs = v.GetBool("new_relic.forward_logs")

	// Logger config
	configs.Logger.Level = v.GetString("log.level")
	configs.Logger.FilePath = v.GetString("log.file_path")

	// Dashboard config
	configs.Dashboard.APIBaseURL = v.GetString("dashboard.api_base_url")
	configs.Dashboard.RequestTimeout = v.GetInt("dashboard.request_timeout")
	configs.Dashboard.LocationEnabled = v.GetBool("dashboard.location_enabled")
	configs.Dashboard.Latitude = optionalFloat(v, "dashboard.latitude")
	configs.Dashboard.Longitude = optionalFloat(v, "dashboard.longitude")

	return configs
}

// optionalFloat returns nil when the key is unset or not a number
func optionalFloat(v *viper.Viper, key string) *float64 {
	if strings.TrimSpace(v.GetString(key)) == "" {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, ignoring", key)
		return nil
	}
	return &value
}
