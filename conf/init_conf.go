package conf

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config application configuration structure
type Config struct {
	// Network configuration
	Port string

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// Storage configuration
	Storage StorageConfig

	// Auth configuration
	Auth AuthConfig

	// Upload configuration
	Upload UploadConfig

	// Lifecycle simulation configuration
	Lifecycle LifecycleConfig

	// Usage tracking configuration
	Usage UsageConfig

	// Build simulation configuration
	Build BuildConfig

	// Demo data configuration
	Demo DemoConfig

	// Swagger base URL (e.g., "localhost:5000")
	SwaggerBaseUrl string
}

// DatabaseConfig database configuration
type DatabaseConfig struct {
	Dsn          string // MySQL DSN
	MaxOpenConns int    // MySQL max open connections
	MaxIdleConns int    // MySQL max idle connections
}

// RedisConfig redis configuration
type RedisConfig struct {
	Enabled  bool   // Enable Redis cache
	Host     string // Redis host
	Port     int    // Redis port
	Password string // Redis password (optional)
	DB       int    // Redis database number
	CacheTTL int    // Cache TTL in seconds (default: 300)
}

// StorageConfig storage configuration
type StorageConfig struct {
	Type  string
	Local LocalStorageConfig
	OSS   OSSStorageConfig
	S3    S3StorageConfig
}

// LocalStorageConfig local storage configuration
type LocalStorageConfig struct {
	BasePath  string
	PublicUrl string // URL prefix the router serves uploads under
}

// OSSStorageConfig OSS storage configuration
type OSSStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Domain    string
}

// S3StorageConfig AWS S3 storage configuration
type S3StorageConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Domain    string
	Endpoint  string // Optional custom endpoint
}

// AuthConfig JWT auth configuration
type AuthConfig struct {
	JwtSecret     string
	TokenTTLHours int // Token lifetime in hours
}

// UploadConfig asset upload configuration
type UploadConfig struct {
	MaxFileSize int64 // Max upload size in bytes (configured in MB)
}

// LifecycleConfig metaverse lifecycle simulation timings
type LifecycleConfig struct {
	StartDelayMs       int     // STARTING -> RUNNING/ERROR resolution delay
	StopDelayMs        int     // STOPPING -> STOPPED resolution delay
	RestartStepDelayMs int     // Per-step delay during restart
	ErrorRate          float64 // Probability a start resolves to ERROR
}

// UsageConfig usage tracker configuration
type UsageConfig struct {
	TickSeconds int // Accrual tick period
}

// BuildConfig build simulation timings
type BuildConfig struct {
	ProcessingDelayMs int // QUEUED -> PROCESSING delay
	DoneDelayMs       int // QUEUED -> DONE delay (total from creation)
}

// DemoConfig demo seed configuration
type DemoConfig struct {
	Seed bool // Seed the demo creator account on boot
}

// Cfg global configuration instance
var Cfg *Config

// InitConfig initialize configuration
func InitConfig() error {
	viper.SetConfigFile(GetYaml())
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("Fatal error config file: %s", err)
	}

	// Create configuration instance
	Cfg = &Config{
		Port: viper.GetString("port"),

		Database: DatabaseConfig{
			Dsn:          viper.GetString("database.dsn"),
			MaxOpenConns: viper.GetInt("database.max_open_conns"),
			MaxIdleConns: viper.GetInt("database.max_idle_conns"),
		},

		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			CacheTTL: viper.GetInt("redis.cache_ttl"),
		},

		Storage: StorageConfig{
			Type: viper.GetString("storage.type"),
			Local: LocalStorageConfig{
				BasePath:  viper.GetString("storage.local.base_path"),
				PublicUrl: viper.GetString("storage.local.public_url"),
			},
			OSS: OSSStorageConfig{
				Endpoint:  viper.GetString("storage.oss.endpoint"),
				AccessKey: viper.GetString("storage.oss.access_key"),
				SecretKey: viper.GetString("storage.oss.secret_key"),
				Bucket:    viper.GetString("storage.oss.bucket"),
				Domain:    viper.GetString("storage.oss.domain"),
			},
			S3: S3StorageConfig{
				Region:    viper.GetString("storage.s3.region"),
				AccessKey: viper.GetString("storage.s3.access_key"),
				SecretKey: viper.GetString("storage.s3.secret_key"),
				Bucket:    viper.GetString("storage.s3.bucket"),
				Domain:    viper.GetString("storage.s3.domain"),
				Endpoint:  viper.GetString("storage.s3.endpoint"),
			},
		},

		Auth: AuthConfig{
			JwtSecret:     viper.GetString("auth.jwt_secret"),
			TokenTTLHours: viper.GetInt("auth.token_ttl_hours"),
		},

		Upload: UploadConfig{
			MaxFileSize: viper.GetInt64("upload.max_file_size") * 1024 * 1024, // MB to bytes
		},

		Lifecycle: LifecycleConfig{
			StartDelayMs:       viper.GetInt("lifecycle.start_delay_ms"),
			StopDelayMs:        viper.GetInt("lifecycle.stop_delay_ms"),
			RestartStepDelayMs: viper.GetInt("lifecycle.restart_step_delay_ms"),
			ErrorRate:          viper.GetFloat64("lifecycle.error_rate"),
		},

		Usage: UsageConfig{
			TickSeconds: viper.GetInt("usage.tick_seconds"),
		},

		Build: BuildConfig{
			ProcessingDelayMs: viper.GetInt("build.processing_delay_ms"),
			DoneDelayMs:       viper.GetInt("build.done_delay_ms"),
		},

		Demo: DemoConfig{
			Seed: viper.GetBool("demo.seed"),
		},

		SwaggerBaseUrl: viper.GetString("swagger_base_url"),
	}

	// Set default values
	if Cfg.Port == "" {
		Cfg.Port = "5000"
	}
	if Cfg.Database.MaxOpenConns == 0 {
		Cfg.Database.MaxOpenConns = 100
	}
	if Cfg.Database.MaxIdleConns == 0 {
		Cfg.Database.MaxIdleConns = 10
	}
	if Cfg.Redis.CacheTTL == 0 {
		Cfg.Redis.CacheTTL = 300
	}
	if Cfg.Storage.Type == "" {
		Cfg.Storage.Type = "local"
	}
	if Cfg.Storage.Local.BasePath == "" {
		Cfg.Storage.Local.BasePath = "./data/uploads"
	}
	if Cfg.Storage.Local.PublicUrl == "" {
		Cfg.Storage.Local.PublicUrl = "/uploads"
	}
	if Cfg.Auth.JwtSecret == "" {
		Cfg.Auth.JwtSecret = "dev-secret-change-me"
	}
	if Cfg.Auth.TokenTTLHours == 0 {
		Cfg.Auth.TokenTTLHours = 168 // 7 days
	}
	if Cfg.Upload.MaxFileSize == 0 {
		Cfg.Upload.MaxFileSize = 104857600 // 100MB
	}
	if Cfg.Lifecycle.StartDelayMs == 0 {
		Cfg.Lifecycle.StartDelayMs = 2000
	}
	if Cfg.Lifecycle.StopDelayMs == 0 {
		Cfg.Lifecycle.StopDelayMs = 2000
	}
	if Cfg.Lifecycle.RestartStepDelayMs == 0 {
		Cfg.Lifecycle.RestartStepDelayMs = 1000
	}
	if Cfg.Lifecycle.ErrorRate == 0 {
		Cfg.Lifecycle.ErrorRate = 0.1
	}
	if Cfg.Usage.TickSeconds == 0 {
		Cfg.Usage.TickSeconds = 60
	}
	if Cfg.Build.ProcessingDelayMs == 0 {
		Cfg.Build.ProcessingDelayMs = 3000
	}
	if Cfg.Build.DoneDelayMs == 0 {
		Cfg.Build.DoneDelayMs = 10000
	}
	if Cfg.SwaggerBaseUrl == "" {
		Cfg.SwaggerBaseUrl = "localhost:" + Cfg.Port
	}

	return nil
}
