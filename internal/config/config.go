package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Search    SearchConfig
	Nominatim NominatimConfig
	Overpass  OverpassConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL time.Duration
}

// SearchConfig - параметры поисковой воронки (радиусы в метрах)
type SearchConfig struct {
	InitialRadius int
	MaxRadius     int
	RadiusStep    int
	DefaultLimit  int
	MaxLimit      int
}

// NominatimConfig - reverse-геокодер
type NominatimConfig struct {
	BaseURL        string
	Zoom           int
	UserAgent      string
	RequestTimeout int // seconds
}

// OverpassConfig - источник OSM данных для загрузки
type OverpassConfig struct {
	URL            string
	BBoxSouth      float64
	BBoxWest       float64
	BBoxNorth      float64
	BBoxEast       float64
	RequestTimeout int // seconds
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Search: SearchConfig{
			InitialRadius: viper.GetInt("SEARCH_INITIAL_RADIUS"),
			MaxRadius:     viper.GetInt("SEARCH_MAX_RADIUS"),
			RadiusStep:    viper.GetInt("SEARCH_RADIUS_STEP"),
			DefaultLimit:  viper.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:      viper.GetInt("SEARCH_MAX_LIMIT"),
		},
		Nominatim: NominatimConfig{
			BaseURL:        viper.GetString("NOMINATIM_BASE_URL"),
			Zoom:           viper.GetInt("NOMINATIM_ZOOM"),
			UserAgent:      viper.GetString("NOMINATIM_USER_AGENT"),
			RequestTimeout: viper.GetInt("NOMINATIM_REQUEST_TIMEOUT"),
		},
		Overpass: OverpassConfig{
			URL:            viper.GetString("OVERPASS_URL"),
			BBoxSouth:      viper.GetFloat64("OVERPASS_BBOX_SOUTH"),
			BBoxWest:       viper.GetFloat64("OVERPASS_BBOX_WEST"),
			BBoxNorth:      viper.GetFloat64("OVERPASS_BBOX_NORTH"),
			BBoxEast:       viper.GetFloat64("OVERPASS_BBOX_EAST"),
			RequestTimeout: viper.GetInt("OVERPASS_REQUEST_TIMEOUT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.Search.InitialRadius == 0 {
		cfg.Search.InitialRadius = 500
	}
	if cfg.Search.MaxRadius == 0 {
		cfg.Search.MaxRadius = 2000
	}
	if cfg.Search.RadiusStep == 0 {
		cfg.Search.RadiusStep = 500
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 5
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 10
	}
	if cfg.Nominatim.BaseURL == "" {
		cfg.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.Zoom == 0 {
		cfg.Nominatim.Zoom = 18
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "Dokopoo/1.0"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 5
	}
	if cfg.Overpass.URL == "" {
		cfg.Overpass.URL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 300
	}
	if cfg.Overpass.BBoxSouth == 0 && cfg.Overpass.BBoxNorth == 0 {
		// Tokyo 23 wards by default
		cfg.Overpass.BBoxSouth = 35.53
		cfg.Overpass.BBoxWest = 139.56
		cfg.Overpass.BBoxNorth = 35.82
		cfg.Overpass.BBoxEast = 139.92
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "address-cachefill-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
