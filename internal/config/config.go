package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/campus-navigator/internal/domain"
	"github.com/spf13/viper"
)

// Источники данных карты
const (
	SourceGeoJSON  = "geojson"
	SourcePostgres = "postgres"
	SourceOverpass = "overpass"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Source   SourceConfig
	Routing  RoutingConfig
	Session  SessionConfig
	Share    ShareConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
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
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

type CacheConfig struct {
	RouteCacheTTL time.Duration
}

type LogConfig struct {
	Level         string
	DebugCapacity int
}

type SourceConfig struct {
	Kind            string
	NodesPath       string
	RoadsPath       string
	OverpassURL     string
	OverpassBBox    domain.BoundingBox
	OverpassTimeout time.Duration
}

type RoutingConfig struct {
	WalkingSpeed      float64 // m/s
	DefaultStartNode  string
	LocationDebounce  time.Duration
	GraphReadyTimeout time.Duration
	RoadTypes         []string
	CampusBuffer      float64 // m
}

type SessionConfig struct {
	TTL           time.Duration
	EvictInterval time.Duration
}

type ShareConfig struct {
	BaseURL  string
	CampusID string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	BatchSize         int
	ShutdownTimeout   time.Duration
	ClaimMinIdle      time.Duration
}

// Load reads .env from the working directory and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads the given env file and the environment; environment values
// win. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	bbox, err := parseBBox(v.GetString("OVERPASS_BBOX"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERPASS_BBOX: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:     v.GetBool("REDIS_ENABLED"),
			Host:        v.GetString("REDIS_HOST"),
			Port:        v.GetInt("REDIS_PORT"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			PoolSize:    v.GetInt("REDIS_POOL_SIZE"),
			DialTimeout: v.GetDuration("REDIS_DIAL_TIMEOUT"),
		},
		Cache: CacheConfig{
			RouteCacheTTL: time.Duration(v.GetInt("ROUTE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:         v.GetString("LOG_LEVEL"),
			DebugCapacity: v.GetInt("DEBUG_LOG_CAPACITY"),
		},
		Source: SourceConfig{
			Kind:            strings.ToLower(v.GetString("FEATURE_SOURCE")),
			NodesPath:       v.GetString("NODES_GEOJSON_PATH"),
			RoadsPath:       v.GetString("ROADS_GEOJSON_PATH"),
			OverpassURL:     v.GetString("OVERPASS_ENDPOINT"),
			OverpassBBox:    bbox,
			OverpassTimeout: time.Duration(v.GetInt("OVERPASS_TIMEOUT")) * time.Second,
		},
		Routing: RoutingConfig{
			WalkingSpeed:      v.GetFloat64("ROUTING_WALKING_SPEED"),
			DefaultStartNode:  v.GetString("ROUTING_DEFAULT_START_NODE"),
			LocationDebounce:  time.Duration(v.GetInt("ROUTING_LOCATION_DEBOUNCE")) * time.Millisecond,
			GraphReadyTimeout: time.Duration(v.GetInt("ROUTING_GRAPH_READY_TIMEOUT")) * time.Second,
			RoadTypes:         parseList(v.GetString("ROUTING_ROAD_TYPES")),
			CampusBuffer:      v.GetFloat64("ROUTING_CAMPUS_BUFFER"),
		},
		Session: SessionConfig{
			TTL:           time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
			EvictInterval: time.Duration(v.GetInt("SESSION_EVICT_INTERVAL")) * time.Second,
		},
		Share: ShareConfig{
			BaseURL:  strings.TrimRight(v.GetString("SHARE_BASE_URL"), "/"),
			CampusID: v.GetString("CAMPUS_ID"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			ShutdownTimeout:   v.GetDuration("WORKER_SHUTDOWN_TIMEOUT"),
			ClaimMinIdle:      v.GetDuration("WORKER_CLAIM_MIN_IDLE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBUG_LOG_CAPACITY", 50)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")
	v.SetDefault("ROUTE_CACHE_TTL", 600)

	v.SetDefault("FEATURE_SOURCE", SourceGeoJSON)
	v.SetDefault("NODES_GEOJSON_PATH", "data/nodes.geojson")
	v.SetDefault("ROADS_GEOJSON_PATH", "data/roads.geojson")
	v.SetDefault("OVERPASS_ENDPOINT", "https://overpass-api.de/api/interpreter")
	v.SetDefault("OVERPASS_TIMEOUT", 60)

	v.SetDefault("ROUTING_WALKING_SPEED", domain.DefaultWalkingSpeed)
	v.SetDefault("ROUTING_DEFAULT_START_NODE", "gate1")
	v.SetDefault("ROUTING_LOCATION_DEBOUNCE", 3000)
	v.SetDefault("ROUTING_GRAPH_READY_TIMEOUT", 10)
	v.SetDefault("ROUTING_CAMPUS_BUFFER", 500)

	v.SetDefault("SESSION_TTL", 1800)
	v.SetDefault("SESSION_EVICT_INTERVAL", 60)
	v.SetDefault("SHARE_BASE_URL", "http://localhost:8080")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "route-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_BATCH_SIZE", 10)
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", "30s")
	v.SetDefault("WORKER_CLAIM_MIN_IDLE", "30s")
}

// Validate checks settings that would otherwise fail much later.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceGeoJSON:
		if c.Source.NodesPath == "" || c.Source.RoadsPath == "" {
			return fmt.Errorf("geojson source requires NODES_GEOJSON_PATH and ROADS_GEOJSON_PATH")
		}
	case SourcePostgres:
	case SourceOverpass:
		if c.Source.OverpassBBox == (domain.BoundingBox{}) {
			return fmt.Errorf("overpass source requires OVERPASS_BBOX")
		}
	default:
		return fmt.Errorf("unknown FEATURE_SOURCE %q", c.Source.Kind)
	}

	if c.Routing.WalkingSpeed <= 0 {
		return fmt.Errorf("ROUTING_WALKING_SPEED must be positive, got %v", c.Routing.WalkingSpeed)
	}
	return nil
}

// parseBBox reads "minLat,minLon,maxLat,maxLon". Empty input is allowed.
func parseBBox(s string) (domain.BoundingBox, error) {
	parts := parseList(s)
	if len(parts) == 0 {
		return domain.BoundingBox{}, nil
	}
	if len(parts) != 4 {
		return domain.BoundingBox{}, fmt.Errorf("expected 4 comma-separated values, got %d", len(parts))
	}

	values := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return domain.BoundingBox{}, fmt.Errorf("value %q: %w", p, err)
		}
		values[i] = f
	}

	bbox := domain.BoundingBox{MinLat: values[0], MinLon: values[1], MaxLat: values[2], MaxLon: values[3]}
	if bbox.MinLat >= bbox.MaxLat || bbox.MinLon >= bbox.MaxLon {
		return domain.BoundingBox{}, fmt.Errorf("min must be below max")
	}
	return bbox, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// DebugEnabled reports whether recent log lines are collected and served at
// /api/v1/debug/log: outside production, or in production at LOG_LEVEL=debug.
func (c *Config) DebugEnabled() bool {
	return c.Server.Env != "production" || strings.EqualFold(c.Log.Level, "debug")
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
