package configs

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRefreshInterval = "30s"
	DefaultListenAddr      = ":8080"
	DefaultLogFile         = "logs/cosmoboard.log"
	DefaultLogLevel        = "info"

	DefaultTokenAddress = "0x11188bb79cd956ab6b8ddff06d64f479358b59ddbd2058a41b447cdf21c17ab0"
)

type Config struct {
	// 基础配置
	TokenAddress    string `json:"token_address" yaml:"token_address"`       // $COSMO 合约地址
	RefreshInterval string `json:"refresh_interval" yaml:"refresh_interval"` // 数据刷新间隔

	Endpoints Endpoints `json:"endpoints" yaml:"endpoints"`

	Server Server `json:"server" yaml:"server"`

	Log Log `json:"log" yaml:"log"`
}

// Endpoints 远程接口地址。Leaderboard、GraphQL、TokenList 暂未使用
type Endpoints struct {
	AtmosStats       string `json:"atmos_stats" yaml:"atmos_stats"`
	AtmosLeaderboard string `json:"atmos_leaderboard" yaml:"atmos_leaderboard"`
	AtmosGraphQL     string `json:"atmos_graphql" yaml:"atmos_graphql"`
	TokenList        string `json:"token_list" yaml:"token_list"`
}

type Server struct {
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"` // 监听地址
}

type Log struct {
	Level string `json:"level" yaml:"level"` // debug/info/warn/error
	File  string `json:"file" yaml:"file"`   // 日志文件，空则只输出到 stdout
}

// Default returns the configuration the dashboard ships with.
func Default() Config {
	return Config{
		TokenAddress:    DefaultTokenAddress,
		RefreshInterval: DefaultRefreshInterval,
		Endpoints: Endpoints{
			AtmosStats:       "https://api.atmos.ag/stats/api/overall-stats",
			AtmosLeaderboard: "https://api.atmos.ag/stats/api/v1/leaderboard/data",
			AtmosGraphQL:     "https://prod-gw.atmosprotocol.com/graphql/",
			TokenList:        "https://prod-gw.atmosprotocol.com/swapRouter/tokenlist",
		},
		Server: Server{ListenAddr: DefaultListenAddr},
		Log:    Log{Level: DefaultLogLevel, File: DefaultLogFile},
	}
}

// Load reads path (JSON, or YAML for .yaml/.yml) over the defaults, then applies
// .env and COSMO_* environment overrides. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(raw, &cfg)
		default:
			err = json.Unmarshal(raw, &cfg)
		}
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COSMO_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("COSMO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv("COSMO_LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v := os.Getenv("COSMO_REFRESH_INTERVAL"); v != "" {
		cfg.RefreshInterval = v
	}
}

// Validate checks the interval and that every endpoint is an absolute http(s) URL.
func (c Config) Validate() error {
	interval, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return fmt.Errorf("invalid refresh_interval %q: %w", c.RefreshInterval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("invalid refresh_interval %q: must be positive", c.RefreshInterval)
	}

	endpoints := map[string]string{
		"atmos_stats":       c.Endpoints.AtmosStats,
		"atmos_leaderboard": c.Endpoints.AtmosLeaderboard,
		"atmos_graphql":     c.Endpoints.AtmosGraphQL,
		"token_list":        c.Endpoints.TokenList,
	}
	for name, raw := range endpoints {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid endpoint %s: %w", name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid endpoint %s: %q is not an http(s) URL", name, raw)
		}
	}

	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is empty")
	}
	return nil
}

// Interval returns the parsed refresh interval. Call only on a validated Config.
func (c Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultRefreshInterval)
	}
	return d
}
