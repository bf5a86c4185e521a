package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	GitHub   GitHubConfig   `mapstructure:"github"`
	Server   ServerConfig   `mapstructure:"server"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Store    StoreConfig    `mapstructure:"store"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Log      LogConfig      `mapstructure:"log"`
}

type GitHubConfig struct {
	Token   string        `mapstructure:"token"`
	BaseURL string        `mapstructure:"base_url"` // GitHub Enterprise 或测试服务器
	Timeout time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PipelineConfig struct {
	Concurrency  int `mapstructure:"concurrency"`   // 1 表示逐个处理候选仓库
	EventLookups int `mapstructure:"event_lookups"` // 趋势扫描时最多查询多少个仓库的事件
}

type StoreConfig struct {
	PostgresDSN   string `mapstructure:"postgres_dsn"` // 为空时不启用 star 快照
	RetentionDays int    `mapstructure:"retention_days"`
}

type NotifyConfig struct {
	FeishuWebhook string `mapstructure:"feishu_webhook"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text 或 json
}

// Default 默认配置
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Pipeline: PipelineConfig{
			Concurrency:  1,
			EventLookups: 30,
		},
		Store: StoreConfig{
			RetentionDays: 90,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load 按优先级合并配置: 默认值 < 配置文件 < TRACKER_* 环境变量
// path 为空时在当前目录查找 tracker.yaml，找不到也不算错误
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tracker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults 逐个 key 注册默认值，AutomaticEnv 才能匹配到嵌套 key
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("github.token", cfg.GitHub.Token)
	v.SetDefault("github.base_url", cfg.GitHub.BaseURL)
	v.SetDefault("github.timeout", cfg.GitHub.Timeout)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("pipeline.concurrency", cfg.Pipeline.Concurrency)
	v.SetDefault("pipeline.event_lookups", cfg.Pipeline.EventLookups)
	v.SetDefault("store.postgres_dsn", cfg.Store.PostgresDSN)
	v.SetDefault("store.retention_days", cfg.Store.RetentionDays)
	v.SetDefault("notify.feishu_webhook", cfg.Notify.FeishuWebhook)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// loadEnvFiles 加载 .env 文件，已经存在的环境变量不会被覆盖
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// applyEnvOverrides 兼容通用的环境变量名，只在对应配置为空时生效
func applyEnvOverrides(cfg *Config) {
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.Store.PostgresDSN == "" {
		cfg.Store.PostgresDSN = os.Getenv("DATABASE_URL")
	}
	if cfg.Notify.FeishuWebhook == "" {
		cfg.Notify.FeishuWebhook = os.Getenv("FEISHU_WEBHOOK")
	}
	cfg.GitHub.Token = strings.TrimSpace(cfg.GitHub.Token)
}

// Validate 检查配置是否合法
func (c *Config) Validate() error {
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("github.timeout 必须大于 0，当前为 %s", c.GitHub.Timeout)
	}
	if c.Pipeline.Concurrency < 1 {
		return fmt.Errorf("pipeline.concurrency 必须至少为 1，当前为 %d", c.Pipeline.Concurrency)
	}
	if c.Pipeline.EventLookups < 0 {
		return fmt.Errorf("pipeline.event_lookups 不能为负数，当前为 %d", c.Pipeline.EventLookups)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("不支持的日志格式 %q (可选 text/json)", c.Log.Format)
	}
	return nil
}

// DemoMode 没有配置 GitHub token 时进入演示模式
func (c *Config) DemoMode() bool {
	return c.GitHub.Token == ""
}

// SnapshotsEnabled 是否配置了 star 快照存储
func (c *Config) SnapshotsEnabled() bool {
	return c.Store.PostgresDSN != ""
}
