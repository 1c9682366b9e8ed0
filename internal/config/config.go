// Package config 负责加载和管理应用程序的配置。
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Session  SessionConfig  `mapstructure:"session"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// AppConfig 存储应用自身的元信息。
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port  string `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// Mode 返回与 debug 开关对应的 gin 运行模式。
func (s ServerConfig) Mode() string {
	if s.Debug {
		return "debug"
	}
	return "release"
}

// SessionConfig 存储会话 Cookie 的签名配置。
type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	CookieName string `mapstructure:"cookie_name"`
	TTLHours   int    `mapstructure:"ttl_hours"`
}

// DatabaseConfig 存储所有数据库连接的配置。
type DatabaseConfig struct {
	// Driver 取值 sqlite 或 mysql。
	Driver string      `mapstructure:"driver"`
	DSN    string      `mapstructure:"dsn"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig 存储 Redis 的配置。Addr 为空时不启用对话历史缓存。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// KafkaConfig 存储 Kafka 相关的配置。Brokers 为空时不发布事件。
type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

// LLMConfig 存储大语言模型相关的配置。
type LLMConfig struct {
	APIKey       string              `mapstructure:"api_key"`
	BaseURL      string              `mapstructure:"base_url"`
	Model        string              `mapstructure:"model"`
	Timeout      time.Duration       `mapstructure:"timeout"`
	MaxRetries   int                 `mapstructure:"max_retries"`
	RetryBackoff time.Duration       `mapstructure:"retry_backoff"`
	Generation   LLMGenerationConfig `mapstructure:"generation"`
}

// LLMGenerationConfig 配置生成相关参数。
type LLMGenerationConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// envBindings 列出可由环境变量覆盖的配置项。
var envBindings = map[string]string{
	"session.secret":      "SECRET_KEY",
	"llm.api_key":         "AI_API_KEY",
	"llm.base_url":        "AI_BASE_URL",
	"llm.model":           "AI_MODEL",
	"server.debug":        "DEBUG",
	"server.port":         "PORT",
	"database.driver":     "DATABASE_DRIVER",
	"database.dsn":        "DATABASE_URL",
	"database.redis.addr": "REDIS_ADDR",
	"kafka.brokers":       "KAFKA_BROKERS",
	"log.level":           "LOG_LEVEL",
	"log.format":          "LOG_FORMAT",
	"log.output_path":     "LOG_OUTPUT_PATH",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ai-study-assistant")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.debug", false)

	v.SetDefault("session.secret", "your-secret-key-here")
	v.SetDefault("session.cookie_name", "study_session")
	v.SetDefault("session.ttl_hours", 24*30)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "study_assistant.db")
	v.SetDefault("database.redis.addr", "")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_path", "")

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "study-conversations")

	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-3.5-turbo")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.max_retries", 0)
	v.SetDefault("llm.retry_backoff", 500*time.Millisecond)
	v.SetDefault("llm.generation.temperature", 0.7)
	v.SetDefault("llm.generation.max_tokens", 1000)
}

// Load 加载配置：先读取 .env（若存在），再读取 YAML 文件（若存在），最后由环境变量覆盖。
// configPath 为空或文件不存在时只使用默认值与环境变量。
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("读取 .env 文件失败: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("绑定环境变量 %s 失败: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("无法将配置解析到结构体中: %w", err)
	}
	if cfg.Server.Debug && cfg.Log.Level == "info" {
		cfg.Log.Level = "debug"
		cfg.Log.Format = "console"
	}
	return &cfg, nil
}
