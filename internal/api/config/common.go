package config

// Config 配置主体
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Identity IdentityConfig `mapstructure:"identity"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Push     PushConfig     `mapstructure:"push"`
	Cron     CronConfig     `mapstructure:"cron"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

// APIConfig REST backend
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	PageSize       int    `mapstructure:"page_size"`
}

// IdentityConfig auth/session provider
type IdentityConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// RedisConfig backs the persisted session token. Empty Addr keeps the token in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	TokenKey string `mapstructure:"token_key"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	PublicHost   string `mapstructure:"public_host"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	PostBucket   string `mapstructure:"post_bucket"`
	AvatarBucket string `mapstructure:"avatar_bucket"`
	UseSSL       bool   `mapstructure:"use_ssl"`
}

type PushConfig struct {
	URL     string `mapstructure:"url"`
	Enabled bool   `mapstructure:"enabled"`
}

type CronConfig struct {
	UnreadCountSpec string `mapstructure:"unread_count_spec"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// UploadConfig media processing limits
type UploadConfig struct {
	MaxImageWidth  int   `mapstructure:"max_image_width"`
	MaxPostBytes   int64 `mapstructure:"max_post_bytes"`
	MaxAvatarBytes int64 `mapstructure:"max_avatar_bytes"`
}
