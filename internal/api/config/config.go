package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("agrilink")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://127.0.0.1:8000/api")
	v.SetDefault("api.timeout_seconds", 20)
	v.SetDefault("api.page_size", 10)
	v.SetDefault("redis.token_key", "agrilink:session:token")
	v.SetDefault("redis.pool_size", 4)
	v.SetDefault("minio.post_bucket", "post-images")
	v.SetDefault("minio.avatar_bucket", "user-avatars")
	v.SetDefault("cron.unread_count_spec", "@every 30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("upload.max_image_width", 1200)
	v.SetDefault("upload.max_post_bytes", 10<<20)
	v.SetDefault("upload.max_avatar_bytes", 5<<20)
}
