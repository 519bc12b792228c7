package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Contest ContestConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type JWTConfig struct {
	Secret      string
	ExpireHours int
}

// ContestConfig 描述本期徵集活動的基本設置
type ContestConfig struct {
	Name     string
	Deadline string // RFC3339 格式的投稿截止時間
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	viper.SetDefault("jwt.expirehours", 240)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if _, err := time.Parse(time.RFC3339, config.Contest.Deadline); err != nil {
		return nil, fmt.Errorf("invalid contest deadline: %v", err)
	}

	return &config, nil
}

// DeadlineTime 返回解析後的截止時間，Load 時已驗證過格式
func (c *Config) DeadlineTime() time.Time {
	t, _ := time.Parse(time.RFC3339, c.Contest.Deadline)
	return t
}
