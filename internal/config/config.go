package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Nacos    NacosConfig    `mapstructure:"nacos"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	// Mode gin运行模式：debug或release
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret             string `mapstructure:"secret"`
	ExpiryHours        int    `mapstructure:"expiry_hours"`
	RefreshExpiryHours int    `mapstructure:"refresh_expiry_hours"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Enable  bool     `mapstructure:"enable"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// StorageConfig 对象存储配置
type StorageConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	BucketName string `mapstructure:"bucket_name"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	PublicURL  string `mapstructure:"public_url"`
}

// NacosConfig Nacos配置
type NacosConfig struct {
	Enable      bool              `mapstructure:"enable"`
	ServerAddr  string            `mapstructure:"server_addr"`
	NamespaceID string            `mapstructure:"namespace_id"`
	Group       string            `mapstructure:"group"`
	ServiceName string            `mapstructure:"service_name"`
	Metadata    map[string]string `mapstructure:"metadata"`
	LogDir      string            `mapstructure:"log_dir"`
	CacheDir    string            `mapstructure:"cache_dir"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level         string `mapstructure:"level"`
	FilePath      string `mapstructure:"file_path"`
	ConsoleOutput bool   `mapstructure:"console_output"`
	JSONFormat    bool   `mapstructure:"json_format"`
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

// Load 从默认位置和环境变量加载配置
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	var config Config

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// 从环境变量覆盖端口
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}

	applyDefaults(&config)
	return &config, nil
}

// 设置默认值
func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "3000"
	}
	if config.Server.Mode == "" {
		config.Server.Mode = "debug"
	}
	if config.JWT.ExpiryHours <= 0 {
		config.JWT.ExpiryHours = 24
	}
	if config.JWT.RefreshExpiryHours <= 0 {
		config.JWT.RefreshExpiryHours = 24 * 30
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
}
