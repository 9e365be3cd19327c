package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Seed     int64  `mapstructure:"seed"`
	LogLevel string `mapstructure:"log_level"`

	// Catalog access
	PostgresDSN string        `mapstructure:"postgres_dsn"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`

	// Geo / delivery estimation
	MaxDistanceKm         float64 `mapstructure:"max_distance_km"`
	BaseDeliveryFee       float64 `mapstructure:"base_delivery_fee"`
	DeliveryFeePerKm      float64 `mapstructure:"delivery_fee_per_km"`
	DeliverySpeedKmh      float64 `mapstructure:"delivery_speed_kmh"`
	DeliveryPickupBuffer  int     `mapstructure:"delivery_pickup_buffer_minutes"`
	FreeDeliveryThreshold float64 `mapstructure:"free_delivery_threshold"`

	// Analytics sink
	KafkaEnabled    bool               `mapstructure:"kafka_enabled"`
	KafkaBrokerList string             `mapstructure:"kafka_broker_list"`
	OutputFile      string             `mapstructure:"output_file_path"`
	OutputFolder    string             `mapstructure:"output_folder"`
	OutputFormat    string             `mapstructure:"output_format"` // console, json, parquet
	CloudStorage    CloudStorageConfig `mapstructure:"cloud_storage"`

	// Demo / seed data generation
	InitialDishes int     `mapstructure:"initial_dishes"`
	InitialCooks  int     `mapstructure:"initial_cooks"`
	CityLat       float64 `mapstructure:"city_latitude"`
	CityLon       float64 `mapstructure:"city_longitude"`
	UrbanRadius   float64 `mapstructure:"urban_radius"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("log_level", "info")
	viper.SetDefault("max_distance_km", DefaultMaxDistanceKm)
	viper.SetDefault("base_delivery_fee", 1500)
	viper.SetDefault("delivery_fee_per_km", 300)
	viper.SetDefault("delivery_speed_kmh", 25)
	viper.SetDefault("delivery_pickup_buffer_minutes", 10)
	viper.SetDefault("cache_ttl", "5m")
	viper.SetDefault("initial_dishes", 200)
	viper.SetDefault("initial_cooks", 25)
	viper.SetDefault("city_latitude", -33.4489)
	viper.SetDefault("city_longitude", -70.6693)
	viper.SetDefault("urban_radius", 12.0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
