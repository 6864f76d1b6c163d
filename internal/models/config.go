package models

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed            int64   `mapstructure:"seed"`
	RestaurantName  string  `mapstructure:"restaurant_name"`
	Days            int     `mapstructure:"days"`
	Interactive     bool    `mapstructure:"interactive"`
	ClampInventory  bool    `mapstructure:"clamp_inventory"`
	KafkaEnabled    bool    `mapstructure:"kafka_enabled"`
	KafkaBrokerList string  `mapstructure:"kafka_broker_list"`
	OutputFile      string  `mapstructure:"output_file_path"`
	StartingRevenue float64 `mapstructure:"starting_revenue"`
	MinimumWage     float64 `mapstructure:"minimum_wage"`
	ShiftHours      float64 `mapstructure:"shift_hours"`
	PoolSize        int     `mapstructure:"potential_pool_size"`
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

	viper.SetDefault("days", 30)
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("starting_revenue", DefaultStartingRevenue)
	viper.SetDefault("minimum_wage", DefaultMinimumWage)
	viper.SetDefault("shift_hours", float64(DefaultShiftHours))
	viper.SetDefault("potential_pool_size", DefaultPoolSize)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine when none was named explicitly;
		// flag and default values carry the run.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.WeaklyTypedInput = true
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
