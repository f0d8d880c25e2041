package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	UI  UIConfig
	DSP DSPConfig
	Log LogConfig
}

// UIConfig holds window and slider configuration
type UIConfig struct {
	WindowTitle     string
	WindowWidth     int
	WindowHeight    int
	SliderMinHz     float64
	SliderMaxHz     float64
	SliderStepHz    float64
	InitialCutoffHz float64
}

// DSPConfig holds magnitude-response calculation configuration
type DSPConfig struct {
	SampleRate  float64
	FilterOrder int
	PlotPoints  int
	PlotMinHz   float64
	PlotMaxHz   float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("WINDOW_TITLE", "EQ Magnitude Response")
	viper.SetDefault("WINDOW_WIDTH", 640)
	viper.SetDefault("WINDOW_HEIGHT", 400)
	viper.SetDefault("SLIDER_MIN_HZ", 30.0)
	viper.SetDefault("SLIDER_MAX_HZ", 10000.0)
	viper.SetDefault("SLIDER_STEP_HZ", 0.1)
	viper.SetDefault("INITIAL_CUTOFF_HZ", 100.0)
	viper.SetDefault("SAMPLE_RATE", 48000.0)
	viper.SetDefault("FILTER_ORDER", 2)
	viper.SetDefault("PLOT_POINTS", 128)
	viper.SetDefault("PLOT_MIN_HZ", 20.0)
	viper.SetDefault("PLOT_MAX_HZ", 20000.0)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENVIRONMENT", "dev")

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// Try to read .env file for the current environment
	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	// Bind specific environment variable names
	viper.BindEnv("WINDOW_TITLE")
	viper.BindEnv("WINDOW_WIDTH")
	viper.BindEnv("WINDOW_HEIGHT")
	viper.BindEnv("SLIDER_MIN_HZ")
	viper.BindEnv("SLIDER_MAX_HZ")
	viper.BindEnv("SLIDER_STEP_HZ")
	viper.BindEnv("INITIAL_CUTOFF_HZ")
	viper.BindEnv("SAMPLE_RATE")
	viper.BindEnv("FILTER_ORDER")
	viper.BindEnv("PLOT_POINTS")
	viper.BindEnv("PLOT_MIN_HZ")
	viper.BindEnv("PLOT_MAX_HZ")
	viper.BindEnv("LOG_LEVEL")
	viper.BindEnv("ENVIRONMENT")

	var config Config
	config.UI.WindowTitle = viper.GetString("WINDOW_TITLE")
	config.UI.WindowWidth = viper.GetInt("WINDOW_WIDTH")
	config.UI.WindowHeight = viper.GetInt("WINDOW_HEIGHT")
	config.UI.SliderMinHz = viper.GetFloat64("SLIDER_MIN_HZ")
	config.UI.SliderMaxHz = viper.GetFloat64("SLIDER_MAX_HZ")
	config.UI.SliderStepHz = viper.GetFloat64("SLIDER_STEP_HZ")
	config.UI.InitialCutoffHz = viper.GetFloat64("INITIAL_CUTOFF_HZ")
	config.DSP.SampleRate = viper.GetFloat64("SAMPLE_RATE")
	config.DSP.FilterOrder = viper.GetInt("FILTER_ORDER")
	config.DSP.PlotPoints = viper.GetInt("PLOT_POINTS")
	config.DSP.PlotMinHz = viper.GetFloat64("PLOT_MIN_HZ")
	config.DSP.PlotMaxHz = viper.GetFloat64("PLOT_MAX_HZ")
	config.Log.Level = viper.GetString("LOG_LEVEL")

	return &config, nil
}
