package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Data      Data      `mapstructure:",squash"`
	Diagnose  Diagnose  `mapstructure:",squash"`
	ExportJob ExportJob `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Data struct {
	// Dir holds the client_*_transactions_3m.csv / client_*_transfers_3m.csv
	// pairs for the observation window.
	Dir string `mapstructure:"data_dir"`
	// TaxonomyPath optionally overrides the built-in category taxonomy.
	TaxonomyPath string `mapstructure:"taxonomy_path"`
}

type Diagnose struct {
	// DelaySeconds injects an artificial processing delay into the diagnose
	// endpoint. Purely a UX knob for the demo frontend; the analysis itself
	// is fast.
	DelaySeconds int `mapstructure:"diagnose_delay_seconds"`
}

type ExportJob struct {
	CronSchedule string `mapstructure:"export_cron"`
	Enabled      bool   `mapstructure:"export_enabled"`
	OutputFile   string `mapstructure:"export_output_file"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("TAXONOMY_PATH", "")

	viper.SetDefault("DIAGNOSE_DELAY_SECONDS", 0)

	viper.SetDefault("EXPORT_CRON", "0 7 * * *") // every day at 7am
	viper.SetDefault("EXPORT_ENABLED", false)
	viper.SetDefault("EXPORT_OUTPUT_FILE", "client_recommendations.csv")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file from the usual locations when present.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}
}
