package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Eval    EvalConfig    `yaml:"eval" mapstructure:"eval"`
	Process ProcessConfig `yaml:"process" mapstructure:"process"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the custom-compound persistence backend.
type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	DSN    string `yaml:"dsn" mapstructure:"dsn"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// DatasetConfig points at an optional YAML file of extra compound records
// merged over the compiled-in dataset at startup.
type DatasetConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// EvalConfig holds evaluation defaults and thresholds.
type EvalConfig struct {
	TempMinK             float64 `yaml:"temp_min_k" mapstructure:"temp_min_k"`
	TempMaxK             float64 `yaml:"temp_max_k" mapstructure:"temp_max_k"`
	StepK                float64 `yaml:"step_k" mapstructure:"step_k"`
	LogRatioBound        float64 `yaml:"log_ratio_bound" mapstructure:"log_ratio_bound"`
	HighlyFavorableBelow float64 `yaml:"highly_favorable_below" mapstructure:"highly_favorable_below"`
	FavorableBelow       float64 `yaml:"favorable_below" mapstructure:"favorable_below"`
	MarginalBelow        float64 `yaml:"marginal_below" mapstructure:"marginal_below"`
}

// ProcessConfig holds default off-equilibrium process parameters.
type ProcessConfig struct {
	FieldVm float64 `yaml:"field_vm" mapstructure:"field_vm"`
	RadiusM float64 `yaml:"radius_m" mapstructure:"radius_m"`
	GasMix  string  `yaml:"gas_mix" mapstructure:"gas_mix"`
}

// ExportConfig configures curve export output.
type ExportConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ELLINGHAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "custom_compounds.db")
	v.SetDefault("store.path", "custom_compounds.json")
	v.SetDefault("eval.temp_min_k", 300.0)
	v.SetDefault("eval.temp_max_k", 2400.0)
	v.SetDefault("eval.step_k", 10.0)
	v.SetDefault("eval.log_ratio_bound", 50.0)
	v.SetDefault("eval.highly_favorable_below", -50.0)
	v.SetDefault("eval.favorable_below", 0.0)
	v.SetDefault("eval.marginal_below", 50.0)
	v.SetDefault("process.field_vm", 0.0)
	v.SetDefault("process.radius_m", 5e-6)
	v.SetDefault("process.gas_mix", "N2_H2_25")
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.format", "csv")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
