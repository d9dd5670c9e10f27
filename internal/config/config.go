package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"isolated_box/internal/control"
)

// Sample sources understood by the pipeline.
const (
	SourceSim  = "sim"
	SourceHost = "host"
	SourceNone = "none"
)

type Config struct {
	Port     string         `mapstructure:"port"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Box      BoxConfig      `mapstructure:"box"`
	Actuator ActuatorConfig `mapstructure:"actuator"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Sim      SimConfig      `mapstructure:"sim"`
	NATS     NATSConfig     `mapstructure:"nats"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// BoxConfig holds the setpoints applied at startup. Zero values skip the
// initial configuration.
type BoxConfig struct {
	MinC float64 `mapstructure:"min_c"`
	MaxC float64 `mapstructure:"max_c"`
}

type ActuatorConfig struct {
	FrequencyDefault uint32 `mapstructure:"frequency_default"`
	DutyCycleDefault uint8  `mapstructure:"duty_cycle_default"`
}

type PipelineConfig struct {
	Tick           time.Duration `mapstructure:"tick"`
	Source         string        `mapstructure:"source"`
	Unit           string        `mapstructure:"unit"`
	SensorKey      string        `mapstructure:"sensor_key"`
	QueueWarnDepth int           `mapstructure:"queue_warn_depth"`
	DrainOnStop    bool          `mapstructure:"drain_on_stop"`
}

type SimConfig struct {
	StartC        float64 `mapstructure:"start_c"`
	AmbientC      float64 `mapstructure:"ambient_c"`
	DriftCPerTick float64 `mapstructure:"drift_c_per_tick"`
	RampCPerTick  float64 `mapstructure:"ramp_c_per_tick"`
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

// minTick mirrors the controller scan rate.
const minTick = 5 * time.Millisecond

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.signing_key", "change-me")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("actuator.frequency_default", 100)
	v.SetDefault("actuator.duty_cycle_default", 0)
	v.SetDefault("pipeline.tick", time.Second)
	v.SetDefault("pipeline.source", SourceSim)
	v.SetDefault("pipeline.unit", "C")
	v.SetDefault("pipeline.queue_warn_depth", 100)
	v.SetDefault("sim.start_c", 22.0)
	v.SetDefault("sim.ambient_c", 18.0)
	v.SetDefault("sim.drift_c_per_tick", 0.5)
	v.SetDefault("sim.ramp_c_per_tick", 1.5)
	v.SetDefault("nats.subject", "isobox.events")
}

// Load reads the config file at path (or configs/config.yml when path is
// empty), applies ISOBOX_* environment overrides and validates the result.
// A missing file is not an error: defaults and env still apply.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix("ISOBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Pipeline.Tick < minTick {
		return fmt.Errorf("pipeline.tick must be >= %v", minTick)
	}
	switch c.Pipeline.Source {
	case SourceSim, SourceHost, SourceNone:
	default:
		return fmt.Errorf("pipeline.source %q must be one of sim, host, none", c.Pipeline.Source)
	}
	if _, err := control.ParseScale(c.Pipeline.Unit); err != nil {
		return fmt.Errorf("pipeline.unit %q: %w", c.Pipeline.Unit, err)
	}
	if c.Box.MinC != 0 || c.Box.MaxC != 0 {
		if c.Box.MaxC <= c.Box.MinC {
			return fmt.Errorf("box.max_c must be greater than box.min_c")
		}
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0")
	}
	return nil
}
