package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lixenwraith/liberty-quiz/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. LIBERTY_QUIZ_AUDIO_MUTE=true
const EnvPrefix = "LIBERTY_QUIZ"

var (
	ErrInvalidFPS    = errors.New("fps out of range")
	ErrInvalidVolume = errors.New("volume must be within [0, 1]")
	ErrInvalidAlpha  = errors.New("trail alpha must be within (0, 1]")
)

// Config is the program configuration after defaults, file and environment are merged
type Config struct {
	FPS       int       `mapstructure:"fps"`
	Seed      uint64    `mapstructure:"seed"` // 0 picks a random seed
	Debug     bool      `mapstructure:"debug"`
	LogDir    string    `mapstructure:"log_dir"`
	LogLevel  string    `mapstructure:"log_level"`
	Audio     Audio     `mapstructure:"audio"`
	Fireworks Fireworks `mapstructure:"fireworks"`
	Quiz      Quiz      `mapstructure:"quiz"`
}

// Audio controls the sound player
type Audio struct {
	Mute   bool    `mapstructure:"mute"`
	Volume float64 `mapstructure:"volume"`
}

// Fireworks tunes the celebration
type Fireworks struct {
	Palette       []string      `mapstructure:"palette"`
	SpawnInterval time.Duration `mapstructure:"spawn_interval"`
	TrailAlpha    float64       `mapstructure:"trail_alpha"`
}

// Quiz configures the question flow
type Quiz struct {
	BankPath     string        `mapstructure:"bank_path"` // empty uses the embedded bank
	CorrectDelay time.Duration `mapstructure:"correct_delay"`
	WrongDelay   time.Duration `mapstructure:"wrong_delay"`
}

// FrameInterval returns the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fps", int(time.Second/parameter.FrameUpdateInterval))
	v.SetDefault("seed", 0)
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_level", "debug")

	v.SetDefault("audio.mute", false)
	v.SetDefault("audio.volume", parameter.DefaultMasterVolume)

	v.SetDefault("fireworks.palette", parameter.DefaultPalette)
	v.SetDefault("fireworks.spawn_interval", parameter.SpawnInterval)
	v.SetDefault("fireworks.trail_alpha", parameter.TrailAlpha)

	v.SetDefault("quiz.bank_path", "")
	v.SetDefault("quiz.correct_delay", parameter.CorrectAdvanceDelay)
	v.SetDefault("quiz.wrong_delay", parameter.WrongFinishDelay)
}

// Load merges defaults, an optional config.yaml in configDir and LIBERTY_QUIZ_* variables
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that would otherwise break the frame loop or mixer
func (c *Config) Validate() error {
	if c.FPS < parameter.MinFrameRate || c.FPS > parameter.MaxFrameRate {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidFPS, c.FPS, parameter.MinFrameRate, parameter.MaxFrameRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume)
	}
	if c.Fireworks.TrailAlpha <= 0 || c.Fireworks.TrailAlpha > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidAlpha, c.Fireworks.TrailAlpha)
	}
	return nil
}

// LoadDotEnv exports variables from an optional .env file, a missing file is not an error
// Variables already set in the environment win
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
