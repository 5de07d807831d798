package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageDriverYAML   = "yaml"
	StorageDriverMySQL  = "mysql"
	StorageDriverSQLite = "sqlite"
)

type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type StorageConfig struct {
	Driver       string `mapstructure:"driver" validate:"oneof=yaml mysql sqlite"`
	DocumentPath string `mapstructure:"document_path" validate:"required_if=Driver yaml"`
}

// IsSQL reports whether vocabulary is kept in a database rather than the YAML document.
func (c StorageConfig) IsSQL() bool {
	return c.Driver == StorageDriverMySQL || c.Driver == StorageDriverSQLite
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
	// Path is the database file of the sqlite driver.
	Path         string `mapstructure:"path"`
	PingAttempts uint   `mapstructure:"ping_attempts" validate:"gte=1"`
}

type QuizConfig struct {
	MinimumEntries     int           `mapstructure:"minimum_entries" validate:"gte=1"`
	RoundSize          int           `mapstructure:"round_size" validate:"gte=1,lte=26"`
	Repetitions        int           `mapstructure:"repetitions" validate:"gte=1"`
	MaxAttempts        int           `mapstructure:"max_attempts" validate:"gte=1"`
	CloseSimilarity    float64       `mapstructure:"close_similarity" validate:"gt=0,lte=1"`
	CloseLengthRatio   float64       `mapstructure:"close_length_ratio" validate:"gt=0,lte=1"`
	WrongFeedbackDelay time.Duration `mapstructure:"wrong_feedback_delay" validate:"gte=0"`
	RoundCompleteDelay time.Duration `mapstructure:"round_complete_delay" validate:"gte=0"`
	// Seed fixes the shuffles of a session. Zero picks a time based seed.
	Seed int64 `mapstructure:"seed"`
}

type TemplatesConfig struct {
	ReportTemplate string `mapstructure:"report_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
	// PDFFontFile is a TrueType font for PDF reports. Without one, Vietnamese is not drawn.
	PDFFontFile string `mapstructure:"pdf_font_file" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocabquiz")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("storage.driver", StorageDriverYAML)
	v.SetDefault("storage.document_path", filepath.Join("data", "vocabulary.yml"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "vocabquiz")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.path", filepath.Join("data", "vocabquiz.db"))
	v.SetDefault("database.ping_attempts", 5)
	v.SetDefault("quiz.minimum_entries", 5)
	v.SetDefault("quiz.round_size", 5)
	v.SetDefault("quiz.repetitions", 3)
	v.SetDefault("quiz.max_attempts", 100)
	v.SetDefault("quiz.close_similarity", 0.9)
	v.SetDefault("quiz.close_length_ratio", 0.8)
	v.SetDefault("quiz.wrong_feedback_delay", 500*time.Millisecond)
	v.SetDefault("quiz.round_complete_delay", 500*time.Millisecond)
	v.SetDefault("quiz.seed", 0)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.report_template", "")
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "reports"))
	v.SetDefault("outputs.pdf_font_file", "")

	if err := v.BindEnv("database.password", "VOCABQUIZ_DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCABQUIZ_DATABASE_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("storage.driver", "VOCABQUIZ_STORAGE_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCABQUIZ_STORAGE_DRIVER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
