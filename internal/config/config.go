// Package config loads and validates process configuration from a YAML file
// and environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TablesConfig points at the two built lookup tables. Missing files are not
// a configuration error: the repository degrades to seed data at load time.
type TablesConfig struct {
	SenseTable  string `mapstructure:"sense_table"`
	SynsetTable string `mapstructure:"synset_table"`
}

type DatamuseConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type EtymologyConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}

// BuildConfig holds the raw distribution inputs for the offline table build.
type BuildConfig struct {
	WordFile        string `mapstructure:"word_file"`
	DefinitionFile  string `mapstructure:"definition_file"`
	OMWDirectory    string `mapstructure:"omw_directory"`
	OutputDirectory string `mapstructure:"output_directory"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Tables    TablesConfig    `mapstructure:"tables"`
	Datamuse  DatamuseConfig  `mapstructure:"datamuse"`
	Etymology EtymologyConfig `mapstructure:"etymology"`
	Build     BuildConfig     `mapstructure:"build"`
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
		v.AddConfigPath("$HOME/.config/wordtree")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("tables.sense_table", filepath.Join("data", "word_senses.json"))
	v.SetDefault("tables.synset_table", filepath.Join("data", "multilingual_synsets.json"))
	v.SetDefault("datamuse.retry_attempts", 2)
	v.SetDefault("build.word_file", filepath.Join("data", "raw", "wnjpn-ok.tab"))
	v.SetDefault("build.definition_file", filepath.Join("data", "raw", "wnjpn-def.tab"))
	v.SetDefault("build.omw_directory", filepath.Join("data", "raw", "omw"))
	v.SetDefault("build.output_directory", "data")

	// Endpoint overrides come from the environment only, not the config file.
	if err := v.BindEnv("datamuse.base_url", "DATAMUSE_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATAMUSE_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("etymology.endpoint", "DBNARY_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind DBNARY_ENDPOINT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
