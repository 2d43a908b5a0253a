// Package config loads generator settings from xsdgen.yaml, XSDGEN_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"xsd-generator/internal/dump"
	"xsd-generator/internal/gen"
	"xsd-generator/internal/logger"
	"xsd-generator/internal/pipeline"
	"xsd-generator/internal/union"
	"xsd-generator/internal/walk"
)

// File naming.
const (
	FileName  = "xsdgen"
	FileType  = "yaml"
	EnvPrefix = "XSDGEN"
)

// ErrNoJobs is returned when the configuration lists no schema files.
var ErrNoJobs = errors.New("no jobs configured")

// Job is one schema file to process.
type Job struct {
	Schema string `mapstructure:"schema" yaml:"schema"`
	Name   string `mapstructure:"name"   yaml:"name"`
}

// Config holds every generator setting.
type Config struct {
	SchemaDir           string   `mapstructure:"schema_dir"            yaml:"schema_dir"`
	OutputDir           string   `mapstructure:"output_dir"            yaml:"output_dir"`
	Jobs                []Job    `mapstructure:"jobs"                  yaml:"jobs"`
	Formats             []string `mapstructure:"formats"               yaml:"formats"`
	FailFast            bool     `mapstructure:"fail_fast"             yaml:"fail_fast"`
	Workers             int      `mapstructure:"workers"               yaml:"workers"`
	StrictUnions        bool     `mapstructure:"strict_unions"         yaml:"strict_unions"`
	AttributeTypePolicy string   `mapstructure:"attribute_type_policy" yaml:"attribute_type_policy"`
	Namespace           string   `mapstructure:"namespace"             yaml:"namespace"`
	LogLevel            string   `mapstructure:"log_level"             yaml:"log_level"`
}

// DefaultJobs returns the OpenDRIVE 1.7 schema files.
func DefaultJobs() []Job {
	names := []string{"Core", "Road", "Lane", "Junction", "Object", "Signal", "Railroad"}

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, Job{
			Schema: "opendrive_17_" + strings.ToLower(name) + ".xsd",
			Name:   name,
		})
	}

	return jobs
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SchemaDir:           "schemas",
		OutputDir:           "generated",
		Jobs:                DefaultJobs(),
		Formats:             []string{dump.FormatJSON.String()},
		FailFast:            true,
		Workers:             1,
		AttributeTypePolicy: walk.MapMultiAttribute.String(),
		Namespace:           gen.DefaultConfig().Namespace,
		LogLevel:            "info",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("schema_dir", d.SchemaDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("formats", d.Formats)
	v.SetDefault("fail_fast", d.FailFast)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("strict_unions", d.StrictUnions)
	v.SetDefault("attribute_type_policy", d.AttributeTypePolicy)
	v.SetDefault("namespace", d.Namespace)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads the configuration. An explicit path must exist; without one,
// xsdgen.yaml is looked up in the working directory and defaults apply
// when it is absent. XSDGEN_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType(FileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return ErrNoJobs
	}

	for i, job := range c.Jobs {
		if job.Schema == "" || job.Name == "" {
			return fmt.Errorf("job %d: schema and name are required", i)
		}
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if _, err := dump.ParseFormats(c.Formats); err != nil {
		return err
	}

	if _, err := walk.ParseAttributeTypePolicy(c.AttributeTypePolicy); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// PipelineJobs returns the jobs with schema paths resolved against SchemaDir.
func (c *Config) PipelineJobs() []pipeline.Job {
	jobs := make([]pipeline.Job, 0, len(c.Jobs))

	for _, job := range c.Jobs {
		schema := job.Schema
		if !filepath.IsAbs(schema) && c.SchemaDir != "" {
			schema = filepath.Join(c.SchemaDir, schema)
		}

		jobs = append(jobs, pipeline.Job{Schema: schema, Name: job.Name})
	}

	return jobs
}

// PipelineOptions converts the settings into pipeline options.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	formats, err := dump.ParseFormats(c.Formats)
	if err != nil {
		return pipeline.Options{}, err
	}

	policy, err := walk.ParseAttributeTypePolicy(c.AttributeTypePolicy)
	if err != nil {
		return pipeline.Options{}, err
	}

	render := gen.DefaultConfig()
	if c.Namespace != "" {
		render.Namespace = c.Namespace
	}

	return pipeline.Options{
		Walk:      walk.Options{AttributeTypes: policy},
		Union:     union.Options{Strict: c.StrictUnions},
		Render:    render,
		Formats:   formats,
		OutputDir: c.OutputDir,
		FailFast:  c.FailFast,
		Workers:   c.Workers,
	}, nil
}

// Level returns the configured log level.
func (c *Config) Level() logger.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

// Marshal serializes c to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes c to path. An existing file is only replaced when
// overwrite is set.
func WriteFile(c *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
