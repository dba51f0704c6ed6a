package config

import (
	"github.com/bigredeye/gradebook/pkg/conf"
	"github.com/pkg/errors"
)

const (
	ReportFormatText = "text"
	ReportFormatPNG  = "png"
)

type Config struct {
	Data struct {
		Students    string
		Assignments string
		Submissions string
	}

	Log struct {
		Level      string
		File       string
		Production bool
	}

	Report struct {
		Format string
		Dir    string
	}
}

var defaults = map[string]interface{}{
	"data.students":    "data/students.txt",
	"data.assignments": "data/assignments.txt",
	"data.submissions": "data/submissions",
	"log.level":        "info",
	"log.production":   false,
	"report.format":    ReportFormatText,
	"report.dir":       ".",
}

// ParseConfig layers defaults, the optional config file and GRADEBOOK_* env.
func ParseConfig(path string) (*Config, error) {
	options := []conf.Option{conf.EnvPrefix("GRADEBOOK"), conf.ConfigFile(path)}
	for key, value := range defaults {
		options = append(options, conf.Default(key, value))
	}

	config := &Config{}
	if err := conf.ParseConfig(config, options...); err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch c.Report.Format {
	case ReportFormatText, ReportFormatPNG:
	default:
		return errors.Errorf("Unknown report format %q", c.Report.Format)
	}
	return nil
}
