package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/12306ylg/files2image/imgio"
	"github.com/12306ylg/files2image/util"
)

/*
 * Encoding configuration - how converted images are produced.
 * The format here is only a default; an explicit destination extension
 * on the command line always wins.
 */
type EncodingConfig struct {
	DefaultFormat string `yaml:"default_format"` // png, bmp, tiff or qoi
	Overwrite     bool   `yaml:"overwrite"`      // allow clobbering existing destination files
}

/*
 * Full configuration of the tool.
 */
type FullConfig struct {
	Encoding EncodingConfig  `yaml:"encoding_config"`
	Logger   util.LoggerInfo `yaml:"logger_config"`
}

func DefaultConfig(logFile string) *FullConfig {
	return &FullConfig{
		Encoding: EncodingConfig{
			DefaultFormat: "png",
			Overwrite:     false,
		},
		Logger: util.LoggerInfo{
			Filename:  logFile,
			IsColored: true,
			SaveTime:  true,
			Mode:      util.Error | util.Warning,
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	if err := validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal(*c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func validate(c *FullConfig) error {
	for _, format := range imgio.Formats {
		if c.Encoding.DefaultFormat == format {
			return nil
		}
	}
	return fmt.Errorf("Unknown default format: %s.", c.Encoding.DefaultFormat)
}
