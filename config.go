package main

import (
	"fmt"
	"os"

	logger "github.com/d2r2/go-logger"
	"github.com/jwenz723/7seg-easyc/easyc"
	"github.com/jwenz723/7seg-easyc/sevensegment"
	"gopkg.in/yaml.v2"
)

// Config defines a struct to match a configuration yaml file.
type Config struct {
	I2CAddr    uint8  `yaml:"I2CAddr"`
	I2CBus     int    `yaml:"I2CBus"`
	Transport  string `yaml:"Transport"`
	PeriphBus  string `yaml:"PeriphBus"`
	Brightness uint8  `yaml:"Brightness"`
	Listen     string `yaml:"Listen"`
	LogLevel   string `yaml:"LogLevel"`
}

var logLevels = map[string]logger.LogLevel{
	"debug":  logger.DebugLevel,
	"info":   logger.InfoLevel,
	"notify": logger.NotifyLevel,
	"warn":   logger.WarnLevel,
	"error":  logger.ErrorLevel,
	"fatal":  logger.FatalLevel,
}

// DefaultConfig is used for any setting missing from the yaml file.
func DefaultConfig() Config {
	return Config{
		I2CAddr:    easyc.DefaultAddress,
		I2CBus:     1,
		Transport:  easyc.BackendD2R2,
		Brightness: sevensegment.DefaultBrightness,
		Listen:     ":8080",
		LogLevel:   "info",
	}
}

// NewConfig will create a new Config instance from the specified yaml file
func NewConfig(yamlFile string) (*Config, error) {
	config := DefaultConfig()
	source, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(source, &config)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the transport or logger can't use.
func (c *Config) Validate() error {
	if !easyc.ValidBackend(c.Transport) {
		return fmt.Errorf("unknown Transport %q", c.Transport)
	}
	if c.I2CAddr == 0 || c.I2CAddr > 0x7F {
		return fmt.Errorf("I2CAddr 0x%02x is not a 7-bit device address", c.I2CAddr)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("unknown LogLevel %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logger.LogLevel {
	return logLevels[c.LogLevel]
}

// TransportOptions maps the config onto easyc.Options.
func (c *Config) TransportOptions() easyc.Options {
	return easyc.Options{
		Backend:   c.Transport,
		Addr:      c.I2CAddr,
		Bus:       c.I2CBus,
		PeriphBus: c.PeriphBus,
	}
}
