package config

import (
	"github.com/oskoss/embedded-sim/harness"
	"github.com/oskoss/embedded-sim/thermostat"
)

type Configurator interface {
	GetAllFields() (config *HarnessConfig, err error)
}

type HarnessConfig struct {
	Name       string            `yaml:"name"`
	LogLevel   string            `yaml:"logLevel,omitempty"`
	LEDPin     *int              `yaml:"ledPin,omitempty"`
	Thermostat *ThermostatConfig `yaml:"thermostat,omitempty"`
	Report     ReportConfig      `yaml:"report,omitempty"`
}

//ThermostatConfig leaves every field optional so a partial block
//only overrides what it names
type ThermostatConfig struct {
	TargetTemp *float64 `yaml:"targetTemp,omitempty"`
	Hysteresis *float64 `yaml:"hysteresis,omitempty"`
	HeatingPin *int     `yaml:"heatingPin,omitempty"`
	CoolingPin *int     `yaml:"coolingPin,omitempty"`
}

type ReportConfig struct {
	Broker   string `yaml:"broker,omitempty"`
	Topic    string `yaml:"topic,omitempty"`
	ClientID string `yaml:"clientID,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

//Options fills anything the file left out with the harness defaults
func (c *HarnessConfig) Options() harness.Options {
	opts := harness.DefaultOptions()
	if c.LEDPin != nil {
		opts.LEDPin = *c.LEDPin
	}
	if c.Thermostat != nil {
		opts.Thermostat = c.Thermostat.merge(opts.Thermostat)
	}
	return opts
}

func (t *ThermostatConfig) merge(base thermostat.Config) thermostat.Config {
	if t.TargetTemp != nil {
		base.TargetTemp = *t.TargetTemp
	}
	if t.Hysteresis != nil {
		base.Hysteresis = *t.Hysteresis
	}
	if t.HeatingPin != nil {
		base.HeatingPin = *t.HeatingPin
	}
	if t.CoolingPin != nil {
		base.CoolingPin = *t.CoolingPin
	}
	return base
}

//Level is the configured log level, defaulting to info
func (c *HarnessConfig) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}
