package config

import (
	"fmt"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type YamlConfig struct {
	FileLocation string
}

func (conf *YamlConfig) GetAllFields() (*HarnessConfig, error) {
	content, err := ioutil.ReadFile(conf.FileLocation)
	if err != nil {
		return nil, err
	}
	var harnessConfig HarnessConfig
	err = yaml.UnmarshalStrict(content, &harnessConfig)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", conf.FileLocation, err)
	}
	if err := harnessConfig.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", conf.FileLocation, err)
	}
	log.WithFields(log.Fields{
		"file": conf.FileLocation,
		"name": harnessConfig.Name,
	}).Debugf("config loaded")
	return &harnessConfig, nil
}

func (c *HarnessConfig) Validate() error {
	if _, err := log.ParseLevel(c.Level()); err != nil {
		return err
	}
	opts := c.Options()
	// a zero band puts every probe temperature on the target
	if !(opts.Thermostat.Hysteresis > 0) {
		return fmt.Errorf("thermostat hysteresis %v must be positive", opts.Thermostat.Hysteresis)
	}
	if c.Report.Broker != "" && c.Report.Topic == "" {
		return fmt.Errorf("report broker %s set without a topic", c.Report.Broker)
	}
	return nil
}
