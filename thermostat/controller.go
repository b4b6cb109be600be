package thermostat

import (
	"fmt"

	"github.com/oskoss/embedded-sim/device"
	"github.com/oskoss/embedded-sim/switcher"
	log "github.com/sirupsen/logrus"
)

//Controller drives a heating pin and a cooling pin on a device.
// Every call re-evaluates from scratch; previous pin states are never consulted,
// so the band is a static dead band rather than a latch.
type Controller struct {
	Config  Config
	Heating *switcher.PinSwitch
	Cooling *switcher.PinSwitch
}

func NewController(dev *device.MockDevice, cfg Config) *Controller {
	return &Controller{
		Config:  cfg,
		Heating: switcher.NewPinSwitch("heating", dev.Pin(cfg.HeatingPin), false),
		Cooling: switcher.NewPinSwitch("cooling", dev.Pin(cfg.CoolingPin), false),
	}
}

//Simulate applies the thermostat decision for currentTemp to both pins
func (c *Controller) Simulate(currentTemp float64) (Mode, error) {
	mode := Decide(c.Config, currentTemp)
	if err := c.Heating.Set(mode == ModeHeating); err != nil {
		return mode, err
	}
	if err := c.Cooling.Set(mode == ModeCooling); err != nil {
		return mode, err
	}
	log.WithFields(log.Fields{
		"currentTemp": currentTemp,
		"targetTemp":  c.Config.TargetTemp,
		"mode":        mode,
	}).Debugf("thermostat evaluated")
	return mode, nil
}

//Regulate reads the current temperature from src and simulates it
func (c *Controller) Regulate(src ThermostatDevice) (Mode, error) {
	temp, err := src.CurrentTemp()
	if err != nil {
		return ModeIdle, err
	}
	if temp == nil {
		return ModeIdle, fmt.Errorf("temperature source returned no reading")
	}
	return c.Simulate(*temp)
}
