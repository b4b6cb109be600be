package switcher

import (
	"fmt"

	"github.com/oskoss/embedded-sim/gpio"
	log "github.com/sirupsen/logrus"
)

//PinSwitch implements the SwitchDevice interface on a single digital pin.
// Inverted is for active-low wiring where driving the pin low turns the load on.
type PinSwitch struct {
	Name     string
	Pin      gpio.Pin
	Inverted bool
}

func NewPinSwitch(name string, pin gpio.Pin, inverted bool) *PinSwitch {
	return &PinSwitch{
		Name:     name,
		Pin:      pin,
		Inverted: inverted,
	}
}

func (s *PinSwitch) TurnOn() error {
	return s.set(true)
}

func (s *PinSwitch) TurnOff() error {
	return s.set(false)
}

//Set turns the switch on or off
func (s *PinSwitch) Set(on bool) error {
	return s.set(on)
}

func (s *PinSwitch) set(on bool) error {
	if s.Pin == nil {
		return fmt.Errorf("switch %q has no pin", s.Name)
	}
	level := on != s.Inverted //xor
	gpio.Set(s.Pin, level)
	log.WithFields(log.Fields{
		"switch":   s.Name,
		"on":       on,
		"inverted": s.Inverted,
	}).Debugf("switch set")
	return nil
}

//CurrentStatus returns "ON" or "OFF" as seen by the load, not the pin
func (s *PinSwitch) CurrentStatus() (*string, error) {
	on, err := s.IsOn()
	if err != nil {
		return nil, err
	}
	status := StatusOff
	if on {
		status = StatusOn
	}
	return &status, nil
}

func (s *PinSwitch) IsOn() (bool, error) {
	if s.Pin == nil {
		return false, fmt.Errorf("switch %q has no pin", s.Name)
	}
	return (s.Pin.Read() == gpio.High) != s.Inverted, nil
}
