package device

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

//MockDevice stands in for hardware register access. Pin numbers and sensor
//names live in separate maps and entries are only ever overwritten.
//The zero value is ready to use.
type MockDevice struct {
	PinStates    map[int]bool
	SensorValues map[string]float64
}

func NewMockDevice() *MockDevice {
	return &MockDevice{
		PinStates:    map[int]bool{},
		SensorValues: map[string]float64{},
	}
}

func (device *MockDevice) SetPin(pin int, state bool) {
	if device.PinStates == nil {
		device.PinStates = map[int]bool{}
	}
	device.PinStates[pin] = state
	log.WithFields(log.Fields{
		"pin":   pin,
		"state": state,
	}).Debugf("pin set")
}

//GetPin returns false for a pin that was never set
func (device *MockDevice) GetPin(pin int) bool {
	return device.PinStates[pin]
}

func (device *MockDevice) SetSensor(name string, value float64) {
	if device.SensorValues == nil {
		device.SensorValues = map[string]float64{}
	}
	device.SensorValues[name] = value
	log.WithFields(log.Fields{
		"sensor": name,
		"value":  value,
	}).Debugf("sensor set")
}

//GetSensor returns 0.0 for a sensor that was never set
func (device *MockDevice) GetSensor(name string) float64 {
	return device.SensorValues[name]
}

//Pins lists every pin written so far in ascending order
func (device *MockDevice) Pins() []int {
	pins := make([]int, 0, len(device.PinStates))
	for pin := range device.PinStates {
		pins = append(pins, pin)
	}
	sort.Ints(pins)
	return pins
}

//Sensors lists every sensor written so far in name order
func (device *MockDevice) Sensors() []string {
	names := make([]string, 0, len(device.SensorValues))
	for name := range device.SensorValues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//Pin returns a gpio.Pin view of a single device pin
func (device *MockDevice) Pin(number int) *MockPin {
	return &MockPin{Number: number, device: device}
}
