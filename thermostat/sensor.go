package thermostat

import "github.com/oskoss/embedded-sim/device"

const DefaultSensor = "temperature"

//DeviceSensor implements ThermostatDevice by reading a sensor off a device
type DeviceSensor struct {
	Device device.Device
	Name   string
}

func (s *DeviceSensor) CurrentTemp() (temp *float64, err error) {
	name := s.Name
	if name == "" {
		name = DefaultSensor
	}
	reading := s.Device.GetSensor(name)
	return &reading, nil
}

func (s *DeviceSensor) Connect() (err error) {
	return nil
}
