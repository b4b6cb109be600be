package harness

import (
	"github.com/onsi/gomega"

	"github.com/oskoss/embedded-sim/device"
)

// one decimal place
const sensorTolerance = 0.05

var sensorReadings = []struct {
	name  string
	value float64
	exact bool
}{
	{"temperature", 22.5, false},
	{"humidity", 65.0, false},
	{"light", 450, true},
}

func expectReading(g *gomega.WithT, dev *device.MockDevice, name string, want float64, exact bool) {
	got := dev.GetSensor(name)
	if exact {
		g.Expect(got).To(gomega.Equal(want), "%s sensor", name)
		return
	}
	g.Expect(got).To(gomega.BeNumerically("~", want, sensorTolerance), "%s sensor", name)
}

func SensorSymphony() Challenge {
	challenge := Challenge{
		Name:        "SensorSymphony",
		Description: "Read multiple sensors",
	}
	for _, reading := range sensorReadings {
		reading := reading
		challenge.Cases = append(challenge.Cases, Case{
			Name:        reading.name + "_sensor",
			Description: "Test " + reading.name + " sensor reading",
			Run: func(g *gomega.WithT, dev *device.MockDevice) {
				dev.SetSensor(reading.name, reading.value)
				expectReading(g, dev, reading.name, reading.value, reading.exact)
			},
		})
	}
	challenge.Cases = append(challenge.Cases, Case{
		Name:        "all_sensors_simultaneously",
		Description: "Test reading all sensors at once",
		Run: func(g *gomega.WithT, dev *device.MockDevice) {
			for _, reading := range sensorReadings {
				dev.SetSensor(reading.name, reading.value)
			}
			for _, reading := range sensorReadings {
				expectReading(g, dev, reading.name, reading.value, reading.exact)
			}
		},
	})
	return challenge
}
