package harness

import (
	"github.com/onsi/gomega"

	"github.com/oskoss/embedded-sim/device"
	"github.com/oskoss/embedded-sim/thermostat"
)

const DefaultLEDPin = 13

//Case is a single check against a freshly constructed device.
//Failed expectations on g are recorded; they do not stop the run.
type Case struct {
	Name        string
	Description string
	Run         func(g *gomega.WithT, dev *device.MockDevice)
}

//Challenge groups the cases for one course exercise
type Challenge struct {
	Name        string
	Description string
	Cases       []Case
}

type Options struct {
	LEDPin     int
	Thermostat thermostat.Config
}

func DefaultOptions() Options {
	return Options{
		LEDPin:     DefaultLEDPin,
		Thermostat: thermostat.DefaultConfig(),
	}
}

//Challenges returns the built-in course exercises in the order they are taught
func Challenges(opts Options) []Challenge {
	return []Challenge{
		HelloBlinky(opts.LEDPin),
		SensorSymphony(),
		SmartThermostat(opts.Thermostat),
	}
}
