package harness

import (
	"github.com/onsi/gomega"

	"github.com/oskoss/embedded-sim/device"
	"github.com/oskoss/embedded-sim/gpio"
)

const blinkStates = 10

//Blink alternates pin through the given number of states, starting on,
//and returns how many of them were on
func Blink(pin gpio.OutputPin, states int) int {
	on := 0
	for i := 0; i < states; i++ {
		state := i%2 == 0
		gpio.Set(pin, state)
		if state {
			on++
		}
	}
	return on
}

func HelloBlinky(ledPin int) Challenge {
	return Challenge{
		Name:        "HelloBlinky",
		Description: "LED control",
		Cases: []Case{
			{
				Name:        "led_on",
				Description: "LED turns on when commanded",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					dev.SetPin(ledPin, true)
					g.Expect(dev.GetPin(ledPin)).To(gomega.BeTrue(), "LED pin %d", ledPin)
				},
			},
			{
				Name:        "led_off",
				Description: "LED turns off when commanded",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					dev.SetPin(ledPin, true)
					dev.SetPin(ledPin, false)
					g.Expect(dev.GetPin(ledPin)).To(gomega.BeFalse(), "LED pin %d", ledPin)
				},
			},
			{
				Name:        "blink_pattern",
				Description: "LED blinks at correct frequency",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					blinks := Blink(dev.Pin(ledPin), blinkStates)
					g.Expect(blinks).To(gomega.Equal(blinkStates/2), "blink count")
					// the last of an even number of states is off
					g.Expect(dev.GetPin(ledPin)).To(gomega.BeFalse(), "LED pin %d after blinking", ledPin)
				},
			},
		},
	}
}
