package gpio

import rpio "github.com/stianeikeland/go-rpio"

//State is the logic level of a digital pin
type State = rpio.State

const (
	//Low signal, a pin that is off
	Low = rpio.Low

	//High signal, a pin that is on
	High = rpio.High
)

//States state names, as reported over the API
var States = map[State]string{
	Low:  "low",
	High: "high",
}

//FromBool maps an on/off flag onto a logic level
func FromBool(on bool) State {
	if on {
		return High
	}
	return Low
}

//OutputPin is the part of a digital pin a student solution writes to
type OutputPin interface {
	Output()
	High()
	Low()
}

//InputPin is the part of a digital pin a student solution reads from
type InputPin interface {
	Input()
	Read() State
}

//Pin is a bidirectional digital pin
type Pin interface {
	OutputPin
	InputPin
}

//Set drives the pin to the requested level
func Set(pin OutputPin, high bool) {
	pin.Output()
	if high {
		pin.High()
	} else {
		pin.Low()
	}
}
