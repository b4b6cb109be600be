package device

import "github.com/oskoss/embedded-sim/gpio"

//MockPin implements gpio.Pin on top of a MockDevice pin. Direction changes
//are remembered but never restrict reads or writes.
type MockPin struct {
	Number int
	Mode   Direction

	device *MockDevice
}

type Direction int

const (
	Unconfigured Direction = iota
	Input
	Output
)

func (p *MockPin) Output() { p.Mode = Output }
func (p *MockPin) Input()  { p.Mode = Input }
func (p *MockPin) High()   { p.device.SetPin(p.Number, true) }
func (p *MockPin) Low()    { p.device.SetPin(p.Number, false) }

func (p *MockPin) Read() gpio.State {
	return gpio.FromBool(p.device.GetPin(p.Number))
}

var _ gpio.Pin = &MockPin{}
