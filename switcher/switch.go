package switcher

const (
	StatusOn  = "ON"
	StatusOff = "OFF"
)

//SwitchDevice represents a basic switch in an "ON"/"OFF" state,
// such as an LED or the relay in front of a heater
type SwitchDevice interface {
	CurrentStatus() (status *string, err error)
	TurnOn() (err error)
	TurnOff() (err error)
}
