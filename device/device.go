package device

//Device is an interface which abstracts the pins and sensors
//a student solution talks to on a course board
type Device interface {
	SetPin(pin int, state bool)
	GetPin(pin int) bool
	SetSensor(name string, value float64)
	GetSensor(name string) float64
}
