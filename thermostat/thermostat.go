package thermostat

//ThermostatDevice is an interface which abstracts
//where the current temperature comes from
type ThermostatDevice interface {
	CurrentTemp() (temp *float64, err error)
	Connect() (err error)
}

const (
	DefaultTargetTemp = 22.0
	DefaultHysteresis = 1.0
	DefaultHeatingPin = 10
	DefaultCoolingPin = 11
)

type Config struct {
	TargetTemp float64
	Hysteresis float64
	HeatingPin int
	CoolingPin int
}

func DefaultConfig() Config {
	return Config{
		TargetTemp: DefaultTargetTemp,
		Hysteresis: DefaultHysteresis,
		HeatingPin: DefaultHeatingPin,
		CoolingPin: DefaultCoolingPin,
	}
}

//Mode is what the thermostat asks of the heating and cooling pins
type Mode string

const (
	ModeHeating Mode = "heating"
	ModeCooling Mode = "cooling"
	ModeIdle    Mode = "idle"
)

//Decide compares a temperature against the dead band around the target.
//Temperatures exactly on either edge of the band are idle.
func Decide(cfg Config, currentTemp float64) Mode {
	if currentTemp < cfg.TargetTemp-cfg.Hysteresis {
		return ModeHeating
	} else if currentTemp > cfg.TargetTemp+cfg.Hysteresis {
		return ModeCooling
	}
	return ModeIdle
}
