package harness

import (
	"github.com/onsi/gomega"

	"github.com/oskoss/embedded-sim/device"
	"github.com/oskoss/embedded-sim/thermostat"
)

//SmartThermostat checks the heating and cooling pins around the target.
//Temperatures are placed in multiples of the hysteresis so that the
//default 22.0 ± 1.0 configuration probes 19, 25, 22, 21.5 and 20 degrees.
func SmartThermostat(cfg thermostat.Config) Challenge {
	var (
		cold    = cfg.TargetTemp - 3*cfg.Hysteresis
		hot     = cfg.TargetTemp + 3*cfg.Hysteresis
		inside  = cfg.TargetTemp - cfg.Hysteresis/2
		outside = cfg.TargetTemp - 2*cfg.Hysteresis
	)

	simulate := func(g *gomega.WithT, dev *device.MockDevice, temp float64) {
		_, err := thermostat.NewController(dev, cfg).Simulate(temp)
		g.Expect(err).NotTo(gomega.HaveOccurred())
	}
	expectPins := func(g *gomega.WithT, dev *device.MockDevice, heating, cooling bool) {
		g.Expect(dev.GetPin(cfg.HeatingPin)).To(gomega.Equal(heating), "heating pin %d", cfg.HeatingPin)
		g.Expect(dev.GetPin(cfg.CoolingPin)).To(gomega.Equal(cooling), "cooling pin %d", cfg.CoolingPin)
	}

	return Challenge{
		Name:        "SmartThermostat",
		Description: "Temperature control logic",
		Cases: []Case{
			{
				Name:        "heating_activates_when_cold",
				Description: "Heating activates when temperature is too low",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					simulate(g, dev, cold)
					expectPins(g, dev, true, false)
				},
			},
			{
				Name:        "cooling_activates_when_hot",
				Description: "Cooling activates when temperature is too high",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					simulate(g, dev, hot)
					expectPins(g, dev, false, true)
				},
			},
			{
				Name:        "both_off_in_range",
				Description: "Heating and cooling both off when in range",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					simulate(g, dev, cfg.TargetTemp)
					expectPins(g, dev, false, false)
				},
			},
			{
				Name:        "hysteresis_prevents_rapid_switching",
				Description: "Small drops inside the band do not start heating",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					simulate(g, dev, cfg.TargetTemp)
					g.Expect(dev.GetPin(cfg.HeatingPin)).To(gomega.BeFalse(), "heating at target")

					simulate(g, dev, inside)
					g.Expect(dev.GetPin(cfg.HeatingPin)).To(gomega.BeFalse(), "heating inside the band")

					simulate(g, dev, outside)
					g.Expect(dev.GetPin(cfg.HeatingPin)).To(gomega.BeTrue(), "heating outside the band")
				},
			},
			{
				Name:        "reads_temperature_sensor",
				Description: "Thermostat acts on the temperature sensor reading",
				Run: func(g *gomega.WithT, dev *device.MockDevice) {
					controller := thermostat.NewController(dev, cfg)
					sensor := &thermostat.DeviceSensor{Device: dev, Name: thermostat.DefaultSensor}

					dev.SetSensor(thermostat.DefaultSensor, cold)
					mode, err := controller.Regulate(sensor)
					g.Expect(err).NotTo(gomega.HaveOccurred())
					g.Expect(mode).To(gomega.Equal(thermostat.ModeHeating), "mode at %v", cold)
					expectPins(g, dev, true, false)

					dev.SetSensor(thermostat.DefaultSensor, hot)
					mode, err = controller.Regulate(sensor)
					g.Expect(err).NotTo(gomega.HaveOccurred())
					g.Expect(mode).To(gomega.Equal(thermostat.ModeCooling), "mode at %v", hot)
					expectPins(g, dev, false, true)
				},
			},
		},
	}
}
