package thermostat_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/oskoss/embedded-sim/device"
	. "github.com/oskoss/embedded-sim/thermostat"
)

type brokenSensor struct{}

func (brokenSensor) CurrentTemp() (*float64, error) { return nil, errors.New("sensor unplugged") }
func (brokenSensor) Connect() error                 { return nil }

var _ = Describe("Controller", func() {
	var (
		testDevice *device.MockDevice
		controller *Controller
	)
	BeforeEach(func() {
		testDevice = device.NewMockDevice()
		controller = NewController(testDevice, DefaultConfig())
	})

	heating := func() bool { return testDevice.GetPin(DefaultHeatingPin) }
	cooling := func() bool { return testDevice.GetPin(DefaultCoolingPin) }

	Describe("simulating a temperature", func() {
		Context("when it is too cold", func() {
			It("should turn heating on and cooling off", func() {
				mode, err := controller.Simulate(19.0)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(mode).Should(Equal(ModeHeating))
				Expect(heating()).Should(BeTrue())
				Expect(cooling()).Should(BeFalse())
			})
		})
		Context("when it is too hot", func() {
			It("should turn heating off and cooling on", func() {
				mode, err := controller.Simulate(25.0)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(mode).Should(Equal(ModeCooling))
				Expect(heating()).Should(BeFalse())
				Expect(cooling()).Should(BeTrue())
			})
		})
		Context("when it is exactly on target", func() {
			It("should turn both off", func() {
				testDevice.SetPin(DefaultHeatingPin, true)
				testDevice.SetPin(DefaultCoolingPin, true)
				mode, err := controller.Simulate(22.0)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(mode).Should(Equal(ModeIdle))
				Expect(heating()).Should(BeFalse())
				Expect(cooling()).Should(BeFalse())
			})
		})
		Context("when it moves across the lower edge of the band", func() {
			It("should only heat once outside the band", func() {
				_, _ = controller.Simulate(22.0)
				Expect(heating()).Should(BeFalse())
				_, _ = controller.Simulate(21.5)
				Expect(heating()).Should(BeFalse())
				_, _ = controller.Simulate(20.0)
				Expect(heating()).Should(BeTrue())
			})
		})
		Context("when it sits exactly on an edge of the band", func() {
			It("should leave both off", func() {
				for _, temp := range []float64{21.0, 23.0} {
					mode, err := controller.Simulate(temp)
					Expect(err).ShouldNot(HaveOccurred())
					Expect(mode).Should(Equal(ModeIdle))
					Expect(heating()).Should(BeFalse())
					Expect(cooling()).Should(BeFalse())
				}
			})
		})
		Context("when heating was on and the temperature returns into the band", func() {
			It("should not remember the previous state", func() {
				_, _ = controller.Simulate(19.0)
				Expect(heating()).Should(BeTrue())
				_, _ = controller.Simulate(21.2)
				Expect(heating()).Should(BeFalse())
			})
		})
	})

	Describe("deciding", func() {
		It("should honour a custom band", func() {
			cfg := Config{TargetTemp: 18.0, Hysteresis: 0.5}
			Expect(Decide(cfg, 17.4)).Should(Equal(ModeHeating))
			Expect(Decide(cfg, 17.5)).Should(Equal(ModeIdle))
			Expect(Decide(cfg, 18.5)).Should(Equal(ModeIdle))
			Expect(Decide(cfg, 18.6)).Should(Equal(ModeCooling))
		})
	})

	Describe("regulating from a sensor", func() {
		Context("with a device sensor", func() {
			It("should use the device temperature reading", func() {
				testDevice.SetSensor(DefaultSensor, 25.0)
				mode, err := controller.Regulate(&DeviceSensor{Device: testDevice})
				Expect(err).ShouldNot(HaveOccurred())
				Expect(mode).Should(Equal(ModeCooling))
				Expect(cooling()).Should(BeTrue())
			})
			It("should treat a sensor that was never set as 0.0", func() {
				mode, err := controller.Regulate(&DeviceSensor{Device: testDevice, Name: "outside"})
				Expect(err).ShouldNot(HaveOccurred())
				Expect(mode).Should(Equal(ModeHeating))
			})
		})
		Context("with a failing sensor", func() {
			It("should return the error and leave the pins alone", func() {
				_, err := controller.Regulate(brokenSensor{})
				Expect(err).Should(MatchError("sensor unplugged"))
				Expect(testDevice.Pins()).Should(BeEmpty())
			})
		})
	})
})
