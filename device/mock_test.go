package device_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/oskoss/embedded-sim/device"
	"github.com/oskoss/embedded-sim/gpio"
)

var _ = Describe("Mock", func() {
	var testDevice *MockDevice
	BeforeEach(func() {
		testDevice = NewMockDevice()
	})

	Describe("reading values that were never written", func() {
		It("should report every pin as off", func() {
			for _, pin := range []int{-1, 0, 13, 1 << 20} {
				Expect(testDevice.GetPin(pin)).Should(BeFalse())
			}
		})
		It("should report every sensor as 0.0", func() {
			for _, name := range []string{"", "temperature", "does-not-exist"} {
				Expect(testDevice.GetSensor(name)).Should(Equal(0.0))
			}
		})
	})

	Describe("writing then reading a pin", func() {
		It("should return exactly what was written", func() {
			testDevice.SetPin(13, true)
			Expect(testDevice.GetPin(13)).Should(BeTrue())
			testDevice.SetPin(13, false)
			Expect(testDevice.GetPin(13)).Should(BeFalse())
		})
		It("should be unaffected by repeating the same write", func() {
			testDevice.SetPin(7, true)
			testDevice.SetPin(7, true)
			Expect(testDevice.GetPin(7)).Should(BeTrue())
			Expect(testDevice.Pins()).Should(Equal([]int{7}))
		})
		It("should accept pin numbers outside any physical range", func() {
			testDevice.SetPin(-42, true)
			Expect(testDevice.GetPin(-42)).Should(BeTrue())
		})
	})

	Describe("writing then reading a sensor", func() {
		It("should return exactly what was written", func() {
			for _, value := range []float64{22.5, -273.15, 1e9, 0} {
				testDevice.SetSensor("temperature", value)
				Expect(testDevice.GetSensor("temperature")).Should(Equal(value))
			}
		})
		It("should store non-finite values untouched", func() {
			testDevice.SetSensor("light", math.Inf(1))
			Expect(math.IsInf(testDevice.GetSensor("light"), 1)).Should(BeTrue())
		})
	})

	Describe("pins and sensors", func() {
		It("should never collide", func() {
			testDevice.SetPin(1, true)
			testDevice.SetSensor("1", 5.0)
			Expect(testDevice.GetPin(1)).Should(BeTrue())
			Expect(testDevice.GetSensor("1")).Should(Equal(5.0))
			Expect(testDevice.Pins()).Should(Equal([]int{1}))
			Expect(testDevice.Sensors()).Should(Equal([]string{"1"}))
		})
		It("should list written keys in order", func() {
			testDevice.SetPin(11, false)
			testDevice.SetPin(10, true)
			testDevice.SetSensor("light", 450)
			testDevice.SetSensor("humidity", 65.0)
			Expect(testDevice.Pins()).Should(Equal([]int{10, 11}))
			Expect(testDevice.Sensors()).Should(Equal([]string{"humidity", "light"}))
		})
	})

	Describe("the zero value", func() {
		It("should be usable without a constructor", func() {
			var zero MockDevice
			Expect(zero.GetPin(3)).Should(BeFalse())
			zero.SetPin(3, true)
			zero.SetSensor("humidity", 65.0)
			Expect(zero.GetPin(3)).Should(BeTrue())
			Expect(zero.GetSensor("humidity")).Should(Equal(65.0))
		})
	})

	Describe("a pin view", func() {
		var pin *MockPin
		BeforeEach(func() {
			pin = testDevice.Pin(13)
		})
		It("should drive the device pin", func() {
			gpio.Set(pin, true)
			Expect(testDevice.GetPin(13)).Should(BeTrue())
			Expect(pin.Mode).Should(Equal(Output))
			gpio.Set(pin, false)
			Expect(testDevice.GetPin(13)).Should(BeFalse())
		})
		It("should read the device pin", func() {
			pin.Input()
			Expect(pin.Read()).Should(Equal(gpio.Low))
			testDevice.SetPin(13, true)
			Expect(pin.Read()).Should(Equal(gpio.High))
			Expect(pin.Mode).Should(Equal(Input))
		})
	})
})
