package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/oskoss/embedded-sim/device"
	"github.com/oskoss/embedded-sim/gpio"
	"github.com/oskoss/embedded-sim/harness"
	"github.com/oskoss/embedded-sim/thermostat"
)

const maxBodyBytes = 64 << 10

func NewMux(opts harness.Options) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/run", handleV1Run(opts))
	mux.HandleFunc("/v1/thermostat", handleV1Thermostat(opts.Thermostat))
	return mux
}

func handleV1Run(opts harness.Options) func(http.ResponseWriter, *http.Request) {
	return func(resp http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			resp.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		report := harness.NewRunner(nil).Run(harness.Challenges(opts))
		status := http.StatusOK
		if !report.Success {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(resp, status, report)
	}
}

func handleV1Thermostat(cfg thermostat.Config) func(http.ResponseWriter, *http.Request) {
	return func(resp http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			resp.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body := http.MaxBytesReader(resp, req.Body, maxBodyBytes)
		defer body.Close()
		bodyBytes, err := ioutil.ReadAll(body)
		if err != nil {
			log.WithFields(log.Fields{
				"err": err,
			}).Printf("could not read request")
			resp.WriteHeader(http.StatusBadRequest)
			return
		}
		var thermostatReq ThermostatRequest
		err = json.Unmarshal(bodyBytes, &thermostatReq)
		if err != nil || thermostatReq.CurrentTemperature == nil {
			log.WithFields(log.Fields{
				"err":      err,
				"req.Body": string(bodyBytes),
			}).Printf("could not un-marshal request")
			resp.WriteHeader(http.StatusBadRequest)
			return
		}

		dev := device.NewMockDevice()
		mode, err := thermostat.NewController(dev, cfg).Simulate(*thermostatReq.CurrentTemperature)
		if err != nil {
			log.WithFields(log.Fields{
				"err": err,
			}).Printf("could not simulate thermostat")
			resp.WriteHeader(http.StatusInternalServerError)
			return
		}
		heating := dev.Pin(cfg.HeatingPin).Read()
		cooling := dev.Pin(cfg.CoolingPin).Read()
		writeJSON(resp, http.StatusOK, ThermostatResponse{
			Mode:         mode,
			Heating:      heating == gpio.High,
			Cooling:      cooling == gpio.High,
			HeatingLevel: gpio.States[heating],
			CoolingLevel: gpio.States[cooling],
		})
	}
}

func writeJSON(resp http.ResponseWriter, status int, body interface{}) {
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(status)
	if err := json.NewEncoder(resp).Encode(body); err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Printf("could not write response")
	}
}

type ThermostatRequest struct {
	CurrentTemperature *float64 `json:"current_temperature"`
}

type ThermostatResponse struct {
	Mode         thermostat.Mode `json:"mode"`
	Heating      bool            `json:"heating"`
	Cooling      bool            `json:"cooling"`
	HeatingLevel string          `json:"heating_level"`
	CoolingLevel string          `json:"cooling_level"`
}
