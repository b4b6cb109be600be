package main

import (
	"io"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/oskoss/embedded-sim/api"
	"github.com/oskoss/embedded-sim/config"
	"github.com/oskoss/embedded-sim/harness"
	"github.com/oskoss/embedded-sim/report"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

//run executes the harness once (or serves the API) and returns the process exit status
func run(args []string, stdout io.Writer) int {
	var (
		configFile string
		levelFlag  string
		serveAddr  string
		publish    bool
	)
	flags := pflag.NewFlagSet("embedded-sim", pflag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file (defaults are used when empty)")
	flags.StringVarP(&levelFlag, "level", "l", "", "Log level, overrides the config file")
	flags.StringVar(&serveAddr, "serve", "", "Serve the HTTP API on this address instead of running once")
	flags.BoolVar(&publish, "publish", false, "Publish the run report to the configured MQTT broker")
	if err := flags.Parse(args); err != nil {
		return exitConfig
	}

	harnessConfig := &config.HarnessConfig{}
	if configFile != "" {
		configurator := config.YamlConfig{FileLocation: configFile}
		var err error
		harnessConfig, err = configurator.GetAllFields()
		if err != nil {
			log.WithFields(log.Fields{
				"err":    err,
				"config": configFile,
			}).Error("could not load config")
			return exitConfig
		}
	}
	if levelFlag != "" {
		harnessConfig.LogLevel = levelFlag
	}
	level, err := log.ParseLevel(harnessConfig.Level())
	if err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Error("invalid log level")
		return exitConfig
	}
	log.SetLevel(level)
	opts := harnessConfig.Options()

	if serveAddr != "" {
		log.WithFields(log.Fields{
			"addr": serveAddr,
		}).Info("serving harness API")
		err := http.ListenAndServe(serveAddr, api.NewMux(opts))
		log.WithFields(log.Fields{
			"err": err,
		}).Error("harness API stopped")
		return exitFailed
	}

	runReport := harness.NewRunner(stdout).Run(harness.Challenges(opts))

	if publish {
		publisher := report.MQTTPublisher{
			Broker:   harnessConfig.Report.Broker,
			Topic:    harnessConfig.Report.Topic,
			ClientID: harnessConfig.Report.ClientID,
			Username: harnessConfig.Report.Username,
			Password: harnessConfig.Report.Password,
		}
		if err := publisher.Connect(); err != nil {
			log.WithFields(log.Fields{
				"err": err,
			}).Error("could not connect report publisher")
		} else {
			if err := publisher.Publish(runReport); err != nil {
				log.WithFields(log.Fields{
					"err": err,
				}).Error("could not publish report")
			}
			publisher.Close()
		}
	}

	return runReport.ExitCode()
}
