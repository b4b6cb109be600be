package report

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/oskoss/embedded-sim/harness"
)

const (
	DefaultClientID = "embedded-sim"
	publishQoS      = 1
)

//Publisher is the slice of mqtt.Client needed to send a report
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

//MQTTPublisher sends run reports as JSON to a broker topic
type MQTTPublisher struct {
	Broker   string
	Topic    string
	ClientID string
	Username string
	Password string
	Timeout  time.Duration
	Client   Publisher

	//NewClient builds the client Connect uses; mqtt.NewClient when nil
	NewClient func(o *mqtt.ClientOptions) mqtt.Client
}

func (p *MQTTPublisher) timeout() time.Duration {
	if p.Timeout <= 0 {
		return 5 * time.Second
	}
	return p.Timeout
}

func (p *MQTTPublisher) Connect() (err error) {
	if p.Broker == "" {
		return fmt.Errorf("report broker not set")
	}
	if p.Topic == "" {
		return fmt.Errorf("report topic not set")
	}
	clientID := p.ClientID
	if clientID == "" {
		clientID = DefaultClientID
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(p.Broker)
	opts.SetClientID(clientID)
	opts.SetConnectTimeout(p.timeout())
	if p.Username != "" {
		opts.SetUsername(p.Username)
		opts.SetPassword(p.Password)
	}

	newClient := p.NewClient
	if newClient == nil {
		newClient = mqtt.NewClient
	}
	client := newClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(p.timeout()) {
		// stop the connect attempt still running in the background
		client.Disconnect(0)
		return fmt.Errorf("timed out connecting to %s", p.Broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connecting to %s: %w", p.Broker, err)
	}
	p.Client = client
	log.WithFields(log.Fields{
		"broker":   p.Broker,
		"clientID": clientID,
	}).Debugf("connected to report broker")
	return nil
}

//Publish sends the report and waits for the broker to acknowledge it
func (p *MQTTPublisher) Publish(report *harness.Report) error {
	if p.Client == nil {
		return fmt.Errorf("report publisher not connected")
	}
	if p.Topic == "" {
		return fmt.Errorf("report topic not set")
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	token := p.Client.Publish(p.Topic, publishQoS, false, payload)
	if !token.WaitTimeout(p.timeout()) {
		return fmt.Errorf("timed out publishing report to %s", p.Topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing report to %s: %w", p.Topic, err)
	}
	log.WithFields(log.Fields{
		"topic":   p.Topic,
		"success": report.Success,
		"failed":  report.Failed,
	}).Info("report published")
	return nil
}

//Close disconnects when the client is a full mqtt.Client
func (p *MQTTPublisher) Close() {
	if client, ok := p.Client.(mqtt.Client); ok {
		client.Disconnect(250)
	}
}
