// Package telemetry mirrors console readings to an MQTT broker.
package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/sensor_console/internal/imu"
)

const publishTimeout = 2 * time.Second

// Sample is the JSON payload published for every reading.
type Sample struct {
	Group string `json:"group"` // "accelerometer" or "magnetometer"
	X     int32  `json:"x"`
	Y     int32  `json:"y"`
	Z     int32  `json:"z"`
	Time  string `json:"time"` // RFC3339
}

// Options configures the broker connection and per-group topics.
type Options struct {
	Broker     string
	ClientID   string
	TopicAccel string
	TopicMag   string
}

type publishClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher publishes readings at QoS 0 without retention.
type Publisher struct {
	client publishClient
	topics map[imu.AxisGroup]string
	now    func() time.Time
	close  func()
}

// Connect dials the broker and returns a ready Publisher.
func Connect(opts Options) (*Publisher, error) {
	clientOpts := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true)

	client := mqtt.NewClient(clientOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", opts.Broker, token.Error())
	}

	p := newPublisher(client, opts.TopicAccel, opts.TopicMag)
	p.close = func() { client.Disconnect(250) }
	return p, nil
}

func newPublisher(client publishClient, topicAccel, topicMag string) *Publisher {
	return &Publisher{
		client: client,
		topics: map[imu.AxisGroup]string{
			imu.Accelerometer: topicAccel,
			imu.Magnetometer:  topicMag,
		},
		now:   time.Now,
		close: func() {},
	}
}

// Publish sends one reading and waits briefly for the broker to accept it.
func (p *Publisher) Publish(group imu.AxisGroup, r imu.AxisReading) error {
	topic, ok := p.topics[group]
	if !ok {
		return fmt.Errorf("no topic for axis group %s", group)
	}

	payload, err := json.Marshal(Sample{
		Group: group.String(),
		X:     r.X,
		Y:     r.Y,
		Z:     r.Z,
		Time:  p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("telemetry marshal: %w", err)
	}

	token := p.client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return errors.New("telemetry publish timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("telemetry publish %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() error {
	p.close()
	return nil
}
