package telemetry

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/relabs-tech/sensor_console/internal/imu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done bool
	err  error
}

func (t *fakeToken) Wait() bool                     { return t.done }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.done }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	sent  []published
	token *fakeToken
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	return c.token
}

func TestPublishRoutesByGroup(t *testing.T) {
	client := &fakeClient{token: &fakeToken{done: true}}
	p := newPublisher(client, "bench/accel", "bench/mag")
	p.now = func() time.Time { return time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC) }

	require.NoError(t, p.Publish(imu.Magnetometer, imu.AxisReading{X: -5, Y: 6, Z: 7}))
	require.NoError(t, p.Publish(imu.Accelerometer, imu.AxisReading{X: 1, Y: 2, Z: 3}))
	require.Len(t, client.sent, 2)

	assert.Equal(t, "bench/mag", client.sent[0].topic)
	assert.Equal(t, "bench/accel", client.sent[1].topic)
	assert.Equal(t, byte(0), client.sent[0].qos)
	assert.False(t, client.sent[0].retained)

	var s Sample
	require.NoError(t, json.Unmarshal(client.sent[0].payload, &s))
	assert.Equal(t, Sample{Group: "magnetometer", X: -5, Y: 6, Z: 7, Time: "2026-10-15T08:30:00Z"}, s)
}

func TestPublishErrors(t *testing.T) {
	p := newPublisher(&fakeClient{token: &fakeToken{done: false}}, "a", "m")
	assert.Error(t, p.Publish(imu.Accelerometer, imu.AxisReading{}))

	p = newPublisher(&fakeClient{token: &fakeToken{done: true, err: errors.New("not connected")}}, "a", "m")
	err := p.Publish(imu.Accelerometer, imu.AxisReading{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")

	assert.Error(t, p.Publish(imu.AxisGroup(9), imu.AxisReading{}))
	assert.NoError(t, p.Close())
}
