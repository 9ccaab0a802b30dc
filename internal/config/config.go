package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values.
type Config struct {
	// Serial console
	SerialPort     string
	SerialBaudRate int

	// I2C bus
	I2CBus      string // periph i2creg name, empty selects the first bus
	I2CSpeedKHz int

	// Sensor
	// Accelerometer: 1, 10, 25, 50, 100, 200 or 400 Hz
	AccelODRHz int
	// Magnetometer: 10, 20, 50 or 100 Hz
	MagODRHz int

	// Command loop
	LineCapacity int
	PollLimit    int // status queries per fetch, 0 waits forever

	// Logging
	LogFile  string
	LogLevel string

	// MQTT telemetry, disabled when MQTTBroker is empty
	MQTTBroker   string
	MQTTClientID string
	TopicAccel   string
	TopicMag     string
}

// Default returns the configuration used for keys absent from the file.
func Default() *Config {
	return &Config{
		SerialPort:     "/dev/serial0",
		SerialBaudRate: 115200,
		I2CSpeedKHz:    100,
		AccelODRHz:     10,
		MagODRHz:       10,
		LineCapacity:   32,
		LogLevel:       "info",
		MQTTClientID:   "sensor-console",
		TopicAccel:     "sensor/accelerometer",
		TopicMag:       "sensor/magnetometer",
	}
}

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads KEY=VALUE lines from r on top of Default.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Serial console
	case "SERIAL_PORT":
		c.SerialPort = value
	case "SERIAL_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SERIAL_BAUD_RATE %q: %w", value, err)
		}
		c.SerialBaudRate = rate

	// I2C bus
	case "I2C_BUS":
		c.I2CBus = value
	case "I2C_SPEED_KHZ":
		khz, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid I2C_SPEED_KHZ %q: %w", value, err)
		}
		if khz <= 0 {
			return fmt.Errorf("I2C_SPEED_KHZ must be positive, got %d", khz)
		}
		c.I2CSpeedKHz = khz

	// Sensor
	case "ACCEL_ODR_HZ":
		hz, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ACCEL_ODR_HZ %q: %w", value, err)
		}
		c.AccelODRHz = hz
	case "MAG_ODR_HZ":
		hz, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid MAG_ODR_HZ %q: %w", value, err)
		}
		c.MagODRHz = hz

	// Command loop
	case "LINE_CAPACITY":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid LINE_CAPACITY %q: %w", value, err)
		}
		if n < 1 || n > 255 {
			return fmt.Errorf("LINE_CAPACITY must be 1-255, got %d", n)
		}
		c.LineCapacity = n
	case "POLL_LIMIT":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid POLL_LIMIT %q: %w", value, err)
		}
		if n < 0 {
			return fmt.Errorf("POLL_LIMIT must be >= 0, got %d", n)
		}
		c.PollLimit = n

	// Logging
	case "LOG_FILE":
		c.LogFile = value
	case "LOG_LEVEL":
		c.LogLevel = value

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID":
		c.MQTTClientID = value
	case "TOPIC_ACCEL":
		c.TopicAccel = value
	case "TOPIC_MAG":
		c.TopicMag = value

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.SerialPort == "" {
		return fmt.Errorf("SERIAL_PORT is required")
	}
	if c.SerialBaudRate <= 0 {
		return fmt.Errorf("SERIAL_BAUD_RATE must be positive")
	}
	switch c.AccelODRHz {
	case 1, 10, 25, 50, 100, 200, 400:
	default:
		return fmt.Errorf("ACCEL_ODR_HZ must be one of 1, 10, 25, 50, 100, 200, 400, got %d", c.AccelODRHz)
	}
	switch c.MagODRHz {
	case 10, 20, 50, 100:
	default:
		return fmt.Errorf("MAG_ODR_HZ must be one of 10, 20, 50, 100, got %d", c.MagODRHz)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.MQTTBroker != "" && (c.TopicAccel == "" || c.TopicMag == "") {
		return fmt.Errorf("TOPIC_ACCEL and TOPIC_MAG are required when MQTT_BROKER is set")
	}
	return nil
}
