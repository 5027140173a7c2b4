package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	LogLevel  string `toml:"log_level"`
	CamelCase bool   `toml:"camel_case"`
	Capture   string `toml:"capture"`

	UDP struct {
		Listen string `toml:"listen"`
	} `toml:"udp"`

	HTTP struct {
		Listen string `toml:"listen"`
	} `toml:"http"`

	MQTT struct {
		Broker      string `toml:"broker"`
		ClientID    string `toml:"client_id"`
		Username    string `toml:"username"`
		Password    string `toml:"password"`
		TopicPrefix string `toml:"topic_prefix"`
		QoS         int    `toml:"qos"`
	} `toml:"mqtt"`

	Serial struct {
		Port     string `toml:"port"`
		BaudRate int    `toml:"baud_rate"`
	} `toml:"serial"`
}

// loadConfig overlays the keys defined in the TOML file at path on o.
func loadConfig(path string, o Options) (Options, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Options{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		level, err := parseLogLevel(raw.LogLevel)
		if err != nil {
			return Options{}, fmt.Errorf("parse log_level: %w", err)
		}
		o.LogLevel = level
	}
	if meta.IsDefined("camel_case") {
		o.CamelCase = raw.CamelCase
	}
	if meta.IsDefined("capture") {
		o.CapturePath = strings.TrimSpace(raw.Capture)
	}

	if meta.IsDefined("udp", "listen") {
		o.UDPAddr = strings.TrimSpace(raw.UDP.Listen)
	}
	if meta.IsDefined("http", "listen") {
		o.HTTPAddr = strings.TrimSpace(raw.HTTP.Listen)
	}

	if meta.IsDefined("mqtt", "broker") {
		o.Broker = strings.TrimSpace(raw.MQTT.Broker)
	}
	if meta.IsDefined("mqtt", "client_id") {
		o.ClientID = strings.TrimSpace(raw.MQTT.ClientID)
	}
	if meta.IsDefined("mqtt", "username") {
		o.Username = raw.MQTT.Username
	}
	if meta.IsDefined("mqtt", "password") {
		o.Password = raw.MQTT.Password
	}
	if meta.IsDefined("mqtt", "topic_prefix") {
		o.TopicPrefix = strings.TrimSpace(raw.MQTT.TopicPrefix)
	}
	if meta.IsDefined("mqtt", "qos") {
		if raw.MQTT.QoS < 0 || raw.MQTT.QoS > 2 {
			return Options{}, fmt.Errorf("parse mqtt.qos: must be 0-2, got %d", raw.MQTT.QoS)
		}
		o.QoS = byte(raw.MQTT.QoS)
	}

	if meta.IsDefined("serial", "port") {
		o.SerialPort = strings.TrimSpace(raw.Serial.Port)
	}
	if meta.IsDefined("serial", "baud_rate") {
		if raw.Serial.BaudRate <= 0 {
			return Options{}, fmt.Errorf("parse serial.baud_rate: must be positive, got %d", raw.Serial.BaudRate)
		}
		o.BaudRate = raw.Serial.BaudRate
	}

	return o, nil
}
