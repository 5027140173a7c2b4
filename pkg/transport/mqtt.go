package transport

import (
	"fmt"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pion/logging"

	"github.com/backkem/btmesh/pkg/access"
)

// DefaultTopicPrefix is the default MQTT topic prefix.
const DefaultTopicPrefix = "btmesh"

const (
	mqttConnectTimeout = 30 * time.Second
	mqttPublishTimeout = 10 * time.Second
)

// MQTTConfig configures an MQTT bridge.
type MQTTConfig struct {
	// Broker is the broker URL (e.g., "tcp://localhost:1883"). Required.
	Broker string

	// ClientID is the MQTT client identifier. If empty, one is derived from
	// the current time.
	ClientID string

	// Username and Password authenticate against the broker when set.
	Username string
	Password string

	// TopicPrefix is prepended to every topic. Raw PDUs are read from
	// "<prefix>/rx/#" and decoded frames are published to
	// "<prefix>/decoded/<opcode>". Default: DefaultTopicPrefix.
	TopicPrefix string

	// QoS is the quality of service for subscriptions and publications.
	QoS byte

	// Codec decodes received payloads. Required.
	Codec *access.Codec

	// FrameHandler is called for each received frame. Required.
	FrameHandler FrameHandler

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// MQTTBridge reads raw Access-layer PDUs from an MQTT broker and publishes
// their decoded form back. Payloads on the rx topics are the PDU bytes.
type MQTTBridge struct {
	config MQTTConfig
	client paho.Client
	log    logging.LeveledLogger

	mu        sync.RWMutex
	connected bool
	closed    bool
}

// NewMQTTBridge creates a bridge. It does not connect.
func NewMQTTBridge(config MQTTConfig) (*MQTTBridge, error) {
	if config.Broker == "" {
		return nil, fmt.Errorf("%w: broker", ErrMissingConfig)
	}
	if config.Codec == nil {
		return nil, ErrNoCodec
	}
	if config.FrameHandler == nil {
		return nil, ErrNoHandler
	}
	if config.TopicPrefix == "" {
		config.TopicPrefix = DefaultTopicPrefix
	}
	config.TopicPrefix = strings.TrimSuffix(config.TopicPrefix, "/")
	if config.ClientID == "" {
		config.ClientID = fmt.Sprintf("btmesh-%d", time.Now().UnixNano())
	}

	b := &MQTTBridge{config: config}
	if config.LoggerFactory != nil {
		b.log = config.LoggerFactory.NewLogger("mqtt")
	}
	return b, nil
}

// RxTopic returns the subscription filter for raw PDUs.
func (b *MQTTBridge) RxTopic() string {
	return b.config.TopicPrefix + "/rx/#"
}

// DecodedTopic returns the topic decoded frames of msg are published to.
func (b *MQTTBridge) DecodedTopic(msg *access.Message) string {
	name := msg.Opcode.String()
	if msg.Known() {
		name = msg.Name
	}
	return b.config.TopicPrefix + "/decoded/" + name
}

// Connect connects to the broker and subscribes to the rx topics. The
// subscription is renewed on every reconnect.
func (b *MQTTBridge) Connect() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	if b.client != nil {
		b.mu.Unlock()
		return ErrAlreadyStarted
	}

	opts := paho.NewClientOptions().
		AddBroker(b.config.Broker).
		SetClientID(b.config.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetMaxReconnectInterval(2 * time.Minute).
		SetKeepAlive(60 * time.Second).
		SetCleanSession(true).
		SetOrderMatters(false).
		SetOnConnectHandler(b.onConnected).
		SetConnectionLostHandler(b.onConnectionLost)
	if b.config.Username != "" {
		opts.SetUsername(b.config.Username)
	}
	if b.config.Password != "" {
		opts.SetPassword(b.config.Password)
	}

	b.client = paho.NewClient(opts)
	client := b.client
	b.mu.Unlock()

	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return fmt.Errorf("%w: connecting to %s", ErrTimeout, b.config.Broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("transport: connecting to %s: %w", b.config.Broker, err)
	}
	return nil
}

// Close disconnects from the broker.
func (b *MQTTBridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	b.closed = true
	b.connected = false

	if b.client != nil {
		b.client.Disconnect(250)
	}
	if b.log != nil {
		b.log.Info("MQTT bridge closed")
	}
	return nil
}

// IsConnected reports whether the bridge holds a broker connection.
func (b *MQTTBridge) IsConnected() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.connected && b.client != nil && b.client.IsConnected()
}

// PublishDecoded publishes the loggable JSON of a decoded frame. Frames that
// failed to decode are not published.
func (b *MQTTBridge) PublishDecoded(f *Frame) error {
	if f.Err != nil || f.Message == nil {
		return nil
	}
	if !b.IsConnected() {
		return ErrNotConnected
	}

	payload, err := access.LoggableJSON(f.Message, access.ProjectionOptions{})
	if err != nil {
		return err
	}

	token := b.client.Publish(b.DecodedTopic(f.Message), b.config.QoS, false, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("%w: publishing", ErrTimeout)
	}
	return token.Error()
}

// Publish encodes msg and publishes the PDU on "<prefix>/tx/<name>".
func (b *MQTTBridge) Publish(msg *access.Message, name string) error {
	if !b.IsConnected() {
		return ErrNotConnected
	}
	data, err := b.config.Codec.Encode(msg)
	if err != nil {
		return err
	}
	if len(data) > MaxPDUSize {
		return ErrMessageTooLarge
	}

	token := b.client.Publish(b.config.TopicPrefix+"/tx/"+name, b.config.QoS, false, data)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("%w: publishing", ErrTimeout)
	}
	return token.Error()
}

// handlePayload decodes one rx payload and delivers it.
func (b *MQTTBridge) handlePayload(topic string, payload []byte) {
	if len(payload) == 0 || len(payload) > MaxPDUSize {
		if b.log != nil {
			b.log.Warnf("dropping %d-byte payload on %s", len(payload), topic)
		}
		return
	}

	f := newFrame(b.config.Codec, payload, NewMQTTPeerAddress(topic))
	if b.log != nil && f.Err != nil {
		b.log.Debugf("undecodable PDU on %s: %v", topic, f.Err)
	}
	b.config.FrameHandler(f)
}

func (b *MQTTBridge) onMessage(_ paho.Client, m paho.Message) {
	b.handlePayload(m.Topic(), m.Payload())
}

func (b *MQTTBridge) onConnected(c paho.Client) {
	b.mu.Lock()
	b.connected = true
	b.mu.Unlock()

	topic := b.RxTopic()
	token := c.Subscribe(topic, b.config.QoS, b.onMessage)
	if token.WaitTimeout(mqttPublishTimeout) && token.Error() != nil && b.log != nil {
		b.log.Warnf("subscribing to %s: %v", topic, token.Error())
	}
	if b.log != nil {
		b.log.Infof("connected to %s, subscribed to %s", b.config.Broker, topic)
	}
}

func (b *MQTTBridge) onConnectionLost(_ paho.Client, err error) {
	b.mu.Lock()
	b.connected = false
	b.mu.Unlock()

	if b.log != nil {
		b.log.Warnf("MQTT connection lost: %v", err)
	}
}
