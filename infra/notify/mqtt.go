package notify

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/aerialops/skyops/core/events"
	"github.com/aerialops/skyops/infra/logger"
)

// Config defines the connection parameters for the MQTT notifier.
type Config struct {
	Enabled    bool   `json:"enabled"`
	Broker     string `json:"broker"`
	ClientID   string `json:"client_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Topic      string `json:"topic"`
	QoS        byte   `json:"qos"`
	UseTLS     bool   `json:"use_tls"`
	CABundle   string `json:"ca_bundle"`
	ClientCert string `json:"client_cert"`
	ClientKey  string `json:"client_key"`
}

// SetDefaults fills unset fields with sensible values.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "skyops-notifier"
	}
	if c.Topic == "" {
		c.Topic = "skyops/assignments"
	}
}

// PahoNotifier publishes assignment decisions using Eclipse Paho.
type PahoNotifier struct {
	cli   paho.Client
	topic string
	qos   byte
	log   logger.Logger
}

// NewPahoNotifier connects to the MQTT broker.
func NewPahoNotifier(cfg Config) (*PahoNotifier, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("notifier")
	opts.OnConnect = func(paho.Client) { log.Infof("MQTT connected") }
	opts.OnConnectionLost = func(_ paho.Client, err error) { log.Errorf("connection lost: %v", err) }
	opts.OnReconnecting = func(paho.Client, *paho.ClientOptions) { log.Warnf("reconnecting to MQTT broker") }

	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoNotifier{cli: cli, topic: cfg.Topic, qos: cfg.QoS, log: log}, nil
}

func clientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.CABundle != "" {
			pem, err := os.ReadFile(cfg.CABundle)
			if err != nil {
				return nil, fmt.Errorf("read ca bundle: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("invalid ca bundle %s", cfg.CABundle)
			}
			tlsCfg.RootCAs = pool
		}
		if cfg.ClientCert != "" && cfg.ClientKey != "" {
			cert, err := tls.LoadX509KeyPair(cfg.ClientCert, cfg.ClientKey)
			if err != nil {
				return nil, fmt.Errorf("load client cert: %w", err)
			}
			tlsCfg.Certificates = []tls.Certificate{cert}
		}
		opts.SetTLSConfig(tlsCfg)
	}
	return opts, nil
}

// AssignmentCommitted publishes the decision as JSON on the configured topic.
func (n *PahoNotifier) AssignmentCommitted(ev events.AssignmentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	token := n.cli.Publish(n.topic, n.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (n *PahoNotifier) Close() error {
	n.cli.Disconnect(250)
	return nil
}
