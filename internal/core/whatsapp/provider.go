package whatsapp

import (
	"fmt"
	"os"
)

// Provider is the interface for WhatsApp-compatible messaging gateways
type Provider interface {
	// SendText sends a plain text message to a phone number
	SendText(phoneNumber, message string) error

	// SendImage sends an image by URL with an optional caption
	SendImage(phoneNumber, imageURL, caption string) error

	// SendDocument sends a document by URL with an optional filename
	SendDocument(phoneNumber, documentURL, filename string) error

	// SendAudio sends an audio file by URL
	SendAudio(phoneNumber, audioURL string) error

	// SetTyping toggles the typing indicator for a chat
	SetTyping(phoneNumber string, typing bool) error

	// GetMessageStatus returns the delivery status of a sent message
	GetMessageStatus(messageID string) (string, error)

	// MarkMessageRead marks an inbound message as read
	MarkMessageRead(messageID string) error

	// GetProviderName returns the provider name for logging
	GetProviderName() string
}

type ProviderType string

const (
	ProviderZAPI ProviderType = "zapi"
)

type ProviderConfig struct {
	Type ProviderType

	BaseURL    string
	Token      string
	InstanceID string
}

// NewProvider creates a gateway provider from config. Missing credentials
// are a hard error: the bot cannot run without an outbound channel.
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderZAPI:
		if cfg.BaseURL == "" || cfg.Token == "" {
			return nil, fmt.Errorf("GATEWAY_BASE_URL and GATEWAY_TOKEN are required")
		}
		return NewZAPIProvider(cfg.BaseURL, cfg.Token, cfg.InstanceID), nil

	default:
		return nil, fmt.Errorf("unknown gateway provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv loads gateway config from environment variables
func LoadProviderFromEnv() (*ProviderConfig, error) {
	providerType := os.Getenv("GATEWAY_PROVIDER")
	if providerType == "" {
		providerType = "zapi" // default
	}

	cfg := &ProviderConfig{
		Type:       ProviderType(providerType),
		BaseURL:    os.Getenv("GATEWAY_BASE_URL"),
		Token:      os.Getenv("GATEWAY_TOKEN"),
		InstanceID: os.Getenv("GATEWAY_INSTANCE_ID"),
	}

	if cfg.InstanceID == "" {
		cfg.InstanceID = "default"
	}

	return cfg, nil
}
