package whatsapp

import (
	"log"
)

// Service wraps a gateway provider. This is the layer the application uses.
type Service struct {
	provider Provider
}

// NewService creates a service with the provider from environment
func NewService() *Service {
	cfg, err := LoadProviderFromEnv()
	if err != nil {
		log.Fatalf("❌ Failed to load gateway config: %v", err)
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create gateway provider: %v", err)
	}

	log.Printf("✅ Using WhatsApp gateway: %s", provider.GetProviderName())

	return &Service{provider: provider}
}

// NewServiceWithProvider creates a service with a specific provider (for testing)
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) SendText(phoneNumber, message string) error {
	return s.provider.SendText(phoneNumber, message)
}

func (s *Service) SendImage(phoneNumber, imageURL, caption string) error {
	return s.provider.SendImage(phoneNumber, imageURL, caption)
}

func (s *Service) SendDocument(phoneNumber, documentURL, filename string) error {
	return s.provider.SendDocument(phoneNumber, documentURL, filename)
}

func (s *Service) SendAudio(phoneNumber, audioURL string) error {
	return s.provider.SendAudio(phoneNumber, audioURL)
}

func (s *Service) StartTyping(phoneNumber string) error {
	return s.provider.SetTyping(phoneNumber, true)
}

func (s *Service) StopTyping(phoneNumber string) error {
	return s.provider.SetTyping(phoneNumber, false)
}

func (s *Service) GetMessageStatus(messageID string) (string, error) {
	return s.provider.GetMessageStatus(messageID)
}

func (s *Service) MarkMessageRead(messageID string) error {
	return s.provider.MarkMessageRead(messageID)
}

func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
