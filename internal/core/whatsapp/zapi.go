package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ZAPIProvider talks to a Z-API style WhatsApp gateway over HTTP.
// Every call carries the static client token header.
type ZAPIProvider struct {
	baseURL    string
	token      string
	instanceID string
	client     *http.Client
}

func NewZAPIProvider(baseURL, token, instanceID string) *ZAPIProvider {
	return &ZAPIProvider{
		baseURL:    baseURL,
		token:      token,
		instanceID: instanceID,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (z *ZAPIProvider) GetProviderName() string {
	return "Z-API"
}

func (z *ZAPIProvider) SendText(phoneNumber, message string) error {
	payload := map[string]interface{}{
		"phone":   phoneNumber,
		"message": message,
	}
	return z.post("/send-text", payload)
}

func (z *ZAPIProvider) SendImage(phoneNumber, imageURL, caption string) error {
	payload := map[string]interface{}{
		"phone": phoneNumber,
		"image": imageURL,
	}
	if caption != "" {
		payload["caption"] = caption
	}
	return z.post("/send-image", payload)
}

func (z *ZAPIProvider) SendDocument(phoneNumber, documentURL, filename string) error {
	payload := map[string]interface{}{
		"phone":    phoneNumber,
		"document": documentURL,
	}
	if filename != "" {
		payload["fileName"] = filename
	}
	return z.post("/send-document/pdf", payload)
}

func (z *ZAPIProvider) SendAudio(phoneNumber, audioURL string) error {
	payload := map[string]interface{}{
		"phone": phoneNumber,
		"audio": audioURL,
	}
	return z.post("/send-audio", payload)
}

func (z *ZAPIProvider) SetTyping(phoneNumber string, typing bool) error {
	value := "composing"
	if !typing {
		value = "available"
	}
	payload := map[string]interface{}{
		"phone": phoneNumber,
		"value": value,
	}
	return z.post("/send-chat-state", payload)
}

func (z *ZAPIProvider) GetMessageStatus(messageID string) (string, error) {
	endpoint := fmt.Sprintf("%s/instances/%s/message-status/%s", z.baseURL, z.instanceID, messageID)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Client-Token", z.token)

	resp, err := z.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get message status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.Status, nil
}

func (z *ZAPIProvider) MarkMessageRead(messageID string) error {
	payload := map[string]interface{}{
		"messageId": messageID,
	}
	return z.post("/read-message", payload)
}

func (z *ZAPIProvider) post(path string, payload map[string]interface{}) error {
	endpoint := fmt.Sprintf("%s/instances/%s%s", z.baseURL, z.instanceID, path)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Token", z.token)

	resp, err := z.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
