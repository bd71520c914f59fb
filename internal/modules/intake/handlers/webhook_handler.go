package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Machine is the inbound-processing capability behind the webhook.
// Satisfied by services.StateMachine.
type Machine interface {
	HandleInbound(phone, text, messageID string)
}

type WebhookHandler struct {
	machine Machine
}

func NewWebhookHandler(machine Machine) *WebhookHandler {
	return &WebhookHandler{machine: machine}
}

// WebhookPayload covers both payload shapes the gateway delivers:
// sender in "phone" or "from", text in "text.message" or "body".
type WebhookPayload struct {
	Phone string `json:"phone"`
	From  string `json:"from"`

	Body string `json:"body"`
	Text struct {
		Message string `json:"message"`
	} `json:"text"`

	// Self-echo flags: the bot's own outbound sends re-delivered as
	// inbound webhooks. Either one set means drop with no side effects.
	FromMe  bool `json:"fromMe"`
	FromAPI bool `json:"fromApi"`

	MessageID string `json:"messageId"`
}

// Sender extracts the phone number from either accepted shape
func (p *WebhookPayload) Sender() string {
	from := p.Phone
	if from == "" {
		from = p.From
	}
	// Strip gateway suffixes like 351911111111@c.us
	if idx := strings.IndexByte(from, '@'); idx >= 0 {
		from = from[:idx]
	}
	return strings.TrimSpace(from)
}

// Message extracts the text body from either accepted shape
func (p *WebhookPayload) Message() string {
	if p.Text.Message != "" {
		return p.Text.Message
	}
	return p.Body
}

// ReceiveWebhook godoc
// @Summary WhatsApp webhook receiver
// @Description Receives inbound message events from the WhatsApp gateway
// @Tags Webhook
// @Accept json
// @Produce plain
// @Param payload body WebhookPayload true "Webhook payload"
// @Success 200 {string} string "processed"
// @Failure 400 {string} string "missing sender"
// @Router /webhook [post]
func (h *WebhookHandler) ReceiveWebhook(c *fiber.Ctx) error {
	var payload WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("❌ Failed to parse webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("invalid payload")
	}

	if payload.FromMe || payload.FromAPI {
		return c.SendString("ignored")
	}

	phone := payload.Sender()
	if phone == "" {
		log.Printf("⚠️ Webhook without sender: %+v", payload)
		return c.Status(fiber.StatusBadRequest).SendString("missing sender")
	}

	text := payload.Message()
	if strings.TrimSpace(text) == "" {
		return c.SendString("ignored")
	}

	log.Printf("📨 Webhook from %s: %s", phone, text)

	// Acknowledge immediately; the state machine owns all failure
	// handling from here on.
	go h.machine.HandleInbound(phone, text, payload.MessageID)

	return c.SendString("processed")
}
