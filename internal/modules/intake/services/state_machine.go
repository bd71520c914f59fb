package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/repositories"
)

const handleTimeout = 30 * time.Second

// StateMachine drives one client's intake and fulfillment cycle. All
// processing for a phone number is serialized through a keyed lock,
// so two concurrent deliveries can never double-apply a transition.
type StateMachine struct {
	clientRepo repositories.ClientRepo
	convRepo   repositories.ConversationRepo
	chatRepo   repositories.ChatMessageRepo

	gateway  Gateway
	author   *PlanAuthor
	pipeline *PlanPipeline
	uploader Uploader

	paymentLink string
	locks       *clientLocker
}

func NewStateMachine(
	clientRepo repositories.ClientRepo,
	convRepo repositories.ConversationRepo,
	chatRepo repositories.ChatMessageRepo,
	gateway Gateway,
	author *PlanAuthor,
	pipeline *PlanPipeline,
	uploader Uploader,
	paymentLink string,
) *StateMachine {
	return &StateMachine{
		clientRepo:  clientRepo,
		convRepo:    convRepo,
		chatRepo:    chatRepo,
		gateway:     gateway,
		author:      author,
		pipeline:    pipeline,
		uploader:    uploader,
		paymentLink: paymentLink,
		locks:       newClientLocker(),
	}
}

// HandleInbound processes one normalized webhook event. Failures are
// handled here: they end in a message to the client, never in a
// changed HTTP outcome.
func (m *StateMachine) HandleInbound(phone, text, messageID string) {
	m.locks.Lock(phone)
	defer m.locks.Unlock(phone)

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	log.Printf("🔄 Processing message from %s: %s", phone, text)

	if messageID != "" {
		if err := m.gateway.MarkMessageRead(messageID); err != nil {
			log.Printf("⚠️ Failed to mark message %s read: %v", messageID, err)
		}
	}

	client, err := m.clientRepo.FindOrCreateByPhone(phone)
	if err != nil {
		log.Printf("❌ Failed to resolve client %s: %v", phone, err)
		return
	}

	if !client.AIEnabled {
		log.Printf("⏭️ AI disabled for %s, skipping", phone)
		return
	}

	conv, err := m.convRepo.LatestByClient(client.ID)
	if err != nil {
		log.Printf("❌ Failed to resolve conversation for %s: %v", phone, err)
		notify(m.gateway, m.chatRepo, client, userMessage(KindInternal))
		return
	}

	if err := m.gateway.StartTyping(phone); err != nil {
		log.Printf("⚠️ Failed to start typing indicator: %v", err)
	}
	defer func() {
		if err := m.gateway.StopTyping(phone); err != nil {
			log.Printf("⚠️ Failed to stop typing indicator: %v", err)
		}
	}()

	if err := m.dispatch(ctx, client, conv, text); err != nil {
		kind := kindOf(err)
		log.Printf("❌ Handler failed for %s (state %s, kind %s): %v", phone, stateOf(conv), kind, err)
		notify(m.gateway, m.chatRepo, client, userMessage(kind))
	}
}

func stateOf(conv *models.Conversation) models.ConversationState {
	if conv == nil {
		return models.StateStart
	}
	return conv.State
}

func (m *StateMachine) dispatch(ctx context.Context, client *models.Client, conv *models.Conversation, text string) error {
	switch stateOf(conv) {
	case models.StateStart:
		return m.handleStart(ctx, client, text)
	case models.StateWaitingForInfo:
		return m.handleWaitingForInfo(ctx, client, conv, text)
	case models.StateWaitingForPayment:
		return m.handleWaitingForPayment(ctx, client, conv, text)
	case models.StatePaid:
		return m.handlePaid(ctx, client, conv)
	case models.StateQuestions:
		return m.handleQuestions(ctx, client, text)
	default:
		return internalError(fmt.Errorf("unknown conversation state %q", stateOf(conv)))
	}
}

// handleStart opens a fresh conversation and feeds the first message
// straight into intake: whatever the client opened with is their name.
func (m *StateMachine) handleStart(ctx context.Context, client *models.Client, text string) error {
	conv := &models.Conversation{
		ClientID: client.ID,
		State:    models.StateWaitingForInfo,
	}
	if err := m.convRepo.Create(conv); err != nil {
		return internalError(fmt.Errorf("create conversation: %w", err))
	}

	log.Printf("🆕 New conversation %s for %s", conv.ID, client.Phone)

	return m.handleWaitingForInfo(ctx, client, conv, text)
}

// handleWaitingForInfo fills the next missing profile field. Filling
// is purely presence-based: the message is stored as sent, with no
// validation or re-prompt.
func (m *StateMachine) handleWaitingForInfo(ctx context.Context, client *models.Client, conv *models.Conversation, text string) error {
	profile, err := conv.Profile()
	if err != nil {
		return internalError(err)
	}

	field, ok := profile.NextMissingField()
	if !ok {
		// All six fields already present; nothing more to collect.
		notify(m.gateway, m.chatRepo, client, msgPleaseWait)
		return nil
	}

	profile.Set(field, text)

	contextJSON, err := profile.ToJSON()
	if err != nil {
		return internalError(err)
	}
	if err := m.convRepo.UpdateContext(conv.ID, contextJSON); err != nil {
		return internalError(fmt.Errorf("persist context: %w", err))
	}
	conv.Context = contextJSON

	if next, more := profile.NextMissingField(); more {
		var prompt string
		if field == models.FieldName {
			prompt = msgGreetingAskAge(strings.TrimSpace(text))
		} else {
			prompt = fieldPrompts[next]
		}
		notify(m.gateway, m.chatRepo, client, prompt)
		return nil
	}

	// Weight was the last field: intake is complete.
	if err := m.convRepo.UpdateState(conv.ID, models.StateWaitingForPayment); err != nil {
		return internalError(fmt.Errorf("advance conversation: %w", err))
	}
	conv.State = models.StateWaitingForPayment

	m.sendPaymentRequest(client, profile)
	return nil
}

// sendPaymentRequest delivers the payment link and, best effort, a QR
// code image for it.
func (m *StateMachine) sendPaymentRequest(client *models.Client, profile *models.Profile) {
	notify(m.gateway, m.chatRepo, client, msgPaymentRequest(profile.Get(models.FieldName), m.paymentLink))

	png, err := qrcode.Encode(m.paymentLink, qrcode.Medium, 256)
	if err != nil {
		log.Printf("⚠️ Failed to encode payment QR: %v", err)
		return
	}

	filename := fmt.Sprintf("payment_qr_%s.png", client.Phone)
	result, err := m.uploader.Upload(bytes.NewReader(png), filename, "qr")
	if err != nil {
		log.Printf("⚠️ Failed to upload payment QR: %v", err)
		return
	}

	if err := m.gateway.SendImage(client.Phone, result.URL, "Também podes pagar através deste código QR 📲"); err != nil {
		log.Printf("⚠️ Failed to send payment QR to %s: %v", client.Phone, err)
	}
}

func (m *StateMachine) handleWaitingForPayment(ctx context.Context, client *models.Client, conv *models.Conversation, text string) error {
	if !isPaymentConfirmation(text) {
		notify(m.gateway, m.chatRepo, client, msgPaymentReminder)
		return nil
	}

	log.Printf("💳 Payment confirmation from %s", client.Phone)

	if err := m.convRepo.UpdateState(conv.ID, models.StatePaid); err != nil {
		return internalError(fmt.Errorf("advance conversation: %w", err))
	}
	conv.State = models.StatePaid

	// Run fulfillment inline rather than waiting for another message.
	return m.handlePaid(ctx, client, conv)
}

// handlePaid runs the plan pipeline. A failure leaves the
// conversation in PAID so the next inbound message retries from the
// first step.
func (m *StateMachine) handlePaid(ctx context.Context, client *models.Client, conv *models.Conversation) error {
	if err := m.pipeline.Run(ctx, client, conv); err != nil {
		log.Printf("❌ Plan pipeline failed for %s: %v", client.Phone, err)
		notify(m.gateway, m.chatRepo, client, msgPlanGenerationFailed)
	}
	return nil
}

// handleQuestions answers a follow-up question about the stored plan
func (m *StateMachine) handleQuestions(ctx context.Context, client *models.Client, text string) error {
	question := strings.TrimSpace(text)
	if question == "" {
		notify(m.gateway, m.chatRepo, client, msgAskRealQuestion)
		return nil
	}

	history, err := m.chatRepo.ListByClient(client.ID)
	if err != nil {
		return internalError(fmt.Errorf("load transcript: %w", err))
	}

	answer, err := m.author.AnswerQuestion(ctx, client.PlanText, history, question)
	if err != nil {
		log.Printf("❌ Q&A failed for %s: %v", client.Phone, err)
		notify(m.gateway, m.chatRepo, client, msgQAApology)
		return nil
	}

	if err := m.gateway.SendText(client.Phone, answer); err != nil {
		log.Printf("❌ Failed to send answer to %s: %v", client.Phone, err)
		return nil
	}

	// Persist both sides so future questions stay grounded.
	if err := m.chatRepo.Append(client.ID, models.RoleUser, question); err != nil {
		log.Printf("⚠️ Failed to log question: %v", err)
	}
	if err := m.chatRepo.Append(client.ID, models.RoleAssistant, answer); err != nil {
		log.Printf("⚠️ Failed to log answer: %v", err)
	}

	return nil
}
