package services

import (
	"log"
	"time"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/repositories"
	"github.com/planofit/planofit-whatsapp-be/internal/shared/utils"
)

// ReminderSweep nudges clients who stalled before paying. It is run
// on a cron schedule from main.
type ReminderSweep struct {
	clientRepo repositories.ClientRepo
	convRepo   repositories.ConversationRepo
	chatRepo   repositories.ChatMessageRepo
	gateway    Gateway

	maxAge time.Duration
}

func NewReminderSweep(
	clientRepo repositories.ClientRepo,
	convRepo repositories.ConversationRepo,
	chatRepo repositories.ChatMessageRepo,
	gateway Gateway,
	maxAge time.Duration,
) *ReminderSweep {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &ReminderSweep{
		clientRepo: clientRepo,
		convRepo:   convRepo,
		chatRepo:   chatRepo,
		gateway:    gateway,
		maxAge:     maxAge,
	}
}

// Run sends at most one reminder per stalled conversation per sweep.
// Touching the state bumps updated_at, so the same conversation is
// not nudged again before another full maxAge passes.
func (s *ReminderSweep) Run() {
	cutoff := time.Now().Add(-s.maxAge)

	convs, err := s.convRepo.ListStaleInState(models.StateWaitingForPayment, cutoff, 100)
	if err != nil {
		utils.LogError("reminder sweep query failed", err, map[string]interface{}{
			"cutoff": cutoff,
		})
		return
	}

	if len(convs) == 0 {
		return
	}

	log.Printf("⏰ Reminder sweep: %d stalled conversation(s)", len(convs))

	for _, conv := range convs {
		client, err := s.clientRepo.GetByID(conv.ClientID)
		if err != nil {
			log.Printf("⚠️ Reminder sweep: client %s not found: %v", conv.ClientID, err)
			continue
		}

		if !client.AIEnabled {
			continue
		}

		notify(s.gateway, s.chatRepo, client, msgPaymentReminder)

		if err := s.convRepo.UpdateState(conv.ID, models.StateWaitingForPayment); err != nil {
			log.Printf("⚠️ Reminder sweep: failed to touch conversation %s: %v", conv.ID, err)
		}
	}
}
