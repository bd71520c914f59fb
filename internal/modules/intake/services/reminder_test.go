package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

func TestReminderSweep_Run(t *testing.T) {
	setup := func() (*ReminderSweep, *fakeClientRepo, *fakeConvRepo, *fakeGateway) {
		clients := newFakeClientRepo()
		convs := newFakeConvRepo()
		chat := newFakeChatRepo()
		gateway := newFakeGateway()
		sweep := NewReminderSweep(clients, convs, chat, gateway, time.Hour)
		return sweep, clients, convs, gateway
	}

	stale := func(t *testing.T, clients *fakeClientRepo, convs *fakeConvRepo, phone string, state models.ConversationState) *models.Conversation {
		t.Helper()
		client, err := clients.FindOrCreateByPhone(phone)
		require.NoError(t, err)
		conv := &models.Conversation{ClientID: client.ID, State: state}
		require.NoError(t, convs.Create(conv))
		conv.UpdatedAt = time.Now().Add(-2 * time.Hour)
		return conv
	}

	t.Run("nudges stalled payments once", func(t *testing.T) {
		sweep, clients, convs, gateway := setup()
		conv := stale(t, clients, convs, testPhone, models.StateWaitingForPayment)

		sweep.Run()

		require.Len(t, gateway.texts, 1)
		assert.Equal(t, msgPaymentReminder, gateway.texts[0].message)

		// Touching the row resets the staleness clock.
		assert.True(t, conv.UpdatedAt.After(time.Now().Add(-time.Minute)))

		// A second immediate sweep finds nothing stale.
		sweep.Run()
		assert.Len(t, gateway.texts, 1)
	})

	t.Run("ignores conversations in other states", func(t *testing.T) {
		sweep, clients, convs, gateway := setup()
		stale(t, clients, convs, testPhone, models.StateQuestions)

		sweep.Run()
		assert.Empty(t, gateway.texts)
	})

	t.Run("skips clients with AI disabled", func(t *testing.T) {
		sweep, clients, convs, gateway := setup()
		stale(t, clients, convs, testPhone, models.StateWaitingForPayment)

		client, _ := clients.GetByPhone(testPhone)
		client.AIEnabled = false
		require.NoError(t, clients.Update(client))

		sweep.Run()
		assert.Empty(t, gateway.texts)
	})
}
