package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planofit/planofit-whatsapp-be/internal/core/llm"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

func filledProfile() *models.Profile {
	p := &models.Profile{}
	p.Set(models.FieldName, "Maria")
	p.Set(models.FieldAge, "28")
	p.Set(models.FieldGoal, "ganhar massa muscular")
	p.Set(models.FieldGender, "feminino")
	p.Set(models.FieldHeight, "165 cm")
	p.Set(models.FieldWeight, "60 kg")
	return p
}

func TestGeneratePlan(t *testing.T) {
	t.Run("includes the whole profile in the prompt", func(t *testing.T) {
		completer := &fakeCompleter{response: "Plano semanal..."}
		author := NewPlanAuthor(completer)

		plan, err := author.GeneratePlan(context.Background(), filledProfile())
		require.NoError(t, err)
		assert.Equal(t, "Plano semanal...", plan)

		require.Len(t, completer.calls, 1)
		msgs := completer.calls[0]
		require.Len(t, msgs, 2)
		assert.Equal(t, llm.RoleSystem, msgs[0].Role)
		assert.Equal(t, llm.RoleUser, msgs[1].Role)

		for _, want := range []string{"Maria", "28", "ganhar massa muscular", "feminino", "165 cm", "60 kg"} {
			assert.Contains(t, msgs[1].Content, want)
		}
		assert.Equal(t, planMaxTokens, completer.maxTokens[0])
	})

	t.Run("wraps provider failures as rejected", func(t *testing.T) {
		completer := &fakeCompleter{err: errors.New("rate limited")}
		author := NewPlanAuthor(completer)

		_, err := author.GeneratePlan(context.Background(), filledProfile())
		require.Error(t, err)
		assert.Equal(t, KindDependencyRejected, kindOf(err))
	})
}

func TestAnswerQuestion(t *testing.T) {
	history := []models.ChatMessage{
		{Role: models.RoleAssistant, Content: "O teu plano está pronto!"},
		{Role: models.RoleSystem, Content: "internal note"},
		{Role: models.RoleUser, Content: "obrigado"},
	}

	t.Run("builds system, transcript, question", func(t *testing.T) {
		completer := &fakeCompleter{response: "Claro que podes."}
		author := NewPlanAuthor(completer)

		answer, err := author.AnswerQuestion(context.Background(), "Segunda: corrida.", history, "posso correr à tarde?")
		require.NoError(t, err)
		assert.Equal(t, "Claro que podes.", answer)

		require.Len(t, completer.calls, 1)
		msgs := completer.calls[0]
		require.Len(t, msgs, 4)

		assert.Equal(t, llm.RoleSystem, msgs[0].Role)
		assert.Contains(t, msgs[0].Content, "Segunda: corrida.")

		assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
		assert.Equal(t, llm.RoleUser, msgs[2].Role)
		assert.Equal(t, "obrigado", msgs[2].Content)

		assert.Equal(t, llm.RoleUser, msgs[3].Role)
		assert.Equal(t, "posso correr à tarde?", msgs[3].Content)

		assert.Equal(t, answerMaxTokens, completer.maxTokens[0])
	})

	t.Run("empty plan uses the not-found sentinel", func(t *testing.T) {
		completer := &fakeCompleter{response: "Não tenho o teu plano."}
		author := NewPlanAuthor(completer)

		_, err := author.AnswerQuestion(context.Background(), "", nil, "onde está o meu plano?")
		require.NoError(t, err)

		msgs := completer.calls[0]
		assert.Contains(t, msgs[0].Content, planNotFound)
	})

	t.Run("empty history keeps only system and question", func(t *testing.T) {
		completer := &fakeCompleter{response: "ok"}
		author := NewPlanAuthor(completer)

		_, err := author.AnswerQuestion(context.Background(), "plano", nil, "pergunta")
		require.NoError(t, err)

		require.Len(t, completer.calls[0], 2)
	})
}
