package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/planofit/planofit-whatsapp-be/internal/core/llm"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

const (
	planMaxTokens   = 2048
	answerMaxTokens = 512

	// Sentinel used when a client reaches Q&A without a stored plan
	planNotFound = "plano não encontrado"
)

// Completer is the chat-completion capability the plan author needs.
// Satisfied by llm.Service.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message, maxTokens int) (string, error)
}

// PlanAuthor drafts personalized plans and answers follow-up
// questions about them.
type PlanAuthor struct {
	llm Completer
}

func NewPlanAuthor(completer Completer) *PlanAuthor {
	return &PlanAuthor{llm: completer}
}

// GeneratePlan produces the full plan text from the collected profile
func (a *PlanAuthor) GeneratePlan(ctx context.Context, profile *models.Profile) (string, error) {
	system := "És um personal trainer e nutricionista experiente. " +
		"Crias planos de treino e alimentação personalizados, práticos e seguros, " +
		"escritos em português europeu, organizados por semanas e dias."

	var sb strings.Builder
	sb.WriteString("Cria um plano personalizado completo para este cliente:\n\n")
	sb.WriteString(profile.Description())
	sb.WriteString("\nInclui: plano de treino semanal, orientações de alimentação e dicas de recuperação. " +
		"Usa apenas texto simples, sem formatação markdown.")

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: sb.String()},
	}

	plan, err := a.llm.Complete(ctx, messages, planMaxTokens)
	if err != nil {
		return "", dependencyRejected(fmt.Errorf("plan generation: %w", err))
	}

	return plan, nil
}

// AnswerQuestion answers a follow-up question grounded on the stored
// plan and the prior transcript. System-role rows are excluded from
// the transcript; the rest keeps its chronological order.
func (a *PlanAuthor) AnswerQuestion(ctx context.Context, planText string, history []models.ChatMessage, question string) (string, error) {
	if planText == "" {
		planText = planNotFound
	}

	system := "És um assistente que responde a dúvidas sobre o plano personalizado do cliente. " +
		"Responde em português europeu, de forma curta e prática, com base no plano abaixo.\n\n" +
		"=== PLANO DO CLIENTE ===\n" + planText

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: system})

	for _, msg := range history {
		if msg.Role != models.RoleUser && msg.Role != models.RoleAssistant {
			continue
		}
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	answer, err := a.llm.Complete(ctx, messages, answerMaxTokens)
	if err != nil {
		return "", dependencyRejected(fmt.Errorf("question answering: %w", err))
	}

	return answer, nil
}
