package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/planofit/planofit-whatsapp-be/internal/core/export"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/repositories"
)

// PlanPipeline runs the fulfillment steps executed on entering PAID:
// author the plan, persist it, render the PDF, upload it, deliver the
// link and move the conversation into Q&A. There is no checkpoint: a
// failed run leaves the conversation in PAID and the next inbound
// message re-runs everything from the first step.
type PlanPipeline struct {
	author   *PlanAuthor
	renderer Renderer
	uploader Uploader
	gateway  Gateway

	clientRepo repositories.ClientRepo
	convRepo   repositories.ConversationRepo
	chatRepo   repositories.ChatMessageRepo
}

func NewPlanPipeline(
	author *PlanAuthor,
	renderer Renderer,
	uploader Uploader,
	gateway Gateway,
	clientRepo repositories.ClientRepo,
	convRepo repositories.ConversationRepo,
	chatRepo repositories.ChatMessageRepo,
) *PlanPipeline {
	return &PlanPipeline{
		author:     author,
		renderer:   renderer,
		uploader:   uploader,
		gateway:    gateway,
		clientRepo: clientRepo,
		convRepo:   convRepo,
		chatRepo:   chatRepo,
	}
}

// Run executes the pipeline for a paid client
func (p *PlanPipeline) Run(ctx context.Context, client *models.Client, conv *models.Conversation) error {
	profile, err := conv.Profile()
	if err != nil {
		return internalError(fmt.Errorf("decode context: %w", err))
	}

	// 1. Author the plan
	log.Printf("📝 Generating plan for %s", client.Phone)
	planText, err := p.author.GeneratePlan(ctx, profile)
	if err != nil {
		return err
	}

	// 2. Persist plan text before anything that can still fail
	client.PlanText = planText
	if err := p.clientRepo.Update(client); err != nil {
		return internalError(fmt.Errorf("persist plan text: %w", err))
	}

	// 3. Render the document
	doc := &export.PlanDocument{
		Title:       "Plano Personalizado",
		ClientName:  profile.Get(models.FieldName),
		ProfileRows: profile.Rows(),
		PlanText:    planText,
		GeneratedAt: time.Now(),
	}

	docPath, err := p.renderer.RenderFile(doc)
	if err != nil {
		return dependencyRejected(fmt.Errorf("render plan: %w", err))
	}
	defer func() {
		// Best effort: a leftover temp file is not worth surfacing.
		if err := os.Remove(docPath); err != nil {
			log.Printf("⚠️ Failed to remove temp document %s: %v", docPath, err)
		}
	}()

	// 4. Upload and obtain the public URL
	f, err := os.Open(docPath)
	if err != nil {
		return internalError(fmt.Errorf("open rendered document: %w", err))
	}

	filename := fmt.Sprintf("%s_%d.pdf", client.Phone, time.Now().Unix())
	result, uploadErr := p.uploader.Upload(f, filename, "plans")
	f.Close()
	if uploadErr != nil {
		return dependencyRejected(fmt.Errorf("upload plan document: %w", uploadErr))
	}

	if result.URL == "" {
		// Uploaded but no usable link. Tell the client and stop here;
		// the conversation stays in PAID.
		log.Printf("⚠️ Upload succeeded but no public URL for %s", client.Phone)
		notify(p.gateway, p.chatRepo, client, msgPlanLinkUnavailable)
		return nil
	}

	log.Printf("✅ Plan uploaded for %s: %s", client.Phone, result.URL)

	// 5. Deliver the link
	notify(p.gateway, p.chatRepo, client, msgPlanReady(result.URL))

	// Also push the PDF itself into the chat, best effort.
	if err := p.gateway.SendDocument(client.Phone, result.URL, filename); err != nil {
		log.Printf("⚠️ Failed to send plan document to %s: %v", client.Phone, err)
	}

	// 6. Update the client row with payment and plan data, plus the
	// latest context snapshot.
	client.Paid = true
	client.PlanURL = result.URL
	applyProfile(client, profile)
	if err := p.clientRepo.Update(client); err != nil {
		return internalError(fmt.Errorf("persist client: %w", err))
	}

	// 7. Move to Q&A
	if err := p.convRepo.UpdateState(conv.ID, models.StateQuestions); err != nil {
		return internalError(fmt.Errorf("advance conversation: %w", err))
	}
	conv.State = models.StateQuestions

	notify(p.gateway, p.chatRepo, client, msgQuestionsInvite)

	return nil
}

// applyProfile copies the context snapshot onto the client row
func applyProfile(client *models.Client, profile *models.Profile) {
	client.Name = profile.Get(models.FieldName)
	client.Age = profile.Get(models.FieldAge)
	client.Goal = profile.Get(models.FieldGoal)
	client.Gender = profile.Get(models.FieldGender)
	client.Height = profile.Get(models.FieldHeight)
	client.Weight = profile.Get(models.FieldWeight)
}
