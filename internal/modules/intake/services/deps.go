package services

import (
	"io"
	"log"

	"github.com/planofit/planofit-whatsapp-be/internal/core/export"
	"github.com/planofit/planofit-whatsapp-be/internal/core/upload"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/repositories"
)

// Gateway is the outbound messaging capability the handlers need.
// Satisfied by whatsapp.Service.
type Gateway interface {
	SendText(phoneNumber, message string) error
	SendImage(phoneNumber, imageURL, caption string) error
	SendDocument(phoneNumber, documentURL, filename string) error
	StartTyping(phoneNumber string) error
	StopTyping(phoneNumber string) error
	MarkMessageRead(messageID string) error
}

// Renderer turns a plan document into a PDF file on disk.
// Satisfied by export.PlanPDF.
type Renderer interface {
	RenderFile(doc *export.PlanDocument) (string, error)
}

// Uploader stores a blob and returns its public URL.
// Satisfied by upload.Service.
type Uploader interface {
	Upload(file io.Reader, filename, folder string) (*upload.UploadResult, error)
}

// notify sends a text to the client and logs it into the transcript
// as an assistant message. Send failures are logged, not propagated:
// there is nothing further to tell a user we cannot reach.
func notify(gw Gateway, chat repositories.ChatMessageRepo, client *models.Client, message string) {
	if err := gw.SendText(client.Phone, message); err != nil {
		log.Printf("❌ Failed to send message to %s: %v", client.Phone, err)
		return
	}
	if err := chat.Append(client.ID, models.RoleAssistant, message); err != nil {
		log.Printf("⚠️ Failed to log assistant message: %v", err)
	}
}
