package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/planofit/planofit-whatsapp-be/internal/core/export"
	"github.com/planofit/planofit-whatsapp-be/internal/core/llm"
	"github.com/planofit/planofit-whatsapp-be/internal/core/upload"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/models"
)

// In-memory fakes for the repository and gateway collaborators.

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*models.Client)}
}

func (r *fakeClientRepo) FindOrCreateByPhone(phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[phone]; ok {
		return c, nil
	}
	c := &models.Client{ID: uuid.New(), Phone: phone, AIEnabled: true}
	r.clients[phone] = c
	return c, nil
}

func (r *fakeClientRepo) GetByID(id uuid.UUID) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("client %s not found", id)
}

func (r *fakeClientRepo) GetByPhone(phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clients[phone], nil
}

func (r *fakeClientRepo) Update(client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.Phone] = client
	return nil
}

func (r *fakeClientRepo) List(limit int) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Client
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

type fakeConvRepo struct {
	mu    sync.Mutex
	convs []*models.Conversation

	createErr error
	latestErr error
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{}
}

func (r *fakeConvRepo) Create(conv *models.Conversation) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	conv.ID = uuid.New()
	conv.CreatedAt = time.Now()
	conv.UpdatedAt = conv.CreatedAt
	r.convs = append(r.convs, conv)
	return nil
}

func (r *fakeConvRepo) LatestByClient(clientID uuid.UUID) (*models.Conversation, error) {
	if r.latestErr != nil {
		return nil, r.latestErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.convs) - 1; i >= 0; i-- {
		if r.convs[i].ClientID == clientID {
			return r.convs[i], nil
		}
	}
	return nil, nil
}

func (r *fakeConvRepo) UpdateState(id uuid.UUID, state models.ConversationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.convs {
		if c.ID == id {
			c.State = state
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("conversation %s not found", id)
}

func (r *fakeConvRepo) UpdateContext(id uuid.UUID, context datatypes.JSON) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.convs {
		if c.ID == id {
			c.Context = context
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("conversation %s not found", id)
}

func (r *fakeConvRepo) ListStaleInState(state models.ConversationState, cutoff time.Time, limit int) ([]models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Conversation
	for _, c := range r.convs {
		if c.State == state && c.UpdatedAt.Before(cutoff) {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	messages []models.ChatMessage

	listErr error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (r *fakeChatRepo) Append(clientID uuid.UUID, role, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, models.ChatMessage{
		ID:        uuid.New(),
		ClientID:  clientID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return nil
}

func (r *fakeChatRepo) ListByClient(clientID uuid.UUID) ([]models.ChatMessage, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out, nil
}

type sentText struct {
	phone   string
	message string
}

type sentImage struct {
	phone   string
	url     string
	caption string
}

type sentDocument struct {
	phone    string
	url      string
	filename string
}

type fakeGateway struct {
	mu        sync.Mutex
	texts     []sentText
	images    []sentImage
	documents []sentDocument
	readIDs   []string

	sendTextErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{}
}

func (g *fakeGateway) SendText(phone, message string) error {
	if g.sendTextErr != nil {
		return g.sendTextErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.texts = append(g.texts, sentText{phone: phone, message: message})
	return nil
}

func (g *fakeGateway) SendImage(phone, imageURL, caption string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.images = append(g.images, sentImage{phone: phone, url: imageURL, caption: caption})
	return nil
}

func (g *fakeGateway) SendDocument(phone, documentURL, filename string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.documents = append(g.documents, sentDocument{phone: phone, url: documentURL, filename: filename})
	return nil
}

func (g *fakeGateway) StartTyping(phone string) error { return nil }
func (g *fakeGateway) StopTyping(phone string) error  { return nil }

func (g *fakeGateway) MarkMessageRead(messageID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.readIDs = append(g.readIDs, messageID)
	return nil
}

func (g *fakeGateway) lastText() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.texts) == 0 {
		return ""
	}
	return g.texts[len(g.texts)-1].message
}

type fakeCompleter struct {
	mu        sync.Mutex
	response  string
	err       error
	calls     [][]llm.Message
	maxTokens []int
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []llm.Message, maxTokens int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	f.maxTokens = append(f.maxTokens, maxTokens)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) RenderFile(doc *export.PlanDocument) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	tmp, err := os.CreateTemp("", "plan_*.pdf")
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if _, err := tmp.WriteString("%PDF-1.4 " + doc.PlanText); err != nil {
		return "", err
	}
	return tmp.Name(), nil
}

type fakeUploader struct {
	mu      sync.Mutex
	url     string
	err     error
	uploads []string
	folders []string
}

func (f *fakeUploader) Upload(file io.Reader, filename, folder string) (*upload.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.ReadAll(file); err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, filename)
	f.folders = append(f.folders, folder)
	return &upload.UploadResult{URL: f.url, FileName: filename, PublicID: folder + "/" + filename}, nil
}
