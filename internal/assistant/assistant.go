// Package assistant provides the conversational helper that answers
// government-services questions grounded in the citizen's profile.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Daniel-Abiy/AfriDesk/internal/config"
	"github.com/Daniel-Abiy/AfriDesk/internal/profile"
	"go.uber.org/zap"
)

// Message roles as stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatModel generates a reply given a system prompt, prior turns and the new
// user message.
type ChatModel interface {
	Generate(ctx context.Context, system string, history []Message, prompt string) (string, error)
}

// Reply sources.
const (
	SourceGemini = "gemini"
	SourceLocal  = "local"
)

// Assistant answers citizen questions, preferring the generative model and
// degrading to the built-in knowledge base when the model is unavailable.
type Assistant struct {
	model      ChatModel
	credential string
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// New builds an Assistant. A nil model disables the remote path.
func New(model ChatModel, credential string, logger *zap.Logger, opts ...Option) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assistant{
		model:      model,
		credential: credential,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assistant) hasCredential() bool {
	key := strings.TrimSpace(a.credential)
	return key != "" && key != config.PlaceholderAPIKey
}

// Reply answers the question in the context of the profile and conversation
// history. It never fails: any remote problem yields a knowledge-base answer.
// The returned source tells the caller which path produced the text.
func (a *Assistant) Reply(ctx context.Context, prof profile.Profile, history []Message, question string) (string, string) {
	if a.model == nil || !a.hasCredential() {
		return localResponse(question), SourceLocal
	}

	system := a.systemPrompt(prof)
	answer, err := a.model.Generate(ctx, system, history, question)
	if err != nil {
		a.logger.Warn("chat model failed, using local knowledge base", zap.Error(err))
		return localResponse(question), SourceLocal
	}
	if strings.TrimSpace(answer) == "" {
		return localResponse(question), SourceLocal
	}
	return answer, SourceGemini
}

// Greeting is the opening assistant message for a new conversation.
func Greeting(country string) string {
	if strings.TrimSpace(country) == "" {
		country = "your country"
	}
	return fmt.Sprintf("Hello! I'm AfriDesk, your government services assistant. I see you're from %s. How can I help you with government services today?", country)
}

func (a *Assistant) systemPrompt(prof profile.Profile) string {
	var b strings.Builder
	b.WriteString("You are AfriDesk, an AI assistant that helps citizens navigate government services in Africa.\n\n")

	b.WriteString("User's Profile:\n")
	fields := prof.ContextFields()
	if len(fields) == 0 {
		b.WriteString("No user profile data available.\n")
	}
	for _, field := range fields {
		fmt.Fprintf(&b, "- %s: %s\n", field[0], field[1])
	}

	b.WriteString(`
Your role is to provide personalized information based on the user's profile, including:
- Government services and procedures relevant to their needs
- Required documents and eligibility criteria
- Office locations and working hours in their country
- Application processes and fees
- Any benefits or assistance programs they might qualify for

Guidelines:
1. Always consider the user's profile information when responding
2. Be specific about requirements based on their country and personal circumstances
3. Provide step-by-step guidance when explaining processes
4. If a question is outside your knowledge, direct them to the appropriate government office
5. Be clear about any deadlines, fees, or timeframes
6. Use simple, easy-to-understand language
7. Be patient and understanding of the user's situation
8. If the user needs to visit an office, provide the nearest location if possible

`)
	fmt.Fprintf(&b, "Current Date: %s\n", a.now().Format("2006-01-02"))
	return b.String()
}
