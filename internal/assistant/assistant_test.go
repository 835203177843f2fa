package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Daniel-Abiy/AfriDesk/internal/profile"
	"github.com/stretchr/testify/assert"
)

type fakeChatModel struct {
	reply   string
	err     error
	system  string
	history []Message
	prompt  string
	calls   int
}

func (f *fakeChatModel) Generate(_ context.Context, system string, history []Message, prompt string) (string, error) {
	f.calls++
	f.system = system
	f.history = history
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func TestReplyRemote(t *testing.T) {
	model := &fakeChatModel{reply: "You can renew your passport at the immigration office."}
	a := New(model, "real-key", nil, WithClock(fixedClock))

	prof := profile.Profile{Country: "Kenya", Age: "29", Needs: []string{"health"}}
	history := []Message{
		{Role: RoleAssistant, Content: "Hi"},
		{Role: RoleUser, Content: "Hello"},
	}

	answer, source := a.Reply(context.Background(), prof, history, "How do I renew my passport?")

	assert.Equal(t, SourceGemini, source)
	assert.Equal(t, model.reply, answer)
	assert.Equal(t, history, model.history)
	assert.Equal(t, "How do I renew my passport?", model.prompt)
}

func TestReplySystemPromptCarriesProfile(t *testing.T) {
	model := &fakeChatModel{reply: "ok"}
	a := New(model, "real-key", nil, WithClock(fixedClock))

	prof := profile.Profile{
		Country:          "Ghana",
		Age:              "34",
		EmploymentStatus: "Self-employed",
		Needs:            []string{"business", "tax"},
	}

	_, _ = a.Reply(context.Background(), prof, nil, "question")

	assert.Contains(t, model.system, "Ghana")
	assert.Contains(t, model.system, "34")
	assert.Contains(t, model.system, "Self-employed")
	assert.Contains(t, model.system, "business, tax")
	assert.Contains(t, model.system, "Current Date: 2026-03-14")
}

func TestReplyNoCredentialUsesLocal(t *testing.T) {
	model := &fakeChatModel{reply: "remote"}

	for _, key := range []string{"", "your_gemini_api_key_here"} {
		a := New(model, key, nil)
		answer, source := a.Reply(context.Background(), profile.Profile{}, nil, "passport help")
		assert.Equal(t, SourceLocal, source)
		assert.Contains(t, answer, "Passport Application")
	}
	assert.Zero(t, model.calls)
}

func TestReplyNilModelUsesLocal(t *testing.T) {
	a := New(nil, "real-key", nil)
	answer, source := a.Reply(context.Background(), profile.Profile{}, nil, "anything")
	assert.Equal(t, SourceLocal, source)
	assert.NotEmpty(t, answer)
}

func TestReplyRemoteErrorFallsBack(t *testing.T) {
	model := &fakeChatModel{err: errors.New("quota exceeded")}
	a := New(model, "real-key", nil)

	answer, source := a.Reply(context.Background(), profile.Profile{}, nil, "I need a hospital")

	assert.Equal(t, SourceLocal, source)
	assert.Contains(t, answer, "health services")
	assert.Equal(t, 1, model.calls)
}

func TestReplyBlankRemoteAnswerFallsBack(t *testing.T) {
	model := &fakeChatModel{reply: "   "}
	a := New(model, "real-key", nil)

	_, source := a.Reply(context.Background(), profile.Profile{}, nil, "school fees")
	assert.Equal(t, SourceLocal, source)
}

func TestLocalResponseTopics(t *testing.T) {
	tests := []struct {
		question string
		expect   string
	}{
		{"How do I get a passport?", "Passport Application"},
		{"where is the nearest HOSPITAL", "Clinic Registration"},
		{"university entry requirements", "University Applications"},
		{"how do I register a business?", "Business Registration"},
		{"what is the meaning of life", "limited functionality"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Contains(t, localResponse(tt.question), tt.expect)
		})
	}
}

func TestGreeting(t *testing.T) {
	assert.True(t, strings.Contains(Greeting("Kenya"), "Kenya"))
	assert.Contains(t, Greeting(""), "your country")
	assert.Contains(t, Greeting(" "), "your country")
}
