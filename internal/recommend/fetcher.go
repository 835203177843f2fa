package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Daniel-Abiy/AfriDesk/internal/catalog"
	"github.com/Daniel-Abiy/AfriDesk/internal/config"
	"go.uber.org/zap"
)

// Classification of remote-recommendation failures. The orchestrator treats
// them all the same way (fall back to the local catalog) but logs and counts
// them separately.
var (
	// ErrNoCredential means no usable API key is configured.
	ErrNoCredential = errors.New("no usable gemini credential")
	// ErrUpstream covers transport failures, non-2xx responses, timeouts
	// and responses that are not JSON at all.
	ErrUpstream = errors.New("gemini request failed")
	// ErrSchema means the response was JSON but did not carry a services list.
	ErrSchema = errors.New("gemini response missing services list")
)

// Result is the outcome of a recommendation request, from either source.
type Result struct {
	Services []catalog.ServiceRecord `json:"services"`
	Source   string                  `json:"source"`
}

// Sources a Result can carry.
const (
	SourceGemini = "gemini"
	SourceLocal  = "local"
)

// Fetcher asks Gemini for personalized service recommendations. It makes a
// single completion call per request and classifies every failure into one of
// the sentinel errors above.
type Fetcher struct {
	llm        TextClient
	credential string
	logger     *zap.Logger
}

// NewFetcher builds a Fetcher backed by the HTTP Gemini client.
func NewFetcher(cfg config.GeminiConfig, logger *zap.Logger) *Fetcher {
	client := NewGeminiClient(GeminiClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.GetTimeout(),
	})
	return NewFetcherWithClient(client, cfg.APIKey, logger)
}

// NewFetcherWithClient builds a Fetcher around an existing TextClient.
// Used by tests to substitute a fake backend.
func NewFetcherWithClient(llm TextClient, credential string, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{llm: llm, credential: credential, logger: logger}
}

// HasCredential reports whether the fetcher holds a usable API key. The
// well-known placeholder value from sample configs counts as absent.
func (f *Fetcher) HasCredential() bool {
	key := strings.TrimSpace(f.credential)
	return key != "" && key != config.PlaceholderAPIKey
}

// Fetch requests recommendations for the given country and needs. It returns
// an error wrapping one of ErrNoCredential, ErrUpstream or ErrSchema when the
// remote path cannot produce a usable result.
func (f *Fetcher) Fetch(ctx context.Context, country string, needs []string) (Result, error) {
	if !f.HasCredential() {
		return Result{}, ErrNoCredential
	}

	prompt := buildRecommendationPrompt(country, needs)

	raw, err := f.llm.Complete(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	services, err := f.parseServices(stripCodeFence(raw))
	if err != nil {
		return Result{}, err
	}

	return Result{Services: services, Source: SourceGemini}, nil
}

func buildRecommendationPrompt(country string, needs []string) string {
	return fmt.Sprintf(`Based on the following user information, provide a list of relevant government services in %[1]s.

User Preferences:
- Country: %[1]s
- Interested Services: %[2]s

Please provide:
1. A list of 5-7 relevant government services
2. A brief description of each service
3. Required documents for each service
4. Estimated processing time

Format the response as a valid JSON object with the following structure:
{
    "services": [
        {
            "name": "Service Name",
            "description": "Brief description",
            "required_documents": ["Document 1", "Document 2"],
            "processing_time": "X-X days/weeks",
            "fees": "Cost if any"
        }
    ]
}

IMPORTANT: Only return the JSON object, no additional text or markdown formatting.`,
		country, strings.Join(needs, ", "))
}

// stripCodeFence removes a wrapping markdown code fence from model output.
// The content of the first fenced block wins; text without a fence is
// returned as-is.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if i := strings.Index(text, "```json"); i != -1 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j != -1 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	if i := strings.Index(text, "```"); i != -1 {
		rest := text[i+3:]
		// Drop a bare language tag on the opening line.
		if nl := strings.IndexByte(rest, '\n'); nl != -1 && isLanguageTag(rest[:nl]) {
			rest = rest[nl+1:]
		}
		if j := strings.Index(rest, "```"); j != -1 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	return text
}

func isLanguageTag(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	for _, r := range line {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// parseServices decodes the stripped payload. A body that is not JSON is an
// upstream failure; JSON without a services list is a schema failure. Entries
// are decoded individually so one malformed record does not discard the rest.
func (f *Fetcher) parseServices(payload string) ([]catalog.ServiceRecord, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &top); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", ErrUpstream, err)
	}

	rawList, ok := top["services"]
	if !ok {
		return nil, ErrSchema
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rawList, &entries); err != nil {
		return nil, fmt.Errorf("%w: services is not a list: %v", ErrSchema, err)
	}

	services := make([]catalog.ServiceRecord, 0, len(entries))
	for i, entry := range entries {
		var record catalog.ServiceRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			f.logger.Warn("skipping malformed service entry",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		services = append(services, record)
	}

	return services, nil
}
