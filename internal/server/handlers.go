package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Daniel-Abiy/AfriDesk/internal/assistant"
	"github.com/Daniel-Abiy/AfriDesk/internal/catalog"
	"github.com/Daniel-Abiy/AfriDesk/internal/offices"
	"github.com/Daniel-Abiy/AfriDesk/internal/profile"
	"github.com/Daniel-Abiy/AfriDesk/internal/session"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// sessionHeader carries the client's session ID between requests.
const sessionHeader = "X-Session-ID"

// Display defaults for sparse records. Stored data is never rewritten;
// blanks are filled only at this boundary.
const (
	defaultName        = "Service"
	defaultDescription = "No description available"
	defaultVaries      = "Varies"
)

// serviceView is a ServiceRecord with display defaults applied.
type serviceView struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	RequiredDocuments []string `json:"required_documents,omitempty"`
	ProcessingTime    string   `json:"processing_time"`
	Fees              string   `json:"fees"`
	Category          string   `json:"category,omitempty"`
	WhyRelevant       string   `json:"why_relevant,omitempty"`
}

func viewOf(rec catalog.ServiceRecord) serviceView {
	v := serviceView{
		Name:              rec.Name,
		Description:       rec.Description,
		RequiredDocuments: rec.RequiredDocuments,
		ProcessingTime:    rec.ProcessingTime,
		Fees:              rec.Fees,
		Category:          rec.Category,
		WhyRelevant:       rec.WhyRelevant,
	}
	if strings.TrimSpace(v.Name) == "" {
		v.Name = defaultName
	}
	if strings.TrimSpace(v.Description) == "" {
		v.Description = defaultDescription
	}
	if strings.TrimSpace(v.ProcessingTime) == "" {
		v.ProcessingTime = defaultVaries
	}
	if strings.TrimSpace(v.Fees) == "" {
		v.Fees = defaultVaries
	}
	return v
}

func viewsOf(recs []catalog.ServiceRecord) []serviceView {
	views := make([]serviceView, len(recs))
	for i, rec := range recs {
		views[i] = viewOf(rec)
	}
	return views
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.deps.Logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.deps.Version,
	})
}

type recommendationResponse struct {
	SessionID string        `json:"session_id"`
	Country   string        `json:"country"`
	Source    string        `json:"source"`
	Services  []serviceView `json:"services"`
}

// handleRecommendations runs the recommendation pipeline for the posted
// profile. A request carrying a known X-Session-ID gets the session's cached
// result instead of a fresh model call.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var prof profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&prof); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid profile payload")
		return
	}

	sess, ok := s.resolveSession(r, prof)
	if ok && sess.Recommendation != nil {
		cached := sess.Recommendation
		s.writeJSON(w, http.StatusOK, recommendationResponse{
			SessionID: sess.ID,
			Country:   s.deps.Catalog.ResolveCountry(sess.Profile.Country),
			Source:    cached.Source,
			Services:  viewsOf(cached.Services),
		})
		return
	}

	// A bare request on an existing session reuses the stored profile.
	country := prof.ResolvedCountry(sess.Profile.ResolvedCountry(s.deps.Catalog.DefaultCountry()))
	needs := prof.CleanNeeds()
	if len(needs) == 0 {
		needs = sess.Profile.CleanNeeds()
	}
	result := s.deps.Recommender.Recommend(r.Context(), country, needs)

	s.deps.Sessions.Update(sess.ID, func(ss *session.Session) {
		ss.Recommendation = &result
	})

	s.writeJSON(w, http.StatusOK, recommendationResponse{
		SessionID: sess.ID,
		Country:   s.deps.Catalog.ResolveCountry(country),
		Source:    result.Source,
		Services:  viewsOf(result.Services),
	})
}

// resolveSession returns the request's session, creating one from the
// profile when the header is absent or stale. The boolean is true only for
// an existing session.
func (s *Server) resolveSession(r *http.Request, prof profile.Profile) (*session.Session, bool) {
	if id := strings.TrimSpace(r.Header.Get(sessionHeader)); id != "" {
		if sess, ok := s.deps.Sessions.Get(id); ok {
			return sess, true
		}
	}
	return s.deps.Sessions.Create(prof), false
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"countries": s.deps.Catalog.Countries(),
	})
}

func (s *Server) handleCatalogCountry(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	categories := splitCSV(r.URL.Query().Get("categories"))

	resolved := s.deps.Catalog.ResolveCountry(country)
	matched := s.deps.Catalog.Match(country, categories)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"country":  resolved,
		"services": viewsOf(matched),
	})
}

type chatRequest struct {
	SessionID string          `json:"session_id"`
	Message   string          `json:"message"`
	Profile   profile.Profile `json:"profile"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Source    string `json:"source"`
}

// handleChat answers one conversation turn. History lives in the session so
// follow-up questions keep their context.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid chat payload")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sess, existing := s.lookupChatSession(req)
	prof := sess.Profile
	if !existing {
		prof = req.Profile
	}

	reply, source := s.deps.Assistant.Reply(r.Context(), prof, sess.History, req.Message)

	s.deps.Sessions.Update(sess.ID, func(ss *session.Session) {
		ss.History = append(ss.History,
			assistant.Message{Role: assistant.RoleUser, Content: req.Message},
			assistant.Message{Role: assistant.RoleAssistant, Content: reply},
		)
	})

	s.writeJSON(w, http.StatusOK, chatResponse{
		SessionID: sess.ID,
		Reply:     reply,
		Source:    source,
	})
}

func (s *Server) lookupChatSession(req chatRequest) (*session.Session, bool) {
	if id := strings.TrimSpace(req.SessionID); id != "" {
		if sess, ok := s.deps.Sessions.Get(id); ok {
			return sess, true
		}
	}
	return s.deps.Sessions.Create(req.Profile), false
}

// handleOffices lists government offices, filtered by the citizen's needs
// and sorted by distance when coordinates are given.
func (s *Server) handleOffices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	types := officeTypes(q.Get("needs"))

	limit := 10
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	latRaw, lonRaw := q.Get("lat"), q.Get("lon")
	if latRaw == "" || lonRaw == "" {
		matched := s.deps.Offices.Filter(types)
		if limit < len(matched) {
			matched = matched[:limit]
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"offices": matched})
		return
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lon, lonErr := strconv.ParseFloat(lonRaw, 64)
	if latErr != nil || lonErr != nil {
		s.writeError(w, http.StatusBadRequest, "lat and lon must be numbers")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"offices": s.deps.Offices.Nearest(lat, lon, types, limit),
	})
}

func officeTypes(needsCSV string) []string {
	return offices.TypesForNeeds(splitCSV(needsCSV))
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
