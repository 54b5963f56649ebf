// Package session holds the state of a single study: the current
// passage, its three meditations, the chat transcript, and the
// bookkeeping that keeps concurrent generation requests honest.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/daehopark/malsum/internal/bible"
	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/gemini"
	"github.com/daehopark/malsum/internal/logging"
	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/prompt"
	"github.com/daehopark/malsum/internal/share"
)

// Session owns all study state. Methods are safe for concurrent use;
// the generation calls themselves run without holding the lock, so a
// slow provider never blocks readers.
type Session struct {
	mu  sync.Mutex
	gen gemini.Generator

	passage    *models.Passage
	meditation models.MeditationContent
	active     models.Category
	transcript []models.ChatMessage

	readOnly bool

	// epoch increments every time a new lookup begins. A generation
	// that started under an older epoch must not write its result
	// into the state of a newer passage.
	epoch     uint64
	lookupSeq uint64

	loadingPassage bool
	inFlight       map[models.Category]bool
	chatInFlight   bool
	summaryBusy    bool

	lookupCancel context.CancelFunc
	genCancels   map[models.Category]context.CancelFunc
	chatCancel   context.CancelFunc
}

// New returns an empty session backed by the given generator.
func New(gen gemini.Generator) *Session {
	return &Session{
		gen:        gen,
		active:     models.CategoryObservation,
		inFlight:   make(map[models.Category]bool),
		genCancels: make(map[models.Category]context.CancelFunc),
	}
}

// NewShared returns a read-only session populated from a decoded
// share snapshot. Lookup, generation, and chat are rejected.
func NewShared(snap share.Snapshot) *Session {
	s := New(nil)
	p := snap.Passage()
	s.passage = &p
	s.meditation = snap.Meditation()
	s.readOnly = true
	return s
}

// ReadOnly reports whether this session is a shared, view-only study.
func (s *Session) ReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readOnly
}

// Passage returns the current passage, or nil before the first
// successful lookup.
func (s *Session) Passage() *models.Passage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.passage == nil {
		return nil
	}
	p := *s.passage
	return &p
}

// Meditation returns a copy of the cached meditation content.
func (s *Session) Meditation() models.MeditationContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meditation
}

// ActiveCategory returns the currently selected meditation tab.
func (s *Session) ActiveCategory() models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Transcript returns a copy of the chat history, oldest first.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// IsLoadingPassage reports whether a lookup is in flight.
func (s *Session) IsLoadingPassage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingPassage
}

// IsLoadingMeditation reports whether any meditation generation is in
// flight, or the given category's when one is named.
func (s *Session) IsLoadingMeditation(categories ...models.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(categories) == 0 {
		return len(s.inFlight) > 0
	}
	for _, c := range categories {
		if s.inFlight[c] {
			return true
		}
	}
	return false
}

// IsLoadingChat reports whether a chat turn is in flight.
func (s *Session) IsLoadingChat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatInFlight
}

// cancelGenerationsLocked cancels every request tied to the current
// passage. Caller holds the lock.
func (s *Session) cancelGenerationsLocked() {
	if s.lookupCancel != nil {
		s.lookupCancel()
		s.lookupCancel = nil
	}
	for c, cancel := range s.genCancels {
		cancel()
		delete(s.genCancels, c)
	}
	if s.chatCancel != nil {
		s.chatCancel()
		s.chatCancel = nil
	}
}

// Lookup normalizes and fetches the passage named by input, replacing
// the current one. Meditations are cleared, the active tab returns to
// observation, and any generation still running for the previous
// passage is cancelled. When two lookups race, the later submission
// wins and the earlier result is discarded.
func (s *Session) Lookup(ctx context.Context, input string) (models.Passage, error) {
	ref := strings.TrimSpace(input)
	if ref == "" {
		return models.Passage{}, apierrors.ErrEmptyInput
	}

	s.mu.Lock()
	if s.readOnly {
		s.mu.Unlock()
		return models.Passage{}, apierrors.ErrReadOnly
	}
	s.cancelGenerationsLocked()
	s.epoch++
	s.lookupSeq++
	seq := s.lookupSeq
	s.loadingPassage = true
	s.passage = nil
	s.meditation.Reset()
	s.active = models.CategoryObservation
	lctx, cancel := context.WithCancel(ctx)
	s.lookupCancel = cancel
	s.mu.Unlock()

	normalized := bible.NormalizeReference(ref)
	logging.S().Debugw("passage lookup", "input", ref, "normalized", normalized)
	text, err := s.gen.FetchPassage(lctx, normalized)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lookupSeq != seq {
		// A newer lookup superseded this one.
		return models.Passage{}, context.Canceled
	}
	s.loadingPassage = false
	s.lookupCancel = nil
	if err != nil {
		return models.Passage{}, err
	}
	p := models.Passage{Reference: normalized, Text: text}
	s.passage = &p
	return p, nil
}

// Generate returns the meditation for category, producing it through
// the provider on the first request and from the cache afterwards.
// A non-empty override skips the cache and uses the given passage
// text instead of the stored one; the lookup path uses this to start
// the observation before the passage has been committed to state.
// The category becomes the active tab either way.
func (s *Session) Generate(ctx context.Context, category models.Category, override string) (string, error) {
	if !category.Valid() {
		return "", apierrors.NewGenerationError(string(category), "unknown meditation category", nil)
	}

	s.mu.Lock()
	if s.readOnly {
		s.mu.Unlock()
		return "", apierrors.ErrReadOnly
	}
	s.active = category
	if s.passage == nil && override == "" {
		s.mu.Unlock()
		return "", apierrors.ErrNoPassage
	}
	if override == "" {
		if cached := s.meditation.Get(category); cached != "" {
			s.mu.Unlock()
			return cached, nil
		}
	}
	if s.inFlight[category] {
		s.mu.Unlock()
		return "", apierrors.ErrBusy
	}
	s.inFlight[category] = true
	epoch := s.epoch
	text := override
	if text == "" {
		text = s.passage.Text
	}
	gctx, cancel := context.WithCancel(ctx)
	s.genCancels[category] = cancel
	s.mu.Unlock()

	logging.S().Debugw("meditation generate", "category", category)
	result, err := s.gen.GenerateMeditation(gctx, category, text)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, category)
	delete(s.genCancels, category)
	if err != nil {
		return "", err
	}
	if s.epoch != epoch {
		// The passage changed underneath us; the result belongs to
		// the old one.
		return "", context.Canceled
	}
	s.meditation.Set(category, result)
	return result, nil
}

// SelectCategory switches to category and fills it on demand. It is
// the read-through path: a populated category returns immediately
// with no provider call.
func (s *Session) SelectCategory(ctx context.Context, category models.Category) (string, error) {
	return s.Generate(ctx, category, "")
}

// Study runs the full lookup flow: fetch the passage, then
// immediately generate its observation with the fresh text. The
// passage is returned even when the observation step fails.
func (s *Session) Study(ctx context.Context, input string) (models.Passage, string, error) {
	p, err := s.Lookup(ctx, input)
	if err != nil {
		return models.Passage{}, "", err
	}
	obs, err := s.Generate(ctx, models.CategoryObservation, p.Text)
	if err != nil {
		return p, "", err
	}
	return p, obs, nil
}

// SendChat appends the question to the transcript and asks the
// provider for an answer grounded in the current passage. The user
// message is appended before the call and kept on failure, tagged
// failed, so nothing the user typed is ever lost.
func (s *Session) SendChat(ctx context.Context, question string) (models.ChatMessage, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return models.ChatMessage{}, apierrors.ErrEmptyInput
	}

	s.mu.Lock()
	if s.readOnly {
		s.mu.Unlock()
		return models.ChatMessage{}, apierrors.ErrReadOnly
	}
	if s.chatInFlight {
		s.mu.Unlock()
		return models.ChatMessage{}, apierrors.ErrBusy
	}
	s.chatInFlight = true
	userMsg := models.NewUserMessage(q)
	s.transcript = append(s.transcript, userMsg)
	idx := len(s.transcript) - 1
	history := make([]models.ChatMessage, idx)
	copy(history, s.transcript[:idx])
	full := prompt.ChatQuestion(s.passage, q)
	cctx, cancel := context.WithCancel(ctx)
	s.chatCancel = cancel
	s.mu.Unlock()

	logging.S().Debugw("chat send", "history", len(history))
	answer, err := s.gen.Chat(cctx, history, full)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatInFlight = false
	s.chatCancel = nil
	if err != nil {
		s.transcript[idx].Status = models.StatusFailed
		return models.ChatMessage{}, err
	}
	s.transcript[idx].Status = models.StatusSent
	modelMsg := models.NewModelMessage(answer)
	s.transcript = append(s.transcript, modelMsg)
	return modelMsg, nil
}

// Summarize produces the share summary for the current study.
func (s *Session) Summarize(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.passage == nil {
		s.mu.Unlock()
		return "", apierrors.ErrNoPassage
	}
	if s.summaryBusy {
		s.mu.Unlock()
		return "", apierrors.ErrBusy
	}
	s.summaryBusy = true
	p := *s.passage
	m := s.meditation
	s.mu.Unlock()

	if s.readOnly {
		// Shared views have no generator; fall back to the
		// assembled text.
		s.mu.Lock()
		s.summaryBusy = false
		s.mu.Unlock()
		return share.DefaultText(share.FromSession(p, m)), nil
	}

	summary, err := s.gen.Summarize(ctx, p, m)

	s.mu.Lock()
	s.summaryBusy = false
	s.mu.Unlock()
	return summary, err
}

// Snapshot captures the current study for sharing.
func (s *Session) Snapshot() (share.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.passage == nil {
		return share.Snapshot{}, apierrors.ErrNoPassage
	}
	return share.FromSession(*s.passage, s.meditation), nil
}

// ShareToken encodes the current study as a portable token.
func (s *Session) ShareToken() (string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return "", err
	}
	return share.Encode(snap)
}

// DefaultShareText assembles the non-generated share message for the
// current study.
func (s *Session) DefaultShareText() (string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return "", err
	}
	return share.DefaultText(snap), nil
}
