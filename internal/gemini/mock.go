package gemini

import (
	"context"
	"sync"

	"github.com/daehopark/malsum/internal/models"
)

// MockGenerator is a Generator test double with canned responses and call
// counters, used by session and command tests.
type MockGenerator struct {
	mu sync.Mutex

	// Canned return values
	PassageText   string
	PassageErr    error
	MeditationVal map[models.Category]string
	MeditationErr error
	ChatVal       string
	ChatErr       error
	SummaryVal    string
	SummaryErr    error

	// Call counters/recorders
	FetchCalls      int
	MeditationCalls map[models.Category]int
	ChatCalls       int
	SummaryCalls    int
	LastReference   string
	LastPassageText string
	LastQuestion    string
	LastHistoryLen  int
}

// Ensure MockGenerator implements Generator
var _ Generator = (*MockGenerator)(nil)

func (m *MockGenerator) FetchPassage(ctx context.Context, reference string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	m.LastReference = reference
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.PassageErr != nil {
		return "", m.PassageErr
	}
	return m.PassageText, nil
}

func (m *MockGenerator) GenerateMeditation(ctx context.Context, category models.Category, passageText string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MeditationCalls == nil {
		m.MeditationCalls = make(map[models.Category]int)
	}
	m.MeditationCalls[category]++
	m.LastPassageText = passageText
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.MeditationErr != nil {
		return "", m.MeditationErr
	}
	if m.MeditationVal != nil {
		if v, ok := m.MeditationVal[category]; ok {
			return v, nil
		}
	}
	return "1. " + string(category), nil
}

func (m *MockGenerator) Chat(ctx context.Context, history []models.ChatMessage, question string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatCalls++
	m.LastQuestion = question
	m.LastHistoryLen = len(history)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.ChatErr != nil {
		return "", m.ChatErr
	}
	return m.ChatVal, nil
}

func (m *MockGenerator) Summarize(ctx context.Context, passage models.Passage, meditation models.MeditationContent) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummaryCalls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.SummaryErr != nil {
		return "", m.SummaryErr
	}
	return m.SummaryVal, nil
}

// MeditationCallCount returns how many generation calls were made for a
// category.
func (m *MockGenerator) MeditationCallCount(category models.Category) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.MeditationCalls[category]
}

// TotalMeditationCalls returns generation calls across all categories.
func (m *MockGenerator) TotalMeditationCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.MeditationCalls {
		total += n
	}
	return total
}
