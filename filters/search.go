package filters

import (
	"sync"
	"time"

	"github.com/vnkhanh/insights-dashboard/models"
	"github.com/vnkhanh/insights-dashboard/utils"
)

// SearchBox recomputes the lexical filter from free text after the input
// has been quiet for the debounce window.
type SearchBox struct {
	mu       sync.Mutex
	debounce *utils.Debouncer
	pending  string
	current  models.LexicalFilter
	onChange func(models.LexicalFilter)
}

func NewSearchBox(window time.Duration, onChange func(models.LexicalFilter)) *SearchBox {
	return &SearchBox{
		debounce: utils.NewDebouncer(window),
		current:  LexicalTokens(""),
		onChange: onChange,
	}
}

func (s *SearchBox) Input(text string) {
	s.mu.Lock()
	s.pending = text
	s.mu.Unlock()
	s.debounce.Trigger(s.apply)
}

func (s *SearchBox) apply() {
	s.mu.Lock()
	s.current = LexicalTokens(s.pending)
	f := s.current
	cb := s.onChange
	s.mu.Unlock()
	if cb != nil {
		cb(f)
	}
}

// Value trả về giá trị ổn định gần nhất (chưa tính input đang chờ).
func (s *SearchBox) Value() models.LexicalFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Commit áp dụng ngay input đang chờ; gọi trước khi submit.
func (s *SearchBox) Commit() models.LexicalFilter {
	s.debounce.Flush(s.apply)
	return s.Value()
}
