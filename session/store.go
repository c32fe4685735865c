package session

import (
	"strings"
	"sync"
)

const (
	KeyWebLogin = "weblogin"
	KeyAdGroups = "adGroups"

	AdGroupPrefix = "SCUI"
)

// Store giữ danh tính người dùng cho một request. Được tạo lại mỗi request
// từ cookie đã xác thực, không lưu xuống đâu cả.
type Store struct {
	mu    sync.RWMutex
	items map[string]any
}

func New() *Store {
	return &Store{items: make(map[string]any)}
}

// FromIdentity builds a populated store from verified auth details.
func FromIdentity(weblogin string, groups []string) *Store {
	s := New()
	s.Set(KeyWebLogin, weblogin)
	s.SetAdGroups(groups)
	return s
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// SetAdGroups chỉ giữ các group có tiền tố SCUI.
func (s *Store) SetAdGroups(groups []string) {
	kept := []string{}
	for _, g := range groups {
		if strings.HasPrefix(g, AdGroupPrefix) {
			kept = append(kept, g)
		}
	}
	s.Set(KeyAdGroups, kept)
}

func (s *Store) AdGroups() []string {
	v, ok := s.Get(KeyAdGroups)
	if !ok {
		return []string{}
	}
	groups, _ := v.([]string)
	out := make([]string, len(groups))
	copy(out, groups)
	return out
}

func (s *Store) WebLogin() string {
	if s == nil {
		return ""
	}
	v, _ := s.Get(KeyWebLogin)
	login, _ := v.(string)
	return login
}

// CheckSession reports whether a non-empty weblogin has been set.
func (s *Store) CheckSession() bool {
	return s.WebLogin() != ""
}

// Snapshot là dạng JSON trả cho trang khi nạp lại.
func (s *Store) Snapshot() map[string]any {
	return map[string]any{
		KeyWebLogin: s.WebLogin(),
		KeyAdGroups: s.AdGroups(),
		"valid":     s.CheckSession(),
	}
}
