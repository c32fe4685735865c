package upload

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/vnkhanh/insights-dashboard/models"
)

// Store lưu / nạp danh sách giá trị theo tên (qua API phía sau).
type Store interface {
	GetNamedValues(ctx context.Context, name string) (json.RawMessage, error)
	SaveNamedValues(ctx context.Context, name string, values []string) error
}

// Notification là thứ component gửi lên cha sau mỗi thay đổi.
type Notification struct {
	Data []string `json:"data"`
	Name string   `json:"name"`
}

// Loader holds the in-memory uploaded-id filter for one column.
type Loader struct {
	column  string
	store   Store
	current models.UploadedIDFilter
}

func NewLoader(column string, store Store) *Loader {
	return &Loader{column: column, store: store, current: NewFilter(column, nil)}
}

func (l *Loader) Filter() models.UploadedIDFilter {
	return l.current
}

func (l *Loader) notify() Notification {
	data := make([]string, len(l.current.ColumnSelectedValues))
	copy(data, l.current.ColumnSelectedValues)
	return Notification{Data: data, Name: l.column}
}

func (l *Loader) UploadCSV(r io.Reader, filename string) (Notification, error) {
	f, err := ParseCSV(r, filename, l.column)
	if err != nil {
		return l.notify(), err
	}
	l.current = f
	return l.notify(), nil
}

func (l *Loader) Paste(text string) Notification {
	l.current = ParsePasted(text, l.column)
	return l.notify()
}

func (l *Loader) Load(ctx context.Context, name string) (Notification, error) {
	if strings.TrimSpace(name) == "" {
		return l.notify(), ErrNameRequired
	}
	raw, err := l.store.GetNamedValues(ctx, name)
	if err != nil {
		return l.notify(), err
	}
	values, err := ParseNamedValues(raw)
	if err != nil {
		return l.notify(), err
	}
	l.current = NewFilter(l.column, values)
	return l.notify(), nil
}

// Save persists the current values under name. An empty name never reaches the store.
func (l *Loader) Save(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return l.store.SaveNamedValues(ctx, name, l.current.ColumnSelectedValues)
}

func (l *Loader) Clear() Notification {
	l.current = NewFilter(l.column, nil)
	return l.notify()
}
