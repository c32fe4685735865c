package utils

import (
	"sync"
	"time"
)

// Debouncer runs fn once, window after the last Trigger. Cancel drops a pending run.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	seq    uint64
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel trả về true nếu có lần chạy đang chờ bị huỷ.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// Flush chạy ngay fn nếu có lần chạy đang chờ, dùng trước khi submit
// để trạng thái gửi đi là giá trị ổn định cuối cùng.
func (d *Debouncer) Flush(fn func()) bool {
	if !d.Cancel() {
		return false
	}
	fn()
	return true
}
