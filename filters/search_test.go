package filters

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnkhanh/insights-dashboard/models"
)

func TestSearchBox_DebouncesInput(t *testing.T) {
	t.Parallel()

	var changes int32
	box := NewSearchBox(20*time.Millisecond, func(models.LexicalFilter) { atomic.AddInt32(&changes, 1) })

	box.Input("ref")
	box.Input("refund")
	box.Input("refund order")
	if box.Value().HasBeenModified {
		t.Fatalf("value must not change before the window elapses")
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&changes); got != 1 {
		t.Fatalf("expected 1 change, got %d", got)
	}
	if !reflect.DeepEqual(box.Value().ColumnSelectedValues, []string{"refund", "order"}) {
		t.Fatalf("unexpected value %+v", box.Value())
	}
}

func TestSearchBox_CommitUsesLastInput(t *testing.T) {
	t.Parallel()

	box := NewSearchBox(time.Hour, nil)
	box.Input("late text")
	f := box.Commit()
	if !reflect.DeepEqual(f.ColumnSelectedValues, []string{"late", "text"}) {
		t.Fatalf("commit must apply pending input, got %+v", f)
	}
}
