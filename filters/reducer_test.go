package filters

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/vnkhanh/insights-dashboard/models"
)

func col(name string, modified bool, items ...models.CheckboxItem) models.ColumnFilter {
	return models.ColumnFilter{
		ColumnName:           name,
		ColumnDataType:       models.DataTypeString,
		CheckboxColumns:      items,
		ColumnSelectedValues: SelectedValues(items),
		HasBeenModified:      modified,
	}
}

func item(label string, value bool) models.CheckboxItem {
	return models.CheckboxItem{Label: label, Value: value}
}

func TestReduce_KeepsModifiedAndNonEmptyExtras(t *testing.T) {
	t.Parallel()

	columns := []models.ColumnFilter{
		col("channel", true, item("voice", true), item("chat", false), item("NULL", false)),
		col("region", false, item("us", true), item("NULL", true)),
		col("queue", true, item("a", true), item("NULL", true)),
	}
	extras := []models.ExtraFilter{
		{ColumnName: "rpt_mst_date", ColumnDataType: models.DataTypeDate, ColumnSelectedValues: []string{"2026-01-01", "2026-02-01"}, HasBeenModified: true},
		{ColumnName: "lexicalsearch", ColumnSelectedValues: []string{}},
		{ColumnName: "interaction_id", ColumnSelectedValues: []string{"x1"}, HasBeenModified: true},
	}

	got, err := Reduce(columns, extras...)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 2 column filters + 2 extras, got %d: %+v", len(got), got)
	}

	wantNames := []string{"channel", "queue", "rpt_mst_date", "interaction_id"}
	for i, name := range wantNames {
		if got[i].ColumnName != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, got[i].ColumnName)
		}
	}
	if got[0].Null == nil || *got[0].Null {
		t.Fatalf("expected channel null=false, got %v", got[0].Null)
	}
	if got[1].Null == nil || !*got[1].Null {
		t.Fatalf("expected queue null=true, got %v", got[1].Null)
	}
	if !reflect.DeepEqual(got[0].ColumnSelectedValues, []string{"voice"}) {
		t.Fatalf("unexpected selection %v", got[0].ColumnSelectedValues)
	}
	if got[2].Null != nil {
		t.Fatalf("extras must not carry null, got %v", *got[2].Null)
	}
}

func TestReduce_MissingSentinel(t *testing.T) {
	t.Parallel()

	columns := []models.ColumnFilter{col("channel", true, item("voice", true))}
	_, err := Reduce(columns)
	if !errors.Is(err, ErrMissingSentinel) {
		t.Fatalf("expected ErrMissingSentinel, got %v", err)
	}
	var mse *MissingSentinelError
	if !errors.As(err, &mse) || mse.Column != "channel" {
		t.Fatalf("expected MissingSentinelError for channel, got %#v", err)
	}
}

func TestReduce_UnmodifiedWithoutSentinelIsFine(t *testing.T) {
	t.Parallel()

	got, err := Reduce([]models.ColumnFilter{col("channel", false, item("voice", true))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got %+v", got)
	}
}

func TestReduce_DuplicateNullFirstWins(t *testing.T) {
	t.Parallel()

	c := col("channel", true, item("NULL", true), item("NULL", false))
	got, err := Reduce([]models.ColumnFilter{c})
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	if !*got[0].Null {
		t.Fatalf("expected first NULL item to win")
	}
}

func TestReduce_Idempotent(t *testing.T) {
	t.Parallel()

	columns := []models.ColumnFilter{
		col("channel", true, item("voice", true), item("NULL", true)),
	}
	extras := []models.ExtraFilter{{ColumnName: "shopper_id", ColumnSelectedValues: []string{"a"}, HasBeenModified: true}}

	first, err := Reduce(columns, extras...)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Reduce(columns, extras...)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("expected identical output\n%s\n%s", a, b)
	}
}

func TestReduce_LengthProperty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		modified []bool
		extras   [][]string
	}{
		{modified: nil, extras: nil},
		{modified: []bool{true, true, true}, extras: [][]string{{}, {}}},
		{modified: []bool{false, true, false}, extras: [][]string{{"a"}, {}, {"b", "c"}}},
	}

	for _, tc := range cases {
		var columns []models.ColumnFilter
		want := 0
		for i, m := range tc.modified {
			columns = append(columns, col(string(rune('a'+i)), m, item("v", true), item("NULL", true)))
			if m {
				want++
			}
		}
		var extras []models.ExtraFilter
		for _, vals := range tc.extras {
			extras = append(extras, models.ExtraFilter{ColumnName: "x", ColumnSelectedValues: vals})
			if len(vals) > 0 {
				want++
			}
		}
		got, err := Reduce(columns, extras...)
		if err != nil {
			t.Fatalf("Reduce error: %v", err)
		}
		if len(got) != want {
			t.Fatalf("expected %d entries, got %d", want, len(got))
		}
	}
}

func TestReduce_WireShape(t *testing.T) {
	t.Parallel()

	got, err := Reduce([]models.ColumnFilter{col("channel", true, item("voice", true), item("NULL", false))})
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"column_name":"channel","column_selected_values":["voice"],"column_data_type":"string","null":false}]`
	if string(b) != want {
		t.Fatalf("unexpected payload\n got: %s\nwant: %s", b, want)
	}
}

func TestReduce_TypedExtras(t *testing.T) {
	t.Parallel()

	dr, err := NewDateRange("2026-01-01", "2026-02-01", now)
	if err != nil {
		t.Fatal(err)
	}
	lex := LexicalTokens("refund")
	ids := models.UploadedIDFilter{ColumnName: "shopper_id", ColumnSelectedValues: []string{"s1"}, HasBeenModified: true}

	got, err := Reduce(nil, dr.Extra(), lex.Extra(), ids.Extra())
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, o := range got {
		names = append(names, o.ColumnName)
	}
	if !reflect.DeepEqual(names, []string{"rpt_mst_date", "lexicalsearch", "shopper_id"}) {
		t.Fatalf("unexpected order %v", names)
	}
	if got[0].ColumnDataType != models.DataTypeDate {
		t.Fatalf("date extra must keep its data type")
	}
}

func TestReduce_RecomputesSelectionFromCheckboxes(t *testing.T) {
	t.Parallel()

	stale := col("channel", true, item("voice", true), item("chat", false), item("NULL", true))
	stale.ColumnSelectedValues = []string{"chat", "NULL"}

	got, err := Reduce([]models.ColumnFilter{stale})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got[0].ColumnSelectedValues, []string{"voice"}) {
		t.Fatalf("expected [voice], got %v", got[0].ColumnSelectedValues)
	}
	if got[0].Null == nil || !*got[0].Null {
		t.Fatalf("expected null=true")
	}
}
