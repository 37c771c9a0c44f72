package order

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestItemSubtotal(t *testing.T) {
	it := Item{Price: dec(t, "5.00"), Quantity: 2}
	if got := it.Subtotal(); !got.Equal(dec(t, "10.00")) {
		t.Errorf("Subtotal = %s, want 10.00", got)
	}
}

func TestItemJSON_IncludesSubtotal(t *testing.T) {
	it := Item{ID: "i1", MenuItemName: "Margherita", Price: dec(t, "5.00"), Quantity: 2}
	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got struct {
		Name     string          `json:"menu_item_name"`
		Price    decimal.Decimal `json:"price"`
		Subtotal decimal.Decimal `json:"subtotal"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Name != "Margherita" || !got.Price.Equal(dec(t, "5.00")) {
		t.Errorf("item fields lost in projection: %s", b)
	}
	if !got.Subtotal.Equal(dec(t, "10.00")) {
		t.Errorf("subtotal = %s, want 10.00 (%s)", got.Subtotal, b)
	}
}

func TestRecalculateTotal(t *testing.T) {
	items := []Item{
		{Price: dec(t, "5.00"), Quantity: 2},
		{Price: dec(t, "3.50"), Quantity: 1},
	}
	total := RecalculateTotal(items)
	if !total.Equal(dec(t, "13.50")) {
		t.Errorf("total = %s, want 13.50", total)
	}
}

func TestRecalculateTotal_Idempotent(t *testing.T) {
	items := []Item{
		{Price: dec(t, "0.10"), Quantity: 3},
		{Price: dec(t, "19.99"), Quantity: 7},
	}
	first := RecalculateTotal(items)
	second := RecalculateTotal(items)
	if first.String() != second.String() {
		t.Errorf("recomputation drifted: %s vs %s", first, second)
	}
	// 0.10*3 + 19.99*7 must be exact, no float rounding
	if want := dec(t, "140.23"); !first.Equal(want) {
		t.Errorf("total = %s, want %s", first, want)
	}
}

func TestRecalculateTotal_Empty(t *testing.T) {
	if got := RecalculateTotal(nil); !got.Equal(decimal.Zero) {
		t.Errorf("empty total = %s, want 0", got)
	}
}
