package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, name, price string) Item {
	return Item{
		ID:     id,
		NameZh: name,
		Price:  decimal.RequireFromString(price),
	}
}

func TestAddItem_RepeatedAddsIncrementSingleLine(t *testing.T) {
	s := NewStore()

	var snap Snapshot
	for i := 0; i < 5; i++ {
		snap = s.AddItem(item("p1", "豆漿", "2.00"))
	}

	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 5, snap.Lines[0].Quantity)
	assert.True(t, snap.TotalPrice.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, 5, snap.TotalItems)
}

func TestAddItem_NewProductInsertsWithQuantityOne(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.00"))
	snap := s.AddItem(item("p2", "蛋餅", "3.50"))

	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 1, snap.Lines[1].Quantity)
	assert.Equal(t, "蛋餅", snap.Lines[1].NameZh)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "positive value sets not increments", quantity: 7, wantLines: 1, wantQty: 7},
		{name: "zero removes the line", quantity: 0, wantLines: 0},
		{name: "negative removes the line", quantity: -3, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.AddItem(item("p1", "豆漿", "2.00"))
			s.AddItem(item("p1", "豆漿", "2.00"))

			snap := s.UpdateQuantity("p1", tt.quantity)
			require.Len(t, snap.Lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, snap.Lines[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.00"))

	snap := s.UpdateQuantity("missing", 4)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestDecrement(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.00"))
	s.AddItem(item("p1", "豆漿", "2.00"))

	snap := s.Decrement("p1")
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)

	// Reaching zero removes the line; further decrements are no-ops.
	snap = s.Decrement("p1")
	assert.Empty(t, snap.Lines)
	snap = s.Decrement("p1")
	assert.Empty(t, snap.Lines)
}

func TestRemoveItem(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.00"))
	s.AddItem(item("p2", "蛋餅", "3.50"))

	snap := s.RemoveItem("p1")
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "p2", snap.Lines[0].ID)

	// Absent id is a no-op.
	snap = s.RemoveItem("p1")
	assert.Len(t, snap.Lines, 1)
}

func TestTotals_AlwaysRecomputed(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.50"))
	s.AddItem(item("p1", "豆漿", "2.50"))
	s.AddItem(item("p2", "蛋餅", "3.00"))

	snap := s.Snapshot()
	assert.True(t, snap.TotalPrice.Equal(decimal.RequireFromString("8.00")))
	assert.Equal(t, 3, snap.TotalItems)

	snap = s.UpdateQuantity("p1", 1)
	assert.True(t, snap.TotalPrice.Equal(decimal.RequireFromString("5.50")))
	assert.Equal(t, 2, snap.TotalItems)

	snap = s.Clear()
	assert.True(t, snap.TotalPrice.IsZero())
	assert.Zero(t, snap.TotalItems)
}

func TestClear_DoesNotTouchOrderHistory(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.00"))
	s.AddOrder(Order{OrderNumber: "00042", Timestamp: time.Now()})

	snap := s.Clear()
	assert.Empty(t, snap.Lines)
	assert.Len(t, s.Orders(), 1)
}

func TestOrders_MostRecentFirst(t *testing.T) {
	s := NewStore()
	s.AddOrder(Order{OrderNumber: "00001"})
	s.AddOrder(Order{OrderNumber: "00002"})

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "00002", orders[0].OrderNumber)
	assert.Equal(t, "00001", orders[1].OrderNumber)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := NewStore()
	s.AddItem(item("p1", "豆漿", "2.00"))

	snap := s.Snapshot()
	snap.Lines[0].Quantity = 99

	assert.Equal(t, 1, s.Quantity("p1"))
}

func TestFromContext_PanicsWithoutProvisioning(t *testing.T) {
	assert.Panics(t, func() {
		FromContext(context.Background())
	})

	store := NewStore()
	ctx := NewContext(context.Background(), store)
	assert.Same(t, store, FromContext(ctx))
}

func TestManager_ReturnsSameStorePerSession(t *testing.T) {
	m := NewManager()

	a := m.Get("session-a")
	b := m.Get("session-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Get("session-a"))
	assert.Equal(t, 2, m.Len())
}
