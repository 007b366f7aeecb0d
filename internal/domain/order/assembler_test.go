package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewline/coffee-trade/internal/domain/menu"
	"github.com/brewline/coffee-trade/internal/domain/pricing"
)

type mockMenuRepo struct {
	items map[string]menu.Item
	err   error
}

func (m *mockMenuRepo) List(context.Context) ([]menu.Item, error) { return nil, nil }

func (m *mockMenuRepo) GetByIDs(_ context.Context, ids []string) ([]menu.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	var found []menu.Item
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

func newMenuRepo(items ...menu.Item) *mockMenuRepo {
	byID := make(map[string]menu.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &mockMenuRepo{items: byID}
}

func TestCatalogAssembler_BuildOrder(t *testing.T) {
	asm := NewCatalogAssembler(newMenuRepo())
	fixed := time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC)
	asm.now = func() time.Time { return fixed }

	o := asm.BuildOrder(CreateRequest{UserID: 42})

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, int64(42), o.UserID)
	assert.Equal(t, fixed, o.CreatedAt)
	assert.Zero(t, o.Total)
	assert.Empty(t, o.Lines)
}

func TestCatalogAssembler_BuildLines_Empty(t *testing.T) {
	asm := NewCatalogAssembler(newMenuRepo())

	lines, err := asm.BuildLines(context.Background(), CreateRequest{UserID: 42}, &Order{ID: "o1"})

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCatalogAssembler_BuildLines_CatalogPriced(t *testing.T) {
	latte := menu.Item{ID: "latte-1", Name: "Latte", Price: decimal.RequireFromString("4.50")}
	asm := NewCatalogAssembler(newMenuRepo(latte))

	lines, err := asm.BuildLines(context.Background(), CreateRequest{
		UserID: 42,
		Lines: []LineRequest{
			{ItemID: "latte-1"},
			{Taste: &pricing.TasteSpec{Shots: 1}},
		},
	}, &Order{ID: "o1"})

	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.NotNil(t, lines[0].Price)
	assert.Equal(t, int64(450), *lines[0].Price)
	assert.Equal(t, "o1", lines[0].OrderID)

	assert.Nil(t, lines[1].Price, "customized line stays unpriced for the policy step")
	assert.Equal(t, "o1", lines[1].OrderID)
}

func TestCatalogAssembler_BuildLines_UnknownItem(t *testing.T) {
	asm := NewCatalogAssembler(newMenuRepo())

	_, err := asm.BuildLines(context.Background(), CreateRequest{
		UserID: 42,
		Lines:  []LineRequest{{ItemID: "ghost-item"}},
	}, &Order{ID: "o1"})

	var uiErr *UnknownItemError
	require.ErrorAs(t, err, &uiErr)
	assert.Equal(t, "ghost-item", uiErr.ItemID)
}

func TestToView(t *testing.T) {
	created := time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC)
	o := Order{ID: "o1", UserID: 42, Total: 25, CreatedAt: created}
	lines := []Line{
		{ID: "a", OrderID: "o1", ItemID: "latte-1", Price: priceOf(10), CreatedAt: created},
		{ID: "b", OrderID: "o1", Taste: &pricing.TasteSpec{Shots: 2, Milk: pricing.MilkMore}, Price: priceOf(15), CreatedAt: created},
	}

	v := ToView(o, lines)

	assert.Equal(t, "o1", v.ID)
	assert.Equal(t, int64(25), v.Total)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, int64(10), v.Lines[0].Price)
	assert.Equal(t, 2, v.Lines[1].Shots)
	assert.Equal(t, "MORE", v.Lines[1].Milk)

	// Listings without line detail omit the sequence entirely.
	assert.Nil(t, ToView(o, nil).Lines)
}
