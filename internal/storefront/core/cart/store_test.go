package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

func product(id string, price int64) entity.Product {
	return entity.Product{ID: id, ItemID: 1, Name: "p-" + id, Unit: "pcs", Price: decimal.NewFromInt(price)}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore()

	s.AddItem("alice", product("a", 100), 2)
	s.AddItem("bob", product("b", 50), 1)

	alice := s.Get("alice")
	bob := s.Get("bob")
	carol := s.Get("carol")
	assert.Equal(t, 2, alice.TotalItems())
	assert.Equal(t, 1, bob.TotalItems())
	assert.Equal(t, 0, carol.TotalItems())
}

func TestStore_AddItem_AccumulatesAcrossCalls(t *testing.T) {
	s := NewStore()

	s.AddItem("s1", product("a", 100), 2)
	s.AddItem("s1", product("b", 50), 3)
	updated := s.AddItem("s1", product("a", 100), 1)

	// Distinct lines never exceed distinct product identities added.
	assert.Len(t, updated.Lines, 2)
	assert.Equal(t, 6, updated.TotalItems())
	assert.True(t, decimal.NewFromInt(450).Equal(updated.TotalPrice()))
}

func TestStore_UpdateQuantity_RemovesAtZeroOrBelow(t *testing.T) {
	s := NewStore()
	s.AddItem("s1", product("a", 100), 2)
	s.AddItem("s1", product("b", 50), 1)

	s.UpdateQuantity("s1", "a", 0)
	updated := s.UpdateQuantity("s1", "b", -3)

	assert.True(t, updated.IsEmpty())
	assert.Equal(t, 0, updated.TotalItems())
	assert.True(t, updated.TotalPrice().IsZero())
}

func TestStore_RemoveItem_MissingIDLeavesTotalsUnchanged(t *testing.T) {
	s := NewStore()
	s.AddItem("s1", product("a", 100), 2)

	before := s.Get("s1")
	after := s.RemoveItem("s1", "missing")

	assert.Equal(t, before.TotalItems(), after.TotalItems())
	assert.True(t, before.TotalPrice().Equal(after.TotalPrice()))
}

func TestStore_Clear_Idempotent(t *testing.T) {
	s := NewStore()
	s.AddItem("s1", product("a", 100), 2)

	first := s.Clear("s1")
	second := s.Clear("s1")

	assert.True(t, first.IsEmpty())
	assert.Equal(t, first, second)
}

func TestStore_Subscribe_NotifiedOnEveryMutation(t *testing.T) {
	s := NewStore()

	var sessions []string
	var lastTotal int
	s.Subscribe(func(sessionID string, c entity.Cart) {
		sessions = append(sessions, sessionID)
		lastTotal = c.TotalItems()
	})

	s.AddItem("s1", product("a", 100), 2)
	s.UpdateQuantity("s1", "a", 5)
	s.Clear("s1")

	assert.Equal(t, []string{"s1", "s1", "s1"}, sessions)
	assert.Equal(t, 0, lastTotal)
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.AddItem("s1", product("a", 100), 2)

	snap := s.Get("s1")
	snap.Lines[0].Quantity = 99

	after := s.Get("s1")
	assert.Equal(t, 2, after.TotalItems())
}
