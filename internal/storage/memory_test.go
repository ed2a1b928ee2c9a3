package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"contractbot/internal/domain"
)

func TestMemoryStore_GetAbsent(t *testing.T) {
	store := NewMemoryStore()

	session, err := store.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemoryStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	in := Session{
		State:  domain.StateQuantity,
		Record: domain.OrderRecord{CompanyKey: domain.CompanyProstor, Date: "07.07.2024"},
	}
	assert.NoError(t, store.Set(ctx, 1, in))

	session, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, in, *session)

	assert.NoError(t, store.Clear(ctx, 1))
	session, err = store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemoryStore_ConversationsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.Set(ctx, 1, Session{State: domain.StateDate}))
	assert.NoError(t, store.Set(ctx, 2, Session{State: domain.StateCost}))

	first, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.StateDate, first.State)

	assert.NoError(t, store.Clear(ctx, 1))

	second, err := store.Get(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.StateCost, second.State)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.Set(ctx, 1, Session{State: domain.StateDate}))

	session, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	session.Record.Date = "mutated"

	again, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, again.Record.Date)
}
