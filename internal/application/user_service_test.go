package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
	"github.com/oksasatya/food-cooking-server/internal/testutil"
)

func TestUserService_CreateIsIdempotentByEmail(t *testing.T) {
	store := testutil.NewStore()
	svc := NewUserService(store.Users(), nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, entity.Document{"email": "a@x.com", "name": "Ada"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.True(t, first.Insert.Acknowledged)

	second, err := svc.Create(ctx, entity.Document{"email": "a@x.com", "name": "Someone Else"})
	require.NoError(t, err)
	assert.False(t, second.Created)

	docs := store.UsersColl.Docs()
	require.Len(t, docs, 1)
	assert.Equal(t, "Ada", docs[0]["name"], "first write wins")
}

func TestUserService_CreateForcesNormalRole(t *testing.T) {
	store := testutil.NewStore()
	svc := NewUserService(store.Users(), nil)

	body := entity.Document{"email": "sneaky@x.com", "role": "admin", "_id": "chosen"}
	res, err := svc.Create(context.Background(), body)
	require.NoError(t, err)
	require.True(t, res.Created)

	docs := store.UsersColl.Docs()
	require.Len(t, docs, 1)
	assert.Equal(t, "normal", docs[0]["role"])
	assert.IsType(t, primitive.ObjectID{}, docs[0]["_id"])
	assert.Equal(t, "admin", body["role"], "request body must not be mutated")
}

func TestUserService_CreateRequiresEmail(t *testing.T) {
	store := testutil.NewStore()
	svc := NewUserService(store.Users(), nil)

	_, err := svc.Create(context.Background(), entity.Document{"name": "nobody"})
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Zero(t, store.UsersColl.Calls())
}

func TestUserService_CreateConcurrentSameEmail(t *testing.T) {
	store := testutil.NewStore()
	svc := NewUserService(store.Users(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), entity.Document{"email": "race@x.com"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.UsersColl.Docs(), 1)
}

func TestUserService_CreatePropagatesStoreFailure(t *testing.T) {
	store := testutil.NewStore()
	boom := errors.New("boom")
	store.UsersColl.Fail(boom)

	_, err := NewUserService(store.Users(), nil).Create(context.Background(), entity.Document{"email": "a@x.com"})
	assert.ErrorIs(t, err, boom)
}

func TestUserService_IsAdmin(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser("admin@x.com", entity.RoleAdmin)
	store.AddUser("user@x.com", entity.RoleNormal)
	svc := NewUserService(store.Users(), nil)
	ctx := context.Background()

	ok, err := svc.IsAdmin(ctx, "admin@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(ctx, "user@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAdmin(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_AdminStatusOnlyForSelf(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser("admin@x.com", entity.RoleAdmin)
	svc := NewUserService(store.Users(), nil)
	ctx := context.Background()

	ok, err := svc.AdminStatus(ctx, "admin@x.com", "admin@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	calls := store.UsersColl.Calls()
	ok, err = svc.AdminStatus(ctx, "someone@x.com", "admin@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, calls, store.UsersColl.Calls(), "mismatch must not query the store")
}

func TestUserService_PromoteAndDelete(t *testing.T) {
	store := testutil.NewStore()
	id := store.AddUser("a@x.com", entity.RoleNormal)
	svc := NewUserService(store.Users(), nil)
	ctx := context.Background()

	res, err := svc.Promote(ctx, id, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)

	ok, err := svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	del, err := svc.Delete(ctx, id, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = svc.Delete(ctx, id, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.DeleteResult{Acknowledged: true}, del)

	_, err = svc.Promote(ctx, "bad-id", "admin@x.com")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}
