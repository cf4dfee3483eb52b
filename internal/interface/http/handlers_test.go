package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/food-cooking-server/internal/application"
	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/testutil"
	"github.com/oksasatya/food-cooking-server/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// as injects fixed claims in place of the verifier.
func as(email string, h func(*gin.Context, *helpers.Claims)) gin.HandlerFunc {
	return func(c *gin.Context) { h(c, &helpers.Claims{Email: email}) }
}

func newRouter(store *testutil.Store, caller string) *gin.Engine {
	users := NewUserHandler(application.NewUserService(store.Users(), nil), nil)
	carts := NewCartHandler(application.NewCartService(store.Carts()), nil)
	catalog := NewCatalogHandler(application.NewCatalogService(store.Catalog()), nil)
	auth := NewAuthHandler(helpers.NewJWTManager("secret", time.Hour), nil)

	r := gin.New()
	r.POST("/jwt", auth.Issue)
	r.GET("/users", as(caller, users.List))
	r.POST("/users", users.Create)
	r.GET("/users/admin/:email", as(caller, users.AdminStatus))
	r.PATCH("/users/admin/:id", as(caller, users.Promote))
	r.DELETE("/users/:id", as(caller, users.Delete))
	r.GET("/menu", catalog.Menu)
	r.GET("/reviews", catalog.Reviews)
	r.GET("/carts", as(caller, carts.List))
	r.POST("/carts", carts.Add)
	r.DELETE("/carts/:id", carts.Remove)
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestAuthHandler_Issue(t *testing.T) {
	r := newRouter(testutil.NewStore(), "")

	w := perform(r, http.MethodPost, "/jwt", `{"email":"a@x.com","name":"Ada"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decodeInto(t, w, &body)
	claims, err := helpers.NewJWTManager("secret", time.Hour).Parse(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	for name, payload := range map[string]string{
		"no email":  `{"name":"Ada"}`,
		"not json":  `{`,
		"array":     `[1,2]`,
		"null":      `null`,
		"no body":   "",
		"bad email": `{"email":42}`,
		"bad sub":   `{"email":"a@x.com","sub":42}`,
		"bad aud":   `{"email":"a@x.com","aud":7}`,
		"bad iss":   `{"email":"a@x.com","iss":true}`,
		"bad jti":   `{"email":"a@x.com","jti":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := perform(r, http.MethodPost, "/jwt", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			var e map[string]any
			decodeInto(t, w, &e)
			assert.Equal(t, true, e["error"])
		})
	}
}

func TestUserHandler_CreateIsIdempotent(t *testing.T) {
	store := testutil.NewStore()
	r := newRouter(store, "")

	w := perform(r, http.MethodPost, "/users", `{"email":"a@x.com","name":"Ada","role":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var ack entity.InsertResult
	decodeInto(t, w, &ack)
	assert.True(t, ack.Acknowledged)
	assert.NotEmpty(t, ack.InsertedID)

	w = perform(r, http.MethodPost, "/users", `{"email":"a@x.com","name":"Other"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"user already exists"}`, w.Body.String())

	docs := store.UsersColl.Docs()
	require.Len(t, docs, 1)
	assert.Equal(t, "normal", docs[0]["role"])
	assert.Equal(t, "Ada", docs[0]["name"])
}

func TestUserHandler_CreateRequiresEmail(t *testing.T) {
	r := newRouter(testutil.NewStore(), "")
	w := perform(r, http.MethodPost, "/users", `{"name":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_List(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser("admin@x.com", entity.RoleAdmin)
	store.AddUser("b@x.com", entity.RoleNormal)
	r := newRouter(store, "admin@x.com")

	w := perform(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	decodeInto(t, w, &users)
	assert.Len(t, users, 2)
}

func TestUserHandler_AdminStatus(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser("admin@x.com", entity.RoleAdmin)
	store.AddUser("b@x.com", entity.RoleNormal)

	cases := []struct {
		caller, path, want string
	}{
		{"admin@x.com", "/users/admin/admin@x.com", `{"admin":true}`},
		{"b@x.com", "/users/admin/b@x.com", `{"admin":false}`},
		{"b@x.com", "/users/admin/admin@x.com", `{"admin":false}`},
		{"ghost@x.com", "/users/admin/ghost@x.com", `{"admin":false}`},
	}
	for _, tc := range cases {
		w := perform(newRouter(store, tc.caller), http.MethodGet, tc.path, "")
		require.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.JSONEq(t, tc.want, w.Body.String(), tc.caller)
	}
}

func TestUserHandler_PromoteAndDelete(t *testing.T) {
	store := testutil.NewStore()
	id := store.AddUser("b@x.com", entity.RoleNormal)
	r := newRouter(store, "admin@x.com")

	w := perform(r, http.MethodPatch, "/users/admin/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var upd entity.UpdateResult
	decodeInto(t, w, &upd)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, "admin", store.UsersColl.Docs()[0]["role"])

	w = perform(r, http.MethodDelete, "/users/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())

	w = perform(r, http.MethodDelete, "/users/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())
}

func TestInvalidIDNeverReachesStore(t *testing.T) {
	store := testutil.NewStore()
	r := newRouter(store, "admin@x.com")

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/users/admin/not-an-id"},
		{http.MethodDelete, "/users/123"},
		{http.MethodDelete, "/carts/zzzzzzzzzzzzzzzzzzzzzzzz"},
	} {
		w := perform(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.path)
		var e map[string]any
		decodeInto(t, w, &e)
		assert.Equal(t, "invalid id", e["message"])
	}
	assert.Zero(t, store.UsersColl.Calls())
	assert.Zero(t, store.CartsColl.Calls())
}

func TestCartHandler(t *testing.T) {
	store := testutil.NewStore()
	store.CartsColl.Seed(
		entity.Document{"email": "u1@x.com", "name": "Pizza"},
		entity.Document{"email": "u2@x.com", "name": "Salad"},
	)
	r := newRouter(store, "u1@x.com")

	t.Run("own items", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/carts?email=u1@x.com", "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []map[string]any
		decodeInto(t, w, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "Pizza", items[0]["name"])
	})

	t.Run("someone else's items", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/carts?email=u2@x.com", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		var e map[string]any
		decodeInto(t, w, &e)
		assert.Equal(t, "forbidden access", e["message"])
	})

	t.Run("no email", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/carts", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("add and remove", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/carts", `{"email":"u1@x.com","menuItemId":"m1","price":12.5}`)
		require.Equal(t, http.StatusOK, w.Code)
		var ack struct {
			Acknowledged bool   `json:"acknowledged"`
			InsertedID   string `json:"insertedId"`
		}
		decodeInto(t, w, &ack)
		require.True(t, primitive.IsValidObjectID(ack.InsertedID))

		w = perform(r, http.MethodDelete, "/carts/"+ack.InsertedID, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())

		w = perform(r, http.MethodDelete, "/carts/"+primitive.NewObjectID().Hex(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())
	})

	t.Run("non-object body", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/carts", `"pizza"`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler(t *testing.T) {
	store := testutil.NewStore()
	r := newRouter(store, "")

	w := perform(r, http.MethodGet, "/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	store.ReviewsColl.Seed(entity.Document{"name": "Ada", "rating": 5})
	w = perform(r, http.MethodGet, "/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []map[string]any
	decodeInto(t, w, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ada", reviews[0]["name"])
}

func TestPersistenceFailureIsOpaque(t *testing.T) {
	store := testutil.NewStore()
	store.MenuColl.Fail(errors.New("server selection timeout: 10.0.0.5:27017"))
	store.CartsColl.Fail(errors.New("server selection timeout: 10.0.0.5:27017"))
	r := newRouter(store, "u1@x.com")

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/menu", ""},
		{http.MethodGet, "/carts?email=u1@x.com", ""},
		{http.MethodPost, "/carts", `{"email":"u1@x.com"}`},
	} {
		w := perform(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.path)
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
		var e map[string]any
		decodeInto(t, w, &e)
		assert.Equal(t, "internal server error", e["message"])
	}
}

func TestHealthHandler(t *testing.T) {
	var pingErr error
	h := NewHealthHandler(func(_ context.Context) error { return pingErr }, nil)
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)

	w := perform(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "food is cooking", w.Body.String())

	w = perform(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	pingErr = errors.New("down")
	w = perform(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCartHandler_DuplicateID(t *testing.T) {
	store := testutil.NewStore()
	r := newRouter(store, "")
	id := primitive.NewObjectID().Hex()
	body := `{"_id":"` + id + `","email":"u1@x.com"}`

	w := perform(r, http.MethodPost, "/carts", body)
	require.Equal(t, http.StatusOK, w.Code)
	w = perform(r, http.MethodPost, "/carts", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}
