// Package testutil holds in-memory repository implementations used by the
// service, handler and router tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

// Collection is a concurrency-safe slice of documents with ObjectID keys.
type Collection struct {
	mu    sync.Mutex
	docs  []entity.Document
	err   error
	calls int
}

// Seed inserts docs, assigning an _id to those without one, and returns the
// assigned ids in hex form.
func (c *Collection) Seed(docs ...entity.Document) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		d = d.Clone()
		if _, ok := d["_id"]; !ok {
			d["_id"] = primitive.NewObjectID()
		}
		c.docs = append(c.docs, d)
		ids = append(ids, hexID(d["_id"]))
	}
	return ids
}

// Fail makes every following operation return err; nil restores normal behaviour.
func (c *Collection) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Calls returns how many operations reached the collection.
func (c *Collection) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *Collection) Docs() []entity.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Document, 0, len(c.docs))
	for _, d := range c.docs {
		out = append(out, d.Clone())
	}
	return out
}

// begin locks the collection and counts the call; callers must unlock.
func (c *Collection) begin() error {
	c.mu.Lock()
	c.calls++
	return c.err
}

func (c *Collection) filter(match func(entity.Document) bool) []entity.Document {
	out := make([]entity.Document, 0)
	for _, d := range c.docs {
		if match == nil || match(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}

// insert rejects a caller-chosen _id that is already taken, like the
// primary key index does.
func (c *Collection) insert(doc entity.Document) (entity.InsertResult, error) {
	d := doc.Clone()
	if id, ok := d["_id"]; ok {
		for _, existing := range c.docs {
			if existing["_id"] == id {
				return entity.InsertResult{}, repository.ErrDuplicate
			}
		}
	} else {
		d["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, d)
	return entity.InsertResult{Acknowledged: true, InsertedID: d["_id"]}, nil
}

func (c *Collection) indexOf(id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, repository.ErrInvalidID
	}
	for i, d := range c.docs {
		if d["_id"] == oid {
			return i, nil
		}
	}
	return -1, nil
}

func (c *Collection) deleteByID(id string) (entity.DeleteResult, error) {
	i, err := c.indexOf(id)
	if err != nil {
		return entity.DeleteResult{}, err
	}
	if i < 0 {
		return entity.DeleteResult{Acknowledged: true}, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func hexID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

// Store bundles the four collections behind the repository interfaces.
type Store struct {
	UsersColl   *Collection
	MenuColl    *Collection
	ReviewsColl *Collection
	CartsColl   *Collection
}

func NewStore() *Store {
	return &Store{
		UsersColl:   &Collection{},
		MenuColl:    &Collection{},
		ReviewsColl: &Collection{},
		CartsColl:   &Collection{},
	}
}

func (s *Store) Users() *UserStore      { return &UserStore{c: s.UsersColl} }
func (s *Store) Carts() *CartStore      { return &CartStore{c: s.CartsColl} }
func (s *Store) Catalog() *CatalogStore { return &CatalogStore{menu: s.MenuColl, reviews: s.ReviewsColl} }

// AddUser seeds a user record and returns its id.
func (s *Store) AddUser(email string, role entity.Role) string {
	return s.UsersColl.Seed(entity.Document{
		entity.UserEmailField: email,
		entity.UserRoleField:  string(role),
	})[0]
}

var (
	_ repository.UserRepository    = (*UserStore)(nil)
	_ repository.CartRepository    = (*CartStore)(nil)
	_ repository.CatalogRepository = (*CatalogStore)(nil)
)

type UserStore struct{ c *Collection }

func (u *UserStore) List(_ context.Context) ([]entity.Document, error) {
	err := u.c.begin()
	defer u.c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return u.c.filter(nil), nil
}

func (u *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	err := u.c.begin()
	defer u.c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for _, d := range u.c.docs {
		if d.String(entity.UserEmailField) == email {
			return &entity.User{
				ID:    hexID(d["_id"]),
				Email: email,
				Role:  entity.Role(d.String(entity.UserRoleField)),
			}, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Insert enforces email uniqueness like the unique index does.
func (u *UserStore) Insert(_ context.Context, doc entity.Document) (entity.InsertResult, error) {
	err := u.c.begin()
	defer u.c.mu.Unlock()
	if err != nil {
		return entity.InsertResult{}, err
	}
	email := doc.String(entity.UserEmailField)
	for _, d := range u.c.docs {
		if email != "" && d.String(entity.UserEmailField) == email {
			return entity.InsertResult{}, repository.ErrDuplicate
		}
	}
	return u.c.insert(doc)
}

func (u *UserStore) SetRole(_ context.Context, id string, role entity.Role) (entity.UpdateResult, error) {
	err := u.c.begin()
	defer u.c.mu.Unlock()
	if err != nil {
		return entity.UpdateResult{}, err
	}
	i, err := u.c.indexOf(id)
	if err != nil {
		return entity.UpdateResult{}, err
	}
	if i < 0 {
		return entity.UpdateResult{Acknowledged: true}, nil
	}
	res := entity.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if u.c.docs[i].String(entity.UserRoleField) != string(role) {
		u.c.docs[i][entity.UserRoleField] = string(role)
		res.ModifiedCount = 1
	}
	return res, nil
}

func (u *UserStore) Delete(_ context.Context, id string) (entity.DeleteResult, error) {
	err := u.c.begin()
	defer u.c.mu.Unlock()
	if err != nil {
		return entity.DeleteResult{}, err
	}
	return u.c.deleteByID(id)
}

type CartStore struct{ c *Collection }

func (s *CartStore) ListByEmail(_ context.Context, email string) ([]entity.Document, error) {
	err := s.c.begin()
	defer s.c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.c.filter(func(d entity.Document) bool {
		return d.String(entity.CartEmailField) == email
	}), nil
}

func (s *CartStore) Insert(_ context.Context, doc entity.Document) (entity.InsertResult, error) {
	err := s.c.begin()
	defer s.c.mu.Unlock()
	if err != nil {
		return entity.InsertResult{}, err
	}
	return s.c.insert(doc)
}

func (s *CartStore) Delete(_ context.Context, id string) (entity.DeleteResult, error) {
	err := s.c.begin()
	defer s.c.mu.Unlock()
	if err != nil {
		return entity.DeleteResult{}, err
	}
	return s.c.deleteByID(id)
}

type CatalogStore struct{ menu, reviews *Collection }

func (s *CatalogStore) ListMenu(_ context.Context) ([]entity.Document, error) {
	err := s.menu.begin()
	defer s.menu.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.menu.filter(nil), nil
}

func (s *CatalogStore) ListReviews(_ context.Context) ([]entity.Document, error) {
	err := s.reviews.begin()
	defer s.reviews.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.reviews.filter(nil), nil
}
