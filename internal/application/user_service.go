package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	repo "github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

// CreateUserResult tells a fresh insert apart from an existing record.
// Insert is only meaningful when Created is true.
type CreateUserResult struct {
	Created bool
	Insert  entity.InsertResult
}

func (s *UserService) List(ctx context.Context) ([]entity.Document, error) {
	return s.Repo.List(ctx)
}

// Create inserts the user unless a record with the same email exists; the
// first write wins and existing fields are never merged. New records always
// start as RoleNormal and get a store-assigned id.
func (s *UserService) Create(ctx context.Context, doc entity.Document) (CreateUserResult, error) {
	email := doc.String(entity.UserEmailField)
	if email == "" {
		return CreateUserResult{}, ErrEmailRequired
	}

	_, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return CreateUserResult{Created: false}, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return CreateUserResult{}, err
	}

	rec := doc.Clone()
	delete(rec, "_id")
	rec[entity.UserRoleField] = string(entity.RoleNormal)

	res, err := s.Repo.Insert(ctx, rec)
	if errors.Is(err, repo.ErrDuplicate) {
		// lost a race with a concurrent sign-up for the same email
		return CreateUserResult{Created: false}, nil
	}
	if err != nil {
		return CreateUserResult{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", email).Info("user created")
	}
	return CreateUserResult{Created: true, Insert: res}, nil
}

// IsAdmin reports whether the record keyed by email holds the admin role.
// An unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role.IsAdmin(), nil
}

// AdminStatus answers "is email an admin" for the caller identified by
// callerEmail. Callers may only ask about themselves; asking about anyone
// else answers false without touching the store.
func (s *UserService) AdminStatus(ctx context.Context, callerEmail, email string) (bool, error) {
	if email == "" || email != callerEmail {
		return false, nil
	}
	return s.IsAdmin(ctx, email)
}

func (s *UserService) Promote(ctx context.Context, id, by string) (entity.UpdateResult, error) {
	res, err := s.Repo.SetRole(ctx, id, entity.RoleAdmin)
	if err != nil {
		return res, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": id, "by": by, "matched": res.MatchedCount}).Info("user promoted to admin")
	}
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id, by string) (entity.DeleteResult, error) {
	res, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return res, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": id, "by": by, "deleted": res.DeletedCount}).Info("user deleted")
	}
	return res, nil
}
