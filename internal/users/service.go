package users

import (
	"assetdesk/internal/entitystore"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"
	"assetdesk/pkg/roles"
	"assetdesk/pkg/security"

	"github.com/doug-martin/goqu/v9"
)

type UserService struct {
	repo  *UserRepository
	store *entitystore.Store
}

func NewService(repo *UserRepository, store *entitystore.Store) *UserService {
	return &UserService{repo: repo, store: store}
}

func (s *UserService) CreateUser(req models.CreateUserRequest, actor models.Actor) (*models.User, error) {
	role := roles.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.Validation("invalid role: %s", req.Role)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Storage("failed to hash password", err)
	}

	id, err := s.store.Create(goqu.Record{
		"username":      req.Username,
		"full_name":     req.FullName,
		"email":         req.Email,
		"password_hash": string(hash),
		"role":          string(role),
		"department":    req.Department,
		"active":        true,
	}, actor)
	if err != nil {
		return nil, err
	}

	return s.repo.GetUser(id, false)
}

func (s *UserService) UpdateUser(id int, req models.UpdateUserRequest, actor models.Actor) (*models.User, error) {
	changes := goqu.Record{}
	if req.FullName != nil {
		changes["full_name"] = *req.FullName
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Role != nil {
		if !roles.Role(*req.Role).IsValid() {
			return nil, apperrors.Validation("invalid role: %s", *req.Role)
		}
		changes["role"] = *req.Role
	}
	if req.Department != nil {
		changes["department"] = *req.Department
	}
	if req.Active != nil {
		changes["active"] = *req.Active
	}

	if len(changes) == 0 {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	if err := s.store.Update(id, changes, actor); err != nil {
		return nil, err
	}

	return s.repo.GetUser(id, false)
}

func (s *UserService) SoftDeleteUser(id int, actor models.Actor) error {
	if id == actor.ID {
		return apperrors.State("users cannot delete their own account")
	}
	return s.store.SoftDelete(id, actor)
}
