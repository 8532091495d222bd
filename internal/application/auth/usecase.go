// Package auth implements login, profile lookup and password changes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/pkg/jwt"
)

const minPasswordLen = 8

// JWTConfig carries the token-generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase handles authentication flows.
type UseCase struct {
	userRepo repository.UserRepository
	baseRepo repository.BaseRepository
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, baseRepo repository.BaseRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, baseRepo: baseRepo, jwtCfg: jwtCfg}
}

// Login verifies the credentials and issues a signed token. Unknown user and
// wrong password both map to ErrUnauthorized so the response does not reveal
// which one failed.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.BaseID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp, err := uc.toUserResponse(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, User: *resp}, nil
}

// Me returns the authenticated user's profile.
func (uc *UseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.toUserResponse(ctx, user)
}

// ChangePassword verifies the old password before storing a new bcrypt hash.
func (uc *UseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return fmt.Errorf("%w: new password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// ListUsers returns every user with their base name resolved (admin only,
// enforced at the route).
func (uc *UseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp, err := uc.toUserResponse(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *UseCase) toUserResponse(ctx context.Context, u *entity.User) (*dto.UserResponse, error) {
	resp := &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		BaseID:   u.BaseID,
	}
	if u.BaseID != nil {
		base, err := uc.baseRepo.GetByID(ctx, *u.BaseID)
		if err != nil {
			if !isNotFound(err) {
				return nil, err
			}
		} else {
			resp.BaseName = base.Name
		}
	}
	return resp, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
