// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"enplan/internal/domain/entity"
	"enplan/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Mail     string `json:"mail" form:"mail" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UpdateInput is the enumerated set of updatable account fields. Only fields
// present in the request are touched; each one is transformed individually
// (username lowercased, password re-hashed). Identity-sensitive fields (id,
// date_joined, the stored hash) are deliberately not reachable here.
type UpdateInput struct {
	Username *string `json:"username,omitempty"`
	Mail     *string `json:"mail,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (in *UpdateInput) Empty() bool {
	return in == nil || (in.Username == nil && in.Mail == nil && in.Password == nil)
}

// --- Output DTOs ---

// AuthOutput returns the account projection plus a freshly issued token.
type AuthOutput struct {
	Account     *entity.Projection `json:"user_data"`
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
}

// DeleteOutput echoes the deleted account together with the token that
// authorized the deletion. The echo is for auditing only; the token is spent
// in the sense that its subject no longer exists.
type DeleteOutput struct {
	Account   *entity.Projection `json:"user_data"`
	Token     string             `json:"token"`
	TokenType string             `json:"token_type"`
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Token decode happens in the transport's auth middleware; operations that
// require authentication receive the already-verified claims.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Read(ctx context.Context, claims *service.Claims) (*entity.Projection, error)
	Update(ctx context.Context, claims *service.Claims, input *UpdateInput) (*entity.Projection, error)
	Delete(ctx context.Context, claims *service.Claims, token string) (*DeleteOutput, error)
}
