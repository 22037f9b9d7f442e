package auth

import (
	"context"

	"github.com/Abraxas-365/campus/pkg/errx"
)

// IdentityProvider turns a bearer credential into an Identity
type IdentityProvider struct {
	tokens TokenService
	users  UserRepository
}

func NewIdentityProvider(tokens TokenService, users UserRepository) *IdentityProvider {
	return &IdentityProvider{
		tokens: tokens,
		users:  users,
	}
}

// Resolve validates the credential and loads the account behind it.
// Only approved accounts yield an identity.
func (p *IdentityProvider) Resolve(ctx context.Context, credential string) (*Identity, error) {
	if credential == "" {
		return nil, ErrInvalidToken().WithDetail("reason", "empty credential")
	}

	claims, err := p.tokens.ValidateAccessToken(credential)
	if err != nil {
		return nil, err
	}

	user, err := p.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errx.IsCode(err, CodeUserNotFound) {
			return nil, ErrInvalidToken().WithCause(err).WithDetail("reason", "unknown user")
		}
		return nil, errx.Wrap(err, "failed to load user", errx.TypeInternal)
	}

	if user.Status != UserStatusApproved {
		return nil, ErrUserNotApproved().WithDetail("status", string(user.Status))
	}

	return &Identity{
		UserID: user.ID,
		Role:   user.Role,
		Status: user.Status,
	}, nil
}
