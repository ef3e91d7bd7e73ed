package ports

import (
	"context"

	"zentrix-api/internal/domain/resettoken"
	"zentrix-api/internal/domain/user"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type Auth interface {
	PasswordHasher
	Login(ctx context.Context, username, password string) (*user.User, string, error)
	IssueResetToken(ctx context.Context, userID user.ID) (string, error)
	RequestReset(ctx context.Context, username string) (string, error)
	ConsumeResetToken(ctx context.Context, token, newPassword string) error
}

// ResetTokenStore returns (nil, nil) from Lookup for unknown tokens and
// reports from Delete whether the token was still present.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, e resettoken.Entry) error
	Lookup(ctx context.Context, token string) (*resettoken.Entry, error)
	Delete(ctx context.Context, token string) (bool, error)
}
