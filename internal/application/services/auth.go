package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"zentrix-api/config"
	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/resettoken"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/infrastructure/metrics"
	"zentrix-api/internal/infrastructure/mq"
)

const resetTokenBytes = 32

var (
	ErrUserNotFound          = errors.New("user not found or inactive")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
	ErrInvalidToken          = errors.New("invalid reset token")
	ErrExpiredToken          = errors.New("expired reset token")
)

type AuthService struct {
	userRepository user.Repository
	jwtService     *jwt.Service
	tokens         ports.ResetTokenStore
	publisher      ports.EventPublisher
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger

	cost     int
	jwtTTL   time.Duration
	resetTTL time.Duration
	now      func() time.Time
}

func NewAuthService(
	userRepository user.Repository,
	jwtService *jwt.Service,
	tokens ports.ResetTokenStore,
	publisher ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	cfg config.Auth,
	jwtTTL time.Duration,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		tokens:         tokens,
		publisher:      publisher,
		mCounter:       mCounter,
		logger:         logger,
		cost:           cfg.BcryptCost,
		jwtTTL:         jwtTTL,
		resetTTL:       cfg.ResetTokenTTL,
		now:            time.Now,
	}
}

func (as *AuthService) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), as.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (as *AuthService) Verify(plain, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

func (as *AuthService) Login(ctx context.Context, username, password string) (*user.User, string, error) {
	u, err := as.userRepository.FetchActiveByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("fetch user %q: %w", username, err)
	}
	if u == nil {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, "", ErrUserNotFound
	}
	if !as.Verify(password, u.PasswordHash) {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(strconv.FormatInt(int64(u.ID), 10), u.Role.String(), as.jwtTTL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFailedToGenerateToken, err)
	}

	as.mCounter.WithLabelValues(metrics.LoginSucceeded).Inc()

	return u, token, nil
}

func (as *AuthService) IssueResetToken(ctx context.Context, userID user.ID) (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(b)

	e := resettoken.Entry{
		UserID:    userID,
		ExpiresAt: as.now().Add(as.resetTTL),
	}
	if err := as.tokens.Save(ctx, token, e); err != nil {
		return "", err
	}

	as.mCounter.WithLabelValues(metrics.PasswordResetIssued).Inc()

	return token, nil
}

func (as *AuthService) RequestReset(ctx context.Context, username string) (string, error) {
	u, err := as.userRepository.FetchActiveByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("fetch user %q: %w", username, err)
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	token, err := as.IssueResetToken(ctx, u.ID)
	if err != nil {
		return "", err
	}

	// the mail consumer needs the token to build the reset link
	as.publisher.Publish(mq.NewEvent(
		mq.ActionPasswordResetRequested,
		strconv.FormatInt(int64(u.ID), 10),
		map[string]any{
			"username": u.Username,
			"email":    u.Email,
			"token":    token,
			"expires":  as.now().Add(as.resetTTL),
		},
	))

	return token, nil
}

// ConsumeResetToken sets a new password at most once per token.
func (as *AuthService) ConsumeResetToken(ctx context.Context, token, newPassword string) error {
	e, err := as.tokens.Lookup(ctx, token)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrInvalidToken
	}
	if e.Expired(as.now()) {
		if _, err = as.tokens.Delete(ctx, token); err != nil {
			as.logger.Warn("failed to drop expired reset token", zap.Error(err))
		}
		return ErrExpiredToken
	}

	hash, err := as.Hash(newPassword)
	if err != nil {
		return err
	}

	// whoever deletes the entry owns the reset
	deleted, err := as.tokens.Delete(ctx, token)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvalidToken
	}

	if err = as.userRepository.UpdatePassword(ctx, e.UserID, hash); err != nil {
		if serr := as.tokens.Save(ctx, token, *e); serr != nil {
			as.logger.Error("failed to restore reset token", zap.Int64("user_id", int64(e.UserID)), zap.Error(serr))
		}
		return fmt.Errorf("update password of user %d: %w", e.UserID, err)
	}

	as.mCounter.WithLabelValues(metrics.PasswordResetConsumed).Inc()

	return nil
}
