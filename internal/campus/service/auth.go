package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/pkg/cryptox"
	"github.com/uniendoculturas/campus/pkg/idx"
	"github.com/uniendoculturas/campus/pkg/jwtx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidSignUp      = errors.New("invalid sign up request")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account email is not verified")
	ErrAccountInactive    = errors.New("account is inactive")
)

// AuthService handles registration and login. New accounts start unverified;
// a verification code is issued on sign up and the account cannot sign in
// until it is consumed.
type AuthService struct {
	Store        store.Store
	Verification *VerificationService
	Signer       *jwtx.Signer
}

// SignUpRequest is the caller-supplied shape for registration.
type SignUpRequest struct {
	Name       string
	Email      string
	IDNumber   string
	Password   string
	PhotoURL   string
	Newsletter bool
}

// TokenResult is returned on successful sign in.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// SignUp registers a new account and sends a verification code to its email.
// The account is created unverified and cannot sign in until the code is
// consumed.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the request shape.
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || !strings.Contains(email, "@") ||
		req.IDNumber == "" || len(req.Password) < 8 {
		return domain.User{}, ErrInvalidSignUp
	}

	// 2. Hash before touching the database so a taken email costs the same
	// wall time as a fresh one.
	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         req.Name,
		Email:        email,
		IDNumber:     req.IDNumber,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		PhotoURL:     req.PhotoURL,
		Newsletter:   req.Newsletter,
		IsVerified:   false,
		IsActive:     true,
	}

	// 3. The unique constraints on email and id number are the source of
	// truth for duplicates.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Issue the verification code. The account exists either way; a
	// delivery failure is retried via the resend endpoint.
	if _, err := s.Verification.IssueCode(ctx, email); err != nil {
		log.Warn("failed to issue verification code on sign up",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("email", email),
	)
	return user, nil
}

// SignIn checks credentials and returns a signed access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (TokenResult, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	// 1. Look up the account.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenResult{}, ErrInvalidCredentials
		}
		return TokenResult{}, err
	}

	// 2. Check the password before revealing account state.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return TokenResult{}, ErrInvalidCredentials
		}
		return TokenResult{}, err
	}

	// 3. Only verified, active accounts sign in.
	if !user.IsVerified {
		return TokenResult{}, ErrNotVerified
	}
	if !user.IsActive {
		return TokenResult{}, ErrAccountInactive
	}

	// 4. Mint the access token.
	token, err := s.Signer.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return TokenResult{}, err
	}

	log.Info("user signed in", slog.String("user_id", user.ID))
	return TokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.Signer.EffectiveTTL().Seconds()),
	}, nil
}

// ResendVerification issues a fresh verification code for an unverified
// account. Verified accounts are rejected so the endpoint cannot be used to
// probe verification state indefinitely.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	_, err = s.Verification.IssueCode(ctx, email)
	return err
}
