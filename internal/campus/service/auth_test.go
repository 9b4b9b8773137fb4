package service

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/pkg/jwtx"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	st := newTestStore(t)
	return &AuthService{
		Store:        st,
		Verification: &VerificationService{Store: st},
		Signer: &jwtx.Signer{
			Secret: []byte("test-secret-test-secret-test-sec"),
			Issuer: "campus-test",
			TTL:    time.Hour,
		},
	}
}

func signUpRequest() SignUpRequest {
	return SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		IDNumber: "12345678",
		Password: "correct horse battery",
	}
}

func TestSignUpCreatesUnverifiedUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	user, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, user.Role)
	require.False(t, user.IsVerified)
	require.True(t, user.IsActive)
	require.NotEqual(t, "correct horse battery", user.PasswordHash)

	// Sign up issues a verification code for the new account.
	codes, err := svc.Store.VerificationCodes().DeleteExpiredVerificationCodes(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, codes)
}

func TestSignUpNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	req := signUpRequest()
	req.Email = "  Alice@Example.COM "
	user, err := svc.SignUp(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	_, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	dup := signUpRequest()
	dup.IDNumber = "87654321"
	_, err = svc.SignUp(ctx, dup)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUpValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	cases := []struct {
		name   string
		mutate func(*SignUpRequest)
	}{
		{"missing name", func(r *SignUpRequest) { r.Name = "" }},
		{"missing email", func(r *SignUpRequest) { r.Email = "" }},
		{"malformed email", func(r *SignUpRequest) { r.Email = "not-an-email" }},
		{"missing id number", func(r *SignUpRequest) { r.IDNumber = "" }},
		{"short password", func(r *SignUpRequest) { r.Password = "short" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := signUpRequest()
			tc.mutate(&req)
			_, err := svc.SignUp(ctx, req)
			require.ErrorIs(t, err, ErrInvalidSignUp)
		})
	}
}

func TestSignInFlow(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	user, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	t.Run("unverified account cannot sign in", func(t *testing.T) {
		_, err := svc.SignIn(ctx, user.Email, "correct horse battery")
		require.ErrorIs(t, err, ErrNotVerified)
	})

	flipped, err := svc.Store.Users().MarkUserVerified(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, flipped)

	t.Run("verified account gets a token", func(t *testing.T) {
		tok, err := svc.SignIn(ctx, user.Email, "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, "Bearer", tok.TokenType)
		require.EqualValues(t, 3600, tok.ExpiresIn)

		claims, err := svc.Signer.Verify(tok.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, user.Email, claims.Email)
		require.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrong := svc.SignIn(ctx, user.Email, "wrong password")
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)

		_, errUnknown := svc.SignIn(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		require.NoError(t, svc.Store.Users().DeactivateUser(ctx, user.ID))
		_, err := svc.SignIn(ctx, user.Email, "correct horse battery")
		require.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestSignInReportsDefaultTTLWhenUnconfigured(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)
	svc.Signer.TTL = 0

	user, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)
	flipped, err := svc.Store.Users().MarkUserVerified(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, flipped)

	// expires_in matches the lifetime the signer actually stamps in, not
	// the raw zero config value.
	tok, err := svc.SignIn(ctx, user.Email, "correct horse battery")
	require.NoError(t, err)
	require.EqualValues(t, jwtx.DefaultAccessTokenTTL.Seconds(), tok.ExpiresIn)

	claims, err := svc.Signer.Verify(tok.AccessToken)
	require.NoError(t, err)
	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, lifetime)
}

func TestSignUpThenVerifyThenSignIn(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	var issued Notification
	svc.Verification.Notifier = notifierFunc(func(_ context.Context, n Notification) error {
		issued = n
		return nil
	})

	user, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)
	require.Len(t, issued.To, 1)

	code, err := svc.Store.VerificationCodes().GetVerificationCode(ctx, user.Email, verificationCodeFromBody(t, issued.Body))
	require.NoError(t, err)

	require.NoError(t, svc.Verification.Consume(ctx, user.Email, code.Code))

	_, err = svc.SignIn(ctx, user.Email, "correct horse battery")
	require.NoError(t, err)
}

func TestResendVerification(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	user, err := svc.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ResendVerification(ctx, user.Email))
	require.ErrorIs(t, svc.ResendVerification(ctx, "nobody@example.com"), ErrUserNotFound)

	flipped, err := svc.Store.Users().MarkUserVerified(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, flipped)

	require.ErrorIs(t, svc.ResendVerification(ctx, user.Email), ErrAlreadyVerified)
}

// verificationCodeFromBody pulls the 8-char hex code out of the notification
// text, mirroring what a user reading the email would do.
func verificationCodeFromBody(t *testing.T, body string) string {
	t.Helper()

	for _, word := range strings.Fields(body) {
		word = strings.TrimSuffix(word, ".")
		if len(word) == 8 {
			if _, err := hex.DecodeString(word); err == nil {
				return word
			}
		}
	}
	t.Fatalf("no verification code found in body %q", body)
	return ""
}
