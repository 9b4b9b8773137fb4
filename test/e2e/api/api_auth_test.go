package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uniendoculturas/campus/pkg/campussdk"
)

// TestSignUpVerifySignInFlow walks the full onboarding flow: registration,
// email verification via the logged code, then sign in.
func TestSignUpVerifySignInFlow(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	user, err := client.SignUp(ctx, signUpRequest("alice@example.com", "11111111A"))
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.False(t, user.IsVerified)

	// Signing in before verification is rejected.
	_, err = client.SignIn(ctx, "alice@example.com", "Password123!")
	assertAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeNotVerified,
		"Sign in before verification")

	code := cc.verificationCodeFor(t, "alice@example.com")
	require.NoError(t, client.VerifyEmail(ctx, "alice@example.com", code))

	session, err := client.SignIn(ctx, "alice@example.com", "Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.True(t, me.IsVerified)
}

// TestSignUpDuplicateEmail verifies registering the same email twice is a
// conflict.
func TestSignUpDuplicateEmail(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	_, err := client.SignUp(ctx, signUpRequest("bob@example.com", "22222222B"))
	require.NoError(t, err)

	_, err = client.SignUp(ctx, signUpRequest("bob@example.com", "33333333C"))
	assertAPIError(t, err, http.StatusConflict, campussdk.ErrorCodeConflict,
		"Duplicate email sign up")
}

// TestVerifyEmailRejectsWrongCode verifies a bad code is rejected and does
// not flip the account to verified.
func TestVerifyEmailRejectsWrongCode(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	_, err := client.SignUp(ctx, signUpRequest("carol@example.com", "44444444D"))
	require.NoError(t, err)

	err = client.VerifyEmail(ctx, "carol@example.com", "deadbeef")
	assertAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
		"Wrong verification code")

	// Still unverified, the real code still works.
	code := cc.verificationCodeFor(t, "carol@example.com")
	require.NoError(t, client.VerifyEmail(ctx, "carol@example.com", code))
}

// TestVerificationCodeIsSingleUse verifies a consumed code cannot be
// replayed.
func TestVerificationCodeIsSingleUse(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	_, err := client.SignUp(ctx, signUpRequest("dave@example.com", "55555555E"))
	require.NoError(t, err)

	code := cc.verificationCodeFor(t, "dave@example.com")
	require.NoError(t, client.VerifyEmail(ctx, "dave@example.com", code))

	err = client.VerifyEmail(ctx, "dave@example.com", code)
	require.Error(t, err, "Replaying a consumed code should fail")
}

// TestResendVerification verifies a fresh code can be requested and that the
// new code completes verification.
func TestResendVerification(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	_, err := client.SignUp(ctx, signUpRequest("erin@example.com", "66666666F"))
	require.NoError(t, err)

	require.NoError(t, client.ResendVerification(ctx, "erin@example.com"))

	// verificationCodeFor returns the most recent code for the address.
	code := cc.verificationCodeFor(t, "erin@example.com")
	require.NoError(t, client.VerifyEmail(ctx, "erin@example.com", code))

	// A verified account can't request another code.
	err = client.ResendVerification(ctx, "erin@example.com")
	assertAPIError(t, err, http.StatusConflict, campussdk.ErrorCodeConflict,
		"Resend for a verified account")
}

// TestSignInRejectsWrongPassword verifies bad credentials and unknown
// accounts both come back as invalid_credentials.
func TestSignInRejectsWrongPassword(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	registerVerifiedUser(t, cc, client, "frank@example.com", "77777777G")

	_, err := client.SignIn(ctx, "frank@example.com", "WrongPassword!")
	assertAPIError(t, err, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredentials,
		"Wrong password")

	_, err = client.SignIn(ctx, "nobody@example.com", "Password123!")
	assertAPIError(t, err, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredentials,
		"Unknown account")
}

// TestAdminAccountProvisionedOnBoot verifies the configured admin can sign
// in without going through verification.
func TestAdminAccountProvisionedOnBoot(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	client := campussdk.NewSDKClient(cc.BaseURL)
	session := signInAdmin(t, client)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, adminEmail, me.Email)
	require.Equal(t, "admin", me.Role)
	require.True(t, me.IsVerified)
}
