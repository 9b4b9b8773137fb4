package campussdk

import (
	"context"
	"net/http"
)

// SignUp registers a new account. The account starts unverified; a
// verification code is emailed out and must be consumed via VerifyEmail
// before the account can sign in.
func (c *SDKClient) SignUp(ctx context.Context, req SignUpRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signup", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyEmail consumes a verification code, marking the account verified.
func (c *SDKClient) VerifyEmail(ctx context.Context, email, code string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/verify", VerifyEmailRequest{
		Email: email,
		Code:  code,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ResendVerification asks for a fresh verification code for an unverified
// account.
func (c *SDKClient) ResendVerification(ctx context.Context, email string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/resend-verification", ResendVerificationRequest{
		Email: email,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me returns the account behind the session's token.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}
