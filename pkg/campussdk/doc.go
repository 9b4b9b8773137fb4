/*
Package campussdk provides a typed client for the campus API.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: public endpoints and the sign-in flow
  - Session: endpoints that require a bearer token

Create an SDKClient for the public surface and to sign in:

	client := campussdk.NewSDKClient("https://campus.example.com")

	// Register and verify an account
	user, err := client.SignUp(ctx, campussdk.SignUpRequest{...})
	err = client.VerifyEmail(ctx, user.Email, code)

	// Sign in to create a session
	session, err := client.SignIn(ctx, email, password)

Use a Session for authenticated operations:

	// Redeem a referral code (once per user, once per code)
	redeemed, err := session.RedeemReferral(ctx, "AB12C")

	// Rate a course (once per user per course)
	course, err := session.RateCourse(ctx, courseID, 5)

	// Admin-only: mint a referral batch
	minted, err := session.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       50,
		Discount:       25,
		ExpirationDays: 30,
	})

Errors from the API are returned as *APIError with the HTTP status and the
machine-readable error code.
*/
package campussdk
