package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uniendoculturas/campus/pkg/campussdk"
)

// newCourseRequest returns a valid course creation payload using the seeded
// catalog entries.
func newCourseRequest(title string) campussdk.CreateCourseRequest {
	return campussdk.CreateCourseRequest{
		Title:       title,
		Description: "An introductory course.",
		Language:    "English",
		Category:    "Grammar",
	}
}

// TestCatalogSeededOnBoot verifies the default languages and categories are
// present on a fresh deployment.
func TestCatalogSeededOnBoot(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)

	languages, err := client.ListLanguages(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, languages)

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	names := make(map[string]bool)
	for _, l := range languages {
		names[l.Name] = true
	}
	require.True(t, names["English"], "English should be seeded")
}

// TestCourseCreateAndGet verifies an admin can create a course and anyone
// can read it back.
func TestCourseCreateAndGet(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	created, err := admin.CreateCourse(ctx, newCourseRequest("English for Beginners"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "English for Beginners", created.Title)
	require.Zero(t, created.RatingCount)

	// Reads are public, no session needed.
	fetched, err := client.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	listed, err := client.ListCourses(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// Duplicate titles are rejected.
	_, err = admin.CreateCourse(ctx, newCourseRequest("English for Beginners"))
	assertAPIError(t, err, http.StatusConflict, campussdk.ErrorCodeConflict,
		"Duplicate course title")
}

// TestCourseCreateRequiresAdmin verifies regular accounts cannot create
// courses.
func TestCourseCreateRequiresAdmin(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	user := registerVerifiedUser(t, cc, client, "student@example.com", "50000001A")

	_, err := user.CreateCourse(ctx, newCourseRequest("Unauthorized Course"))
	assertAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeForbidden,
		"Create course as a regular user")
}

// TestCourseRating verifies the rating flow: one rating per account, the
// aggregate average, and the stars range check.
func TestCourseRating(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	course, err := admin.CreateCourse(ctx, newCourseRequest("English Conversation"))
	require.NoError(t, err)

	alice := registerVerifiedUser(t, cc, client, "alice@example.com", "60000001A")
	bob := registerVerifiedUser(t, cc, client, "bob@example.com", "60000002B")

	rated, err := alice.RateCourse(ctx, course.ID, 4)
	require.NoError(t, err)
	require.Equal(t, 1, rated.RatingCount)
	require.InDelta(t, 4.0, rated.AverageRating, 0.001)

	// A second rating from the same account is rejected.
	_, err = alice.RateCourse(ctx, course.ID, 5)
	assertAPIError(t, err, http.StatusConflict, campussdk.ErrorCodeConflict,
		"Second rating by the same account")

	// Another account moves the average.
	rated, err = bob.RateCourse(ctx, course.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 2, rated.RatingCount)
	require.InDelta(t, 4.5, rated.AverageRating, 0.001)

	// Stars outside 1..5 are rejected up front.
	_, err = bob.RateCourse(ctx, course.ID, 6)
	assertAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
		"Stars out of range")
}

// TestCourseDelete verifies delete hides the course from the public list.
func TestCourseDelete(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	course, err := admin.CreateCourse(ctx, newCourseRequest("English Grammar"))
	require.NoError(t, err)

	require.NoError(t, admin.DeleteCourse(ctx, course.ID))

	listed, err := client.ListCourses(ctx, 0, 0)
	require.NoError(t, err)
	require.Empty(t, listed)
}
