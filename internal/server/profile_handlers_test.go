package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileRepository is a mock of the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// asUser injects the authenticated user ID the way AuthRequired would.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func newProfileTestApp(profileRepo *MockProfileRepository, userRepo *MockUserRepository) (*fiber.App, *Server) {
	app := fiber.New()
	s := &Server{
		config:         testConfig(),
		userRepo:       userRepo,
		profileService: service.NewProfileService(profileRepo, userRepo),
	}

	app.Get("/profile/me", asUser(7), s.GetMyProfile)
	app.Get("/profile/user/:userId", s.GetProfileByUser)
	app.Get("/profile", s.GetProfiles)
	app.Post("/profile", asUser(7), s.UpsertProfile)
	app.Delete("/profile", asUser(7), s.DeleteAccount)
	app.Put("/profile/experience", asUser(7), s.AddExperience)
	app.Delete("/profile/experience/:expId", asUser(7), s.RemoveExperience)
	app.Put("/profile/education", asUser(7), s.AddEducation)
	app.Delete("/profile/education/:eduId", asUser(7), s.RemoveEducation)
	return app, s
}

func TestGetMyProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).
			Return(&models.Profile{ID: 1, UserID: 7, Status: "Developer"}, nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/me", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Developer", body["status"])
	})

	t.Run("No Profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).Return(nil, nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/me", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "There is no profile for this user", body["error"])
	})
}

func TestGetProfileByUser(t *testing.T) {
	t.Run("Invalid ID", func(t *testing.T) {
		app, _ := newProfileTestApp(new(MockProfileRepository), new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/user/abc", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid user ID", body["error"])
	})

	t.Run("Not Found", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(42)).Return(nil, nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/user/42", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Profile not found", body["error"])
	})
}

func TestUpsertProfile(t *testing.T) {
	t.Run("Creates With String Skills", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).Return(nil, nil)
		var saved *models.Profile
		profileRepo.On("Save", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Profile) }).
			Return(nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/profile", map[string]any{
			"status": "dev",
			"skills": "js, node",
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, saved)
		assert.Equal(t, models.StringList{" js", " node"}, saved.Skills)
		assert.Equal(t, "", saved.Website)
	})

	t.Run("Array Skills Pass Through", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).Return(nil, nil)
		profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/profile", map[string]any{
			"status": "dev",
			"skills": []string{"go", "sql"},
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, []any{"go", "sql"}, body["skills"])
	})

	t.Run("Missing Status And Skills", func(t *testing.T) {
		app, _ := newProfileTestApp(new(MockProfileRepository), new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/profile", map[string]any{}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		errs, ok := body["errors"].([]any)
		require.True(t, ok)
		assert.Len(t, errs, 2)
	})

	t.Run("Normalizes Website And Social", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).Return(nil, nil)
		profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/profile", map[string]any{
			"status":  "dev",
			"skills":  "go",
			"website": "example.com",
			"twitter": "twitter.com/jane",
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "https://example.com", body["website"])
		social := body["social"].(map[string]any)
		assert.Equal(t, "https://twitter.com/jane", social["twitter"])
	})
}

func TestExperienceHandlers(t *testing.T) {
	existingProfile := func() *models.Profile {
		return &models.Profile{
			ID:     1,
			UserID: 7,
			Experience: models.List[models.Experience]{
				{ID: "exp-1", Title: "Junior"},
			},
		}
	}

	t.Run("Add Requires Fields", func(t *testing.T) {
		app, _ := newProfileTestApp(new(MockProfileRepository), new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPut, "/profile/experience", map[string]any{}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		errs := body["errors"].([]any)
		assert.Len(t, errs, 3) // title, company, from
	})

	t.Run("Add Prepends", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).Return(existingProfile(), nil)
		profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPut, "/profile/experience", map[string]any{
			"title": "Senior", "company": "Acme", "from": "2023-01-15",
		}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		entries := body["experience"].([]any)
		require.Len(t, entries, 2)
		first := entries[0].(map[string]any)
		assert.Equal(t, "Senior", first["title"])
	})

	t.Run("Remove Miss Is Quiet", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).Return(existingProfile(), nil)
		profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/profile/experience/no-such-id", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Len(t, body["experience"].([]any), 1)
		profileRepo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEducationHandlers(t *testing.T) {
	t.Run("Add Requires Fields", func(t *testing.T) {
		app, _ := newProfileTestApp(new(MockProfileRepository), new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPut, "/profile/education", map[string]any{}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		errs := body["errors"].([]any)
		assert.Len(t, errs, 4) // school, degree, fieldofstudy, from
	})

	t.Run("Add And Remove", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		profileRepo.On("GetByUserID", mock.Anything, uint(7)).
			Return(&models.Profile{ID: 1, UserID: 7, Education: models.List[models.Education]{
				{ID: "edu-1", School: "State U"},
			}}, nil)
		profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app, _ := newProfileTestApp(profileRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/profile/education/edu-1", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Empty(t, body["education"])
	})
}

func TestDeleteAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("DeleteCascade", mock.Anything, uint(7)).Return(nil)
	app, _ := newProfileTestApp(new(MockProfileRepository), userRepo)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/profile", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "User deleted", body["msg"])
	userRepo.AssertExpectations(t)
}
