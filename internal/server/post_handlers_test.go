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

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Save(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPostTestApp(postRepo *MockPostRepository, userRepo *MockUserRepository) *fiber.App {
	app := fiber.New()
	s := &Server{
		config:      testConfig(),
		userRepo:    userRepo,
		postService: service.NewPostService(postRepo, userRepo),
	}

	posts := app.Group("/posts", asUser(7))
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	posts.Put("/like/:id", s.LikePost)
	posts.Put("/unlike/:id", s.UnlikePost)
	posts.Post("/comment/:id", s.AddComment)
	posts.Delete("/comment/:id/:commentId", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)
	return app
}

func TestCreatePost(t *testing.T) {
	t.Run("Success Snapshots Author", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(7)).
			Return(&models.User{ID: 7, Name: "Jane Dev", Avatar: "//gravatar/jane"}, nil)
		postRepo := new(MockPostRepository)
		postRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Post).ID = 42 }).
			Return(nil)
		app := newPostTestApp(postRepo, userRepo)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts", map[string]string{"text": "hello"}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Jane Dev", body["name"])
		assert.Equal(t, float64(42), body["id"])
	})

	t.Run("Empty Text", func(t *testing.T) {
		app := newPostTestApp(new(MockPostRepository), new(MockUserRepository))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts", map[string]string{"text": ""}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		errs := body["errors"].([]any)
		require.Len(t, errs, 1)
		first := errs[0].(map[string]any)
		assert.Equal(t, "Text is required", first["msg"])
	})
}

func TestGetPost(t *testing.T) {
	t.Run("Malformed ID Is 404", func(t *testing.T) {
		app := newPostTestApp(new(MockPostRepository), new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/not-a-number", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Post not found", body["error"])
	})

	t.Run("Missing Post Is 404", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Post not found"))
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/99", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("Non Author Gets 401", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3}, nil)
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/42", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "User not authorized", body["error"])
	})

	t.Run("Author Deletes", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 7}, nil)
		postRepo.On("Delete", mock.Anything, uint(42)).Return(nil)
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/42", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Post removed", body["msg"])
	})
}

func TestLikeUnlike(t *testing.T) {
	t.Run("Like Then Relike", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3}, nil).Once()
		postRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/posts/like/42", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// second like against a post that already holds the caller's like
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3, Likes: models.List[models.Like]{{UserID: 7}}}, nil).Once()

		resp, err = app.Test(httptest.NewRequest(http.MethodPut, "/posts/like/42", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Post already liked", body["error"])
	})

	t.Run("Unlike Without Like", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3}, nil)
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/posts/unlike/42", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Post has not yet been liked", body["error"])
	})
}

func TestComments(t *testing.T) {
	t.Run("Add Comment", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(7)).
			Return(&models.User{ID: 7, Name: "Jane Dev"}, nil)
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3}, nil)
		postRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		app := newPostTestApp(postRepo, userRepo)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/posts/comment/42", map[string]string{"text": "nice"}))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Delete Missing Comment Is 404", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3}, nil)
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/comment/42/no-such-comment", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Comment does not exist", body["error"])
	})

	t.Run("Delete Another Users Comment Is 401", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).
			Return(&models.Post{ID: 42, UserID: 3, Comments: models.List[models.Comment]{
				{ID: "c-1", UserID: 3, Text: "theirs"},
			}}, nil)
		app := newPostTestApp(postRepo, new(MockUserRepository))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/posts/comment/42/c-1", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
