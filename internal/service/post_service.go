package service

import (
	"context"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"

	"github.com/google/uuid"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost stores a new post carrying a snapshot of the author's name and
// avatar; later profile edits do not rewrite old posts.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: in.UserID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records the caller's like and returns the updated likes list. A
// second like by the same user is rejected rather than deduplicated.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (models.List[models.Like], error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Likes.Contains(models.LikeKey(userID)) {
		return nil, models.NewValidationError("Post already liked")
	}

	post.Likes.Prepend(models.Like{UserID: userID})
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the caller's like and returns the updated likes list.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) (models.List[models.Like], error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.Likes.Contains(models.LikeKey(userID)) {
		return nil, models.NewValidationError("Post has not yet been liked")
	}

	post.Likes.Remove(models.LikeKey(userID))
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment with a fresh identifier and the author's
// name/avatar snapshot, returning the updated comments list.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (models.List[models.Comment], error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Text:      in.Text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}
	post.Comments.Prepend(comment)
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes a comment by ID. Unlike the profile list removals, a
// missing comment is a 404, and only the comment's author may remove it.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID uint, commentID string) (models.List[models.Comment], error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, ok := post.Comments.Find(commentID)
	if !ok {
		return nil, models.NewNotFoundError("Comment does not exist")
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	post.Comments.Remove(commentID)
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
