// Package service contains the business logic sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"

	"github.com/google/uuid"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries the allowed profile fields. Skills arrive
// already split into their stored form; anything outside this set is dropped
// by the handler before it gets here.
type UpsertProfileInput struct {
	UserID         uint
	Status         string
	Company        string
	Location       string
	Website        string
	Bio            string
	GithubUsername string
	Skills         []string
	Social         models.SocialLinks
}

type AddExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

type AddEducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

// GetByUser returns another user's profile by their user ID.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile not found")
	}
	return profile, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or replaces every listed field on the
// existing one. Fields absent from the input are overwritten with their zero
// value rather than merged; the last write wins.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.Profile{UserID: in.UserID}
	}

	profile.Status = in.Status
	profile.Company = in.Company
	profile.Location = in.Location
	profile.Bio = in.Bio
	profile.GithubUsername = in.GithubUsername
	profile.Website = validation.NormalizeURL(in.Website)
	profile.Skills = models.StringList(in.Skills)
	profile.Social = models.SocialLinks{
		Youtube:   validation.NormalizeURL(in.Social.Youtube),
		Twitter:   validation.NormalizeURL(in.Social.Twitter),
		Facebook:  validation.NormalizeURL(in.Social.Facebook),
		Linkedin:  validation.NormalizeURL(in.Social.Linkedin),
		Instagram: validation.NormalizeURL(in.Social.Instagram),
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) AddExperience(ctx context.Context, in AddExperienceInput) (*models.Profile, error) {
	profile, err := s.GetOwn(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	entry := models.Experience{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Current:     in.Current,
		Description: in.Description,
	}
	entry.From, entry.To, err = validation.ParseDateRange(in.From, in.To)
	if err != nil {
		return nil, models.NewValidationError("Invalid date")
	}

	profile.Experience.Prepend(entry)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveExperience deletes the entry with the given ID. An unmatched ID is a
// quiet no-op: the unchanged profile is still saved and returned.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID uint, entryID string) (*models.Profile, error) {
	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Experience.Remove(entryID)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) AddEducation(ctx context.Context, in AddEducationInput) (*models.Profile, error) {
	profile, err := s.GetOwn(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	entry := models.Education{
		ID:           uuid.New().String(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		Current:      in.Current,
		Description:  in.Description,
	}
	entry.From, entry.To, err = validation.ParseDateRange(in.From, in.To)
	if err != nil {
		return nil, models.NewValidationError("Invalid date")
	}

	profile.Education.Prepend(entry)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveEducation mirrors RemoveExperience, including the no-op miss policy.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID uint, entryID string) (*models.Profile, error) {
	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Education.Remove(entryID)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteAccount removes the caller's posts, profile, and user record.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}
