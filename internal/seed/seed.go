// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options tunes seed volume and cost.
type Options struct {
	Users        int
	PostsPerUser int
	// SkipBcrypt stores a plaintext password for fast local seeding.
	SkipBcrypt bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rnd  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:   gofakeit.Name(),
		Email:  gofakeit.Email(),
		Avatar: fmt.Sprintf("https://i.pravatar.cc/200?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a career profile for the user, including a couple
// of experience and education entries.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	skills := make(models.StringList, 0, 4)
	for _, s := range []string{"Go", "JavaScript", gofakeit.ProgrammingLanguage(), gofakeit.ProgrammingLanguage()} {
		skills = append(skills, " "+s)
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Status:         gofakeit.JobTitle(),
		Company:        gofakeit.Company(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Website:        "https://" + gofakeit.DomainName(),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         skills,
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + strings.ToLower(gofakeit.Username()),
			Linkedin: "https://linkedin.com/in/" + strings.ToLower(gofakeit.Username()),
		},
		Experience: models.List[models.Experience]{f.buildExperience(0), f.buildExperience(1)},
		Education:  models.List[models.Education]{f.buildEducation()},
	}

	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (f *Factory) buildExperience(yearsBack int) models.Experience {
	from := time.Now().AddDate(-(yearsBack + 2), 0, 0)
	entry := models.Experience{
		ID:          uuid.New().String(),
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Description: gofakeit.Sentence(8),
	}
	if yearsBack == 0 {
		entry.Current = true
	} else {
		to := from.AddDate(2, 0, 0)
		entry.To = &to
	}
	return entry
}

func (f *Factory) buildEducation() models.Education {
	from := time.Now().AddDate(-8, 0, 0)
	to := from.AddDate(4, 0, 0)
	return models.Education{
		ID:           uuid.New().String(),
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
	}
}

// CreatePost persists a post authored by user, carrying the author's
// name/avatar snapshot and a created_at spread over the past 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Text:      gofakeit.Paragraph(1, 2, 8, " "),
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().Add(-time.Duration(f.rnd.Intn(90*24)) * time.Hour),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Run populates the database with a connected set of users, profiles, and
// posts, then sprinkles likes and comments across the feed.
func (f *Factory) Run() error {
	users := make([]*models.User, 0, f.opts.Users)
	for i := 0; i < f.opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if _, err := f.CreateProfile(user); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		users = append(users, user)
	}

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < f.opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for _, user := range users {
			if user.ID == post.UserID {
				continue
			}
			if f.rnd.Intn(3) == 0 {
				post.Likes.Prepend(models.Like{UserID: user.ID})
			}
			if f.rnd.Intn(4) == 0 {
				post.Comments.Prepend(models.Comment{
					ID:        uuid.New().String(),
					UserID:    user.ID,
					Text:      gofakeit.Sentence(6),
					Name:      user.Name,
					Avatar:    user.Avatar,
					CreatedAt: time.Now(),
				})
			}
		}
		if len(post.Likes) > 0 || len(post.Comments) > 0 {
			if err := f.db.Save(post).Error; err != nil {
				return fmt.Errorf("seed reactions: %w", err)
			}
		}
	}

	return nil
}
