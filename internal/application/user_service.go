package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
	"github.com/jobtrail/jobtrail-api/pkg/helpers"
	"github.com/jobtrail/jobtrail-api/pkg/mailer"
)

// EmailPublisher pushes email jobs onto the outbound queue. Satisfied by
// helpers.RabbitPublisher; nil disables email entirely.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserService implements registration, login and profile management.
type UserService struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	Redis     *redis.Client
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
	Emails    EmailPublisher
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, gcs *storage.Client, gcsBucket string, emails EmailPublisher) *UserService {
	return &UserService{
		Repo:      r,
		JWT:       jwt,
		Redis:     rdb,
		Logger:    logger,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Emails:    emails,
	}
}

// AuthResult is what register and login hand back to the HTTP layer.
type AuthResult struct {
	User        *entity.User
	Token       string
	TokenExpiry time.Time
}

func defaultProfilePicture(name string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(name, " ", "+") + "&background=random"
}

// Register creates a new account and issues a bearer token.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperr.Duplicate("user already exists")
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, apperr.Server("failed to check existing users", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, apperr.Server("failed to hash password", err)
	}

	u := &entity.User{
		Name:           name,
		Email:          email,
		Password:       hash,
		ProfilePicture: defaultProfilePicture(name),
	}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperr.Duplicate("email already in use")
		}
		return nil, apperr.Server("failed to create user", err)
	}

	res, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}
	s.sendWelcomeEmail(ctx, u)
	return res, nil
}

// Login verifies credentials and issues a bearer token.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, apperr.Authentication("invalid email or password")
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, apperr.Authentication("invalid email or password")
	}
	return s.issueToken(ctx, u)
}

// issueToken signs a bearer token and records the session hash in Redis so
// the auth guard can resolve the user without a database round trip.
func (s *UserService) issueToken(ctx context.Context, u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, apperr.Server("failed to issue token", err)
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":         u.ID,
			"name":            u.Name,
			"email":           u.Email,
			"profile_picture": u.ProfilePicture,
			"created_at":      time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return &AuthResult{User: u, Token: token, TokenExpiry: exp}, nil
}

func (s *UserService) sendWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Emails == nil {
		return
	}
	job := mailer.EmailJob{To: u.Email, Template: mailer.TemplateWelcome, Name: u.Name}
	if err := s.Emails.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to queue welcome email")
	}
}

// GetProfile loads the caller's own user record.
func (s *UserService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name           string
	Email          string
	ProfilePicture string
	Password       string
}

// UpdateProfile applies a partial profile update and returns a fresh token,
// mirroring the register/login response shape.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*AuthResult, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.ProfilePicture != "" {
		u.ProfilePicture = in.ProfilePicture
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, apperr.Server("failed to hash password", err)
		}
		u.Password = hash
	}
	if err := s.Repo.Update(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperr.Duplicate("email already in use")
		}
		return nil, apperr.Server("failed to update profile", err)
	}
	return s.issueToken(ctx, u)
}

// UploadAvatar stores a profile image in GCS and saves its public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperr.Validation("only image files are allowed")
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperr.Server("avatar storage not configured", nil)
	}
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return "", apperr.NotFound("user not found")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", apperr.Server("failed to upload avatar", err)
	}

	u.ProfilePicture = url
	if err := s.Repo.Update(u); err != nil {
		return "", apperr.Server("failed to update profile", err)
	}
	if s.Redis != nil {
		s.Redis.HSet(ctx, helpers.SessionKey(u.ID), map[string]any{
			"profile_picture": url,
			"updated_at":      time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
	return url, nil
}
