package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jobtrail/jobtrail-api/pkg/apperr"
	"github.com/jobtrail/jobtrail-api/pkg/helpers"
	"github.com/jobtrail/jobtrail-api/pkg/mailer"
)

func newTestUserService(users *fakeUserRepo, emails EmailPublisher) *UserService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(users, jwt, nil, nil, nil, "", emails)
}

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	pub := &fakePublisher{}
	svc := newTestUserService(users, pub)

	res, err := svc.Register(context.Background(), "Jane Doe", "jane@example.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
	if res.User.ID == "" {
		t.Error("expected an assigned id")
	}
	if res.User.Password == "secret123" {
		t.Error("password stored in plain text")
	}
	if !helpers.CheckPassword(res.User.Password, "secret123") {
		t.Error("stored hash does not verify")
	}
	if !strings.Contains(res.User.ProfilePicture, "Jane+Doe") {
		t.Errorf("unexpected default avatar: %s", res.User.ProfilePicture)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected 1 queued email, got %d", len(pub.published))
	}
	job, ok := pub.published[0].(mailer.EmailJob)
	if !ok {
		t.Fatalf("unexpected payload type %T", pub.published[0])
	}
	if job.To != "jane@example.com" || job.Template != mailer.TemplateWelcome {
		t.Errorf("unexpected email job: %+v", job)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, nil)

	if _, err := svc.Register(context.Background(), "Jane", "jane@example.com", "secret123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), "Other", "jane@example.com", "different")
	if apperr.KindOf(err) != apperr.KindDuplicate {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if apperr.MessageOf(err) != "user already exists" {
		t.Errorf("unexpected message: %s", apperr.MessageOf(err))
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, nil)
	if _, err := svc.Register(context.Background(), "Jane", "jane@example.com", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), "jane@example.com", "secret123")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if res.Token == "" {
			t.Error("expected a token")
		}
		if res.TokenExpiry.Before(time.Now()) {
			t.Error("token already expired")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "jane@example.com", "nope")
		if apperr.KindOf(err) != apperr.KindAuthentication {
			t.Fatalf("expected authentication error, got %v", err)
		}
		if apperr.MessageOf(err) != "invalid email or password" {
			t.Errorf("unexpected message: %s", apperr.MessageOf(err))
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
		if apperr.KindOf(err) != apperr.KindAuthentication {
			t.Fatalf("expected authentication error, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, nil)
	reg, err := svc.Register(context.Background(), "Jane", "jane@example.com", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.UpdateProfile(context.Background(), reg.User.ID, UpdateProfileInput{Name: "Jane Smith", Password: "newsecret"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.User.Name != "Jane Smith" {
		t.Errorf("name not updated: %s", res.User.Name)
	}
	if res.User.Email != "jane@example.com" {
		t.Errorf("email should be unchanged: %s", res.User.Email)
	}
	if res.Token == "" {
		t.Error("expected a fresh token")
	}

	if _, err := svc.Login(context.Background(), "jane@example.com", "newsecret"); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "jane@example.com", "secret123"); apperr.KindOf(err) != apperr.KindAuthentication {
		t.Errorf("old password should be rejected, got %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), nil)
	_, err := svc.GetProfile("missing")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
