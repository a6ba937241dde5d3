package application

import (
	"testing"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

func strptr(s string) *string { return &s }

func seedJob(t *testing.T, svc *JobService, userID, company string) *entity.Job {
	t.Helper()
	j, err := svc.Create(userID, CreateJobInput{
		Company:     company,
		Role:        "Engineer",
		Status:      entity.StatusApplied,
		DateApplied: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}

func TestJobOwnership(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeResumeRepo(), nil)
	mine := seedJob(t, svc, "alice", "Google")
	theirs := seedJob(t, svc, "bob", "Amazon")

	t.Run("get own", func(t *testing.T) {
		j, err := svc.Get("alice", mine.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if j.Company != "Google" {
			t.Errorf("wrong job: %s", j.Company)
		}
	})

	t.Run("get foreign reads as missing", func(t *testing.T) {
		_, err := svc.Get("alice", theirs.ID)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("update foreign is unauthorized", func(t *testing.T) {
		_, err := svc.Update("alice", theirs.ID, UpdateJobInput{Notes: strptr("x")})
		if apperr.KindOf(err) != apperr.KindNotAuthorized {
			t.Fatalf("expected not authorized, got %v", err)
		}
	})

	t.Run("delete foreign is unauthorized", func(t *testing.T) {
		_, err := svc.Delete("alice", theirs.ID)
		if apperr.KindOf(err) != apperr.KindNotAuthorized {
			t.Fatalf("expected not authorized, got %v", err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		_, err := svc.Delete("alice", "nope")
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestJobCreateValidation(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeResumeRepo(), nil)

	_, err := svc.Create("alice", CreateJobInput{
		Company:     "Google",
		Role:        "Engineer",
		Status:      "Daydreaming",
		DateApplied: time.Now().UTC(),
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJobResumeReference(t *testing.T) {
	resumes := newFakeResumeRepo()
	svc := NewJobService(newFakeJobRepo(), resumes, nil)

	mine := &entity.Resume{UserID: "alice", Name: "CV", OriginalName: "cv.pdf"}
	if err := resumes.Create(mine); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	theirs := &entity.Resume{UserID: "bob", Name: "CV", OriginalName: "cv.pdf"}
	if err := resumes.Create(theirs); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	base := CreateJobInput{
		Company:     "Google",
		Role:        "Engineer",
		Status:      entity.StatusApplied,
		DateApplied: time.Now().UTC(),
	}

	t.Run("own resume attaches", func(t *testing.T) {
		in := base
		in.ResumeID = &mine.ID
		j, err := svc.Create("alice", in)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if j.ResumeID == nil || *j.ResumeID != mine.ID {
			t.Errorf("resume not attached: %+v", j.ResumeID)
		}
	})

	t.Run("missing resume", func(t *testing.T) {
		in := base
		in.ResumeID = strptr("nope")
		_, err := svc.Create("alice", in)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		if apperr.MessageOf(err) != "selected resume not found" {
			t.Errorf("unexpected message: %s", apperr.MessageOf(err))
		}
	})

	t.Run("foreign resume", func(t *testing.T) {
		in := base
		in.ResumeID = &theirs.ID
		_, err := svc.Create("alice", in)
		if apperr.KindOf(err) != apperr.KindNotAuthorized {
			t.Fatalf("expected not authorized, got %v", err)
		}
	})

	t.Run("empty string clears on update", func(t *testing.T) {
		in := base
		in.ResumeID = &mine.ID
		j, err := svc.Create("alice", in)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		updated, err := svc.Update("alice", j.ID, UpdateJobInput{ResumeID: strptr("")})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.ResumeID != nil {
			t.Errorf("resume reference should be cleared, got %v", *updated.ResumeID)
		}
	})
}

func TestJobUpdatePartial(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeResumeRepo(), nil)
	j := seedJob(t, svc, "alice", "Google")

	updated, err := svc.Update("alice", j.ID, UpdateJobInput{Status: strptr(entity.StatusInterview)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != entity.StatusInterview {
		t.Errorf("status not updated: %s", updated.Status)
	}
	if updated.Company != "Google" {
		t.Errorf("company should be unchanged: %s", updated.Company)
	}

	_, err = svc.Update("alice", j.ID, UpdateJobInput{Status: strptr("Bogus")})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJobListNewestFirst(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeResumeRepo(), nil)
	seedJob(t, svc, "alice", "First")
	seedJob(t, svc, "alice", "Second")
	seedJob(t, svc, "bob", "Other")

	jobs, err := svc.List("alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Company != "Second" || jobs[1].Company != "First" {
		t.Errorf("expected newest first, got %s then %s", jobs[0].Company, jobs[1].Company)
	}
}
