package application

import (
	"testing"

	"github.com/jobtrail/jobtrail-api/pkg/apperr"
)

func TestSaveJobDuplicateURL(t *testing.T) {
	svc := NewSavedJobService(newFakeSavedJobRepo(), nil)

	in := SaveJobInput{
		Title:   "Backend Engineer",
		Company: "Google",
		URL:     "https://careers.google.com/jobs/1",
		Source:  "LinkedIn",
	}
	if _, err := svc.Save("alice", in); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	_, err := svc.Save("alice", in)
	if apperr.KindOf(err) != apperr.KindDuplicate {
		t.Fatalf("expected duplicate, got %v", err)
	}
	if apperr.MessageOf(err) != "job already saved" {
		t.Errorf("unexpected message: %s", apperr.MessageOf(err))
	}

	// Same URL for a different user is fine.
	if _, err := svc.Save("bob", in); err != nil {
		t.Errorf("other user save failed: %v", err)
	}
}

func TestSavedJobDelete(t *testing.T) {
	svc := NewSavedJobService(newFakeSavedJobRepo(), nil)
	sj, err := svc.Save("alice", SaveJobInput{Title: "Role", Company: "Acme", URL: "https://x.test/1", Source: "Indeed"})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A record saved by someone else reads as missing.
	if err := svc.Delete("bob", sj.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}
	if err := svc.Delete("alice", sj.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete("alice", sj.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
