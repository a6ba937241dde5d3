package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/response"
	"github.com/jobtrail/jobtrail-api/pkg/validation"
)

// injectUser stands in for the auth middleware in handler tests.
func injectUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newTestRouter(userID string, register func(rg *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	r := gin.New()
	api := r.Group("/api", injectUser(userID))
	register(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.APIResponse[json.RawMessage] {
	t.Helper()
	var env response.APIResponse[json.RawMessage]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return env
}

// Minimal in-memory repositories backing the handler tests.

type memJobRepo struct {
	jobs   map[string]*entity.Job
	order  []string
	nextID int
}

func newMemJobRepo() *memJobRepo { return &memJobRepo{jobs: map[string]*entity.Job{}} }

func (m *memJobRepo) ListByUser(userID string) ([]*entity.Job, error) {
	var out []*entity.Job
	for i := len(m.order) - 1; i >= 0; i-- {
		if j, ok := m.jobs[m.order[i]]; ok && j.UserID == userID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memJobRepo) GetByID(id string) (*entity.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *memJobRepo) Create(j *entity.Job) error {
	m.nextID++
	j.ID = fmt.Sprintf("job-%d", m.nextID)
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	cp := *j
	m.jobs[j.ID] = &cp
	m.order = append(m.order, j.ID)
	return nil
}

func (m *memJobRepo) Update(j *entity.Job) error {
	if _, ok := m.jobs[j.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *memJobRepo) Delete(id string) error {
	if _, ok := m.jobs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

type memResumeRepo struct {
	resumes map[string]*entity.Resume
	files   map[string][]byte
	nextID  int
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{resumes: map[string]*entity.Resume{}, files: map[string][]byte{}}
}

func (m *memResumeRepo) ListByUser(userID string) ([]*entity.Resume, error) {
	var out []*entity.Resume
	for _, r := range m.resumes {
		if r.UserID == userID {
			cp := *r
			cp.FileData = nil
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memResumeRepo) GetByID(id string) (*entity.Resume, error) {
	r, ok := m.resumes[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *r
	cp.FileData = nil
	return &cp, nil
}

func (m *memResumeRepo) GetFileData(id string) ([]byte, error) {
	data, ok := m.files[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return data, nil
}

func (m *memResumeRepo) Create(r *entity.Resume) error {
	m.nextID++
	r.ID = fmt.Sprintf("resume-%d", m.nextID)
	cp := *r
	m.resumes[r.ID] = &cp
	m.files[r.ID] = append([]byte(nil), r.FileData...)
	return nil
}

func (m *memResumeRepo) Delete(id string) error {
	if _, ok := m.resumes[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.resumes, id)
	delete(m.files, id)
	return nil
}

type memSavedJobRepo struct {
	saved  map[string]*entity.SavedJob
	nextID int
}

func newMemSavedJobRepo() *memSavedJobRepo {
	return &memSavedJobRepo{saved: map[string]*entity.SavedJob{}}
}

func (m *memSavedJobRepo) ListByUser(userID string) ([]*entity.SavedJob, error) {
	var out []*entity.SavedJob
	for _, s := range m.saved {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memSavedJobRepo) Create(s *entity.SavedJob) error {
	for _, e := range m.saved {
		if e.UserID == s.UserID && e.URL == s.URL {
			return repo.ErrDuplicate
		}
	}
	m.nextID++
	s.ID = fmt.Sprintf("saved-%d", m.nextID)
	cp := *s
	m.saved[s.ID] = &cp
	return nil
}

func (m *memSavedJobRepo) DeleteOwned(id, userID string) error {
	s, ok := m.saved[id]
	if !ok || s.UserID != userID {
		return repo.ErrNotFound
	}
	delete(m.saved, id)
	return nil
}

type memStatsReader struct {
	total        int
	monthly      int
	statusCounts map[string]int
	monthCounts  []repo.MonthCount
}

func (m *memStatsReader) CountByUser(string) (int, error) { return m.total, nil }
func (m *memStatsReader) CountByUserSince(string, time.Time) (int, error) {
	return m.monthly, nil
}
func (m *memStatsReader) StatusCounts(string) (map[string]int, error) {
	return m.statusCounts, nil
}
func (m *memStatsReader) MonthlyCounts(string, time.Time) ([]repo.MonthCount, error) {
	return m.monthCounts, nil
}
