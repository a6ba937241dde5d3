package application

import (
	"context"
	"fmt"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
)

// In-memory repositories used across the service tests.

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	for id, e := range f.users {
		if id != u.ID && e.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

type fakeJobRepo struct {
	jobs   map[string]*entity.Job
	order  []string
	nextID int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.Job{}}
}

func (f *fakeJobRepo) ListByUser(userID string) ([]*entity.Job, error) {
	var out []*entity.Job
	for i := len(f.order) - 1; i >= 0; i-- {
		j := f.jobs[f.order[i]]
		if j != nil && j.UserID == userID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) Create(j *entity.Job) error {
	f.nextID++
	j.ID = fmt.Sprintf("job-%d", f.nextID)
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	cp := *j
	f.jobs[j.ID] = &cp
	f.order = append(f.order, j.ID)
	return nil
}

func (f *fakeJobRepo) Update(j *entity.Job) error {
	if _, ok := f.jobs[j.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) Delete(id string) error {
	if _, ok := f.jobs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

type fakeSavedJobRepo struct {
	saved  map[string]*entity.SavedJob
	nextID int
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: map[string]*entity.SavedJob{}}
}

func (f *fakeSavedJobRepo) ListByUser(userID string) ([]*entity.SavedJob, error) {
	var out []*entity.SavedJob
	for _, s := range f.saved {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSavedJobRepo) Create(s *entity.SavedJob) error {
	for _, e := range f.saved {
		if e.UserID == s.UserID && e.URL == s.URL {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	s.ID = fmt.Sprintf("saved-%d", f.nextID)
	s.CreatedAt = time.Now()
	cp := *s
	f.saved[s.ID] = &cp
	return nil
}

func (f *fakeSavedJobRepo) DeleteOwned(id, userID string) error {
	s, ok := f.saved[id]
	if !ok || s.UserID != userID {
		return repo.ErrNotFound
	}
	delete(f.saved, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	nextID    int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.companies {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.nextID++
	c.ID = fmt.Sprintf("company-%d", f.nextID)
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	if _, ok := f.companies[c.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) Delete(id string) error {
	if _, ok := f.companies[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.companies, id)
	return nil
}

type fakeResumeRepo struct {
	resumes map[string]*entity.Resume
	files   map[string][]byte
	nextID  int
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: map[string]*entity.Resume{}, files: map[string][]byte{}}
}

func (f *fakeResumeRepo) ListByUser(userID string) ([]*entity.Resume, error) {
	var out []*entity.Resume
	for _, r := range f.resumes {
		if r.UserID == userID {
			cp := *r
			cp.FileData = nil
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeResumeRepo) GetByID(id string) (*entity.Resume, error) {
	r, ok := f.resumes[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *r
	cp.FileData = nil
	return &cp, nil
}

func (f *fakeResumeRepo) GetFileData(id string) ([]byte, error) {
	data, ok := f.files[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return data, nil
}

func (f *fakeResumeRepo) Create(r *entity.Resume) error {
	f.nextID++
	r.ID = fmt.Sprintf("resume-%d", f.nextID)
	cp := *r
	f.resumes[r.ID] = &cp
	f.files[r.ID] = append([]byte(nil), r.FileData...)
	return nil
}

func (f *fakeResumeRepo) Delete(id string) error {
	if _, ok := f.resumes[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.resumes, id)
	delete(f.files, id)
	return nil
}

type fakeStatsReader struct {
	total        int
	monthly      int
	statusCounts map[string]int
	monthCounts  []repo.MonthCount
}

func (f *fakeStatsReader) CountByUser(string) (int, error) { return f.total, nil }
func (f *fakeStatsReader) CountByUserSince(string, time.Time) (int, error) {
	return f.monthly, nil
}
func (f *fakeStatsReader) StatusCounts(string) (map[string]int, error) {
	return f.statusCounts, nil
}
func (f *fakeStatsReader) MonthlyCounts(string, time.Time) ([]repo.MonthCount, error) {
	return f.monthCounts, nil
}

type fakePublisher struct {
	published []any
	err       error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, body)
	return nil
}
