package usecase_test

import (
	"context"
	"sort"
	"sync"

	"go-resume-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockResumeRepo is a testify mock of domain.ResumeRepository.
type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Find(ctx context.Context, q domain.ListQuery) ([]*domain.Resume, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) FindOne(ctx context.Context, id string) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Count(ctx context.Context, q domain.ListQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockResumeRepo) IDs(ctx context.Context, q domain.ListQuery) ([]string, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResumeRepo) Create(ctx context.Context, r *domain.Resume) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockResumeRepo) Update(ctx context.Context, r *domain.Resume) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResumeRepo) FindByUserID(ctx context.Context, userID string) ([]*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) FindOneByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) FindByUserIDs(ctx context.Context, userIDs []string) ([]*domain.Resume, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListUserIDs(ctx context.Context, limit, offset int) ([]string, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type record struct {
	id       string
	userID   string
	resumeID string
	position int
}

// memRepo is an in-memory EntryRepository ordered by position then id.
type memRepo[E any] struct {
	mu     sync.Mutex
	items  map[string]E
	record func(E) record
}

func newMemRepo[E any](rec func(E) record) *memRepo[E] {
	return &memRepo[E]{items: make(map[string]E), record: rec}
}

func newEntryRepo[E domain.Entry]() *memRepo[E] {
	return newMemRepo(func(e E) record {
		m := e.Meta()
		return record{id: m.ID, userID: m.UserID, resumeID: m.ResumeID, position: m.Position}
	})
}

func (r *memRepo[E]) sorted(match func(record) bool) []E {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]E, 0, len(r.items))
	for _, e := range r.items {
		if match(r.record(e)) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := r.record(out[i]), r.record(out[j])
		if a.position != b.position {
			return a.position < b.position
		}
		return a.id < b.id
	})
	return out
}

func byUser(q domain.ListQuery) func(record) bool {
	userID, scoped := q.Criteria["userId"].(string)
	return func(rec record) bool { return !scoped || rec.userID == userID }
}

func (r *memRepo[E]) Find(_ context.Context, q domain.ListQuery) ([]E, error) {
	return r.sorted(byUser(q)), nil
}

func (r *memRepo[E]) FindOne(_ context.Context, id string) (E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		var zero E
		return zero, domain.ErrNotFound
	}
	return e, nil
}

func (r *memRepo[E]) Count(ctx context.Context, q domain.ListQuery) (int, error) {
	items, _ := r.Find(ctx, q)
	return len(items), nil
}

func (r *memRepo[E]) IDs(ctx context.Context, q domain.ListQuery) ([]string, error) {
	items, _ := r.Find(ctx, q)
	ids := make([]string, 0, len(items))
	for _, e := range items {
		ids = append(ids, r.record(e).id)
	}
	return ids, nil
}

func (r *memRepo[E]) Create(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[r.record(e).id] = e
	return nil
}

func (r *memRepo[E]) Update(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.record(e).id
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	r.items[id] = e
	return nil
}

func (r *memRepo[E]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memRepo[E]) FindByUserID(_ context.Context, userID string) ([]E, error) {
	return r.sorted(func(rec record) bool { return rec.userID == userID }), nil
}

func (r *memRepo[E]) removeByResume(resumeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.items {
		if r.record(e).resumeID == resumeID {
			delete(r.items, id)
		}
	}
}

// memResumes enforces one resume per user and cascades deletes.
type memResumes struct {
	*memRepo[*domain.Resume]
	children []interface{ removeByResume(string) }
}

func (r *memResumes) Create(ctx context.Context, res *domain.Resume) error {
	if _, err := r.FindOneByUserID(ctx, res.UserID); err == nil {
		return domain.ErrConflict
	}
	return r.memRepo.Create(ctx, res)
}

func (r *memResumes) Delete(ctx context.Context, id string) error {
	if err := r.memRepo.Delete(ctx, id); err != nil {
		return err
	}
	for _, c := range r.children {
		c.removeByResume(id)
	}
	return nil
}

func (r *memResumes) FindOneByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	items, _ := r.FindByUserID(ctx, userID)
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return items[0], nil
}

func (r *memResumes) FindByUserIDs(_ context.Context, userIDs []string) ([]*domain.Resume, error) {
	want := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	return r.sorted(func(rec record) bool { return want[rec.userID] }), nil
}

func (r *memResumes) ListUserIDs(_ context.Context, limit, offset int) ([]string, error) {
	all := r.sorted(func(record) bool { return true })
	ids := make([]string, 0, len(all))
	for _, res := range all {
		ids = append(ids, res.UserID)
	}
	sort.Strings(ids)
	if offset >= len(ids) {
		return nil, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end], nil
}

type fakeRepos struct {
	resumes    *memResumes
	experience *memRepo[*domain.Experience]
	education  *memRepo[*domain.Education]
	skill      *memRepo[*domain.Skill]
	language   *memRepo[*domain.Language]
	hobby      *memRepo[*domain.Hobby]
	project    *memRepo[*domain.Project]
}

func newFakeRepos() *fakeRepos {
	f := &fakeRepos{
		experience: newEntryRepo[*domain.Experience](),
		education:  newEntryRepo[*domain.Education](),
		skill:      newEntryRepo[*domain.Skill](),
		language:   newEntryRepo[*domain.Language](),
		hobby:      newEntryRepo[*domain.Hobby](),
		project:    newEntryRepo[*domain.Project](),
	}
	f.resumes = &memResumes{
		memRepo: newMemRepo(func(r *domain.Resume) record {
			return record{id: r.ID, userID: r.UserID, resumeID: r.ID}
		}),
		children: []interface{ removeByResume(string) }{
			f.experience, f.education, f.skill, f.language, f.hobby, f.project,
		},
	}
	return f
}

func (f *fakeRepos) repositories() domain.Repositories {
	return domain.Repositories{
		Resume:     f.resumes,
		Experience: f.experience,
		Education:  f.education,
		Skill:      f.skill,
		Language:   f.language,
		Hobby:      f.hobby,
		Project:    f.project,
	}
}
