package v1_test

import (
	"context"

	"go-resume-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockEntryUC is a testify mock of domain.EntryUsecase.
type MockEntryUC[E any, I any] struct {
	mock.Mock
}

func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockEntryUC[E, I]) Find(ctx context.Context, q domain.ListQuery) ([]E, error) {
	return result[[]E](m.Called(ctx, q))
}

func (m *MockEntryUC[E, I]) FindOne(ctx context.Context, id string) (E, error) {
	return result[E](m.Called(ctx, id))
}

func (m *MockEntryUC[E, I]) Count(ctx context.Context, q domain.ListQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryUC[E, I]) IDs(ctx context.Context, q domain.ListQuery) ([]string, error) {
	return result[[]string](m.Called(ctx, q))
}

func (m *MockEntryUC[E, I]) Create(ctx context.Context, in I) (E, error) {
	return result[E](m.Called(ctx, in))
}

func (m *MockEntryUC[E, I]) Update(ctx context.Context, id string, in I) (E, error) {
	return result[E](m.Called(ctx, id, in))
}

func (m *MockEntryUC[E, I]) Patch(ctx context.Context, id string, in I) (E, error) {
	return result[E](m.Called(ctx, id, in))
}

func (m *MockEntryUC[E, I]) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEntryUC[E, I]) FindByUserID(ctx context.Context, userID string) ([]E, error) {
	return result[[]E](m.Called(ctx, userID))
}

type MockResumeUC struct {
	MockEntryUC[*domain.Resume, *domain.ResumeInput]
}

func (m *MockResumeUC) FindOneByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	return result[*domain.Resume](m.Called(ctx, userID))
}

type MockProjection struct {
	mock.Mock
}

func (m *MockProjection) GetResumeProfile(ctx context.Context, userID string) (*domain.ResumeProfile, error) {
	return result[*domain.ResumeProfile](m.Called(ctx, userID))
}

func (m *MockProjection) GetExperiences(ctx context.Context, userID string) ([]*domain.Experience, error) {
	return result[[]*domain.Experience](m.Called(ctx, userID))
}

func (m *MockProjection) GetEducation(ctx context.Context, userID string) ([]*domain.Education, error) {
	return result[[]*domain.Education](m.Called(ctx, userID))
}

func (m *MockProjection) GetSkills(ctx context.Context, userID string) ([]*domain.Skill, error) {
	return result[[]*domain.Skill](m.Called(ctx, userID))
}

func (m *MockProjection) GetLanguages(ctx context.Context, userID string) ([]*domain.Language, error) {
	return result[[]*domain.Language](m.Called(ctx, userID))
}

func (m *MockProjection) GetHobbies(ctx context.Context, userID string) ([]*domain.Hobby, error) {
	return result[[]*domain.Hobby](m.Called(ctx, userID))
}

func (m *MockProjection) GetProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	return result[[]*domain.Project](m.Called(ctx, userID))
}

func (m *MockProjection) RebuildProfile(ctx context.Context, resume *domain.Resume) (*domain.ResumeProfile, error) {
	return result[*domain.ResumeProfile](m.Called(ctx, resume))
}

type MockSetup struct {
	mock.Mock
}

func (m *MockSetup) InitResume(ctx context.Context, userID, name string) (*domain.Resume, error) {
	return result[*domain.Resume](m.Called(ctx, userID, name))
}

type MockExport struct {
	mock.Mock
}

func (m *MockExport) Export(ctx context.Context, userID, format string) (*domain.ExportFile, error) {
	return result[*domain.ExportFile](m.Called(ctx, userID, format))
}
