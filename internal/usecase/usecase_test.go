package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-resume-backend/internal/commandbus"
	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	resumeID  = "0190b3c4-5a6b-7c8d-9e0f-000000000001"
	otherID   = "0190b3c4-5a6b-7c8d-9e0f-000000000002"
	missingID = "0190b3c4-5a6b-7c8d-9e0f-0000000000ff"
)

func str(s string) *string { return &s }

func userCtx(userID string) context.Context {
	return domain.WithUser(context.Background(), userID, "Alex")
}

func newDeps(store cache.Store) usecase.Deps {
	return usecase.Deps{
		Bus:   commandbus.New(prometheus.NewRegistry()),
		Cache: store,
	}
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func TestResumeUsecase_Create(t *testing.T) {
	validInput := func() *domain.ResumeInput {
		return &domain.ResumeInput{FullName: str("Alex Devaux"), Headline: str("Builder")}
	}

	t.Run("Should create the resume of the current user", func(t *testing.T) {
		repo := new(MockResumeRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil).Once()
		uc := usecase.NewResumeUsecase(repo, newDeps(nil))

		res, err := uc.Create(userCtx("user1"), validInput())
		require.NoError(t, err)
		assert.Equal(t, "user1", res.UserID)
		assert.Equal(t, "Alex Devaux", res.FullName)
		_, err = uuid.Parse(res.ID)
		assert.NoError(t, err)
		assert.False(t, res.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("Should reject a userId of another user", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo, newDeps(nil))

		in := validInput()
		in.UserID = str("user2")
		_, err := uc.Create(userCtx("user1"), in)
		assertAppError(t, err, http.StatusForbidden, "You cannot manage resumes for another user.")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map a duplicate resume to conflict", func(t *testing.T) {
		repo := new(MockResumeRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)
		uc := usecase.NewResumeUsecase(repo, newDeps(nil))

		_, err := uc.Create(userCtx("user1"), validInput())
		assertAppError(t, err, http.StatusConflict, "A resume already exists for this user.")
	})

	t.Run("Should fail when no user is authenticated", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), newDeps(nil))

		_, err := uc.Create(context.Background(), validInput())
		assertAppError(t, err, http.StatusUnauthorized, "User not authenticated")
	})

	t.Run("Should require fullName and headline", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), newDeps(nil))

		_, err := uc.Create(userCtx("user1"), &domain.ResumeInput{Headline: str("  ")})
		assertAppError(t, err, http.StatusBadRequest, "")
		assert.Contains(t, err.Error(), "fullName: This value should not be blank.")
		assert.Contains(t, err.Error(), "headline: This value should not be blank.")
	})

	t.Run("Should treat markup-only values as blank", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo, newDeps(nil))

		_, err := uc.Create(userCtx("user1"), &domain.ResumeInput{FullName: str("<b></b>"), Headline: str("<i> </i>")})
		assertAppError(t, err, http.StatusBadRequest, "")
		assert.Contains(t, err.Error(), "fullName: This value should not be blank.")
		assert.Contains(t, err.Error(), "headline: This value should not be blank.")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject emoji in the name", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), newDeps(nil))

		in := validInput()
		in.FullName = str("Alex \U0001F680")
		_, err := uc.Create(userCtx("user1"), in)
		assertAppError(t, err, http.StatusBadRequest, "fullName: This value should not contain emoji or symbols.")
	})

	t.Run("Should report validator messages", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), newDeps(nil))

		in := validInput()
		in.Email = str("not-an-email")
		_, err := uc.Create(userCtx("user1"), in)
		assertAppError(t, err, http.StatusBadRequest, "")
		assert.Contains(t, err.Error(), "not a valid email")
	})
}

func TestResumeUsecase_FindOneCachesUntilWrite(t *testing.T) {
	repo := new(MockResumeRepo)
	stored := &domain.Resume{ID: resumeID, UserID: "user1", FullName: "Alex", Headline: "Builder"}
	repo.On("FindOne", mock.Anything, resumeID).Return(stored, nil).Times(3)
	repo.On("Update", mock.Anything, stored).Return(nil).Once()
	uc := usecase.NewResumeUsecase(repo, newDeps(cache.NewMemoryStore()))
	ctx := userCtx("user1")

	first, err := uc.FindOne(ctx, resumeID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", first.FullName)

	_, err = uc.FindOne(ctx, resumeID)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "FindOne", 1)

	patched, err := uc.Patch(ctx, resumeID, &domain.ResumeInput{FullName: str("Alex D.")})
	require.NoError(t, err)
	assert.Equal(t, "Alex D.", patched.FullName)
	assert.Equal(t, "Builder", patched.Headline)

	after, err := uc.FindOne(ctx, resumeID)
	require.NoError(t, err)
	assert.Equal(t, "Alex D.", after.FullName)
	repo.AssertExpectations(t)
}

func TestResumeUsecase_Ownership(t *testing.T) {
	repo := new(MockResumeRepo)
	foreign := &domain.Resume{ID: otherID, UserID: "user2"}
	repo.On("FindOne", mock.Anything, otherID).Return(foreign, nil)
	repo.On("FindOne", mock.Anything, missingID).Return(nil, domain.ErrNotFound)
	uc := usecase.NewResumeUsecase(repo, newDeps(nil))
	ctx := userCtx("user1")

	t.Run("Should forbid reading another user's resume", func(t *testing.T) {
		_, err := uc.FindOne(ctx, otherID)
		assertAppError(t, err, http.StatusForbidden, "You cannot manage resumes for another user.")
	})

	t.Run("Should forbid deleting another user's resume", func(t *testing.T) {
		err := uc.Delete(ctx, otherID)
		assertAppError(t, err, http.StatusForbidden, "You cannot manage resumes for another user.")
		repo.AssertNotCalled(t, "Delete", mock.Anything, otherID)
	})

	t.Run("Should report a missing resume", func(t *testing.T) {
		_, err := uc.FindOne(ctx, missingID)
		assertAppError(t, err, http.StatusNotFound, `Resume "`+missingID+`" not found.`)
	})

	t.Run("Should treat a malformed id as missing", func(t *testing.T) {
		_, err := uc.FindOne(ctx, "not-a-uuid")
		assertAppError(t, err, http.StatusNotFound, `Resume "not-a-uuid" not found.`)
		repo.AssertNotCalled(t, "FindOne", mock.Anything, "not-a-uuid")
	})
}

func TestResumeUsecase_FindIsScopedToCurrentUser(t *testing.T) {
	repo := new(MockResumeRepo)
	repo.On("Find", mock.Anything, mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.Criteria["userId"] == "user1"
	})).Return([]*domain.Resume{{ID: resumeID, UserID: "user1"}}, nil).Once()
	uc := usecase.NewResumeUsecase(repo, newDeps(nil))

	items, err := uc.Find(userCtx("user1"), domain.ListQuery{Criteria: map[string]any{"userId": "user2"}})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	repo.AssertExpectations(t)
}

func newExperienceFixture(t *testing.T) (domain.ExperienceUsecase, *MockResumeRepo, *fakeRepos) {
	t.Helper()
	resumes := new(MockResumeRepo)
	resumes.On("FindOne", mock.Anything, resumeID).Return(&domain.Resume{ID: resumeID, UserID: "user1"}, nil)
	resumes.On("FindOne", mock.Anything, otherID).Return(&domain.Resume{ID: otherID, UserID: "user2"}, nil)
	resumes.On("FindOne", mock.Anything, missingID).Return(nil, domain.ErrNotFound)

	repos := newFakeRepos()
	uc := usecase.NewExperienceUsecase(repos.experience, resumes, newDeps(cache.NewMemoryStore()))
	return uc, resumes, repos
}

func experienceInput(resume string) *domain.ExperienceInput {
	in := &domain.ExperienceInput{
		Company:   str("Bro World Studios"),
		Role:      str("Engineer"),
		StartDate: str("2019-01-01"),
		EndDate:   str("2020-01-01"),
	}
	if resume != "" {
		in.ResumeID = str(resume)
	}
	return in
}

func TestExperienceUsecase_Create(t *testing.T) {
	uc, _, repos := newExperienceFixture(t)
	ctx := userCtx("user1")

	t.Run("Should attach the entry to the caller's resume", func(t *testing.T) {
		exp, err := uc.Create(ctx, experienceInput(resumeID))
		require.NoError(t, err)
		assert.Equal(t, resumeID, exp.ResumeID)
		assert.Equal(t, "user1", exp.UserID)
		assert.Equal(t, "2019-01-01", exp.StartDate.String())
		require.NotNil(t, exp.EndDate)

		stored, err := repos.experience.FindOne(ctx, exp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bro World Studios", stored.Company)
	})

	t.Run("Should require a resume identifier", func(t *testing.T) {
		_, err := uc.Create(ctx, experienceInput(""))
		assertAppError(t, err, http.StatusBadRequest, "Resume identifier is required for experiences.")
	})

	t.Run("Should report an unknown resume", func(t *testing.T) {
		_, err := uc.Create(ctx, experienceInput(missingID))
		assertAppError(t, err, http.StatusNotFound, `Resume "`+missingID+`" not found.`)
	})

	t.Run("Should forbid another user's resume", func(t *testing.T) {
		_, err := uc.Create(ctx, experienceInput(otherID))
		assertAppError(t, err, http.StatusForbidden, "You cannot attach experiences to another user's resume.")
	})

	t.Run("Should reject a userId that is not the resume owner", func(t *testing.T) {
		in := experienceInput(resumeID)
		in.UserID = str("user2")
		_, err := uc.Create(ctx, in)
		assertAppError(t, err, http.StatusBadRequest, "userId does not match the resume owner")
	})

	t.Run("Should require company, role and start date", func(t *testing.T) {
		_, err := uc.Create(ctx, &domain.ExperienceInput{EntryFields: domain.EntryFields{ResumeID: str(resumeID)}})
		assertAppError(t, err, http.StatusBadRequest, "")
		assert.Contains(t, err.Error(), "company: This value should not be blank.")
		assert.Contains(t, err.Error(), "startDate: This value should not be blank.")
	})
}

func TestExperienceUsecase_PatchAndUpdate(t *testing.T) {
	uc, _, _ := newExperienceFixture(t)
	ctx := userCtx("user1")

	exp, err := uc.Create(ctx, experienceInput(resumeID))
	require.NoError(t, err)

	t.Run("Should clear the end date of a current position", func(t *testing.T) {
		current := true
		patched, err := uc.Patch(ctx, exp.ID, &domain.ExperienceInput{IsCurrent: &current})
		require.NoError(t, err)
		assert.True(t, patched.IsCurrent)
		assert.Nil(t, patched.EndDate)
		assert.Equal(t, resumeID, patched.ResumeID)
		assert.Equal(t, "Bro World Studios", patched.Company)
	})

	t.Run("Should clear absent nullable fields on update", func(t *testing.T) {
		in := experienceInput("")
		in.Location = nil
		updated, err := uc.Update(ctx, exp.ID, in)
		require.NoError(t, err)
		assert.Equal(t, resumeID, updated.ResumeID)
		assert.Nil(t, updated.Location)
		assert.False(t, updated.IsCurrent)
	})

	t.Run("Should forbid another user", func(t *testing.T) {
		_, err := uc.Patch(userCtx("user2"), exp.ID, &domain.ExperienceInput{Role: str("Boss")})
		assertAppError(t, err, http.StatusForbidden, "You cannot manage experiences for another user.")
	})

	t.Run("Should reject moving to another user's resume", func(t *testing.T) {
		_, err := uc.Patch(ctx, exp.ID, &domain.ExperienceInput{EntryFields: domain.EntryFields{ResumeID: str(otherID)}})
		assertAppError(t, err, http.StatusForbidden, "You cannot attach experiences to another user's resume.")
	})

	t.Run("Should delete the entry", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, exp.ID))
		_, err := uc.FindOne(ctx, exp.ID)
		assertAppError(t, err, http.StatusNotFound, `Experience "`+exp.ID+`" not found.`)
	})
}

func TestExperienceUsecase_ListsAreScopedAndInvalidated(t *testing.T) {
	uc, _, _ := newExperienceFixture(t)
	ctx := userCtx("user1")

	items, err := uc.Find(ctx, domain.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = uc.Create(ctx, experienceInput(resumeID))
	require.NoError(t, err)

	items, err = uc.Find(ctx, domain.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	n, err := uc.Count(ctx, domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	others, err := uc.Find(userCtx("user2"), domain.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestEntryUsecases_Messages(t *testing.T) {
	resumes := new(MockResumeRepo)
	resumes.On("FindOne", mock.Anything, resumeID).Return(&domain.Resume{ID: resumeID, UserID: "user1"}, nil)
	resumes.On("FindOne", mock.Anything, otherID).Return(&domain.Resume{ID: otherID, UserID: "user2"}, nil)
	repos := newFakeRepos()
	ctx := userCtx("user1")

	skills := usecase.NewSkillUsecase(repos.skill, resumes, newDeps(nil))
	education := usecase.NewEducationUsecase(repos.education, resumes, newDeps(nil))

	t.Run("Should reject a name made only of markup", func(t *testing.T) {
		_, err := skills.Create(ctx, &domain.SkillInput{
			EntryFields:   domain.EntryFields{ResumeID: str(resumeID)},
			LabelledInput: domain.LabelledInput{Name: str("<script>alert(1)</script>")},
		})
		assertAppError(t, err, http.StatusBadRequest, "name: This value should not be blank.")

		all, err := repos.skill.FindByUserID(ctx, "user1")
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Should name the kind in plural", func(t *testing.T) {
		_, err := skills.Create(ctx, &domain.SkillInput{LabelledInput: domain.LabelledInput{Name: str("Go")}})
		assertAppError(t, err, http.StatusBadRequest, "Resume identifier is required for skills.")

		_, err = education.Create(ctx, &domain.EducationInput{
			EntryFields: domain.EntryFields{ResumeID: str(otherID)},
			School:      str("Polytechnique"),
		})
		assertAppError(t, err, http.StatusForbidden, "You cannot attach education entries to another user's resume.")
	})
}

func TestProjectUsecase_StatusFallback(t *testing.T) {
	resumes := new(MockResumeRepo)
	resumes.On("FindOne", mock.Anything, resumeID).Return(&domain.Resume{ID: resumeID, UserID: "user1"}, nil)
	repos := newFakeRepos()
	uc := usecase.NewProjectUsecase(repos.project, resumes, newDeps(nil))
	ctx := userCtx("user1")

	created, err := uc.Create(ctx, &domain.ProjectInput{
		EntryFields: domain.EntryFields{ResumeID: str(resumeID)},
		Title:       str("Bro CLI"),
		Status:      str("archived"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPublic, created.Status)

	private, err := uc.Patch(ctx, created.ID, &domain.ProjectInput{Status: str("PRIVATE")})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPrivate, private.Status)

	kept, err := uc.Patch(ctx, created.ID, &domain.ProjectInput{Title: str("Bro CLI 2")})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPrivate, kept.Status)
}

func TestProjection_FixtureProfile(t *testing.T) {
	repos := newFakeRepos()
	store := cache.NewMemoryStore()
	ctx := context.Background()

	_, err := usecase.LoadFixtures(ctx, repos.repositories(), store)
	require.NoError(t, err)
	sum, err := usecase.LoadFixtures(ctx, repos.repositories(), store)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Experiences)

	projection := usecase.NewProjectionUsecase(repos.repositories(), store, 0)

	profile, err := projection.GetResumeProfile(ctx, usecase.FixtureUserID)
	require.NoError(t, err)
	assert.Equal(t, `Alex "Bro" Devaux`, profile.Resume.FullName)
	assert.Len(t, profile.Experiences, 2)
	assert.Len(t, profile.Education, 1)
	assert.Len(t, profile.Skills, 3)
	assert.Len(t, profile.Languages, 2)
	assert.Len(t, profile.Hobbies, 2)
	assert.Len(t, profile.Projects, 2)
	assert.Equal(t, "Symfony", profile.Skills[0].Name)
	assert.Equal(t, "Bro World Studios", profile.Experiences[0].Company)

	hobbies, err := projection.GetHobbies(ctx, usecase.FixtureUserID)
	require.NoError(t, err)
	assert.Equal(t, "Indie game design", hobbies[0].Name)

	_, err = projection.GetResumeProfile(ctx, "nobody")
	assertAppError(t, err, http.StatusNotFound, "Resume not found for provided userId.")

	_, err = projection.GetSkills(ctx, "nobody")
	assertAppError(t, err, http.StatusNotFound, "Resume not found for provided userId.")
}

func TestProjection_CachedUntilInvalidated(t *testing.T) {
	repos := newFakeRepos()
	store := cache.NewMemoryStore()
	ctx := context.Background()
	_, err := usecase.LoadFixtures(ctx, repos.repositories(), store)
	require.NoError(t, err)
	projection := usecase.NewProjectionUsecase(repos.repositories(), store, time.Minute)

	profile, err := projection.GetResumeProfile(ctx, usecase.FixtureUserID)
	require.NoError(t, err)
	require.Len(t, profile.Skills, 3)

	extra := &domain.Skill{
		EntryMeta: domain.EntryMeta{ID: uuid.NewString(), ResumeID: profile.Resume.ID, UserID: usecase.FixtureUserID, Position: 9},
		Labelled:  domain.Labelled{Name: "Go"},
	}
	require.NoError(t, repos.skill.Create(ctx, extra))

	cached, err := projection.GetSkills(ctx, usecase.FixtureUserID)
	require.NoError(t, err)
	assert.Len(t, cached, 3)

	require.NoError(t, store.InvalidateTags(ctx, usecase.ProfileTag(usecase.FixtureUserID)))
	fresh, err := projection.GetSkills(ctx, usecase.FixtureUserID)
	require.NoError(t, err)
	assert.Len(t, fresh, 4)
}

func TestSetupUsecase_InitResume(t *testing.T) {
	repos := newFakeRepos()
	setup := usecase.NewSetupUsecase(repos.resumes, newDeps(nil))
	ctx := context.Background()

	created, err := setup.InitResume(ctx, "user1", "")
	require.NoError(t, err)
	assert.Equal(t, "Full Name", created.FullName)
	assert.Equal(t, "Headline Resume", created.Headline)
	require.NotNil(t, created.Summary)
	assert.Equal(t, "Summary resume", *created.Summary)
	assert.Nil(t, created.AvatarURL)

	again, err := setup.InitResume(ctx, "user1", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	named, err := setup.InitResume(ctx, "user2", "Jane Roe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", named.FullName)
}

func TestExportUsecase(t *testing.T) {
	repos := newFakeRepos()
	ctx := context.Background()
	_, err := usecase.LoadFixtures(ctx, repos.repositories(), nil)
	require.NoError(t, err)
	export := usecase.NewExportUsecase(usecase.NewProjectionUsecase(repos.repositories(), nil, 0), nil)

	t.Run("xlsx has one sheet per section", func(t *testing.T) {
		file, err := export.Export(ctx, usecase.FixtureUserID, "xlsx")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, []string{"Resume", "Experience", "Education", "Skills", "Languages", "Hobbies", "Projects"}, f.GetSheetList())

		rows, err := f.GetRows("Skills")
		require.NoError(t, err)
		assert.Len(t, rows, 4)
		assert.Equal(t, "Symfony", rows[1][0])
	})

	t.Run("csv lists every section", func(t *testing.T) {
		file, err := export.Export(ctx, usecase.FixtureUserID, "CSV")
		require.NoError(t, err)
		assert.Contains(t, file.ContentType, "text/csv")
		body := string(file.Data)
		assert.Contains(t, body, "Experience\n")
		assert.Contains(t, body, "Trail running,Outdoors,advanced")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := export.Export(ctx, usecase.FixtureUserID, "pdf")
		assertAppError(t, err, http.StatusBadRequest, "Unsupported export format: pdf.")
	})

	t.Run("missing resume", func(t *testing.T) {
		_, err := export.Export(ctx, "nobody", "csv")
		assertAppError(t, err, http.StatusNotFound, "")
	})
}

func TestCacheRefresher(t *testing.T) {
	repos := newFakeRepos()
	store := cache.NewMemoryStore()
	ctx := context.Background()
	_, err := usecase.LoadFixtures(ctx, repos.repositories(), store)
	require.NoError(t, err)
	projection := usecase.NewProjectionUsecase(repos.repositories(), store, 0)
	refresher := usecase.NewCacheRefresher(repos.resumes, projection, store)

	t.Run("public scope stores the profile", func(t *testing.T) {
		n, err := refresher.Refresh(ctx, usecase.RefreshScopePublic)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		var profile domain.ResumeProfile
		hit, err := store.Get(ctx, usecase.ProfileKey(usecase.FixtureUserID), &profile)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Len(t, profile.Skills, 3)
	})

	t.Run("profile scope drops resource entries", func(t *testing.T) {
		key := "skill." + usecase.FixtureUserID + ".list.x"
		require.NoError(t, store.Set(ctx, key, []string{"a"}, time.Minute, usecase.UserTag("skill", usecase.FixtureUserID)))

		n, err := refresher.Refresh(ctx, usecase.RefreshScopeProfile)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		var out []string
		hit, err := store.Get(ctx, key, &out)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("unknown scope", func(t *testing.T) {
		_, err := refresher.Refresh(ctx, "everything")
		assert.Error(t, err)
	})
}

func TestHealthUsecase(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    nil,
	})
	assert.Equal(t, map[string]string{"status": "ok", "database": "up", "redis": "disabled"}, uc.Check(context.Background()))

	down := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(context.Context) error { return errors.New("refused") },
	})
	result := down.Check(context.Background())
	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "down", result["database"])
}
