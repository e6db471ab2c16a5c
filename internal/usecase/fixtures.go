package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/cache"

	"github.com/google/uuid"
)

// FixtureUserID owns the demo resume loaded by LoadFixtures.
const FixtureUserID = "20000000-0000-1000-8000-000000000001"

// FixtureSummary counts the entries written by LoadFixtures.
type FixtureSummary struct {
	ResumeID    string
	Experiences int
	Education   int
	Skills      int
	Languages   int
	Hobbies     int
	Projects    int
}

// LoadFixtures replaces the demo resume of FixtureUserID. Deleting the
// previous resume cascades to its entries, so running it twice yields the
// same data.
func LoadFixtures(ctx context.Context, repos domain.Repositories, store cache.Store) (*FixtureSummary, error) {
	existing, err := repos.Resume.FindOneByUserID(ctx, FixtureUserID)
	switch {
	case err == nil:
		if err := repos.Resume.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("delete fixture resume: %w", err)
		}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find fixture resume: %w", err)
	}

	f := newFixtureBuilder(time.Now().UTC().Truncate(time.Microsecond))
	resume := f.resume()
	if err := repos.Resume.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("create fixture resume: %w", err)
	}

	sum := &FixtureSummary{ResumeID: resume.ID}
	for _, e := range f.experiences(resume) {
		if err := repos.Experience.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("create fixture experience: %w", err)
		}
		sum.Experiences++
	}
	for _, e := range f.education(resume) {
		if err := repos.Education.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("create fixture education: %w", err)
		}
		sum.Education++
	}
	for _, s := range f.skills(resume) {
		if err := repos.Skill.Create(ctx, s); err != nil {
			return nil, fmt.Errorf("create fixture skill: %w", err)
		}
		sum.Skills++
	}
	for _, l := range f.languages(resume) {
		if err := repos.Language.Create(ctx, l); err != nil {
			return nil, fmt.Errorf("create fixture language: %w", err)
		}
		sum.Languages++
	}
	for _, h := range f.hobbies(resume) {
		if err := repos.Hobby.Create(ctx, h); err != nil {
			return nil, fmt.Errorf("create fixture hobby: %w", err)
		}
		sum.Hobbies++
	}
	for _, p := range f.projects(resume) {
		if err := repos.Project.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("create fixture project: %w", err)
		}
		sum.Projects++
	}

	if store != nil {
		if err := store.InvalidateTags(ctx, UserTags(FixtureUserID)...); err != nil {
			return sum, fmt.Errorf("invalidate fixture cache: %w", err)
		}
	}
	return sum, nil
}

type fixtureBuilder struct {
	now time.Time
}

func newFixtureBuilder(now time.Time) fixtureBuilder {
	return fixtureBuilder{now: now}
}

func (f fixtureBuilder) meta(resume *domain.Resume, position int) domain.EntryMeta {
	return domain.EntryMeta{
		ID:        uuid.Must(uuid.NewV7()).String(),
		ResumeID:  resume.ID,
		UserID:    resume.UserID,
		Position:  position,
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
}

func ptr[T any](v T) *T { return &v }

func (f fixtureBuilder) resume() *domain.Resume {
	return &domain.Resume{
		ID:        uuid.Must(uuid.NewV7()).String(),
		UserID:    FixtureUserID,
		FullName:  `Alex "Bro" Devaux`,
		Headline:  "Full-stack artisan & indie builder",
		Summary:   ptr("Crafting joyful experiences across web and native platforms, with a dash of ops and a sprinkle of DX love."),
		Location:  ptr("Montréal, QC"),
		Email:     ptr("hello@bro.dev"),
		Phone:     ptr("+1 555 0100 200"),
		Website:   ptr("https://bro.dev"),
		AvatarURL: ptr("https://cdn.example.com/bro/avatar.png"),
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
}

func (f fixtureBuilder) experiences(r *domain.Resume) []*domain.Experience {
	return []*domain.Experience{
		{
			EntryMeta:       f.meta(r, 0),
			Company:         "Bro World Studios",
			Role:            "Founder & Principal Engineer",
			StartDate:       domain.NewDate(2019, time.January, 1),
			IsCurrent:       true,
			Location:        ptr("Remote"),
			CompanyLocation: ptr("Montréal, QC"),
			CompanyLogo:     ptr("https://cdn.example.com/bro-world/logo.png"),
			Description:     ptr("Leading product, code and community initiatives across the Bro ecosystem."),
		},
		{
			EntryMeta:       f.meta(r, 1),
			Company:         "Indie Labs",
			Role:            "Senior Software Developer",
			StartDate:       domain.NewDate(2015, time.June, 1),
			EndDate:         ptr(domain.NewDate(2018, time.December, 31)),
			Location:        ptr("Paris, France"),
			CompanyLocation: ptr("Paris, France"),
			CompanyLogo:     ptr("https://cdn.example.com/indie-labs/logo.png"),
			Description:     ptr("Scaled developer tooling and mentored product squads."),
		},
	}
}

func (f fixtureBuilder) education(r *domain.Resume) []*domain.Education {
	return []*domain.Education{{
		EntryMeta:      f.meta(r, 0),
		School:         "École Bro de Technologie",
		Degree:         ptr("MSc Software Engineering"),
		StartDate:      ptr(domain.NewDate(2012, time.September, 1)),
		EndDate:        ptr(domain.NewDate(2014, time.June, 1)),
		SchoolLocation: ptr("Montréal, QC"),
		SchoolLogo:     ptr("https://cdn.example.com/bro-tech/logo.png"),
		Description:    ptr("Thesis on resilient cloud-native architectures."),
	}}
}

func labelled(name, category, level string) domain.Labelled {
	return domain.Labelled{Name: name, Category: ptr(category), Level: ptr(level)}
}

func (f fixtureBuilder) skills(r *domain.Resume) []*domain.Skill {
	return []*domain.Skill{
		{EntryMeta: f.meta(r, 0), Labelled: labelled("Symfony", "Backend", "expert")},
		{EntryMeta: f.meta(r, 1), Labelled: labelled("Vue.js", "Frontend", "advanced")},
		{EntryMeta: f.meta(r, 2), Labelled: labelled("DevOps", "Platform", "advanced")},
	}
}

func (f fixtureBuilder) languages(r *domain.Resume) []*domain.Language {
	return []*domain.Language{
		{EntryMeta: f.meta(r, 0), Labelled: labelled("English", "Spoken", "native")},
		{EntryMeta: f.meta(r, 1), Labelled: labelled("French", "Spoken", "fluent")},
	}
}

func (f fixtureBuilder) hobbies(r *domain.Resume) []*domain.Hobby {
	return []*domain.Hobby{
		{EntryMeta: f.meta(r, 0), Labelled: labelled("Indie game design", "Creative", "enthusiast")},
		{EntryMeta: f.meta(r, 1), Labelled: labelled("Trail running", "Outdoors", "advanced")},
	}
}

func (f fixtureBuilder) projects(r *domain.Resume) []*domain.Project {
	return []*domain.Project{
		{
			EntryMeta:     f.meta(r, 0),
			Title:         "Resume Platform",
			Description:   ptr("Composable resume builder empowering builders worldwide."),
			LogoURL:       ptr("https://cdn.example.com/projects/resume-platform.png"),
			URLDemo:       ptr("https://resume.bro.dev"),
			URLRepository: ptr("https://github.com/bro-world/resume-platform"),
			Status:        domain.ProjectStatusPublic,
		},
		{
			EntryMeta:     f.meta(r, 1),
			Title:         "Bro CLI",
			Description:   ptr("Developer-first toolkit for shipping indie products."),
			LogoURL:       ptr("https://cdn.example.com/projects/bro-cli.png"),
			URLDemo:       ptr("https://cli.bro.dev"),
			URLRepository: ptr("https://github.com/bro-world/bro-cli"),
			Status:        domain.ProjectStatusPrivate,
		},
	}
}
