package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const errProfileNotFound = "Resume not found for provided userId."

type projectionUsecase struct {
	repos domain.Repositories
	cache cache.Store
	ttl   time.Duration
}

// NewProjectionUsecase builds the public read model. It reads the
// repositories directly: the profile is served without an authenticated
// user.
func NewProjectionUsecase(repos domain.Repositories, store cache.Store, ttl time.Duration) domain.ProjectionUsecase {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &projectionUsecase{repos: repos, cache: store, ttl: ttl}
}

func (u *projectionUsecase) GetResumeProfile(ctx context.Context, userID string) (*domain.ResumeProfile, error) {
	return remember(ctx, u.cache, ProfileKey(userID), u.ttl, []string{ProfileTag(userID)}, func() (*domain.ResumeProfile, error) {
		resume, err := u.repos.Resume.FindOneByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.New(http.StatusNotFound, errProfileNotFound, err)
			}
			return nil, err
		}
		return u.build(ctx, resume)
	})
}

// RebuildProfile recomputes the profile of resume's owner and overwrites
// the cached copy.
func (u *projectionUsecase) RebuildProfile(ctx context.Context, resume *domain.Resume) (*domain.ResumeProfile, error) {
	profile, err := u.build(ctx, resume)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, ProfileKey(resume.UserID), profile, u.ttl, ProfileTag(resume.UserID)); err != nil {
			logger.Log.WarnContext(ctx, "cache write failed", "key", ProfileKey(resume.UserID), "error", err)
		}
	}
	return profile, nil
}

func (u *projectionUsecase) build(ctx context.Context, resume *domain.Resume) (*domain.ResumeProfile, error) {
	p := &domain.ResumeProfile{Resume: resume}
	userID := resume.UserID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p.Experiences, err = u.repos.Experience.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Education, err = u.repos.Education.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Skills, err = u.repos.Skill.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Languages, err = u.repos.Language.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Hobbies, err = u.repos.Hobby.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Projects, err = u.repos.Project.FindByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

func (u *projectionUsecase) GetExperiences(ctx context.Context, userID string) ([]*domain.Experience, error) {
	p, err := u.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Experiences, nil
}

func (u *projectionUsecase) GetEducation(ctx context.Context, userID string) ([]*domain.Education, error) {
	p, err := u.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Education, nil
}

func (u *projectionUsecase) GetSkills(ctx context.Context, userID string) ([]*domain.Skill, error) {
	p, err := u.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Skills, nil
}

func (u *projectionUsecase) GetLanguages(ctx context.Context, userID string) ([]*domain.Language, error) {
	p, err := u.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Languages, nil
}

func (u *projectionUsecase) GetHobbies(ctx context.Context, userID string) ([]*domain.Hobby, error) {
	p, err := u.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Hobbies, nil
}

func (u *projectionUsecase) GetProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	p, err := u.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Projects, nil
}
