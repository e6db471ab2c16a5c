package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/google/uuid"
)

const defaultFullName = "Full Name"

type setupUsecase struct {
	repo  domain.ResumeRepository
	cache scopedCache
	now   func() time.Time
}

func NewSetupUsecase(repo domain.ResumeRepository, deps Deps) domain.SetupUsecase {
	deps = deps.withDefaults()
	return &setupUsecase{
		repo:  repo,
		cache: scopedCache{store: deps.Cache, resource: "resume", ttl: deps.CacheTTL},
		now:   time.Now,
	}
}

// InitResume returns the resume of userID, creating a placeholder one when
// the user has none yet.
func (u *setupUsecase) InitResume(ctx context.Context, userID, name string) (*domain.Resume, error) {
	existing, err := u.repo.FindOneByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	r := placeholderResume(userID, name)
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := timestamp(u.now)
	r.ID = id.String()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := u.repo.Create(ctx, r); err != nil {
		// Another request created it first.
		if errors.Is(err, domain.ErrConflict) {
			return u.repo.FindOneByUserID(ctx, userID)
		}
		return nil, err
	}

	u.cache.invalidate(ctx, userID)
	return r, nil
}

func placeholderResume(userID, name string) *domain.Resume {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultFullName
	}
	str := func(s string) *string { return &s }
	return &domain.Resume{
		UserID:   userID,
		FullName: name,
		Headline: "Headline Resume",
		Summary:  str("Summary resume"),
		Location: str("Location"),
		Email:    str("Email"),
		Phone:    str("Phone"),
		Website:  str("Website"),
	}
}
