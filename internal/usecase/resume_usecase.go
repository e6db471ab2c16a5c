package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-resume-backend/internal/commandbus"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const errResumeExists = "A resume already exists for this user."

type createResume struct {
	resume *domain.Resume
}

func (createResume) CommandName() string { return "create.resume" }

type resumeUsecase struct {
	repo     domain.ResumeRepository
	bus      *commandbus.Bus
	cache    scopedCache
	validate *validator.Validate
	audit    *security.SecurityLogger
	now      func() time.Time
}

func NewResumeUsecase(repo domain.ResumeRepository, deps Deps) domain.ResumeUsecase {
	deps = deps.withDefaults()
	u := &resumeUsecase{
		repo:     repo,
		bus:      deps.Bus,
		cache:    scopedCache{store: deps.Cache, resource: "resume", ttl: deps.CacheTTL},
		validate: deps.Validate,
		audit:    deps.Audit,
		now:      time.Now,
	}
	u.bus.Register(createResume{}.CommandName(), "resume.handleCreate", commandbus.Typed(u.handleCreate))
	return u
}

func (u *resumeUsecase) Find(ctx context.Context, q domain.ListQuery) ([]*domain.Resume, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	q = q.ScopedTo(userID)

	items, err := cached(ctx, u.cache, userID, "list", q, func() ([]*domain.Resume, error) {
		return u.repo.Find(ctx, q)
	})
	if err != nil {
		return nil, mapRepoError(err, "Resume", "")
	}
	return items, nil
}

func (u *resumeUsecase) Count(ctx context.Context, q domain.ListQuery) (int, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return 0, err
	}
	n, err := u.repo.Count(ctx, q.ScopedTo(userID))
	if err != nil {
		return 0, mapRepoError(err, "Resume", "")
	}
	return n, nil
}

func (u *resumeUsecase) IDs(ctx context.Context, q domain.ListQuery) ([]string, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := u.repo.IDs(ctx, q.ScopedTo(userID))
	if err != nil {
		return nil, mapRepoError(err, "Resume", "")
	}
	return ids, nil
}

func (u *resumeUsecase) FindOne(ctx context.Context, id string) (*domain.Resume, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	return cached(ctx, u.cache, userID, "item", map[string]string{"id": id}, func() (*domain.Resume, error) {
		r, err := u.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := u.ensureOwner(ctx, userID, r); err != nil {
			return nil, err
		}
		return r, nil
	})
}

func (u *resumeUsecase) FindOneByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	r, err := u.repo.FindOneByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "Resume", "")
	}
	return r, nil
}

func (u *resumeUsecase) FindByUserID(ctx context.Context, userID string) ([]*domain.Resume, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "Resume", "")
	}
	return items, nil
}

func (u *resumeUsecase) Create(ctx context.Context, in *domain.ResumeInput) (*domain.Resume, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateInput(u.validate, in, in.Required(), false); err != nil {
		return nil, err
	}
	if err := u.ensureInputOwner(ctx, userID, in, ""); err != nil {
		return nil, err
	}

	r := &domain.Resume{UserID: userID}
	in.Apply(r, false)

	env, err := u.bus.Dispatch(ctx, createResume{resume: r})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.New(http.StatusConflict, errResumeExists, err)
		}
		return nil, mapRepoError(err, "Resume", "")
	}
	stamp, ok := env.Last()
	if !ok {
		return nil, errors.New("resume creation message was not handled")
	}
	created, ok := stamp.Result.(*domain.Resume)
	if !ok {
		return nil, fmt.Errorf("resume creation returned %T", stamp.Result)
	}

	u.cache.invalidate(ctx, userID)
	return created, nil
}

func (u *resumeUsecase) handleCreate(ctx context.Context, cmd createResume) (any, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := timestamp(u.now)
	cmd.resume.ID = id.String()
	cmd.resume.CreatedAt = now
	cmd.resume.UpdatedAt = now

	if err := u.repo.Create(ctx, cmd.resume); err != nil {
		return nil, err
	}
	return cmd.resume, nil
}

func (u *resumeUsecase) Update(ctx context.Context, id string, in *domain.ResumeInput) (*domain.Resume, error) {
	return u.modify(ctx, id, in, false)
}

func (u *resumeUsecase) Patch(ctx context.Context, id string, in *domain.ResumeInput) (*domain.Resume, error) {
	return u.modify(ctx, id, in, true)
}

func (u *resumeUsecase) modify(ctx context.Context, id string, in *domain.ResumeInput, partial bool) (*domain.Resume, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	r, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.ensureOwner(ctx, userID, r); err != nil {
		return nil, err
	}
	if err := validateInput(u.validate, in, in.Required(), partial); err != nil {
		return nil, err
	}
	if err := u.ensureInputOwner(ctx, userID, in, r.ID); err != nil {
		return nil, err
	}

	in.Apply(r, partial)
	r.UpdatedAt = timestamp(u.now)
	if err := u.repo.Update(ctx, r); err != nil {
		return nil, mapRepoError(err, "Resume", id)
	}

	u.cache.invalidate(ctx, userID)
	return r, nil
}

// Delete removes the resume. Its entries go with it, so every cached
// resource of the owner is dropped.
func (u *resumeUsecase) Delete(ctx context.Context, id string) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	r, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := u.ensureOwner(ctx, userID, r); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "Resume", id)
	}

	u.cache.invalidate(ctx, userID, UserTags(userID)...)
	return nil
}

func (u *resumeUsecase) load(ctx context.Context, id string) (*domain.Resume, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, mapRepoError(domain.ErrNotFound, "Resume", id)
	}
	r, err := u.repo.FindOne(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Resume", id)
	}
	return r, nil
}

func (u *resumeUsecase) ensureOwner(ctx context.Context, userID string, r *domain.Resume) error {
	if r.UserID == userID {
		return nil
	}
	u.audit.LogOwnershipViolation(ctx, userID, "resume", r.ID, "resume owned by another user")
	return apperror.Forbidden("You cannot manage resumes for another user.")
}

func (u *resumeUsecase) ensureInputOwner(ctx context.Context, userID string, in *domain.ResumeInput, resumeID string) error {
	if in.UserID == nil || *in.UserID == "" || *in.UserID == userID {
		return nil
	}
	u.audit.LogOwnershipViolation(ctx, userID, "resume", resumeID, "userId targets another user")
	return apperror.Forbidden("You cannot manage resumes for another user.")
}
