package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-resume-backend/internal/commandbus"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// createEntry asks the bus to persist a new resume entry.
type createEntry[E any] struct {
	kind   string
	entity E
}

func (c createEntry[E]) CommandName() string { return "create." + c.kind }

// entryResource implements the CRUD resource of one resume entry kind.
type entryResource[E domain.Entry, I domain.EntryInput[E]] struct {
	kind      string
	label     string
	plural    string // used in client messages
	repo      domain.EntryRepository[E]
	resumes   domain.ResumeRepository
	bus       *commandbus.Bus
	cache     scopedCache
	validate  *validator.Validate
	audit     *security.SecurityLogger
	newEntity func() E
	now       func() time.Time
}

func newEntryResource[E domain.Entry, I domain.EntryInput[E]](
	kind, label, plural string,
	repo domain.EntryRepository[E],
	resumes domain.ResumeRepository,
	newEntity func() E,
	deps Deps,
) *entryResource[E, I] {
	deps = deps.withDefaults()
	r := &entryResource[E, I]{
		kind:      kind,
		label:     label,
		plural:    plural,
		repo:      repo,
		resumes:   resumes,
		bus:       deps.Bus,
		cache:     scopedCache{store: deps.Cache, resource: kind, ttl: deps.CacheTTL},
		validate:  deps.Validate,
		audit:     deps.Audit,
		newEntity: newEntity,
		now:       time.Now,
	}
	r.bus.Register(createEntry[E]{kind: kind}.CommandName(), kind+".handleCreate", commandbus.Typed(r.handleCreate))
	return r
}

func (r *entryResource[E, I]) Find(ctx context.Context, q domain.ListQuery) ([]E, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	q = q.ScopedTo(userID)

	items, err := cached(ctx, r.cache, userID, "list", q, func() ([]E, error) {
		return r.repo.Find(ctx, q)
	})
	if err != nil {
		return nil, mapRepoError(err, r.label, "")
	}
	return items, nil
}

func (r *entryResource[E, I]) Count(ctx context.Context, q domain.ListQuery) (int, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return 0, err
	}
	n, err := r.repo.Count(ctx, q.ScopedTo(userID))
	if err != nil {
		return 0, mapRepoError(err, r.label, "")
	}
	return n, nil
}

func (r *entryResource[E, I]) IDs(ctx context.Context, q domain.ListQuery) ([]string, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := r.repo.IDs(ctx, q.ScopedTo(userID))
	if err != nil {
		return nil, mapRepoError(err, r.label, "")
	}
	return ids, nil
}

func (r *entryResource[E, I]) FindOne(ctx context.Context, id string) (E, error) {
	var zero E
	userID, err := currentUser(ctx)
	if err != nil {
		return zero, err
	}

	return cached(ctx, r.cache, userID, "item", map[string]string{"id": id}, func() (E, error) {
		e, err := r.load(ctx, id)
		if err != nil {
			return zero, err
		}
		if err := r.ensureOwner(ctx, userID, e); err != nil {
			return zero, err
		}
		return e, nil
	})
}

func (r *entryResource[E, I]) FindByUserID(ctx context.Context, userID string) ([]E, error) {
	items, err := r.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, r.label, "")
	}
	return items, nil
}

func (r *entryResource[E, I]) Create(ctx context.Context, in I) (E, error) {
	var zero E
	userID, err := currentUser(ctx)
	if err != nil {
		return zero, err
	}
	if err := validateInput(r.validate, in, in.Required(), false); err != nil {
		return zero, err
	}

	e := r.newEntity()
	if err := r.ensureResumeAssociation(ctx, userID, in.Fields(), "", e.Meta()); err != nil {
		return zero, err
	}
	in.Apply(e, false)
	domain.ApplyPosition(e.Meta(), in.Fields(), false)

	env, err := r.bus.Dispatch(ctx, createEntry[E]{kind: r.kind, entity: e})
	if err != nil {
		return zero, mapRepoError(err, r.label, "")
	}
	stamp, ok := env.Last()
	if !ok {
		return zero, fmt.Errorf("%s creation message was not handled", r.kind)
	}
	created, ok := stamp.Result.(E)
	if !ok {
		return zero, fmt.Errorf("%s creation returned %T", r.kind, stamp.Result)
	}

	r.cache.invalidate(ctx, userID)
	return created, nil
}

// handleCreate is the bus handler persisting a new entry.
func (r *entryResource[E, I]) handleCreate(ctx context.Context, cmd createEntry[E]) (any, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	meta := cmd.entity.Meta()
	now := timestamp(r.now)
	meta.ID = id.String()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if err := r.repo.Create(ctx, cmd.entity); err != nil {
		return nil, err
	}
	return cmd.entity, nil
}

func (r *entryResource[E, I]) Update(ctx context.Context, id string, in I) (E, error) {
	return r.modify(ctx, id, in, false)
}

func (r *entryResource[E, I]) Patch(ctx context.Context, id string, in I) (E, error) {
	return r.modify(ctx, id, in, true)
}

func (r *entryResource[E, I]) modify(ctx context.Context, id string, in I, partial bool) (E, error) {
	var zero E
	userID, err := currentUser(ctx)
	if err != nil {
		return zero, err
	}

	e, err := r.load(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := r.ensureOwner(ctx, userID, e); err != nil {
		return zero, err
	}
	if err := validateInput(r.validate, in, in.Required(), partial); err != nil {
		return zero, err
	}

	meta := e.Meta()
	if err := r.ensureResumeAssociation(ctx, userID, in.Fields(), meta.ResumeID, meta); err != nil {
		return zero, err
	}
	in.Apply(e, partial)
	domain.ApplyPosition(meta, in.Fields(), partial)
	meta.UpdatedAt = timestamp(r.now)

	if err := r.repo.Update(ctx, e); err != nil {
		return zero, mapRepoError(err, r.label, id)
	}

	r.cache.invalidate(ctx, userID)
	return e, nil
}

func (r *entryResource[E, I]) Delete(ctx context.Context, id string) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	e, err := r.load(ctx, id)
	if err != nil {
		return err
	}
	if err := r.ensureOwner(ctx, userID, e); err != nil {
		return err
	}
	if err := r.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, r.label, id)
	}

	r.cache.invalidate(ctx, userID)
	return nil
}

func (r *entryResource[E, I]) load(ctx context.Context, id string) (E, error) {
	var zero E
	if _, err := uuid.Parse(id); err != nil {
		return zero, mapRepoError(domain.ErrNotFound, r.label, id)
	}
	e, err := r.repo.FindOne(ctx, id)
	if err != nil {
		return zero, mapRepoError(err, r.label, id)
	}
	return e, nil
}

func (r *entryResource[E, I]) ensureOwner(ctx context.Context, userID string, e E) error {
	meta := e.Meta()
	if meta.UserID == userID {
		return nil
	}
	r.audit.LogOwnershipViolation(ctx, userID, r.kind, meta.ID, "entry owned by another user")
	return apperror.Forbidden(fmt.Sprintf("You cannot manage %s for another user.", r.plural))
}

// ensureResumeAssociation resolves the target resume of an entry, checks it
// belongs to userID and copies its identity onto meta. currentResumeID is
// used when the input carries no resumeId.
func (r *entryResource[E, I]) ensureResumeAssociation(ctx context.Context, userID string, f *domain.EntryFields, currentResumeID string, meta *domain.EntryMeta) error {
	resumeID := currentResumeID
	if f.ResumeID != nil && strings.TrimSpace(*f.ResumeID) != "" {
		resumeID = strings.TrimSpace(*f.ResumeID)
	}
	if resumeID == "" {
		return apperror.BadRequest(fmt.Sprintf("Resume identifier is required for %s.", r.plural))
	}

	resume, err := r.resumes.FindOne(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidQuery) {
			return apperror.New(404, fmt.Sprintf("Resume \"%s\" not found.", resumeID), err)
		}
		return err
	}
	if resume.UserID != userID {
		r.audit.LogOwnershipViolation(ctx, userID, r.kind, resume.ID, "foreign resume")
		return apperror.Forbidden(fmt.Sprintf("You cannot attach %s to another user's resume.", r.plural))
	}
	if f.UserID != nil && *f.UserID != "" && *f.UserID != resume.UserID {
		return apperror.BadRequest("userId does not match the resume owner")
	}

	meta.ResumeID = resume.ID
	meta.UserID = resume.UserID
	return nil
}
