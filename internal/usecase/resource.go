package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-resume-backend/internal/commandbus"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/sanitize"
	"go-resume-backend/pkg/security"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const DefaultCacheTTL = 300 * time.Second

// ResourceNames lists the cache namespaces of every entity resource.
var ResourceNames = []string{"resume", "experience", "education", "skill", "language", "hobby", "project"}

// Deps are the collaborators shared by every resource.
type Deps struct {
	Bus      *commandbus.Bus
	Cache    cache.Store
	CacheTTL time.Duration
	Validate *validator.Validate
	Audit    *security.SecurityLogger
}

func (d Deps) withDefaults() Deps {
	if d.Bus == nil {
		d.Bus = commandbus.New(nil)
	}
	if d.CacheTTL <= 0 {
		d.CacheTTL = DefaultCacheTTL
	}
	if d.Validate == nil {
		d.Validate = validation.New()
	}
	if d.Audit == nil {
		d.Audit = security.DefaultLogger()
	}
	return d
}

// Resources groups every entity resource.
type Resources struct {
	Resume     domain.ResumeUsecase
	Experience domain.ExperienceUsecase
	Education  domain.EducationUsecase
	Skill      domain.SkillUsecase
	Language   domain.LanguageUsecase
	Hobby      domain.HobbyUsecase
	Project    domain.ProjectUsecase
}

// NewResources builds the resources and registers their create handlers on
// deps.Bus.
func NewResources(repos domain.Repositories, deps Deps) Resources {
	deps = deps.withDefaults()
	return Resources{
		Resume:     NewResumeUsecase(repos.Resume, deps),
		Experience: NewExperienceUsecase(repos.Experience, repos.Resume, deps),
		Education:  NewEducationUsecase(repos.Education, repos.Resume, deps),
		Skill:      NewSkillUsecase(repos.Skill, repos.Resume, deps),
		Language:   NewLanguageUsecase(repos.Language, repos.Resume, deps),
		Hobby:      NewHobbyUsecase(repos.Hobby, repos.Resume, deps),
		Project:    NewProjectUsecase(repos.Project, repos.Resume, deps),
	}
}

func currentUser(ctx context.Context) (string, error) {
	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}

func UserTag(resource, userID string) string {
	return resource + ".user." + userID
}

func ProfileTag(userID string) string {
	return UserTag("profile", userID)
}

func ProfileKey(userID string) string {
	return "profile." + userID
}

// UserTags returns every resource tag of userID, the profile tag included.
func UserTags(userID string) []string {
	tags := make([]string, 0, len(ResourceNames)+1)
	for _, r := range ResourceNames {
		tags = append(tags, UserTag(r, userID))
	}
	return append(tags, ProfileTag(userID))
}

// scopedCache namespaces cache entries per resource and user.
type scopedCache struct {
	store    cache.Store
	resource string
	ttl      time.Duration
}

func (c scopedCache) key(userID, scope string, params any) string {
	b, _ := json.Marshal(params)
	sum := sha1.Sum(b)
	return fmt.Sprintf("%s.%s.%s.%s", c.resource, userID, scope, hex.EncodeToString(sum[:]))
}

func (c scopedCache) tag(userID string) string {
	return UserTag(c.resource, userID)
}

// invalidate drops the resource entries of userID and the aggregated
// profile. Failures are logged only.
func (c scopedCache) invalidate(ctx context.Context, userID string, extra ...string) {
	if c.store == nil {
		return
	}
	tags := append([]string{c.tag(userID), ProfileTag(userID)}, extra...)
	if err := c.store.InvalidateTags(ctx, tags...); err != nil {
		logger.Log.WarnContext(ctx, "cache invalidation failed", "tags", tags, "error", err)
	}
}

// remember is cache-aside around load. Cache errors never fail the call.
func remember[T any](ctx context.Context, store cache.Store, key string, ttl time.Duration, tags []string, load func() (T, error)) (T, error) {
	if store == nil {
		return load()
	}

	var out T
	hit, err := store.Get(ctx, key, &out)
	if err != nil {
		logger.Log.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	} else if hit {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return out, err
	}
	if err := store.Set(ctx, key, out, ttl, tags...); err != nil {
		logger.Log.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return out, nil
}

func cached[T any](ctx context.Context, c scopedCache, userID, scope string, params any, load func() (T, error)) (T, error) {
	return remember(ctx, c.store, c.key(userID, scope, params), c.ttl, []string{c.tag(userID)}, load)
}

// validateInput runs the struct tags of in, then checks required fields.
// With partial set only present required fields must be non-blank.
func validateInput(v *validator.Validate, in any, required []domain.Field, partial bool) error {
	if err := v.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return apperror.Validation(validation.Message(err), err)
		}
		return err
	}

	var msgs []string
	for _, f := range required {
		if f.Value == nil && partial {
			continue
		}
		if sanitize.Blank(f.Value) {
			msgs = append(msgs, f.Name+": This value should not be blank.")
		}
	}
	if len(msgs) > 0 {
		return apperror.BadRequest(strings.Join(msgs, "; "))
	}
	return nil
}

// mapRepoError turns repository sentinels into client errors.
func mapRepoError(err error, label, id string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if id == "" {
			return apperror.New(http.StatusNotFound, label+" not found.", err)
		}
		return apperror.New(http.StatusNotFound, fmt.Sprintf("%s \"%s\" not found.", label, id), err)
	case errors.Is(err, domain.ErrConflict):
		return apperror.New(http.StatusConflict, label+" already exists.", err)
	case errors.Is(err, domain.ErrInvalidQuery):
		return apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	return err
}

func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}
