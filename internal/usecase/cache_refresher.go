package usecase

import (
	"context"
	"fmt"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/logger"
)

const (
	RefreshScopeProfile = "profile"
	RefreshScopePublic  = "public"

	refreshBatchSize = 100
)

// CacheRefresher keeps the per-user caches warm. The profile scope drops
// every resource tag of each user; the public scope rebuilds the
// aggregated profiles.
type CacheRefresher struct {
	resumes    domain.ResumeRepository
	projection domain.ProjectionUsecase
	cache      cache.Store
	batchSize  int
}

func NewCacheRefresher(resumes domain.ResumeRepository, projection domain.ProjectionUsecase, store cache.Store) *CacheRefresher {
	return &CacheRefresher{
		resumes:    resumes,
		projection: projection,
		cache:      store,
		batchSize:  refreshBatchSize,
	}
}

// Refresh runs one pass of scope and returns the number of users handled.
func (r *CacheRefresher) Refresh(ctx context.Context, scope string) (int, error) {
	switch scope {
	case RefreshScopeProfile:
		return r.eachBatch(ctx, r.invalidateUsers)
	case RefreshScopePublic:
		return r.eachBatch(ctx, r.rebuildProfiles)
	default:
		return 0, fmt.Errorf("unknown refresh scope %q", scope)
	}
}

func (r *CacheRefresher) eachBatch(ctx context.Context, fn func(context.Context, []string) error) (int, error) {
	total := 0
	for offset := 0; ; offset += r.batchSize {
		userIDs, err := r.resumes.ListUserIDs(ctx, r.batchSize, offset)
		if err != nil {
			return total, fmt.Errorf("list resume owners: %w", err)
		}
		if len(userIDs) == 0 {
			return total, nil
		}
		if err := fn(ctx, userIDs); err != nil {
			return total, err
		}
		total += len(userIDs)
		if len(userIDs) < r.batchSize {
			return total, nil
		}
	}
}

func (r *CacheRefresher) invalidateUsers(ctx context.Context, userIDs []string) error {
	if r.cache == nil {
		return nil
	}
	tags := make([]string, 0, len(userIDs)*(len(ResourceNames)+1))
	for _, id := range userIDs {
		tags = append(tags, UserTags(id)...)
	}
	return r.cache.InvalidateTags(ctx, tags...)
}

func (r *CacheRefresher) rebuildProfiles(ctx context.Context, userIDs []string) error {
	resumes, err := r.resumes.FindByUserIDs(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("load resumes: %w", err)
	}
	for _, resume := range resumes {
		if _, err := r.projection.RebuildProfile(ctx, resume); err != nil {
			logger.Log.WarnContext(ctx, "profile rebuild failed", "user_id", resume.UserID, "error", err)
		}
	}
	return nil
}

// Start runs both scopes on their intervals until ctx is done. A zero
// interval disables that scope.
func (r *CacheRefresher) Start(ctx context.Context, profileEvery, publicEvery time.Duration) {
	if profileEvery > 0 {
		go r.loop(ctx, RefreshScopeProfile, profileEvery)
	}
	if publicEvery > 0 {
		go r.loop(ctx, RefreshScopePublic, publicEvery)
	}
}

func (r *CacheRefresher) loop(ctx context.Context, scope string, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			started := time.Now()
			n, err := r.Refresh(ctx, scope)
			if err != nil {
				logger.Log.ErrorContext(ctx, "cache refresh failed", "scope", scope, "error", err)
				continue
			}
			logger.Log.InfoContext(ctx, "cache refreshed", "scope", scope, "users", n, "duration", time.Since(started))
		}
	}
}
