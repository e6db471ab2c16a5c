package postgres

import (
	"context"
	"database/sql"

	"go-resume-backend/internal/domain"

	"github.com/lib/pq"
)

var resumeTable = newTable("resume",
	func() *domain.Resume { return &domain.Resume{} },
	[]column[*domain.Resume]{
		{"id", "id", func(r *domain.Resume) any { return &r.ID }},
		{"user_id", "userId", func(r *domain.Resume) any { return &r.UserID }},
		{"full_name", "fullName", func(r *domain.Resume) any { return &r.FullName }},
		{"headline", "headline", func(r *domain.Resume) any { return &r.Headline }},
		{"summary", "summary", func(r *domain.Resume) any { return &r.Summary }},
		{"location", "location", func(r *domain.Resume) any { return &r.Location }},
		{"email", "email", func(r *domain.Resume) any { return &r.Email }},
		{"phone", "phone", func(r *domain.Resume) any { return &r.Phone }},
		{"website", "website", func(r *domain.Resume) any { return &r.Website }},
		{"avatar_url", "avatarUrl", func(r *domain.Resume) any { return &r.AvatarURL }},
		{"created_at", "createdAt", func(r *domain.Resume) any { return &r.CreatedAt }},
		{"updated_at", "updatedAt", func(r *domain.Resume) any { return &r.UpdatedAt }},
	},
	[]string{"full_name", "headline", "summary"},
	"created_at ASC",
)

type resumeRepo struct {
	*entryRepo[*domain.Resume]
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *sql.DB) domain.ResumeRepository {
	return &resumeRepo{&entryRepo[*domain.Resume]{db: db, t: resumeTable}}
}

// FindOneByUserID returns the resume owned by userID
func (r *resumeRepo) FindOneByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	res := &domain.Resume{}
	err := r.db.QueryRowContext(ctx, r.t.selectSQL()+" WHERE user_id = $1", userID).Scan(r.t.targets(res)...)
	if err != nil {
		return nil, mapError(err)
	}
	return res, nil
}

// FindByUserIDs loads the resumes of a batch of users in one query
func (r *resumeRepo) FindByUserIDs(ctx context.Context, userIDs []string) ([]*domain.Resume, error) {
	if len(userIDs) == 0 {
		return []*domain.Resume{}, nil
	}
	rows, err := r.db.QueryContext(ctx, r.t.selectSQL()+" WHERE user_id = ANY($1) ORDER BY user_id", pq.Array(userIDs))
	if err != nil {
		return nil, mapError(err)
	}
	return r.scanAll(rows)
}

func (r *resumeRepo) ListUserIDs(ctx context.Context, limit, offset int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT user_id FROM resume ORDER BY user_id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, mapError(rows.Err())
}

// NewRepositories builds every repository on the same connection.
func NewRepositories(db *sql.DB) domain.Repositories {
	return domain.Repositories{
		Resume:     NewResumeRepository(db),
		Experience: NewExperienceRepository(db),
		Education:  NewEducationRepository(db),
		Skill:      NewSkillRepository(db),
		Language:   NewLanguageRepository(db),
		Hobby:      NewHobbyRepository(db),
		Project:    NewProjectRepository(db),
	}
}
