package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skillColumns = "id, resume_id, user_id, position, name, category, level, created_at, updated_at"

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestEntryRepo_FindBuildsFilteredQuery(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSkillRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+skillColumns+" FROM resume_skill WHERE user_id = $1 AND (name ILIKE $2 OR category ILIKE $2 OR level ILIKE $2) ORDER BY position ASC, name ASC, id ASC LIMIT $3 OFFSET $4",
	)).
		WithArgs("u-1", "%50\\%%", 10, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "resume_id", "user_id", "position", "name", "category", "level", "created_at", "updated_at"}).
			AddRow("s-1", "r-1", "u-1", 0, "Go", "Backend", nil, now, now))

	skills, err := repo.Find(context.Background(), domain.ListQuery{
		Criteria: map[string]any{"userId": "u-1"},
		Search:   "50%",
		Limit:    10,
		Offset:   5,
	})

	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
	require.NotNil(t, skills[0].Category)
	assert.Equal(t, "Backend", *skills[0].Category)
	assert.Nil(t, skills[0].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_FindExplicitOrderAndArrayCriteria(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM resume_project WHERE status = ANY($1) AND user_id = $2 ORDER BY title DESC, position ASC, id ASC",
	)).
		WithArgs(pq.Array([]string{"public", "private"}), "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Find(context.Background(), domain.ListQuery{
		Criteria: map[string]any{"userId": "u-1", "status": []any{"public", "private"}},
		OrderBy:  []domain.Order{{Field: "title", Desc: true}, {Field: "position"}},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_RejectsUnknownFields(t *testing.T) {
	db, mock := newMock(t)
	repo := NewHobbyRepository(db)
	ctx := context.Background()

	_, err := repo.Find(ctx, domain.ListQuery{Criteria: map[string]any{"password": "x"}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = repo.Find(ctx, domain.ListQuery{OrderBy: []domain.Order{{Field: "1; DROP TABLE resume"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = repo.Count(ctx, domain.ListQuery{Criteria: map[string]any{"name": map[string]any{"$gt": 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_FindOne(t *testing.T) {
	db, mock := newMock(t)
	repo := NewExperienceRepository(db)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM resume_experience WHERE id = $1")).
			WithArgs("e-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "resume_id", "user_id", "position", "company", "role", "start_date", "end_date",
				"is_current", "location", "company_location", "company_logo", "description", "created_at", "updated_at",
			}).AddRow("e-1", "r-1", "u-1", 0, "Bro World Studios", "Lead", start, nil, true, nil, nil, nil, "Built things", start, start))

		exp, err := repo.FindOne(context.Background(), "e-1")

		require.NoError(t, err)
		assert.Equal(t, "Bro World Studios", exp.Company)
		assert.Equal(t, "2020-01-01", exp.StartDate.String())
		assert.Nil(t, exp.EndDate)
		assert.True(t, exp.IsCurrent)
		require.NotNil(t, exp.Description)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM resume_experience WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		exp, err := repo.FindOne(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, exp)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewExperienceRepository(db)
	now := time.Now().UTC()

	exp := &domain.Experience{
		EntryMeta: domain.EntryMeta{ID: "e-1", ResumeID: "r-1", UserID: "u-1", CreatedAt: now, UpdatedAt: now},
		Company:   "Indie Labs",
		Role:      "Dev",
		StartDate: domain.NewDate(2018, 6, 1),
		Location:  strPtr("Lyon"),
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO resume_experience (id, resume_id, user_id, position, company, role, start_date, end_date, is_current, location, company_location, company_logo, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)",
	)).
		WithArgs("e-1", "r-1", "u-1", 0, "Indie Labs", "Dev", "2018-06-01", nil, false, "Lyon", nil, nil, nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), exp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_CreateConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := NewResumeRepository(db)

	mock.ExpectExec("INSERT INTO resume ").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "resume_user_id_key"})

	err := repo.Create(context.Background(), &domain.Resume{ID: "r-1", UserID: "u-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEntryRepo_ValueTooLongMapsToInvalidQuery(t *testing.T) {
	db, mock := newMock(t)
	repo := NewResumeRepository(db)

	mock.ExpectExec("INSERT INTO resume ").
		WillReturnError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(64)"})

	err := repo.Create(context.Background(), &domain.Resume{ID: "r-1", UserID: "u-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestEntryRepo_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSkillRepository(db)
	now := time.Now().UTC()
	skill := &domain.Skill{
		EntryMeta: domain.EntryMeta{ID: "s-1", ResumeID: "r-1", UserID: "u-1", Position: 2, UpdatedAt: now},
		Labelled:  domain.Labelled{Name: "Go"},
	}

	query := regexp.QuoteMeta("UPDATE resume_skill SET resume_id = $1, user_id = $2, position = $3, name = $4, category = $5, level = $6, updated_at = $7 WHERE id = $8")

	mock.ExpectExec(query).
		WithArgs("r-1", "u-1", 2, "Go", nil, nil, now, "s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), skill))

	mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), skill), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_DeleteCountIDs(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLanguageRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resume_language WHERE id = $1")).
		WithArgs("l-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, "l-1"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM resume_language WHERE user_id = $1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	n, err := repo.Count(ctx, domain.ListQuery{Criteria: map[string]any{"userId": "u-1"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM resume_language WHERE user_id = $1 ORDER BY position ASC, name ASC, id ASC")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("l-1").AddRow("l-2"))
	ids, err := repo.IDs(ctx, domain.ListQuery{Criteria: map[string]any{"userId": "u-1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"l-1", "l-2"}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_InvalidUUIDMapsToInvalidQuery(t *testing.T) {
	db, mock := newMock(t)
	repo := NewHobbyRepository(db)

	mock.ExpectQuery("FROM resume_hobby").
		WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"})

	_, err := repo.Find(context.Background(), domain.ListQuery{Criteria: map[string]any{"resumeId": "nope"}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestResumeRepo_UserLookups(t *testing.T) {
	db, mock := newMock(t)
	repo := NewResumeRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()
	cols := []string{"id", "user_id", "full_name", "headline", "summary", "location", "email", "phone", "website", "avatar_url", "created_at", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM resume WHERE user_id = $1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("r-1", "u-1", "Alex", "Dev", nil, nil, "alex@example.com", nil, nil, nil, now, now))
	res, err := repo.FindOneByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", res.ID)
	require.NotNil(t, res.Email)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resume WHERE user_id = ANY($1) ORDER BY user_id")).
		WithArgs(pq.Array([]string{"u-1", "u-2"})).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("r-1", "u-1", "Alex", "Dev", nil, nil, nil, nil, nil, nil, now, now).
			AddRow("r-2", "u-2", "Sam", "Ops", nil, nil, nil, nil, nil, nil, now, now))
	list, err := repo.FindByUserIDs(ctx, []string{"u-1", "u-2"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := repo.FindByUserIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM resume ORDER BY user_id LIMIT $1 OFFSET $2")).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u-1"))
	ids, err := repo.ListUserIDs(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"u-1"}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}
