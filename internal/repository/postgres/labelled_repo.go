package postgres

import (
	"database/sql"

	"go-resume-backend/internal/domain"
)

// labelledColumns returns the name/category/level columns shared by skills,
// languages and hobbies.
func labelledColumns[E domain.Entry](labelled func(E) *domain.Labelled) []column[E] {
	return []column[E]{
		{"name", "name", func(e E) any { return &labelled(e).Name }},
		{"category", "category", func(e E) any { return &labelled(e).Category }},
		{"level", "level", func(e E) any { return &labelled(e).Level }},
	}
}

var labelledSearch = []string{"name", "category", "level"}

var skillTable = newEntryTable("resume_skill",
	func() *domain.Skill { return &domain.Skill{} },
	labelledColumns(func(e *domain.Skill) *domain.Labelled { return &e.Labelled }),
	labelledSearch,
	"name ASC",
)

var languageTable = newEntryTable("resume_language",
	func() *domain.Language { return &domain.Language{} },
	labelledColumns(func(e *domain.Language) *domain.Labelled { return &e.Labelled }),
	labelledSearch,
	"name ASC",
)

var hobbyTable = newEntryTable("resume_hobby",
	func() *domain.Hobby { return &domain.Hobby{} },
	labelledColumns(func(e *domain.Hobby) *domain.Labelled { return &e.Labelled }),
	labelledSearch,
	"name ASC",
)

func NewSkillRepository(db *sql.DB) domain.SkillRepository {
	return &entryRepo[*domain.Skill]{db: db, t: skillTable}
}

func NewLanguageRepository(db *sql.DB) domain.LanguageRepository {
	return &entryRepo[*domain.Language]{db: db, t: languageTable}
}

func NewHobbyRepository(db *sql.DB) domain.HobbyRepository {
	return &entryRepo[*domain.Hobby]{db: db, t: hobbyTable}
}
