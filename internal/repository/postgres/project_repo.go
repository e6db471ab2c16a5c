package postgres

import (
	"database/sql"

	"go-resume-backend/internal/domain"
)

var projectTable = newEntryTable("resume_project",
	func() *domain.Project { return &domain.Project{} },
	[]column[*domain.Project]{
		{"title", "title", func(e *domain.Project) any { return &e.Title }},
		{"description", "description", func(e *domain.Project) any { return &e.Description }},
		{"logo_url", "logoUrl", func(e *domain.Project) any { return &e.LogoURL }},
		{"url_demo", "urlDemo", func(e *domain.Project) any { return &e.URLDemo }},
		{"url_repository", "urlRepository", func(e *domain.Project) any { return &e.URLRepository }},
		{"status", "status", func(e *domain.Project) any { return &e.Status }},
	},
	[]string{"title", "description", "status"},
	"title ASC",
)

func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &entryRepo[*domain.Project]{db: db, t: projectTable}
}
