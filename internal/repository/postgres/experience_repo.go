package postgres

import (
	"database/sql"

	"go-resume-backend/internal/domain"
)

var experienceTable = newEntryTable("resume_experience",
	func() *domain.Experience { return &domain.Experience{} },
	[]column[*domain.Experience]{
		{"company", "company", func(e *domain.Experience) any { return &e.Company }},
		{"role", "role", func(e *domain.Experience) any { return &e.Role }},
		{"start_date", "startDate", func(e *domain.Experience) any { return &e.StartDate }},
		{"end_date", "endDate", func(e *domain.Experience) any { return &e.EndDate }},
		{"is_current", "isCurrent", func(e *domain.Experience) any { return &e.IsCurrent }},
		{"location", "location", func(e *domain.Experience) any { return &e.Location }},
		{"company_location", "companyLocation", func(e *domain.Experience) any { return &e.CompanyLocation }},
		{"company_logo", "companyLogo", func(e *domain.Experience) any { return &e.CompanyLogo }},
		{"description", "description", func(e *domain.Experience) any { return &e.Description }},
	},
	[]string{"company", "role", "description", "location"},
	"start_date DESC",
)

func NewExperienceRepository(db *sql.DB) domain.ExperienceRepository {
	return &entryRepo[*domain.Experience]{db: db, t: experienceTable}
}
