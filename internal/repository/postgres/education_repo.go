package postgres

import (
	"database/sql"

	"go-resume-backend/internal/domain"
)

var educationTable = newEntryTable("resume_education",
	func() *domain.Education { return &domain.Education{} },
	[]column[*domain.Education]{
		{"school", "school", func(e *domain.Education) any { return &e.School }},
		{"degree", "degree", func(e *domain.Education) any { return &e.Degree }},
		{"field", "field", func(e *domain.Education) any { return &e.Field }},
		{"start_date", "startDate", func(e *domain.Education) any { return &e.StartDate }},
		{"end_date", "endDate", func(e *domain.Education) any { return &e.EndDate }},
		{"is_current", "isCurrent", func(e *domain.Education) any { return &e.IsCurrent }},
		{"school_location", "schoolLocation", func(e *domain.Education) any { return &e.SchoolLocation }},
		{"school_logo", "schoolLogo", func(e *domain.Education) any { return &e.SchoolLogo }},
		{"description", "description", func(e *domain.Education) any { return &e.Description }},
	},
	[]string{"school", "degree", "field", "description"},
	"start_date DESC",
)

func NewEducationRepository(db *sql.DB) domain.EducationRepository {
	return &entryRepo[*domain.Education]{db: db, t: educationTable}
}
