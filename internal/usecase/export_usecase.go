package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/security"

	"github.com/xuri/excelize/v2"
)

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// exportSection is one table of the export: a sheet in xlsx, a block of
// rows in csv.
type exportSection struct {
	name    string
	headers []string
	rows    [][]string
}

type exportUsecase struct {
	projection domain.ProjectionUsecase
	audit      *security.SecurityLogger
	now        func() time.Time
}

func NewExportUsecase(projection domain.ProjectionUsecase, audit *security.SecurityLogger) domain.ExportUsecase {
	if audit == nil {
		audit = security.DefaultLogger()
	}
	return &exportUsecase{projection: projection, audit: audit, now: time.Now}
}

// Export renders the profile of userID as xlsx (default) or csv.
func (u *exportUsecase) Export(ctx context.Context, userID, format string) (*domain.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatXLSX
	}
	if format != ExportFormatXLSX && format != ExportFormatCSV {
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s.", format))
	}

	profile, err := u.projection.GetResumeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	sections := profileSections(profile)

	var data []byte
	var contentType string
	switch format {
	case ExportFormatCSV:
		data, err = exportCSV(sections)
		contentType = contentTypeCSV
	default:
		data, err = exportExcel(sections)
		contentType = contentTypeXLSX
	}
	if err != nil {
		return nil, err
	}

	u.audit.LogDataExport(ctx, userID, format)
	return &domain.ExportFile{
		Filename:    fmt.Sprintf("resume_%s.%s", u.now().Format("20060102_150405"), format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func exportExcel(sections []exportSection) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sections {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}

		for col, h := range s.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(s.name, cell, h)
		}
		endCell, _ := excelize.CoordinatesToCellName(len(s.headers), 1)
		f.SetCellStyle(s.name, "A1", endCell, headerStyle)

		for row, values := range s.rows {
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(s.name, cell, v)
			}
		}

		lastCol, _ := excelize.ColumnNumberToName(len(s.headers))
		f.SetColWidth(s.name, "A", lastCol, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// exportCSV writes every section as a title row, a header row, its rows and
// a blank separator line.
func exportCSV(sections []exportSection) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, s := range sections {
		records := make([][]string, 0, len(s.rows)+3)
		records = append(records, []string{s.name}, s.headers)
		records = append(records, s.rows...)
		records = append(records, []string{})
		if err := w.WriteAll(records); err != nil {
			return nil, fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func profileSections(p *domain.ResumeProfile) []exportSection {
	r := p.Resume
	sections := []exportSection{{
		name:    "Resume",
		headers: []string{"Full name", "Headline", "Summary", "Location", "Email", "Phone", "Website"},
		rows: [][]string{{
			r.FullName, r.Headline, deref(r.Summary), deref(r.Location),
			deref(r.Email), deref(r.Phone), deref(r.Website),
		}},
	}}

	exp := exportSection{name: "Experience", headers: []string{"Company", "Role", "Start", "End", "Current", "Location", "Description"}}
	for _, e := range p.Experiences {
		exp.rows = append(exp.rows, []string{
			e.Company, e.Role, e.StartDate.String(), dateString(e.EndDate),
			yesNo(e.IsCurrent), deref(e.Location), deref(e.Description),
		})
	}

	edu := exportSection{name: "Education", headers: []string{"School", "Degree", "Field", "Start", "End", "Current", "Description"}}
	for _, e := range p.Education {
		edu.rows = append(edu.rows, []string{
			e.School, deref(e.Degree), deref(e.Field), dateString(e.StartDate),
			dateString(e.EndDate), yesNo(e.IsCurrent), deref(e.Description),
		})
	}

	labelledHeaders := []string{"Name", "Category", "Level"}
	skills := exportSection{name: "Skills", headers: labelledHeaders}
	for _, s := range p.Skills {
		skills.rows = append(skills.rows, labelledRow(s.Labelled))
	}
	langs := exportSection{name: "Languages", headers: labelledHeaders}
	for _, l := range p.Languages {
		langs.rows = append(langs.rows, labelledRow(l.Labelled))
	}
	hobbies := exportSection{name: "Hobbies", headers: labelledHeaders}
	for _, h := range p.Hobbies {
		hobbies.rows = append(hobbies.rows, labelledRow(h.Labelled))
	}

	projects := exportSection{name: "Projects", headers: []string{"Title", "Status", "Demo", "Repository", "Description"}}
	for _, pr := range p.Projects {
		projects.rows = append(projects.rows, []string{
			pr.Title, pr.Status, deref(pr.URLDemo), deref(pr.URLRepository), deref(pr.Description),
		})
	}

	return append(sections, exp, edu, skills, langs, hobbies, projects)
}

func labelledRow(l domain.Labelled) []string {
	return []string{l.Name, deref(l.Category), deref(l.Level)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateString(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
