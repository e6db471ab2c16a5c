package domain

import "strings"

const (
	ProjectStatusPublic  = "public"
	ProjectStatusPrivate = "private"
)

// NormalizeProjectStatus maps anything but "private" to "public".
func NormalizeProjectStatus(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == ProjectStatusPrivate {
		return ProjectStatusPrivate
	}
	return ProjectStatusPublic
}

type Project struct {
	EntryMeta
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	LogoURL       *string `json:"logoUrl"`
	URLDemo       *string `json:"urlDemo"`
	URLRepository *string `json:"urlRepository"`
	Status        string  `json:"status"`
}

type ProjectInput struct {
	EntryFields
	Title         *string `json:"title" validate:"omitempty,max=255,no_emoji"`
	Description   *string `json:"description"`
	LogoURL       *string `json:"logoUrl" validate:"omitempty,url,max=2048"`
	URLDemo       *string `json:"urlDemo" validate:"omitempty,url,max=2048"`
	URLRepository *string `json:"urlRepository" validate:"omitempty,url,max=2048"`
	Status        *string `json:"status"`
}

func (in *ProjectInput) Required() []Field {
	return []Field{{Name: "title", Value: in.Title}}
}

func (in *ProjectInput) Apply(e *Project, partial bool) {
	setString(&e.Title, in.Title)
	setNullable(&e.Description, in.Description, partial)
	setNullable(&e.LogoURL, in.LogoURL, partial)
	setNullable(&e.URLDemo, in.URLDemo, partial)
	setNullable(&e.URLRepository, in.URLRepository, partial)
	if in.Status != nil {
		e.Status = NormalizeProjectStatus(*in.Status)
	} else if !partial || e.Status == "" {
		e.Status = ProjectStatusPublic
	}
}

type ProjectRepository interface {
	EntryRepository[*Project]
}

type ProjectUsecase interface {
	EntryUsecase[*Project, *ProjectInput]
}
