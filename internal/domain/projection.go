package domain

import "context"

// ResumeProfile is the aggregated public view of a user's resume.
type ResumeProfile struct {
	Resume      *Resume       `json:"resume"`
	Experiences []*Experience `json:"experiences"`
	Education   []*Education  `json:"education"`
	Skills      []*Skill      `json:"skills"`
	Languages   []*Language   `json:"languages"`
	Hobbies     []*Hobby      `json:"hobbies"`
	Projects    []*Project    `json:"projects"`
}

type ProjectionUsecase interface {
	GetResumeProfile(ctx context.Context, userID string) (*ResumeProfile, error)
	GetExperiences(ctx context.Context, userID string) ([]*Experience, error)
	GetEducation(ctx context.Context, userID string) ([]*Education, error)
	GetSkills(ctx context.Context, userID string) ([]*Skill, error)
	GetLanguages(ctx context.Context, userID string) ([]*Language, error)
	GetHobbies(ctx context.Context, userID string) ([]*Hobby, error)
	GetProjects(ctx context.Context, userID string) ([]*Project, error)
	// RebuildProfile recomputes and stores the cached profile of resume's owner.
	RebuildProfile(ctx context.Context, resume *Resume) (*ResumeProfile, error)
}

// SetupUsecase provisions the placeholder resume used by the platform
// endpoints.
type SetupUsecase interface {
	InitResume(ctx context.Context, userID, name string) (*Resume, error)
}

// ExportFile is a rendered resume export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportUsecase interface {
	Export(ctx context.Context, userID, format string) (*ExportFile, error)
}

// Repositories groups the storage of every entity.
type Repositories struct {
	Resume     ResumeRepository
	Experience ExperienceRepository
	Education  EducationRepository
	Skill      SkillRepository
	Language   LanguageRepository
	Hobby      HobbyRepository
	Project    ProjectRepository
}

// Normalize replaces nil lists so they serialize as [].
func (p *ResumeProfile) Normalize() {
	if p.Experiences == nil {
		p.Experiences = []*Experience{}
	}
	if p.Education == nil {
		p.Education = []*Education{}
	}
	if p.Skills == nil {
		p.Skills = []*Skill{}
	}
	if p.Languages == nil {
		p.Languages = []*Language{}
	}
	if p.Hobbies == nil {
		p.Hobbies = []*Hobby{}
	}
	if p.Projects == nil {
		p.Projects = []*Project{}
	}
}
