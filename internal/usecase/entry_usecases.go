package usecase

import "go-resume-backend/internal/domain"

func NewExperienceUsecase(repo domain.ExperienceRepository, resumes domain.ResumeRepository, deps Deps) domain.ExperienceUsecase {
	return newEntryResource[*domain.Experience, *domain.ExperienceInput]("experience", "Experience", "experiences", repo, resumes,
		func() *domain.Experience { return &domain.Experience{} }, deps)
}

func NewEducationUsecase(repo domain.EducationRepository, resumes domain.ResumeRepository, deps Deps) domain.EducationUsecase {
	return newEntryResource[*domain.Education, *domain.EducationInput]("education", "Education", "education entries", repo, resumes,
		func() *domain.Education { return &domain.Education{} }, deps)
}

func NewSkillUsecase(repo domain.SkillRepository, resumes domain.ResumeRepository, deps Deps) domain.SkillUsecase {
	return newEntryResource[*domain.Skill, *domain.SkillInput]("skill", "Skill", "skills", repo, resumes,
		func() *domain.Skill { return &domain.Skill{} }, deps)
}

func NewLanguageUsecase(repo domain.LanguageRepository, resumes domain.ResumeRepository, deps Deps) domain.LanguageUsecase {
	return newEntryResource[*domain.Language, *domain.LanguageInput]("language", "Language", "languages", repo, resumes,
		func() *domain.Language { return &domain.Language{} }, deps)
}

func NewHobbyUsecase(repo domain.HobbyRepository, resumes domain.ResumeRepository, deps Deps) domain.HobbyUsecase {
	return newEntryResource[*domain.Hobby, *domain.HobbyInput]("hobby", "Hobby", "hobbies", repo, resumes,
		func() *domain.Hobby { return &domain.Hobby{} }, deps)
}

func NewProjectUsecase(repo domain.ProjectRepository, resumes domain.ResumeRepository, deps Deps) domain.ProjectUsecase {
	return newEntryResource[*domain.Project, *domain.ProjectInput]("project", "Project", "projects", repo, resumes,
		func() *domain.Project { return &domain.Project{} }, deps)
}
