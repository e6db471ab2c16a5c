package domain

type Education struct {
	EntryMeta
	School         string  `json:"school"`
	Degree         *string `json:"degree"`
	Field          *string `json:"field"`
	StartDate      *Date   `json:"startDate"`
	EndDate        *Date   `json:"endDate"`
	IsCurrent      bool    `json:"isCurrent"`
	SchoolLocation *string `json:"schoolLocation"`
	SchoolLogo     *string `json:"schoolLogo"`
	Description    *string `json:"description"`
}

type EducationInput struct {
	EntryFields
	School         *string `json:"school" validate:"omitempty,max=255,no_emoji"`
	Degree         *string `json:"degree" validate:"omitempty,max=255"`
	Field          *string `json:"field" validate:"omitempty,max=255"`
	StartDate      *string `json:"startDate" validate:"omitempty,ymd_date"`
	EndDate        *string `json:"endDate" validate:"omitempty,ymd_date"`
	IsCurrent      *bool   `json:"isCurrent"`
	SchoolLocation *string `json:"schoolLocation" validate:"omitempty,max=255"`
	SchoolLogo     *string `json:"schoolLogo" validate:"omitempty,url,max=2048"`
	Description    *string `json:"description"`
}

func (in *EducationInput) Required() []Field {
	return []Field{{Name: "school", Value: in.School}}
}

func (in *EducationInput) Apply(e *Education, partial bool) {
	setString(&e.School, in.School)
	setNullable(&e.Degree, in.Degree, partial)
	setNullable(&e.Field, in.Field, partial)
	setNullableDate(&e.StartDate, in.StartDate, partial)
	setNullableDate(&e.EndDate, in.EndDate, partial)
	setBool(&e.IsCurrent, in.IsCurrent, partial)
	setNullable(&e.SchoolLocation, in.SchoolLocation, partial)
	setNullable(&e.SchoolLogo, in.SchoolLogo, partial)
	setNullable(&e.Description, in.Description, partial)
	if e.IsCurrent {
		e.EndDate = nil
	}
}

type EducationRepository interface {
	EntryRepository[*Education]
}

type EducationUsecase interface {
	EntryUsecase[*Education, *EducationInput]
}
