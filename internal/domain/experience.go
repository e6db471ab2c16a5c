package domain

type Experience struct {
	EntryMeta
	Company         string  `json:"company"`
	Role            string  `json:"role"`
	StartDate       Date    `json:"startDate"`
	EndDate         *Date   `json:"endDate"`
	IsCurrent       bool    `json:"isCurrent"`
	Location        *string `json:"location"`
	CompanyLocation *string `json:"companyLocation"`
	CompanyLogo     *string `json:"companyLogo"`
	Description     *string `json:"description"`
}

type ExperienceInput struct {
	EntryFields
	Company         *string `json:"company" validate:"omitempty,max=255,no_emoji"`
	Role            *string `json:"role" validate:"omitempty,max=255,no_emoji"`
	StartDate       *string `json:"startDate" validate:"omitempty,ymd_date"`
	EndDate         *string `json:"endDate" validate:"omitempty,ymd_date"`
	IsCurrent       *bool   `json:"isCurrent"`
	Location        *string `json:"location" validate:"omitempty,max=255"`
	CompanyLocation *string `json:"companyLocation" validate:"omitempty,max=255"`
	CompanyLogo     *string `json:"companyLogo" validate:"omitempty,url,max=2048"`
	Description     *string `json:"description"`
}

func (in *ExperienceInput) Required() []Field {
	return []Field{
		{Name: "company", Value: in.Company},
		{Name: "role", Value: in.Role},
		{Name: "startDate", Value: in.StartDate},
	}
}

func (in *ExperienceInput) Apply(e *Experience, partial bool) {
	setString(&e.Company, in.Company)
	setString(&e.Role, in.Role)
	setDate(&e.StartDate, in.StartDate)
	setNullableDate(&e.EndDate, in.EndDate, partial)
	setBool(&e.IsCurrent, in.IsCurrent, partial)
	setNullable(&e.Location, in.Location, partial)
	setNullable(&e.CompanyLocation, in.CompanyLocation, partial)
	setNullable(&e.CompanyLogo, in.CompanyLogo, partial)
	setNullable(&e.Description, in.Description, partial)
	if e.IsCurrent {
		e.EndDate = nil
	}
}

type ExperienceRepository interface {
	EntryRepository[*Experience]
}

type ExperienceUsecase interface {
	EntryUsecase[*Experience, *ExperienceInput]
}
