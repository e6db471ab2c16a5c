package domain

// Labelled is the shape shared by skills, languages and hobbies.
type Labelled struct {
	Name     string  `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
}

type LabelledInput struct {
	Name     *string `json:"name" validate:"omitempty,max=255,no_emoji"`
	Category *string `json:"category" validate:"omitempty,max=255"`
	Level    *string `json:"level" validate:"omitempty,max=50"`
}

func (in *LabelledInput) required() []Field {
	return []Field{{Name: "name", Value: in.Name}}
}

func (in *LabelledInput) applyTo(l *Labelled, partial bool) {
	setString(&l.Name, in.Name)
	setNullable(&l.Category, in.Category, partial)
	setNullable(&l.Level, in.Level, partial)
}

type Skill struct {
	EntryMeta
	Labelled
}

type SkillInput struct {
	EntryFields
	LabelledInput
}

func (in *SkillInput) Required() []Field { return in.required() }

func (in *SkillInput) Apply(e *Skill, partial bool) { in.applyTo(&e.Labelled, partial) }

type SkillRepository interface {
	EntryRepository[*Skill]
}

type SkillUsecase interface {
	EntryUsecase[*Skill, *SkillInput]
}

type Language struct {
	EntryMeta
	Labelled
}

type LanguageInput struct {
	EntryFields
	LabelledInput
}

func (in *LanguageInput) Required() []Field { return in.required() }

func (in *LanguageInput) Apply(e *Language, partial bool) { in.applyTo(&e.Labelled, partial) }

type LanguageRepository interface {
	EntryRepository[*Language]
}

type LanguageUsecase interface {
	EntryUsecase[*Language, *LanguageInput]
}

type Hobby struct {
	EntryMeta
	Labelled
}

type HobbyInput struct {
	EntryFields
	LabelledInput
}

func (in *HobbyInput) Required() []Field { return in.required() }

func (in *HobbyInput) Apply(e *Hobby, partial bool) { in.applyTo(&e.Labelled, partial) }

type HobbyRepository interface {
	EntryRepository[*Hobby]
}

type HobbyUsecase interface {
	EntryUsecase[*Hobby, *HobbyInput]
}
