package domain

import (
	"context"
	"strings"
	"time"

	"go-resume-backend/pkg/sanitize"
)

// EntryMeta holds the columns every resume entry shares.
type EntryMeta struct {
	ID        string    `json:"id"`
	ResumeID  string    `json:"resumeId"`
	UserID    string    `json:"userId"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *EntryMeta) Meta() *EntryMeta { return m }

// Entry is implemented by every child entity of a resume.
type Entry interface {
	Meta() *EntryMeta
}

// EntryFields are the input fields shared by every entry kind.
type EntryFields struct {
	ResumeID *string `json:"resumeId" validate:"omitempty,uuid"`
	UserID   *string `json:"userId" validate:"omitempty,max=64"`
	Position *int    `json:"position" validate:"omitempty,min=0"`
}

func (f *EntryFields) Fields() *EntryFields { return f }

// Field names a required input value.
type Field struct {
	Name  string
	Value *string
}

// EntryInput is the DTO of an entry kind. Apply copies the input onto e:
// with partial set only present fields are written, otherwise absent
// nullable fields are cleared.
type EntryInput[E Entry] interface {
	Fields() *EntryFields
	Required() []Field
	Apply(e E, partial bool)
}

// EntryRepository is the storage contract shared by every entity.
type EntryRepository[E any] interface {
	Find(ctx context.Context, q ListQuery) ([]E, error)
	FindOne(ctx context.Context, id string) (E, error)
	Count(ctx context.Context, q ListQuery) (int, error)
	IDs(ctx context.Context, q ListQuery) ([]string, error)
	Create(ctx context.Context, e E) error
	Update(ctx context.Context, e E) error
	Delete(ctx context.Context, id string) error
	FindByUserID(ctx context.Context, userID string) ([]E, error)
}

// EntryUsecase is the resource contract shared by every entity. The
// acting user is read from ctx.
type EntryUsecase[E any, I any] interface {
	Find(ctx context.Context, q ListQuery) ([]E, error)
	FindOne(ctx context.Context, id string) (E, error)
	Count(ctx context.Context, q ListQuery) (int, error)
	IDs(ctx context.Context, q ListQuery) ([]string, error)
	Create(ctx context.Context, in I) (E, error)
	Update(ctx context.Context, id string, in I) (E, error)
	Patch(ctx context.Context, id string, in I) (E, error)
	Delete(ctx context.Context, id string) error
	FindByUserID(ctx context.Context, userID string) ([]E, error)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = sanitize.Text(*src)
	}
}

// setNullable writes src into dst. An empty value clears the field; an
// absent one clears it only for full replacement.
func setNullable(dst **string, src *string, partial bool) {
	if src == nil {
		if !partial {
			*dst = nil
		}
		return
	}
	v := sanitize.Text(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}

func setBool(dst *bool, src *bool, partial bool) {
	if src != nil {
		*dst = *src
	} else if !partial {
		*dst = false
	}
}

func setDate(dst *Date, src *string) {
	if src == nil {
		return
	}
	if d, err := ParseDate(*src); err == nil {
		*dst = d
	}
}

func setNullableDate(dst **Date, src *string, partial bool) {
	if src == nil {
		if !partial {
			*dst = nil
		}
		return
	}
	d, err := ParseDate(*src)
	if err != nil || strings.TrimSpace(*src) == "" {
		*dst = nil
		return
	}
	*dst = &d
}

// ApplyPosition copies the position input onto meta.
func ApplyPosition(meta *EntryMeta, f *EntryFields, partial bool) {
	if f.Position != nil {
		meta.Position = *f.Position
	} else if !partial {
		meta.Position = 0
	}
}
