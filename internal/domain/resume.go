package domain

import (
	"context"
	"time"
)

// Resume is the top-level profile of a user. A user owns at most one.
type Resume struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Headline  string    `json:"headline"`
	Summary   *string   `json:"summary"`
	Location  *string   `json:"location"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Website   *string   `json:"website"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResumeInput is the write DTO for resumes.
type ResumeInput struct {
	UserID    *string `json:"userId" validate:"omitempty,max=64"`
	FullName  *string `json:"fullName" validate:"omitempty,max=255,no_emoji"`
	Headline  *string `json:"headline" validate:"omitempty,max=255"`
	Summary   *string `json:"summary"`
	Location  *string `json:"location" validate:"omitempty,max=255"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=64"`
	Website   *string `json:"website" validate:"omitempty,url,max=2048"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url,max=2048"`
}

func (in *ResumeInput) Required() []Field {
	return []Field{
		{Name: "fullName", Value: in.FullName},
		{Name: "headline", Value: in.Headline},
	}
}

func (in *ResumeInput) Apply(r *Resume, partial bool) {
	setString(&r.FullName, in.FullName)
	setString(&r.Headline, in.Headline)
	setNullable(&r.Summary, in.Summary, partial)
	setNullable(&r.Location, in.Location, partial)
	setNullable(&r.Email, in.Email, partial)
	setNullable(&r.Phone, in.Phone, partial)
	setNullable(&r.Website, in.Website, partial)
	setNullable(&r.AvatarURL, in.AvatarURL, partial)
}

type ResumeRepository interface {
	EntryRepository[*Resume]
	FindOneByUserID(ctx context.Context, userID string) (*Resume, error)
	FindByUserIDs(ctx context.Context, userIDs []string) ([]*Resume, error)
	// ListUserIDs pages over the owners of every stored resume.
	ListUserIDs(ctx context.Context, limit, offset int) ([]string, error)
}

type ResumeUsecase interface {
	EntryUsecase[*Resume, *ResumeInput]
	FindOneByUserID(ctx context.Context, userID string) (*Resume, error)
}
