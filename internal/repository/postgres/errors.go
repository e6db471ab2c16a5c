package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	invalidText         = "22P02"
	invalidDatetime     = "22007"
	valueTooLong        = "22001"
)

// mapError translates driver errors into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
		case invalidText, invalidDatetime, valueTooLong:
			return fmt.Errorf("%w: %s", domain.ErrInvalidQuery, pgErr.Message)
		}
	}
	return err
}
