package service

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrValidation reports task input whose fields have the wrong shape,
	// such as a duration that is not a whole number.
	ErrValidation = errors.New("invalid task fields")
	// ErrIntegrity reports a task the store refused because it breaks a
	// table constraint.
	ErrIntegrity = errors.New("task violates store constraint")
)

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
