package repository

import "errors"

// ErrNoRowsAffected is returned by updates whose WHERE clause matched nothing.
var ErrNoRowsAffected = errors.New("no rows affected")

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"
