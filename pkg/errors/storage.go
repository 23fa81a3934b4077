package errors

import (
	stdErrors "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ConstraintKind distinguishes the storage-level constraint families callers
// need to map to user-facing messages.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintForeignKey ConstraintKind = "foreign_key"
)

// Postgres SQLSTATE codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// ConstraintViolation carries the violated constraint family and, when the
// driver reports it, the constraint name.
type ConstraintViolation struct {
	Kind       ConstraintKind
	Constraint string
	cause      error
}

func (v *ConstraintViolation) Error() string {
	if v.Constraint == "" {
		return string(v.Kind) + " constraint violated"
	}
	return string(v.Kind) + " constraint violated: " + v.Constraint
}

func (v *ConstraintViolation) Unwrap() error {
	return v.cause
}

// Code maps the constraint family onto the error taxonomy: duplicate keys are
// conflicts, check failures are validation errors, restricted deletes are
// state conflicts.
func (v *ConstraintViolation) Code() Code {
	switch v.Kind {
	case ConstraintUnique:
		return CodeConflict
	case ConstraintCheck:
		return CodeValidation
	case ConstraintForeignKey:
		return CodeStateConflict
	default:
		return CodeInternal
	}
}

// ClassifyConstraint inspects a storage error and reports the constraint
// violation it represents, if any. Both postgres drivers and the sqlite
// driver used in dev/tests are understood.
func ClassifyConstraint(err error) (*ConstraintViolation, bool) {
	if err == nil {
		return nil, false
	}

	var pgxErr *pgconn.PgError
	if stdErrors.As(err, &pgxErr) {
		if kind, ok := pgKind(pgxErr.Code); ok {
			return &ConstraintViolation{Kind: kind, Constraint: pgxErr.ConstraintName, cause: err}, true
		}
		return nil, false
	}

	var pqErr *pq.Error
	if stdErrors.As(err, &pqErr) {
		if kind, ok := pgKind(string(pqErr.Code)); ok {
			return &ConstraintViolation{Kind: kind, Constraint: pqErr.Constraint, cause: err}, true
		}
		return nil, false
	}

	// sqlite reports constraint failures as formatted messages only.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &ConstraintViolation{Kind: ConstraintUnique, Constraint: sqliteConstraintName(msg), cause: err}, true
	case strings.Contains(msg, "CHECK constraint failed"):
		return &ConstraintViolation{Kind: ConstraintCheck, Constraint: sqliteConstraintName(msg), cause: err}, true
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintViolation{Kind: ConstraintForeignKey, cause: err}, true
	}
	return nil, false
}

// FromStorage wraps a storage error into a coded error, classifying
// constraint violations so callers can distinguish them from plain failures.
func FromStorage(err error, message string) error {
	if err == nil {
		return nil
	}
	if violation, ok := ClassifyConstraint(err); ok {
		return Wrap(violation.Code(), violation, message)
	}
	return Wrap(CodeInternal, err, message)
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally matching a specific constraint name.
func IsUniqueViolation(err error, constraintName string) bool {
	violation, ok := ClassifyConstraint(err)
	if !ok || violation.Kind != ConstraintUnique {
		return false
	}
	if constraintName == "" {
		return true
	}
	return strings.Contains(violation.Constraint, constraintName)
}

// IsCheckViolation reports whether err is a check-constraint violation.
func IsCheckViolation(err error) bool {
	violation, ok := ClassifyConstraint(err)
	return ok && violation.Kind == ConstraintCheck
}

// IsForeignKeyViolation reports whether err is a foreign-key violation, such
// as a restricted delete attempted while children exist.
func IsForeignKeyViolation(err error) bool {
	violation, ok := ClassifyConstraint(err)
	return ok && violation.Kind == ConstraintForeignKey
}

func pgKind(code string) (ConstraintKind, bool) {
	switch code {
	case pgUniqueViolation:
		return ConstraintUnique, true
	case pgCheckViolation:
		return ConstraintCheck, true
	case pgForeignKeyViolation:
		return ConstraintForeignKey, true
	}
	return "", false
}

func sqliteConstraintName(msg string) string {
	if idx := strings.LastIndex(msg, "constraint failed: "); idx >= 0 {
		return strings.TrimSpace(msg[idx+len("constraint failed: "):])
	}
	return ""
}
