package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorDump is a flattened view of an error used when logging storage
// failures: taxonomy code, unwrap chain, the classified constraint (if the
// error is one, on either driver) and whatever the postgres drivers report.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	ConstraintKind ConstraintKind `json:"constraint_kind,omitempty"`
	Constraint     string         `json:"constraint,omitempty"`

	PGCode    string `json:"pg_code,omitempty"`
	PGTable   string `json:"pg_table,omitempty"`
	PGColumn  string `json:"pg_column,omitempty"`
	PGDetail  string `json:"pg_detail,omitempty"`
	PGMessage string `json:"pg_message,omitempty"`
}

// Dump flattens err for diagnostics. Constraint classification goes through
// ClassifyConstraint, so sqlite constraint failures surface the same way the
// postgres ones do.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	if violation, ok := ClassifyConstraint(err); ok {
		d.ConstraintKind = violation.Kind
		d.Constraint = violation.Constraint
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.PGCode = pgxErr.Code
		d.PGTable = pgxErr.TableName
		d.PGColumn = pgxErr.ColumnName
		d.PGDetail = pgxErr.Detail
		d.PGMessage = pgxErr.Message
		return d
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		d.PGCode = string(pqErr.Code)
		d.PGTable = pqErr.Table
		d.PGColumn = pqErr.Column
		d.PGDetail = pqErr.Detail
		d.PGMessage = pqErr.Message
	}

	return d
}

// Fields renders the dump as structured log fields, omitting what is empty.
// The top message and the chain head are left out; callers already log the
// error itself.
func (d ErrorDump) Fields() map[string]any {
	fields := map[string]any{}
	if d.Code != "" {
		fields["error_code"] = string(d.Code)
	}
	if d.ConstraintKind != "" {
		fields["constraint_kind"] = string(d.ConstraintKind)
	}
	if d.Constraint != "" {
		fields["constraint"] = d.Constraint
	}
	if d.PGCode != "" {
		fields["pg_code"] = d.PGCode
	}
	if d.PGTable != "" {
		fields["pg_table"] = d.PGTable
	}
	if d.PGColumn != "" {
		fields["pg_column"] = d.PGColumn
	}
	if d.PGDetail != "" {
		fields["pg_detail"] = d.PGDetail
	}
	if len(d.Chain) > 1 {
		fields["cause_chain"] = d.Chain[1:]
	}
	return fields
}
