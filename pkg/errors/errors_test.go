package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/lib/pq"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "store unreachable")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be discoverable via errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %q", err.Code())
	}
	if err.Error() != "DEPENDENCY_ERROR: store unreachable" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAs(t *testing.T) {
	err := New(CodeNotFound, "customer 1 missing").WithDetails(map[string]any{"id": 1})

	typed := As(err)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code %q", typed.Code())
	}
	if typed.Details() == nil {
		t.Fatal("expected details to survive")
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain errors should not convert")
	}
}

func TestDump(t *testing.T) {
	cause := &pq.Error{
		Code:       "23505",
		Constraint: "uq_sales_invoice_number",
		Table:      "sales",
		Message:    "duplicate key value violates unique constraint",
	}
	dump := Dump(Wrap(CodeConflict, cause, "creating sale"))

	if dump.Code != CodeConflict {
		t.Fatalf("unexpected code %q", dump.Code)
	}
	if dump.ConstraintKind != ConstraintUnique || dump.Constraint != "uq_sales_invoice_number" {
		t.Fatalf("constraint not classified: %+v", dump)
	}
	if dump.PGCode != "23505" || dump.PGTable != "sales" {
		t.Fatalf("postgres fields not extracted: %+v", dump)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected unwrap chain, got %v", dump.Chain)
	}

	fields := dump.Fields()
	if fields["constraint"] != "uq_sales_invoice_number" || fields["pg_code"] != "23505" {
		t.Fatalf("unexpected log fields: %v", fields)
	}
	if fields["error_code"] != string(CodeConflict) {
		t.Fatalf("code missing from log fields: %v", fields)
	}

	if got := Dump(nil); got.TopMessage != "" {
		t.Fatalf("nil error should dump empty, got %+v", got)
	}
}

func TestDumpSQLiteConstraint(t *testing.T) {
	cause := stdErrors.New("UNIQUE constraint failed: sales.invoice_number")
	dump := Dump(FromStorage(cause, "creating sale"))

	if dump.ConstraintKind != ConstraintUnique {
		t.Fatalf("sqlite violation not classified: %+v", dump)
	}
	if dump.Constraint != "sales.invoice_number" {
		t.Fatalf("unexpected constraint %q", dump.Constraint)
	}
	if dump.PGCode != "" {
		t.Fatalf("sqlite dump must not carry postgres fields: %+v", dump)
	}

	if fields := Dump(stdErrors.New("plain")).Fields(); len(fields) != 0 {
		t.Fatalf("plain errors should produce no fields, got %v", fields)
	}
}

func TestMetadataFor(t *testing.T) {
	if meta := MetadataFor(CodeConflict); meta.PublicMessage != "conflict detected" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta := MetadataFor("UNKNOWN"); meta.PublicMessage != "internal error" {
		t.Fatalf("unknown codes must fall back to internal, got %+v", meta)
	}
}
