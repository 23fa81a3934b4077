package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestClassifyConstraint_PgxUnique(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_sales_invoice_number"}

	violation, ok := ClassifyConstraint(err)
	if !ok {
		t.Fatal("expected pgx unique violation to classify")
	}
	if violation.Kind != ConstraintUnique {
		t.Fatalf("unexpected kind %q", violation.Kind)
	}
	if violation.Constraint != "uq_sales_invoice_number" {
		t.Fatalf("unexpected constraint %q", violation.Constraint)
	}
	if violation.Code() != CodeConflict {
		t.Fatalf("unique violations must map to conflict, got %q", violation.Code())
	}
	if !IsUniqueViolation(err, "uq_sales_invoice_number") {
		t.Fatal("IsUniqueViolation should match by name")
	}
}

func TestClassifyConstraint_PqCheck(t *testing.T) {
	err := &pq.Error{Code: "23514", Constraint: "chk_sale_items_discount_percent"}

	violation, ok := ClassifyConstraint(err)
	if !ok || violation.Kind != ConstraintCheck {
		t.Fatalf("expected check violation, got %+v ok=%v", violation, ok)
	}
	if violation.Code() != CodeValidation {
		t.Fatalf("check violations must map to validation, got %q", violation.Code())
	}
	if !IsCheckViolation(err) {
		t.Fatal("IsCheckViolation should report true")
	}
}

func TestClassifyConstraint_SQLiteMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind ConstraintKind
		want string
	}{
		{
			name: "unique",
			err:  fmt.Errorf("UNIQUE constraint failed: sales.invoice_number"),
			kind: ConstraintUnique,
			want: "sales.invoice_number",
		},
		{
			name: "check",
			err:  fmt.Errorf("CHECK constraint failed: chk_sale_items_discount_amount"),
			kind: ConstraintCheck,
			want: "chk_sale_items_discount_amount",
		},
		{
			name: "foreign key",
			err:  fmt.Errorf("FOREIGN KEY constraint failed"),
			kind: ConstraintForeignKey,
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			violation, ok := ClassifyConstraint(tc.err)
			if !ok {
				t.Fatalf("expected classification for %v", tc.err)
			}
			if violation.Kind != tc.kind {
				t.Fatalf("unexpected kind %q, want %q", violation.Kind, tc.kind)
			}
			if violation.Constraint != tc.want {
				t.Fatalf("unexpected constraint %q, want %q", violation.Constraint, tc.want)
			}
		})
	}
}

func TestClassifyConstraint_PlainError(t *testing.T) {
	if _, ok := ClassifyConstraint(stdErrors.New("connection refused")); ok {
		t.Fatal("plain errors must not classify as constraint violations")
	}
	if _, ok := ClassifyConstraint(nil); ok {
		t.Fatal("nil must not classify")
	}
}

func TestFromStorage(t *testing.T) {
	wrapped := FromStorage(fmt.Errorf("UNIQUE constraint failed: users.username"), "creating user")
	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected a coded error")
	}
	if typed.Code() != CodeConflict {
		t.Fatalf("unexpected code %q", typed.Code())
	}

	var violation *ConstraintViolation
	if !stdErrors.As(wrapped, &violation) {
		t.Fatal("constraint violation should remain in the chain")
	}

	internal := FromStorage(stdErrors.New("io timeout"), "creating user")
	if As(internal).Code() != CodeInternal {
		t.Fatalf("plain storage errors must wrap as internal, got %q", As(internal).Code())
	}
}
