package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected sql.ErrNoRows to count as not found")
	}
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatal("expected wrapped sql.ErrNoRows to count as not found")
	}
	if isNotFound(errors.New("pq: connection refused")) {
		t.Fatal("expected unrelated error to not count as not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := errors.New(`pq: duplicate key value violates unique constraint "users_email_key" (23505)`)
	if !isUniqueViolation(err) {
		t.Fatal("expected unique violation to match")
	}
	if isUniqueViolation(errors.New("pq: relation teams does not exist")) {
		t.Fatal("expected unrelated error to not match")
	}
	if isUniqueViolation(nil) {
		t.Fatal("expected nil to not match")
	}
}

func TestNullTimeConversions(t *testing.T) {
	if got := nullTimeToPtr(sql.NullTime{}); got != nil {
		t.Fatalf("expected nil for invalid NullTime, got %v", got)
	}

	at := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	got := nullTimeToPtr(sql.NullTime{Time: at, Valid: true})
	if got == nil || !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}

	back := ptrToNullTime(got)
	if !back.Valid || !back.Time.Equal(at) {
		t.Fatalf("expected valid NullTime %v, got %v", at, back)
	}
	if ptrToNullTime(nil).Valid {
		t.Fatal("expected invalid NullTime for nil pointer")
	}
}
