package utils

import (
	"context"
	"testing"
	"time"

	"github.com/mmdatafocus/fleetops_backend/appctx"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"2026-03-10", "2026-03-10T00:00:00Z"},
		{"2026-03-10T08:30:00", "2026-03-10T08:30:00Z"},
		{"2026-03-10T08:30:00+06:30", "2026-03-10T02:00:00Z"},
		{"2026-03-10T08:30:00.123Z", "2026-03-10T08:30:00.123Z"},
		{"  2026-03-10  ", "2026-03-10T00:00:00Z"},
	}
	for _, tc := range cases {
		in := tc.in
		got := ParseTimestamp(&in)
		if got == nil {
			t.Fatalf("ParseTimestamp(%q) returned nil", tc.in)
		}
		if got.Format(time.RFC3339Nano) != tc.expected {
			t.Fatalf("ParseTimestamp(%q) expected %s, got %s", tc.in, tc.expected, got.Format(time.RFC3339Nano))
		}
	}

	for _, bad := range []string{"", "   ", "10/03/2026", "tomorrow"} {
		in := bad
		if got := ParseTimestamp(&in); got != nil {
			t.Fatalf("ParseTimestamp(%q) expected nil, got %v", bad, got)
		}
	}
	if ParseTimestamp(nil) != nil {
		t.Fatal("ParseTimestamp(nil) expected nil")
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestJwtRoundTrip(t *testing.T) {
	t.Setenv("API_SECRET", "unit-test")
	token, err := JwtGenerate("u1", "CAPTAIN", []string{"P1"}, time.Hour)
	if err != nil {
		t.Fatalf("JwtGenerate error: %v", err)
	}
	parsed, err := JwtValidate(token)
	if err != nil || !parsed.Valid {
		t.Fatalf("JwtValidate error: %v", err)
	}
	claim := parsed.Claims.(*JwtCustomClaim)
	if !claim.CanAccessProject("P1") || claim.CanAccessProject("P2") {
		t.Fatalf("unexpected project access for %+v", claim.ProjectIDs)
	}

	t.Setenv("API_SECRET", "rotated")
	if _, err := JwtValidate(token); err == nil {
		t.Fatal("expected a token signed with another secret to fail")
	}
}

func TestWithoutProjectScope(t *testing.T) {
	ctx := SetProjectIdInContext(context.Background(), "P1")
	if appctx.GetBool(ctx, appctx.ContextKeySkipProjectScope) {
		t.Fatal("a plain project context must stay scoped")
	}
	unscoped := WithoutProjectScope(ctx)
	if !appctx.GetBool(unscoped, appctx.ContextKeySkipProjectScope) {
		t.Fatal("expected the skip flag to be set")
	}
	if id, _ := GetProjectIdFromContext(unscoped); id != "P1" {
		t.Fatalf("project id lost, got %q", id)
	}
}
