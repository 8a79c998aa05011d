// ABOUTME: Tests for identity context propagation
// ABOUTME: Covers round-trips, absent values, and MustFromContext panics

package auth

import (
	"context"
	"testing"
)

func TestWithIdentity_RoundTrip(t *testing.T) {
	ctx := context.Background()
	id := &Identity{Email: "a@x.com"}

	ctx = WithIdentity(ctx, id)

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("expected identity in context")
	}
	if got.Email != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %q", got.Email)
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := FromContext(context.Background()); got != nil {
		t.Errorf("expected nil identity, got %+v", got)
	}
}

func TestMustFromContext_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing identity")
		}
	}()
	MustFromContext(context.Background())
}

func TestMustFromContext_ReturnsIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), &Identity{Email: "a@x.com"})
	got := MustFromContext(ctx)
	if got.Email != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %q", got.Email)
	}
}
