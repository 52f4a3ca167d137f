package dtos

import "testing"

func TestCleanOptionals(t *testing.T) {
	t.Run("empty becomes absent", func(t *testing.T) {
		a := ""
		p := &a
		CleanOptionals(&p)
		if p != nil {
			t.Fatalf("expected nil, got %q", *p)
		}
	})
	t.Run("whitespace becomes absent", func(t *testing.T) {
		a := "  "
		p := &a
		CleanOptionals(&p)
		if p != nil {
			t.Fatalf("expected nil, got %q", *p)
		}
	})
	t.Run("value is trimmed and kept", func(t *testing.T) {
		a := "  keep me  "
		p := &a
		CleanOptionals(&p)
		if p == nil || *p != "keep me" {
			t.Fatalf("expected trimmed value, got %v", p)
		}
	})
	t.Run("nil stays nil", func(t *testing.T) {
		var p *string
		CleanOptionals(&p)
		if p != nil {
			t.Fatalf("expected nil, got %q", *p)
		}
	})
}
