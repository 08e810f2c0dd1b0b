// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package validate

import (
	"errors"
	"testing"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		text string
		ok   bool
	}{
		{"anything empty", Anything, "", true},
		{"anything control", Anything, "\x00", true},

		{"non-empty rejects empty", NonEmpty, "", false},
		{"non-empty accepts space", NonEmpty, " ", true},

		{"alnum accepts ascii", Alphanumeric, "abc123", true},
		{"alnum accepts unicode letters", Alphanumeric, "étude42", true},
		{"alnum accepts empty", Alphanumeric, "", true},
		{"alnum rejects dash", Alphanumeric, "a-b", false},
		{"alnum rejects space", Alphanumeric, "a b", false},

		{"identifier accepts plain", Identifier, "snake_case_1", true},
		{"identifier accepts leading underscore", Identifier, "_private", true},
		{"identifier rejects empty", Identifier, "", false},
		{"identifier rejects leading digit", Identifier, "1abc", false},
		{"identifier rejects dash", Identifier, "kebab-case", false},
		{"identifier rejects unicode", Identifier, "étude", false},

		{"ascii accepts printable", ASCII, "plain text!", true},
		{"ascii accepts control", ASCII, "\t", true},
		{"ascii rejects multibyte", ASCII, "café", false},

		{"printable accepts text", Printable, "hello world", true},
		{"printable rejects control", Printable, "a\x00b", false},

		{"max-len under", MaxLen(5), "12345", true},
		{"max-len over", MaxLen(5), "123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule(tt.text)
			if (err == nil) != tt.ok {
				t.Errorf("rule(%q) = %v, want ok=%v", tt.text, err, tt.ok)
			}
			if err != nil {
				var verr *Error
				if !errors.As(err, &verr) {
					t.Fatalf("expected *Error, got %T", err)
				}
				if verr.Text != tt.text {
					t.Errorf("Error.Text = %q, want %q", verr.Text, tt.text)
				}
			}
		})
	}
}

func TestAll(t *testing.T) {
	rule := All(NonEmpty, Identifier, MaxLen(8))

	if err := rule("short_id"); err != nil {
		t.Errorf("expected acceptance, got %v", err)
	}

	// First rejection wins.
	var verr *Error
	if err := rule(""); !errors.As(err, &verr) || verr.Rule != "non-empty" {
		t.Errorf("expected non-empty rejection, got %v", err)
	}
	if err := rule("this_is_too_long"); !errors.As(err, &verr) || verr.Rule != "max-len" {
		t.Errorf("expected max-len rejection, got %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Identifier("a-b")
	const want = `validate: identifier: character '-' is not allowed: "a-b"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
}
