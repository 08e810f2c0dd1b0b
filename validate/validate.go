// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package validate provides reusable content rules for symbol domains.
//
// A rule is a pure function from text to an acceptance decision. Domains
// typically delegate their Validate method to one rule or to a conjunction
// built with All:
//
//	type tagDomain struct{}
//
//	func (tagDomain) Validate(text string) error {
//		return validate.All(validate.NonEmpty, validate.Identifier)(text)
//	}
package validate

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Rule decides whether text is acceptable. A nil return accepts; a non-nil
// return rejects with the reason.
type Rule func(text string) error

// Error describes content rejected by a rule.
type Error struct {
	// Rule names the rule that rejected the content.
	Rule string

	// Text is the rejected content.
	Text string

	// Message explains the rejection.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validate: %s: %s: %q", e.Rule, e.Message, e.Text)
}

// Anything accepts all content, including the empty string.
func Anything(string) error {
	return nil
}

// NonEmpty rejects the empty string.
func NonEmpty(text string) error {
	if text == "" {
		return &Error{Rule: "non-empty", Text: text, Message: "content is empty"}
	}
	return nil
}

// Alphanumeric accepts content consisting entirely of Unicode letters and
// digits. The empty string is accepted; combine with NonEmpty if needed.
func Alphanumeric(text string) error {
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &Error{
				Rule:    "alphanumeric",
				Text:    text,
				Message: fmt.Sprintf("character %q is not alphanumeric", r),
			}
		}
	}
	return nil
}

// Identifier accepts a non-empty ASCII identifier: a letter or underscore
// followed by letters, digits or underscores.
func Identifier(text string) error {
	if text == "" {
		return &Error{Rule: "identifier", Text: text, Message: "content is empty"}
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return &Error{Rule: "identifier", Text: text, Message: "starts with a digit"}
			}
		default:
			return &Error{
				Rule:    "identifier",
				Text:    text,
				Message: fmt.Sprintf("character %q is not allowed", c),
			}
		}
	}
	return nil
}

// ASCII rejects content containing bytes outside the 7-bit ASCII range.
func ASCII(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return &Error{Rule: "ascii", Text: text, Message: "content is not ASCII"}
		}
	}
	return nil
}

// Printable rejects content containing non-printable runes as defined by
// unicode.IsPrint.
func Printable(text string) error {
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return &Error{
				Rule:    "printable",
				Text:    text,
				Message: fmt.Sprintf("rune %U is not printable", r),
			}
		}
	}
	return nil
}

// MaxLen returns a rule rejecting content longer than n bytes.
func MaxLen(n int) Rule {
	return func(text string) error {
		if len(text) > n {
			return &Error{
				Rule:    "max-len",
				Text:    text,
				Message: fmt.Sprintf("content exceeds %d bytes", n),
			}
		}
		return nil
	}
}

// All returns the conjunction of rules, applied in order. The first
// rejection wins.
func All(rules ...Rule) Rule {
	return func(text string) error {
		for _, rule := range rules {
			if err := rule(text); err != nil {
				return err
			}
		}
		return nil
	}
}
