// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Symbol is an owning handle to one interned string, tagged at the type
// level with a domain. The domain type parameter has no runtime
// representation; it exists so that symbols of unrelated domains cannot be
// compared, hashed together, or substituted for one another, even when they
// wrap identical content.
//
// Symbols are cheap to copy (copying is the clone operation: no validation,
// no table access) and are valid map keys. The zero Symbol carries no entry
// and reads as the empty string; it is not guaranteed to satisfy its
// domain's policy.
//
// Equality and ordering are defined over content. Two symbols over equal
// content normally share the same entry, which the comparison methods
// exploit as a fast path, but identity is an optimization, not the
// semantics: a duplicate entry can exist transiently while the table
// settles a reclamation race.
type Symbol[D Domain] struct {
	e *entry
}

// Parse validates text against D and interns it in the Default table.
// It returns the domain's own error on rejection, in which case the table
// is not touched.
func Parse[D Domain](text string) (Symbol[D], error) {
	return ParseIn[D](Default(), text)
}

// ParseIn is Parse against an explicitly provided table.
//
// Validation always happens before the table is consulted. This ordering is
// load-bearing: content interned earlier by a domain with a looser policy
// must still pass this domain's own policy before a Symbol is handed out.
func ParseIn[D Domain](t *Table, text string) (Symbol[D], error) {
	var d D
	if err := d.Validate(text); err != nil {
		return Symbol[D]{}, err
	}
	return Symbol[D]{e: t.resolve(text)}, nil
}

// MustParse is Parse for trusted constants. It panics if text is rejected
// by the domain: a constant failing its own domain's policy is a programmer
// error, not a runtime condition. Use Parse for untrusted input.
func MustParse[D Domain](text string) Symbol[D] {
	return MustParseIn[D](Default(), text)
}

// MustParseIn is MustParse against an explicitly provided table.
func MustParseIn[D Domain](t *Table, text string) Symbol[D] {
	s, err := ParseIn[D](t, text)
	if err != nil {
		panic(fmt.Sprintf("symtab: constant %q rejected by its domain: %v", text, err))
	}
	return s
}

// Text returns the interned content. The returned string aliases the
// shared canonical allocation.
func (s Symbol[D]) Text() string {
	if s.e == nil {
		return ""
	}
	return s.e.text
}

// IsZero reports whether s is the zero Symbol.
func (s Symbol[D]) IsZero() bool {
	return s.e == nil
}

// Equal reports whether s and o carry equal content.
func (s Symbol[D]) Equal(o Symbol[D]) bool {
	return s.e == o.e || s.Text() == o.Text()
}

// Compare orders symbols lexically by content, returning -1, 0 or +1.
func (s Symbol[D]) Compare(o Symbol[D]) int {
	if s.e == o.e {
		return 0
	}
	return strings.Compare(s.Text(), o.Text())
}

// Hash returns a 64-bit hash of the content. Equal symbols hash equally,
// across tables and across process restarts.
func (s Symbol[D]) Hash() uint64 {
	return xxhash.Sum64String(s.Text())
}

// String returns the raw content.
func (s Symbol[D]) String() string {
	return s.Text()
}

// GoString returns the debug rendering: the domain's, if it implements
// Formatter, otherwise the quoted content.
func (s Symbol[D]) GoString() string {
	var d D
	if f, ok := any(d).(Formatter); ok {
		return f.FormatSymbol(s.Text())
	}
	return strconv.Quote(s.Text())
}

// MarshalText encodes the symbol as its raw content. Together with
// UnmarshalText this gives symbols a stable round-trip through
// encoding/json, YAML codecs layered on JSON, and any other text-based
// format.
func (s Symbol[D]) MarshalText() ([]byte, error) {
	return []byte(s.Text()), nil
}

// UnmarshalText decodes by routing through Parse, so decoded input is
// validated by the domain exactly like any other untrusted text.
func (s *Symbol[D]) UnmarshalText(b []byte) error {
	parsed, err := Parse[D](string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
