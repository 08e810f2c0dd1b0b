// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symtab

// Domain is the validation capability attached to a symbol type. A domain
// is a zero-size marker struct; its zero value is invoked, so Validate must
// be a pure function of text.
//
// Validate runs on every parse attempt, before the interning table is
// consulted. The error it returns is surfaced to the caller unmodified.
//
// Domains select the Symbol type, not the table key: two domains that
// accept the same content share its physical storage, while their Symbol
// types remain distinct and incompatible.
type Domain interface {
	Validate(text string) error
}

// Formatter is optionally implemented by domains that want custom debug
// rendering of their symbols. It is consulted by Symbol.GoString; the
// default rendering quotes the raw content.
type Formatter interface {
	FormatSymbol(text string) string
}
