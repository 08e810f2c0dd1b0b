// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symtab_test

import (
	"github.com/internlab/symtab/validate"
)

// anyText accepts arbitrary content, like the loosest possible domain.
type anyText struct{}

func (anyText) Validate(string) error { return nil }

// alnumOnly accepts only alphanumeric content.
type alnumOnly struct{}

func (alnumOnly) Validate(text string) error {
	return validate.Alphanumeric(text)
}

// userTag is a stricter domain with a custom debug rendering.
type userTag struct{}

func (userTag) Validate(text string) error {
	return validate.All(validate.NonEmpty, validate.Identifier)(text)
}

func (userTag) FormatSymbol(text string) string {
	return "user:" + text
}
