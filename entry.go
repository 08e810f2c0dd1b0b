// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symtab

import "strings"

// entry is the canonical backing allocation for one distinct interned
// string. All Symbols over equal content share the same entry once any
// in-flight racing settles. Entries are immutable after creation, so their
// content can be read without synchronization.
type entry struct {
	text string
}

// newEntry copies text into a fresh allocation. The caller may have sliced
// the content out of a much larger buffer; the canonical allocation must not
// pin that buffer for the lifetime of the entry.
func newEntry(text string) *entry {
	return &entry{text: strings.Clone(text)}
}
