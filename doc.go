// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package symtab implements process-wide string interning with
// domain-validated symbol handles.
//
// Equal string contents are deduplicated into a single shared, immutable
// backing allocation. Callers hold lightweight Symbol handles; the backing
// allocation is reclaimed automatically once the last handle referencing it
// is dropped.
//
// The interning table provides:
//   - Lock-light resolution: repeated parses of known content take only a
//     shard read lock
//   - Automatic reclamation via weak references and runtime cleanups, with a
//     race-free find-or-create protocol
//   - Type-level separation of symbol domains: Symbol[A] and Symbol[B] are
//     distinct, incompatible types even over identical content
//   - Shared physical storage across domains: dedup is by content, while
//     validation is per domain
//
// A domain is a zero-size marker type implementing Domain. Its Validate
// method runs on every parse, before the table is consulted, so content
// interned by a looser domain can never bypass a stricter domain's policy:
//
//	type userIDDomain struct{}
//
//	func (userIDDomain) Validate(text string) error {
//		return validate.Identifier(text)
//	}
//
//	type UserID = symtab.Symbol[userIDDomain]
//
//	id, err := symtab.Parse[userIDDomain](input) // untrusted input
//	admin := symtab.MustParse[userIDDomain]("admin") // trusted constant
//
// Symbols are cheap to copy, comparable as map keys, and serialize to plain
// text. Decoding routes through the same Parse path and therefore
// re-validates.
package symtab
