// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package symtab_test

import (
	"fmt"

	"github.com/internlab/symtab"
)

func ExampleParse() {
	// userTag accepts identifiers only.
	id, err := symtab.Parse[userTag]("alice")
	fmt.Println(id, err)

	_, err = symtab.Parse[userTag]("not an identifier")
	fmt.Println(err != nil)

	// Output:
	// alice <nil>
	// true
}

func ExampleMustParse() {
	const adminName = "admin"

	// MustParse is for constants known to be valid; it panics otherwise.
	admin := symtab.MustParse[userTag](adminName)
	other := symtab.MustParse[userTag]("admin")

	fmt.Println(admin.Equal(other))
	fmt.Printf("%#v\n", admin)

	// Output:
	// true
	// user:admin
}

func ExampleParseIn() {
	// A private table isolates interning (and its stats) from the rest
	// of the process.
	tab := symtab.NewTable()

	a, _ := symtab.ParseIn[anyText](tab, "hello")
	b, _ := symtab.ParseIn[anyText](tab, "hello")

	fmt.Println(a.Equal(b), tab.Len())

	// Output:
	// true 1
}
