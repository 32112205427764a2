package sphinx_test

import (
	"fmt"

	"go.abhg.dev/fielddoc/internal/sphinx"
)

func ExampleParse() {
	d := sphinx.Parse(`Fetch rows from a table.

Rows are returned in primary key order.

:param str table: Name of the table
:param limit: Maximum number of rows
    to return.
:type limit: int
:returns: Matching rows,
    or an empty list.`)

	fmt.Println(d.Short)
	fmt.Println(d.Long)
	for _, name := range []string{"table", "limit"} {
		p := d.Params[name]
		fmt.Printf("%v (%v): %v\n", name, *p.Type, p.Doc)
	}
	fmt.Println(d.Returns)

	// Output:
	// Fetch rows from a table.
	// Rows are returned in primary key order.
	// table (str): Name of the table
	// limit (int): Maximum number of rows to return.
	// Matching rows,
	// or an empty list.
}

func ExampleNormalize() {
	fmt.Printf("%q\n", sphinx.Normalize("  Title\n      indented\n        more\n"))

	// Output:
	// "Title\nindented\n  more\n"
}
