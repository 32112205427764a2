// Package sphinx parses documentation comments
// written with Sphinx-style field lists.
//
// A documentation comment in this style looks like this:
//
//	Title of the comment.
//
//	Long description goes here,
//	with multi-line support.
//
//	:param str name: Description of name
//	:param limit: Description of limit
//	:type limit: int
//	:returns: What the function returns
//
// The title is the first line.
// Everything up to the first field is the long description.
// Fields may appear in any order
// and descriptions may continue over multiple lines.
//
// [Parse] never fails.
// Missing or malformed fields leave the corresponding values empty.
package sphinx
