// Package docstring defines a style-agnostic intermediate representation for
// source documentation comments, shared by every docstring style parser and
// renderer.
//
// The model separates a docstring into prose and metadata. Prose is the short
// summary line plus an optional long description. Metadata is an ordered list
// of classified fragments: parameters, return values, raised conditions,
// deprecation notices, examples and notes. Fragments implement the sealed
// Meta interface; the concrete set of variants is fixed by this package.
//
// A Docstring is produced by a style parser (see Parser), inspected through
// its derived views such as Params and Returns, optionally reflowed with
// Normalize, and serialized back to text by a renderer (see Renderer). The
// keyword tables and Classify report which fragment family a section header
// token belongs to, so parsers for different styles agree on classification.
package docstring
