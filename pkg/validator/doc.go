// Package validator provides reusable, field-bound predicate objects for the
// live validation engine in package validation.
//
// A Check couples a field name with a Test function over that field's current
// value. Checks are produced by Factory values so one definition can be bound
// to any field:
//
//	ctx.AddCheck("must not be empty", validator.Required("Name"))
//	ctx.AddCheck("directory does not exist", validator.DirExists("Root"))
//	ctx.AddCheck("digits only", validator.Pattern(`^\d+$`)("Code"))
//
// # Architecture
//
// Each source file groups a family of checks (`string_rules.go`,
// `numeric_rules.go`, `pattern_rules.go`, `file_rules.go`). Values arrive as
// `any` because the engine reads them by field name from the entity; every
// check treats an unexpected dynamic type as a failure rather than panicking.
//
// # Performance Considerations
//
// String, numeric and pattern checks are allocation-light comparisons.
// File checks call os.Stat on every evaluation; they are meant for local
// paths typed into a form and must stay fast, since the engine evaluates
// rules synchronously.
package validator
