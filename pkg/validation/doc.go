// Package validation keeps the error messages of a changing entity up to date
// without re-running every rule on every edit.
//
// Rules are boolean predicates over the entity, grouped into one ordered
// chain per field. A chain stops at the first rule that does not pass, so a
// "required" rule placed first hides a "too long" rule placed after it.
//
// # Results
//
// Every rule evaluates to one of three states: Valid, Invalid, or
// Insufficient. Insufficient is produced by a combination rule whose fields
// have not all been reached in the current pass, for example because another
// field's own chain failed earlier. Insufficient rules publish no message.
//
// # Usage
//
//	rec := observable.NewRecord(map[string]any{"Name": ""})
//	v := validation.New(rec)
//	defer v.Close()
//
//	_ = v.AddCheck("name is required", validator.Required("Name"))
//	_ = v.AddCheck("name is too long", validator.MaxLen(32)("Name"))
//	_ = v.AddCombination("passwords differ", func(r *observable.Record) bool {
//	    a, _ := r.Get("Password")
//	    b, _ := r.Get("Confirm")
//	    return a == b
//	}, "Password", "Confirm")
//
//	v.Validate()
//	msg, ok := v.Message("Name") // "name is required", true
//
//	rec.Set("Name", "Ann") // re-evaluates only the Name chain
//
// # Composition
//
// Contexts nest through ConnectContext and ConnectList. Message paths address
// nested fields: "@0.Street" is field Street of the first connection, and
// "#1[2].Qty" is field Qty of element 2 of the second connection. Messages
// returns every message keyed the same way, and HasError covers the whole tree.
//
// # Notifications
//
// OnChange listeners run synchronously when the published messages change.
// Changes returns a buffered asynchronous feed of the same events.
package validation
