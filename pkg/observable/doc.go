// Package observable defines the minimal change-notification contract the
// validation engine consumes, plus two ready-made implementations.
//
// An entity is observable when it can report which of its fields changed.
// A change is identified by the field name; an empty name means "every field
// may have changed" and asks listeners to re-read the whole entity.
//
// # Usage
//
// Embed Emitter in a struct and call Notify from setters:
//
//	type Form struct {
//	    observable.Emitter
//	    name string
//	}
//
//	func (f *Form) SetName(v string) {
//	    f.name = v
//	    f.Notify("Name")
//	}
//
// Or use Record, a map-backed entity that notifies on Set and exposes field
// values by name through Get:
//
//	rec := observable.NewRecord(map[string]any{"Name": ""})
//	unsubscribe := rec.Subscribe(func(field string) { fmt.Println(field) })
//	defer unsubscribe()
//	rec.Set("Name", "ok")
//
// Listeners are called synchronously on the goroutine that raised the change,
// in subscription order. Subscribe and the returned unsubscribe function are
// safe for concurrent use.
package observable
