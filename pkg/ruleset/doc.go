// Package ruleset reads validation rules from YAML files and registers them
// with a validation.Context.
//
// Each rule names a field, a check from Checks and the message shown when the
// check fails. Checks taking a parameter read it from arg. Combinations run a
// check over several fields: equal requires every value to match, and
// any_required requires at least one non-empty value.
//
//	rs, err := ruleset.Load("signup.yaml")
//	if err != nil {
//		return err
//	}
//	v := validation.New(record)
//	if err := ruleset.Apply(rs, v); err != nil {
//		return err
//	}
//	v.Validate()
package ruleset
