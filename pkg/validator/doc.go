// Package validator provides small, generic rule builders for checking
// numeric arguments before they reach a data structure.
//
// A Rule couples a boolean Check with the ValidationError that describes the
// failure. Apply evaluates a list of rules and aggregates every failure into a
// ValidationErrors value, which implements error and can be recovered from a
// wrapped error chain with ExtractValidationErrors.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NotNaN("capacity", c),
//	    validator.NonNegative("capacity", c),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // inspect field-level messages
//	    }
//	}
//
// Rules are stateless and allocation-light; the package keeps no global state.
package validator
