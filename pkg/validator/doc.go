/*
Package validator checks nested data against a schema.Schema.

Every declared field goes through the same pipeline:

 1. existence: a missing required field fails with NoField; a missing
    optional field gets its default-value, or is skipped when it has none;
 2. coercion: with try-transformation, a value of the wrong type is
    converted to the declared type (see package coerce);
 3. type check: the runtime type must equal the declared type;
 4. constraints: the checks of the declared type run, and lists and records
    recurse into allowed-items and nested schemas.

Fields the schema does not declare are passed through untouched.

# Error policy

By default all field errors are accumulated. WithStopOnFirstError(true)
returns as soon as one error is found. A field whose spec sets Raise ends
the check on its first error regardless of the mode. In both stopping cases
the result holds exactly that one error.

# Allowed items

allowed-items is an ordered list of alternatives; the first that matches
wins. When an element matches none of them the field fails with
InvalidItemSchema (lists) or InvalidValueSchema (records), and the errors of
every failed spec attempt are added to the result too, so one bad element
can yield several errors. With WithStopOnFirstError the attempt errors are
dropped and the item error is the one returned.

# Nesting

Nested evaluations share one depth counter per check. Going deeper than the
configured maximum (DefaultMaxDepth unless WithMaxDepth is given) reports
MaxNestingExceeded instead of recursing further.

# Usage

	v := validator.New(s, validator.WithStopOnFirstError(false))
	res := v.Check(map[string]any{"name": "abcdef"})
	if !res.Valid {
	    for _, e := range res.Errors {
	        fmt.Println(e.Kind, e.Path, e)
	    }
	}

A Validator is immutable and safe for concurrent use; each Check owns its
own error list and depth counter, and works on a deep copy of the input.
*/
package validator
