// Package errors provides structured error types for programmatic error
// handling across a fit configuration build.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedPattern,
//	    "invalid systematic pattern",
//	    cause,
//	    map[string]interface{}{
//	        "pattern":   "jes[",
//	        "processor": "template builder",
//	    },
//	)
package errors
