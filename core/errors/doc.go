// Package errors holds the standardized error constructors shared by all
// strplus packages.
//
// Every constructor returns a *error.Error with a code, a severity and
// "module"/"operation" details, so callers and the CLI can react to the
// error class without parsing messages:
//
//	if delimiter == "" {
//	    return nil, errors.StringxInvalidArgument("explode", "delimiter", delimiter, "non-empty string")
//	}
//
// Use NewErrorBuilder for one-off errors that do not fit a constructor.
package errors
