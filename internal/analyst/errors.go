package analyst

import "errors"

var (
	// ErrNoJSONFound means the model reply contained no brace-delimited object.
	ErrNoJSONFound = errors.New("model did not return structured JSON")
	// ErrMalformedJSON means an object was found but did not parse or did not
	// match the expected shape.
	ErrMalformedJSON = errors.New("failed to parse model JSON output")
	// ErrMissingField means the parsed object omitted one of the required
	// fields despite the prompt's instructions.
	ErrMissingField = errors.New("model reply missing required field")
)
