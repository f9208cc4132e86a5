package predictionio

import "fmt"

// EncodingError is returned when an event cannot be encoded, typically
// because a property value has no JSON or msgpack representation.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("predictionio: %s encoding failed: %v", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// DecodingError is returned when an encoded event cannot be parsed.
type DecodingError struct {
	Op  string
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("predictionio: %s decoding failed: %v", e.Op, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
