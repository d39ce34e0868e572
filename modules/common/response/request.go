package response

import (
	"encoding/json"
	"errors"
	"io"
)

// DecodeJSON decodes exactly one JSON value from body into v.
// Anything other than whitespace after that value is an error.
func DecodeJSON(body io.Reader, v interface{}, useNumber bool) error {
	dec := json.NewDecoder(body)
	if useNumber {
		dec.UseNumber()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
