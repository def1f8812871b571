package crunchyroll

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// decodeJSON decodes data into v honouring the build's decode mode. Every
// custom UnmarshalJSON in this package goes through it so that strict mode
// reaches nested values too.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if StrictDecoding {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// newDecodeError classifies a decoder error into a DecodeError, pulling out
// the field and raw value where encoding/json reports them.
func newDecodeError(err error, url string, body []byte) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		// raised by one of our own UnmarshalJSON methods
		out := *de
		if out.URL == "" {
			out.URL = url
		}
		if out.Body == "" {
			out.Body = string(body)
		}
		return &out
	}

	out := &DecodeError{
		Message: "failed to decode response body",
		URL:     url,
		Body:    string(body),
		Err:     err,
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		out.Message = "unexpected " + typeErr.Value + " for " + typeErr.Type.String()
		out.Field = typeErr.Field
		out.Offset = typeErr.Offset
		out.Value = rawValueAt(body, typeErr.Offset, typeErr.Value)
	case errors.As(err, &syntaxErr):
		out.Message = syntaxErr.Error()
		out.Offset = syntaxErr.Offset
	default:
		if field, ok := unknownField(err); ok {
			out.Message = "unknown field"
			out.Field = field
		}
	}

	return out
}

// unknownField extracts the field name from the error DisallowUnknownFields produces.
func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field "`
	msg := err.Error()
	i := strings.Index(msg, prefix)
	if i < 0 {
		return "", false
	}
	name := msg[i+len(prefix):]
	return strings.TrimSuffix(name, `"`), true
}

// rawValueAt returns the scalar JSON value that ends at offset, or "" when
// the text found there is not a value of the reported kind. Offsets raised
// inside nested decoders are relative to the nested document, so the kind
// check keeps a wrong guess out of the error.
func rawValueAt(body []byte, offset int64, kind string) string {
	if offset <= 0 || offset > int64(len(body)) {
		return ""
	}
	end := int(offset)
	start := end - 1
	for start > 0 {
		c := body[start-1]
		if c == ':' || c == ',' || c == '[' {
			break
		}
		start--
	}
	raw := strings.TrimSpace(string(body[start:end]))
	if raw == "" {
		return ""
	}

	switch {
	case kind == "string" && raw[0] == '"' && json.Valid([]byte(raw)):
		return raw
	case strings.HasPrefix(kind, "number"):
		var n json.Number
		if json.Unmarshal([]byte(raw), &n) == nil {
			return raw
		}
	case kind == "bool" && (raw == "true" || raw == "false"):
		return raw
	}
	return ""
}
