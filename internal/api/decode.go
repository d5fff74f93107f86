package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sensortower/st-cli/internal/table"
)

const excerptLimit = 200

// decodeTable turns a raw response into a table, applying the status rules:
//
//   - empty body on 2xx is a legitimate empty result, not an error
//   - empty body on non-2xx is an APIError
//   - unparseable JSON is a JSONParseError carrying a body excerpt
//   - parseable non-2xx bodies yield an APIError with the best available
//     human-readable message; 422 gets a parameter-combination hint
//   - a 2xx body that is not a record or sequence of records degrades to
//     an empty table with a warning so callers' workflows keep going
func decodeTable(status int, body []byte) (*table.Table, error) {
	success := status >= 200 && status < 300

	if len(body) == 0 {
		if success {
			return table.New(), nil
		}
		return nil, &APIError{StatusCode: status, Message: "empty response"}
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &JSONParseError{
			StatusCode: status,
			Excerpt:    excerpt(body),
			Err:        err,
		}
	}

	if !success {
		msg := extractErrorMessage(probe)
		if msg == "" {
			msg = http.StatusText(status)
		}
		if status == http.StatusUnprocessableEntity {
			slog.Warn("API rejected the request parameters", "status", status, "message", msg)
			msg = "likely an invalid parameter or parameter combination: " + msg
		}
		return nil, &APIError{StatusCode: status, Message: msg}
	}

	tbl, ok := tabularize(body)
	if !ok {
		slog.Warn("unexpected response shape, returning empty table",
			"status", status, "body_excerpt", excerpt(body))
		return table.New(), nil
	}
	return tbl, nil
}

func excerpt(body []byte) string {
	if len(body) > excerptLimit {
		body = body[:excerptLimit]
	}
	return string(body)
}

// extractErrorMessage pulls a reason out of the conventional error shapes:
// an "error" string field, the first title under "errors", or the body
// itself when it is a single JSON string.
func extractErrorMessage(v any) string {
	switch body := v.(type) {
	case string:
		return body
	case map[string]any:
		if msg, ok := body["error"].(string); ok && msg != "" {
			return msg
		}
		if list, ok := body["errors"].([]any); ok && len(list) > 0 {
			if first, ok := list[0].(map[string]any); ok {
				if title, ok := first["title"].(string); ok {
					return title
				}
			}
		}
	}
	return ""
}

// tabularize parses the body as a single record or a sequence of records,
// preserving each record's key order so the table's columns come out as
// the insertion-ordered union across rows. Uses the token stream because
// unmarshaling into maps would lose key order.
func tabularize(body []byte) (*table.Table, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}

	tbl := table.New()
	switch delim := tok.(type) {
	case json.Delim:
		switch delim {
		case '{':
			if err := appendRecord(dec, tbl); err != nil {
				return nil, false
			}
			return tbl, true
		case '[':
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return nil, false
				}
				if d, ok := tok.(json.Delim); !ok || d != '{' {
					// Mixed or scalar elements: not a record sequence.
					return nil, false
				}
				if err := appendRecord(dec, tbl); err != nil {
					return nil, false
				}
			}
			return tbl, true
		}
	}
	return nil, false
}

// appendRecord consumes one object from the decoder (the opening '{' has
// already been read) and appends it as a row.
func appendRecord(dec *json.Decoder, tbl *table.Table) error {
	record := map[string]any{}
	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("object key is %T, not string", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		record[key] = value
		order = append(order, key)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return err
	}
	tbl.AppendRow(record, order)
	return nil
}
