package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	errInvalidJSON          = errors.New("invalid JSON body")
	errUnsupportedMediaType = errors.New("unsupported media type")
)

// decodeJSON binds the request body into v. Decoding is strict: unknown
// fields, trailing data, and non-JSON content types are rejected.
func decodeJSON(r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType := ct
		if idx := strings.Index(ct, ";"); idx != -1 {
			mediaType = strings.TrimSpace(ct[:idx])
		}
		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", errUnsupportedMediaType, mediaType)
		}
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errInvalidJSON)
		}
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", errInvalidJSON)
	}
	return nil
}
