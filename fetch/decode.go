package fetch

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// decodeText converts body to a string using the charset declared in the
// Content-Type header. When no charset is declared, charset.NewReader
// sniffs the payload and falls back to UTF-8.
func decodeText(body []byte, contentType string) (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", &Error{Err: ErrRequest, Detail: fmt.Sprintf("resolving charset of %q: %v", contentType, err)}
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", &Error{Err: ErrRequest, Detail: fmt.Sprintf("decoding body: %v", err)}
	}

	return string(decoded), nil
}
