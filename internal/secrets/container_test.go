package secrets

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	serrors "github.com/tovesk/envseal/internal/errors"
)

func validContainerJSON(t *testing.T) map[string]string {
	t.Helper()
	return map[string]string{
		"version": FormatVersion,
		"salt":    strings.Repeat("ab", saltSize),
		"iv":      strings.Repeat("cd", nonceSize),
		"content": "deadbeef",
		"authTag": strings.Repeat("ef", tagSize),
	}
}

func marshalJSON(t *testing.T, fields map[string]string) []byte {
	t.Helper()
	raw, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("Failed to marshal test container: %v", err)
	}
	return raw
}

func TestParseContainer_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, saltSize)
	iv := bytes.Repeat([]byte{0x02}, nonceSize)
	content := []byte{0xde, 0xad, 0xbe, 0xef}
	tag := bytes.Repeat([]byte{0x03}, tagSize)

	raw, err := marshalContainer(salt, iv, content, tag)
	if err != nil {
		t.Fatalf("marshalContainer failed: %v", err)
	}

	c, err := parseContainer(raw)
	if err != nil {
		t.Fatalf("parseContainer failed: %v", err)
	}
	if c.version != FormatVersion {
		t.Errorf("version = %q, want %q", c.version, FormatVersion)
	}
	if !bytes.Equal(c.salt, salt) || !bytes.Equal(c.iv, iv) || !bytes.Equal(c.content, content) || !bytes.Equal(c.authTag, tag) {
		t.Errorf("Decoded fields do not match input")
	}
}

func TestParseContainer_HexIsLowercase(t *testing.T) {
	raw, err := marshalContainer(
		bytes.Repeat([]byte{0xAB}, saltSize),
		bytes.Repeat([]byte{0xCD}, nonceSize),
		[]byte{0xEF},
		bytes.Repeat([]byte{0xFF}, tagSize),
	)
	if err != nil {
		t.Fatalf("marshalContainer failed: %v", err)
	}
	if bytes.ContainsAny(raw, "ABCDEF") {
		t.Errorf("Serialized container contains uppercase hex: %s", raw)
	}
}

func TestParseContainer_MissingFields(t *testing.T) {
	for _, field := range []string{"salt", "iv", "content", "authTag"} {
		fields := validContainerJSON(t)
		delete(fields, field)

		_, err := parseContainer(marshalJSON(t, fields))
		if !errors.Is(err, serrors.ErrInvalidFormat) {
			t.Errorf("Missing %q: got %v, want ErrInvalidFormat", field, err)
		}
	}
}

func TestParseContainer_BrokenJSON(t *testing.T) {
	_, err := parseContainer([]byte("this is not a container"))
	if !errors.Is(err, serrors.ErrMalformedContainer) {
		t.Errorf("Got %v, want ErrMalformedContainer", err)
	}
}

func TestParseContainer_BadHex(t *testing.T) {
	fields := validContainerJSON(t)
	fields["content"] = "not-hex-at-all"

	_, err := parseContainer(marshalJSON(t, fields))
	if !errors.Is(err, serrors.ErrMalformedContainer) {
		t.Errorf("Got %v, want ErrMalformedContainer", err)
	}
}

func TestParseContainer_WrongFieldSizes(t *testing.T) {
	cases := map[string]string{
		"salt":    "abcd",
		"iv":      "abcd",
		"authTag": "abcd",
	}
	for field, short := range cases {
		fields := validContainerJSON(t)
		fields[field] = short

		_, err := parseContainer(marshalJSON(t, fields))
		if !errors.Is(err, serrors.ErrInvalidFormat) {
			t.Errorf("Short %q: got %v, want ErrInvalidFormat", field, err)
		}
	}
}

func TestParseContainer_EmptyContentIsValid(t *testing.T) {
	// An empty plaintext produces an empty ciphertext; the field is
	// present, just empty, and that must parse.
	fields := validContainerJSON(t)
	fields["content"] = ""

	c, err := parseContainer(marshalJSON(t, fields))
	if err != nil {
		t.Fatalf("Empty content should parse, got: %v", err)
	}
	if len(c.content) != 0 {
		t.Errorf("content = %v, want empty", c.content)
	}
}
