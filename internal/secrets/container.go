package secrets

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	serrors "github.com/tovesk/envseal/internal/errors"
)

// FormatVersion tags the container layout. It round-trips through the file
// but does not drive any behavioral branching yet.
const FormatVersion = "1.0.0"

// containerFile is the on-disk shape of an encrypted container. All binary
// fields are lowercase hex so the file stays readable independent of the
// producing implementation. Pointer fields distinguish a missing field from
// a legitimately empty one (an empty plaintext yields empty content).
type containerFile struct {
	Version string  `json:"version"`
	Salt    *string `json:"salt"`
	IV      *string `json:"iv"`
	Content *string `json:"content"`
	AuthTag *string `json:"authTag"`
}

// container is the decoded, in-memory form consumed by decryption.
type container struct {
	version string
	salt    []byte
	iv      []byte
	content []byte
	authTag []byte
}

// marshalContainer serializes container fields into the persisted JSON form.
func marshalContainer(salt, iv, content, authTag []byte) ([]byte, error) {
	saltHex := hex.EncodeToString(salt)
	ivHex := hex.EncodeToString(iv)
	contentHex := hex.EncodeToString(content)
	tagHex := hex.EncodeToString(authTag)

	raw, err := json.Marshal(containerFile{
		Version: FormatVersion,
		Salt:    &saltHex,
		IV:      &ivHex,
		Content: &contentHex,
		AuthTag: &tagHex,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize container: %w", err)
	}
	return raw, nil
}

// parseContainer decodes a persisted container.
//
// Returns ErrMalformedContainer when the bytes are not parseable as the
// container format at all (broken JSON, undecodable hex), and
// ErrInvalidFormat when the JSON parsed but a required field is absent or
// has the wrong size.
func parseContainer(raw []byte) (*container, error) {
	var file containerFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", serrors.ErrMalformedContainer, err)
	}

	for _, field := range []struct {
		name  string
		value *string
	}{
		{"salt", file.Salt},
		{"iv", file.IV},
		{"content", file.Content},
		{"authTag", file.AuthTag},
	} {
		if field.value == nil {
			return nil, fmt.Errorf("missing field %q: %w", field.name, serrors.ErrInvalidFormat)
		}
	}

	c := &container{version: file.Version}
	var err error
	if c.salt, err = decodeHexField("salt", *file.Salt); err != nil {
		return nil, err
	}
	if c.iv, err = decodeHexField("iv", *file.IV); err != nil {
		return nil, err
	}
	if c.content, err = decodeHexField("content", *file.Content); err != nil {
		return nil, err
	}
	if c.authTag, err = decodeHexField("authTag", *file.AuthTag); err != nil {
		return nil, err
	}

	if len(c.salt) != saltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d: %w", saltSize, len(c.salt), serrors.ErrInvalidFormat)
	}
	if len(c.iv) != nonceSize {
		return nil, fmt.Errorf("iv must be %d bytes, got %d: %w", nonceSize, len(c.iv), serrors.ErrInvalidFormat)
	}
	if len(c.authTag) != tagSize {
		return nil, fmt.Errorf("authTag must be %d bytes, got %d: %w", tagSize, len(c.authTag), serrors.ErrInvalidFormat)
	}

	return c, nil
}

func decodeHexField(name, value string) ([]byte, error) {
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("field %q is not valid hex: %w", name, serrors.ErrMalformedContainer)
	}
	return decoded, nil
}
