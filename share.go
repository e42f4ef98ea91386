package hunter

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// This file implements the share codec: a single sector travels as a URL
// query value, the whole collection as a pretty-printed backup file. Both
// encodings are obfuscation at most, not security, and both must be exactly
// invertible.

// shareParam is the query parameter carrying an encoded sector.
const shareParam = "strategy"

// DecodeErrorKind separates "the text is not a valid encoding" from "the
// encoding is fine but the payload is not a sector".
type DecodeErrorKind int

const (
	DecodeMalformed DecodeErrorKind = iota
	DecodeBadShape
)

func (k DecodeErrorKind) String() string {
	if k == DecodeBadShape {
		return "bad shape"
	}
	return "malformed"
}

// DecodeError is returned by the decode half of the codec. Callers that only
// need to report can print it; import flows use Kind to phrase the failure.
type DecodeError struct {
	Kind DecodeErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error (%s): %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeSector serializes a sector to its canonical JSON form and applies a
// two stage text transform: percent escaping of every byte outside the
// unreserved set, then standard base64. The token is safe as a URL query
// value and DecodeSector inverts it exactly, field for field.
func EncodeSector(sec Sector) (string, error) {
	data, err := json.Marshal(sec)
	if err != nil {
		return "", fmt.Errorf("cannot marshal sector %q: %w", sec.ID, err)
	}
	escaped := percentEncode(data)
	return base64.StdEncoding.EncodeToString([]byte(escaped)), nil
}

// DecodeSector reverses EncodeSector. Malformed tokens (bad base64, bad
// percent escapes, or text that is not JSON) and payloads that are not a
// sector object both yield a *DecodeError and never a partially populated
// sector.
func DecodeSector(token string) (Sector, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Sector{}, &DecodeError{DecodeMalformed, fmt.Errorf("bad base64 token: %w", err)}
	}
	unescaped, err := url.PathUnescape(string(raw))
	if err != nil {
		return Sector{}, &DecodeError{DecodeMalformed, fmt.Errorf("bad percent escaping: %w", err)}
	}
	data := []byte(unescaped)
	if !json.Valid(data) {
		return Sector{}, &DecodeError{DecodeMalformed, fmt.Errorf("token payload is not JSON")}
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Sector{}, &DecodeError{DecodeBadShape, fmt.Errorf("sector payload is not a JSON object")}
	}
	var sec Sector
	if err := json.Unmarshal(data, &sec); err != nil {
		return Sector{}, &DecodeError{DecodeBadShape, fmt.Errorf("payload does not match the sector shape: %w", err)}
	}
	if sec.ID == "" || sec.Name == "" {
		return Sector{}, &DecodeError{DecodeBadShape, fmt.Errorf("sector payload is missing id or name")}
	}
	if !sec.Phase.Valid() {
		return Sector{}, &DecodeError{DecodeBadShape, fmt.Errorf("sector payload has unknown phase %q", sec.Phase)}
	}
	return sec, nil
}

// ShareURL returns the shareable link for a sector: the base address with
// the encoded sector set as the strategy query value.
func ShareURL(base string, sec Sector) (string, error) {
	token, err := EncodeSector(sec)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("bad share base address %q: %w", base, err)
	}
	q := u.Query()
	q.Set(shareParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// SectorFromShareURL extracts and decodes the sector carried by a share
// link.
func SectorFromShareURL(link string) (Sector, error) {
	u, err := url.Parse(link)
	if err != nil {
		return Sector{}, &DecodeError{DecodeMalformed, fmt.Errorf("bad share link: %w", err)}
	}
	token := u.Query().Get(shareParam)
	if token == "" {
		return Sector{}, &DecodeError{DecodeMalformed, fmt.Errorf("share link has no %q parameter", shareParam)}
	}
	return DecodeSector(token)
}

// QRImageURL points an external code-image renderer at the share link, as a
// presentation aid next to the copyable URL.
func QRImageURL(shareURL string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" +
		url.QueryEscape(shareURL) + "&bgcolor=0a0a0a&color=ffffff&margin=10"
}

// EncodeBackup serializes the whole collection as a pretty-printed JSON
// array, the format of both the backup file and the persistence file.
func EncodeBackup(sectors []Sector) ([]byte, error) {
	if sectors == nil {
		sectors = []Sector{}
	}
	data, err := json.MarshalIndent(sectors, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot marshal sector collection: %w", err)
	}
	return append(data, '\n'), nil
}

// BackupFilename names a backup file after the calendar date of the export.
func BackupFilename(t time.Time) string {
	return "Hunter_Backup_" + t.Format("2006-01-02") + ".json"
}

// DecodeBackup parses a backup payload. The top level must be a JSON array;
// anything else is rejected without producing a partial collection, so the
// caller's existing state stays untouched. An empty array is a valid, empty
// collection.
func DecodeBackup(data []byte) ([]Sector, error) {
	if !json.Valid(data) {
		return nil, &DecodeError{DecodeMalformed, fmt.Errorf("backup payload is not JSON")}
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DecodeError{DecodeBadShape, fmt.Errorf("backup payload is not a JSON array")}
	}
	sectors := make([]Sector, 0)
	if err := json.Unmarshal(data, &sectors); err != nil {
		return nil, &DecodeError{DecodeBadShape, fmt.Errorf("payload does not match the sector collection shape: %w", err)}
	}
	return sectors, nil
}

// percentEncode escapes every byte outside the unreserved set, matching the
// escaping the share links have always used. url.PathUnescape inverts it.
func percentEncode(data []byte) string {
	const upperhex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if isUnreservedByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreservedByte(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
