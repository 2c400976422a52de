package save

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// Encode renders a snapshot as a .pqw payload.
func Encode(s Snapshot) ([]byte, error) {
	s.Version = Version
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// Decode reads a .pqw payload. Fields the document lacks keep the values
// from Default. Every failure is a *DecodeError.
func Decode(data []byte) (Snapshot, error) {
	raw, err := DecodeJSON(data)
	if err != nil {
		return Snapshot{}, err
	}
	raw, err = Migrate(raw)
	if err != nil {
		return Snapshot{}, decodeErr(StageMigrate, err)
	}
	s := Default()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, decodeErr(StageJSON, err)
	}
	return s, nil
}

// DecodeJSON unwraps a .pqw payload to its JSON document without
// interpreting it.
func DecodeJSON(data []byte) ([]byte, error) {
	raw, err := unbase64(bytes.TrimSpace(data))
	if err != nil {
		return nil, decodeErr(StageBase64, err)
	}
	if !utf8.Valid(raw) {
		return nil, decodeErr(StageUTF8, errors.New("payload is not valid UTF-8"))
	}
	if !json.Valid(raw) {
		return nil, decodeErr(StageJSON, errors.New("payload is not a JSON document"))
	}
	return raw, nil
}

// unbase64 accepts payloads whose trailing padding was lost.
func unbase64(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty payload")
	}
	var firstErr error
	for _, pad := range []string{"", "=", "==", "==="} {
		out, err := base64.StdEncoding.DecodeString(string(data) + pad)
		if err == nil {
			return out, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if out, err := base64.RawStdEncoding.DecodeString(string(bytes.TrimRight(data, "="))); err == nil {
		return out, nil
	}
	return nil, firstErr
}
