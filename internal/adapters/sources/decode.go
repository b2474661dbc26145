package sources

import (
	"bytes"
	"customer-directory-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/jsonc"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Decode parses a customer dataset: one JSON object keyed by customer number.
//
// The object key order is kept as the set order. // and /* */ comments and
// trailing commas are accepted so hand-edited datasets load unchanged.
func Decode(r io.Reader) (*domain.CustomerSet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode customers: read: %w", err)
	}
	return DecodeBytes(raw)
}

// DecodeBytes is Decode over an in-memory document. zstd-compressed input
// is detected by its frame magic and decompressed first.
func DecodeBytes(raw []byte) (*domain.CustomerSet, error) {
	if bytes.HasPrefix(raw, zstdMagic) {
		plain, err := decompress(raw)
		if err != nil {
			return nil, err
		}
		raw = plain
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode customers: read opening token: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decode customers: dataset must be a JSON object keyed by customer number")
	}

	set := domain.NewCustomerSet(256)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode customers: read key: %w", err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode customers: unexpected key token %v", tok)
		}

		var c *domain.Customer
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode customers: customer %q: %w", id, err)
		}
		if c == nil {
			return nil, fmt.Errorf("decode customers: customer %q: record is null", id)
		}
		c.ID = id
		set.Put(c)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode customers: read closing token: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode customers: unexpected data after dataset object")
	}

	return set, nil
}

func decompress(raw []byte) ([]byte, error) {
	zr, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("decode customers: create zstd decoder: %w", err)
	}
	defer zr.Close()

	plain, err := zr.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("decode customers: decompress: %w", err)
	}
	return plain, nil
}

// Compress zstd-encodes a dataset document. Used to produce *.json.zst bundles.
func Compress(plain []byte) ([]byte, error) {
	zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("compress customers: create zstd encoder: %w", err)
	}
	defer zw.Close()

	return zw.EncodeAll(plain, nil), nil
}
