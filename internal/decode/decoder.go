// Package decode turns a raw corpus of concatenated JSON object literals
// into normalized candidates.
package decode

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Decoder yields objects from a stream of JSON object literals written
// back to back with no array brackets or separators. The corpus is
// pre-filtered by a lossy text match upstream, so fragments may be
// truncated or plain garbage; a fragment that fails to parse is skipped
// and scanning resumes at the next '{'.
//
// A single json.Decoder is carried across records (it consumes
// concatenated values natively), so a clean pass retains no per-record
// state; only a parse failure discards it for a resync.
type Decoder struct {
	src *source
	dec *json.Decoder
}

// source feeds the JSON parser, serving bytes reclaimed by a resync
// before the underlying stream.
type source struct {
	pre []byte
	r   *bufio.Reader
}

func (s *source) Read(p []byte) (int, error) {
	if len(s.pre) > 0 {
		n := copy(p, s.pre)
		s.pre = s.pre[n:]
		return n, nil
	}
	return s.r.Read(p)
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{src: &source{r: bufio.NewReader(r)}}
}

// Next returns the next well-formed object, or io.EOF once the stream is
// exhausted. Any other error comes from the underlying reader and is
// fatal. Numbers are returned as json.Number so integer fields survive
// without float rounding.
func (d *Decoder) Next() (map[string]any, error) {
	for {
		if d.dec == nil {
			if err := d.seekObject(); err != nil {
				return nil, err
			}
			d.dec = json.NewDecoder(d.src)
			d.dec.UseNumber()
		}

		var obj map[string]any
		err := d.dec.Decode(&obj)
		if err == nil {
			if obj == nil {
				// A top-level null decodes without error.
				continue
			}
			return obj, nil
		}
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// A complete value that is not an object. The parser has
			// already consumed it and is still in sync.
			continue
		}
		d.resync()
	}
}

// resync reclaims whatever the failed parser had buffered and positions
// the stream for a fresh scan. A failed parse leaves the offending value
// unread in that buffer, so the first byte is dropped to keep the next
// scan from finding the same '{' again.
func (d *Decoder) resync() {
	rest, _ := io.ReadAll(d.dec.Buffered())
	d.dec = nil
	if len(rest) > 0 {
		d.src.pre = append(rest[1:], d.src.pre...)
	}
}

// seekObject advances the stream to the next '{', which it leaves unread.
func (d *Decoder) seekObject() error {
	if i := bytes.IndexByte(d.src.pre, '{'); i >= 0 {
		d.src.pre = d.src.pre[i:]
		return nil
	}
	d.src.pre = nil
	for {
		b, err := d.src.r.ReadByte()
		if err != nil {
			return err
		}
		if b == '{' {
			return d.src.r.UnreadByte()
		}
	}
}
