package decode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// Normalizer validates raw decoded objects into candidates. Field
// locations are JSONPath expressions so corpora with a different layout
// can be mapped from config; the defaults match reddit submission dumps.
type Normalizer struct {
	fields domain.FieldMap
}

func NewNormalizer(fields domain.FieldMap) *Normalizer {
	def := domain.DefaultFieldMap()
	if fields.Score == "" {
		fields.Score = def.Score
	}
	if fields.Title == "" {
		fields.Title = def.Title
	}
	if fields.Author == "" {
		fields.Author = def.Author
	}
	if fields.Created == "" {
		fields.Created = def.Created
	}
	return &Normalizer{fields: fields}
}

// Normalize extracts and validates the four required fields. On any
// missing or mistyped field it returns a malformed_record error; the
// caller drops the record and continues.
func (n *Normalizer) Normalize(raw map[string]any) (domain.Candidate, error) {
	score, err := n.intField(raw, n.fields.Score, "score")
	if err != nil {
		return domain.Candidate{}, err
	}

	title, err := n.stringField(raw, n.fields.Title, "title")
	if err != nil {
		return domain.Candidate{}, err
	}
	if title == "" {
		return domain.Candidate{}, malformed("title", "must be non-empty")
	}

	author, err := n.stringField(raw, n.fields.Author, "author")
	if err != nil {
		return domain.Candidate{}, err
	}

	created, err := n.timestampField(raw, n.fields.Created, "created_utc")
	if err != nil {
		return domain.Candidate{}, err
	}

	return domain.Candidate{
		Score:     score,
		Title:     title,
		Author:    author,
		Timestamp: created,
	}, nil
}

func (n *Normalizer) lookup(raw map[string]any, expr, field string) (any, error) {
	v, err := jsonpath.Get(expr, any(raw))
	if err != nil {
		return nil, malformed(field, "missing")
	}
	return v, nil
}

func (n *Normalizer) intField(raw map[string]any, expr, field string) (int64, error) {
	v, err := n.lookup(raw, expr, field)
	if err != nil {
		return 0, err
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, malformed(field, "expected an integer")
	}
	i, err := num.Int64()
	if err != nil {
		return 0, malformed(field, "not an integer")
	}
	return i, nil
}

func (n *Normalizer) stringField(raw map[string]any, expr, field string) (string, error) {
	v, err := n.lookup(raw, expr, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", malformed(field, "expected text")
	}
	return s, nil
}

// timestampField accepts a JSON integer or a string of only decimal
// digits; either way the candidate carries a normalized integer epoch.
func (n *Normalizer) timestampField(raw map[string]any, expr, field string) (int64, error) {
	v, err := n.lookup(raw, expr, field)
	if err != nil {
		return 0, err
	}

	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, malformed(field, "not an integer")
		}
		return i, nil
	case string:
		if !allDigits(t) {
			return 0, malformed(field, "not a digit string")
		}
		i, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, malformed(field, "not a parsable timestamp")
		}
		return i, nil
	default:
		return 0, malformed(field, "expected an integer or digit string")
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func malformed(field, msg string) error {
	return &domain.OpError{
		Op:   "decode.normalize",
		Kind: domain.KindMalformedRecord,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrMalformedRecord),
	}
}
