// Package values models the dynamically shaped test-case payloads used by
// the grading engine: a test input or expected answer may be a scalar, an
// ordered sequence or a keyed mapping. The tagged union keeps equality and
// serialization rules explicit instead of leaning on runtime coercion.
package values

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
)

// Entry is one key/value pair of a keyed mapping. Entries keep their
// insertion order so rendered literals stay deterministic.
type Entry struct {
	Key   string
	Value Value
}

// Value is an immutable tagged union. The zero value is null.
type Value struct {
	kind    Kind
	str     string
	num     float64
	numText string
	boolean bool
	list    []Value
	entries []Entry
}

func NewNull() Value            { return Value{} }
func NewString(s string) Value  { return Value{kind: KindString, str: s} }
func NewBool(b bool) Value      { return Value{kind: KindBool, boolean: b} }
func NewList(items ...Value) Value {
	return Value{kind: KindList, list: items}
}
func NewMap(entries ...Entry) Value {
	return Value{kind: KindMap, entries: entries}
}

func NewNumber(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func (v Value) Kind() Kind { return v.kind }

// Equal reports deep equality. Mappings compare order-insensitively, the
// way the source platform's dict equality behaves; sequences are ordered.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.boolean == o.boolean
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for _, e := range v.entries {
			other, ok := o.lookup(e.Key)
			if !ok || !e.Value.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) lookup(key string) (Value, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// AsFloat coerces the value to a float64 where the grading rules allow it:
// numbers directly, strings via parsing. Booleans deliberately do not
// coerce.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		return f, err == nil
	}
	return 0, false
}

// String renders the value for display in evidence records: top-level
// strings stay bare, everything else uses the literal form.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	return v.Repr()
}

// Repr renders the value as a Python literal. This is what the harness
// generator splices into the wrapper program, so it must round-trip through
// the target interpreter unchanged.
func (v Value) Repr() string {
	switch v.kind {
	case KindNull:
		return "None"
	case KindString:
		return pythonQuote(v.str)
	case KindNumber:
		return v.numberText()
	case KindBool:
		if v.boolean {
			return "True"
		}
		return "False"
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.Repr()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.entries))
		for i, e := range v.entries {
			parts[i] = pythonQuote(e.Key) + ": " + e.Value.Repr()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "None"
}

func (v Value) numberText() string {
	if v.numText != "" {
		return v.numText
	}
	if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
		return "0"
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

func pythonQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			// Remaining control characters (NUL included, which a JSON
			// bundle can legally carry) must not reach the interpreter raw.
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Decode parses a single JSON value, preserving mapping key order and the
// original number spelling.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeNext(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Decode(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if v.numText != "" {
			return []byte(v.numText), nil
		}
		return []byte(v.numberText()), nil
	case KindBool:
		return json.Marshal(v.boolean)
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			raw, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			raw, err := e.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return []byte("null"), nil
}

func decodeNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			list := []Value{}
			for dec.More() {
				item, err := decodeNext(dec)
				if err != nil {
					return Value{}, err
				}
				list = append(list, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindList, list: list}, nil
		case '{':
			entries := []Entry{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeNext(dec)
				if err != nil {
					return Value{}, err
				}
				entries = append(entries, Entry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindMap, entries: entries}, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return Value{kind: KindString, str: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, errors.Wrap(err, "parse number")
		}
		return Value{kind: KindNumber, num: f, numText: t.String()}, nil
	case bool:
		return Value{kind: KindBool, boolean: t}, nil
	case nil:
		return Value{}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}
