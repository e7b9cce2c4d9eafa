package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical serializes a TestFile to canonical JSON for content
// hashing. Two definitions that parse to the same model produce identical
// bytes, independent of source formatting or file encoding details.
//
// Canonical form:
//   - object keys are fixed ASCII literals written in a fixed order, so no
//     key sorting is needed
//   - strings are NFC normalized and encoded without HTML escaping
//   - input byte sequences are encoded as arrays of integers, never as
//     strings, so arbitrary bytes round-trip exactly
//   - optional setup events are encoded as explicit nulls to keep positions
//     stable
func MarshalCanonical(f *TestFile) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	if err := writeCanonicalString(&buf, f.Name); err != nil {
		return nil, err
	}
	buf.WriteString(`,"tests":[`)
	for i := range f.Tests {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeCanonicalTest(&buf, &f.Tests[i]); err != nil {
			return nil, fmt.Errorf("test %q: %w", f.Tests[i].Name, err)
		}
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}

func writeCanonicalTest(buf *bytes.Buffer, t *Test) error {
	buf.WriteString(`{"name":`)
	if err := writeCanonicalString(buf, t.Name); err != nil {
		return err
	}

	buf.WriteString(`,"screen":`)
	if t.Screen == nil {
		buf.WriteString("null")
	} else {
		fmt.Fprintf(buf, `[%d,%d]`, t.Screen.Width, t.Screen.Height)
	}

	buf.WriteString(`,"cursor":`)
	if t.Cursor == nil {
		buf.WriteString("null")
	} else {
		fmt.Fprintf(buf, `[%d,%d]`, t.Cursor.X, t.Cursor.Y)
	}

	buf.WriteString(`,"inputs":[`)
	for i, seq := range t.Inputs {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeCanonicalBytes(buf, seq)
	}
	buf.WriteString(`]`)

	buf.WriteString(`,"checks":[`)
	for i, c := range t.Checks {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeCanonicalCheck(buf, c); err != nil {
			return err
		}
	}
	buf.WriteString(`]}`)
	return nil
}

func writeCanonicalCheck(buf *bytes.Buffer, c Check) error {
	switch ck := c.(type) {
	case SizeCheck:
		fmt.Fprintf(buf, `{"kind":"size","w":%d,"h":%d,"fatal":%t}`, ck.W, ck.H, ck.Fatal)
	case CursorCheck:
		fmt.Fprintf(buf, `{"kind":"cursor","x":%d,"y":%d,"fatal":%t}`, ck.X, ck.Y, ck.Fatal)
	case CharCheck:
		buf.WriteString(`{"kind":"char",`)
		fmt.Fprintf(buf, `"x":%d,"y":%d,"c":`, ck.X, ck.Y)
		if err := writeCanonicalString(buf, string(ck.Char)); err != nil {
			return err
		}
		fmt.Fprintf(buf, `,"fatal":%t}`, ck.Fatal)
	case AttrCheck:
		buf.WriteString(`{"kind":"attr",`)
		fmt.Fprintf(buf, `"x":%d,"y":%d,"attrs":[`, ck.X, ck.Y)
		for i, a := range ck.Attrs {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalString(buf, a.String()); err != nil {
				return err
			}
		}
		fmt.Fprintf(buf, `],"fatal":%t}`, ck.Fatal)
	default:
		return fmt.Errorf("unsupported check variant %T", c)
	}
	return nil
}

func writeCanonicalBytes(buf *bytes.Buffer, b []byte) {
	buf.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, "%d", v)
	}
	buf.WriteByte(']')
}

// writeCanonicalString writes a JSON string with NFC normalization and
// without HTML escaping. Normalizing at the serialization boundary keeps the
// hash stable across definition files that spell the same name with
// different Unicode compositions.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)

	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return err
	}

	// json.Encoder appends a trailing newline.
	out := tmp.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	buf.Write(out)
	return nil
}
