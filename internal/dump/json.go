package dump

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"xsd-generator/internal/ir"
)

const jsonIndent = "    "

// ErrMalformedDump is returned when a JSON dump does not describe a record.
var ErrMalformedDump = errors.New("malformed IR dump")

// MarshalJSON renders rec as {"name": ..., "data": {...}}, indented and in
// IR order.
func MarshalJSON(rec ir.Record) ([]byte, error) {
	var compact bytes.Buffer

	compact.WriteString(`{"name":`)

	if err := writeJSONString(&compact, rec.Name); err != nil {
		return nil, err
	}

	compact.WriteString(`,"data":`)

	if err := writeJSONValue(&compact, rec.Data); err != nil {
		return nil, err
	}

	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", jsonIndent); err != nil {
		return nil, fmt.Errorf("indenting dump: %w", err)
	}

	out.WriteByte('\n')

	return out.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v ir.Value) error {
	switch tv := v.(type) {
	case *ir.Attributes:
		buf.WriteByte('{')

		for i, p := range tv.Pairs() {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeJSONString(buf, p.Key); err != nil {
				return err
			}

			buf.WriteByte(':')

			if err := writeJSONString(buf, p.Value); err != nil {
				return err
			}
		}

		buf.WriteByte('}')

	case *ir.Node:
		buf.WriteByte('{')

		for i, e := range tv.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeJSONString(buf, e.Name.String()); err != nil {
				return err
			}

			buf.WriteByte(':')

			if err := writeJSONValue(buf, e.Value); err != nil {
				return err
			}
		}

		buf.WriteByte('}')

	default:
		buf.WriteString("{}")
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}

	buf.Write(b)

	return nil
}

// ParseJSON reads a dump produced by MarshalJSON back into a record.
// Classified names are recovered for top-level declarations and for the
// members of struct declarations; every other key is plain.
func ParseJSON(data []byte) (ir.Record, error) {
	p := &jsonParser{dec: json.NewDecoder(bytes.NewReader(data))}

	rec, err := p.record()
	if err != nil {
		return ir.Record{}, fmt.Errorf("%w: %w", ErrMalformedDump, err)
	}

	return rec, nil
}

type jsonParser struct {
	dec *json.Decoder
}

func (p *jsonParser) record() (ir.Record, error) {
	var rec ir.Record

	if err := p.expectDelim('{'); err != nil {
		return rec, err
	}

	for p.dec.More() {
		key, err := p.key()
		if err != nil {
			return rec, err
		}

		switch key {
		case "name":
			tok, err := p.dec.Token()
			if err != nil {
				return rec, err
			}

			name, ok := tok.(string)
			if !ok {
				return rec, fmt.Errorf("name is %T, want string", tok)
			}

			rec.Name = name

		case "data":
			if err := p.expectDelim('{'); err != nil {
				return rec, err
			}

			v, err := p.object(ir.ParseName, true)
			if err != nil {
				return rec, fmt.Errorf("data: %w", err)
			}

			node, ok := v.(*ir.Node)
			if !ok {
				return rec, errors.New("data holds attributes, want declarations")
			}

			rec.Data = node

		default:
			return rec, fmt.Errorf("unexpected record key %q", key)
		}
	}

	if err := p.expectDelim('}'); err != nil {
		return rec, err
	}

	if rec.Data == nil {
		rec.Data = ir.NewNode()
	}

	return rec, nil
}

// object parses the members of an object whose opening brace was consumed.
// An object of strings is an attribute set; an object of objects is a node.
func (p *jsonParser) object(keyName func(string) ir.Name, topLevel bool) (ir.Value, error) {
	node := ir.NewNode()
	attrs := ir.NewAttributes()

	for p.dec.More() {
		key, err := p.key()
		if err != nil {
			return nil, err
		}

		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}

		switch tv := tok.(type) {
		case string:
			attrs.Set(key, tv)

		case json.Delim:
			if tv != '{' {
				return nil, fmt.Errorf("key %q: unexpected %v", key, tv)
			}

			name := keyName(key)

			// Members of a struct are declarations themselves.
			childKeys := plainName
			if topLevel && name.Kind == ir.KindStruct {
				childKeys = ir.ParseName
			}

			child, err := p.object(childKeys, false)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}

			node.Set(name, child)

		default:
			return nil, fmt.Errorf("key %q: unexpected %T", key, tok)
		}
	}

	if err := p.expectDelim('}'); err != nil {
		return nil, err
	}

	switch {
	case attrs.Len() > 0 && node.Len() > 0:
		return nil, errors.New("object mixes attributes and declarations")
	case attrs.Len() > 0:
		return attrs, nil
	default:
		return node, nil
	}
}

func (p *jsonParser) key() (string, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return "", err
	}

	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}

	return key, nil
}

func (p *jsonParser) expectDelim(want json.Delim) error {
	tok, err := p.dec.Token()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("expected %v, got end of input", want)
	}

	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %v, got %v", want, tok)
	}

	return nil
}

func plainName(s string) ir.Name { return ir.Plain(s) }
