package stats

import (
	"bytes"
	"encoding/json"
)

// object writes a JSON object with keys in insertion order.
type object struct {
	buf bytes.Buffer
	n   int
	err error
}

func newObject() *object {
	o := &object{}
	o.buf.WriteByte('{')
	return o
}

func (o *object) field(key string, value any) {
	if o.err != nil {
		return
	}
	k, err := json.Marshal(key)
	if err != nil {
		o.err = err
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = err
		return
	}
	if o.n > 0 {
		o.buf.WriteByte(',')
	}
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(v)
	o.n++
}

func (o *object) stats(l Line) {
	for _, s := range l {
		o.field(s.Field.Key(), s.Value)
	}
}

func (o *object) bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.buf.WriteByte('}')
	return o.buf.Bytes(), nil
}
