package predictionio

import (
	"bytes"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*Event)(nil)
	_ msgpack.CustomDecoder = (*Event)(nil)
)

// msgpackEvent mirrors wireEvent. eventTime travels as a TimeLayout string so
// both encodings carry the same text.
type msgpackEvent struct {
	Event            string         `msgpack:"event"`
	EntityType       string         `msgpack:"entityType"`
	EntityID         string         `msgpack:"entityId"`
	TargetEntityType *string        `msgpack:"targetEntityType,omitempty"`
	TargetEntityID   *string        `msgpack:"targetEntityId,omitempty"`
	Properties       map[string]any `msgpack:"properties"`
	EventTime        *string        `msgpack:"eventTime,omitempty"`
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (e Event) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := checkGraph(e.properties); err != nil {
		return &EncodingError{Op: "msgpack", Err: err}
	}
	w := e.toWire()
	m := msgpackEvent{
		Event:            w.Event,
		EntityType:       w.EntityType,
		EntityID:         w.EntityID,
		TargetEntityType: w.TargetEntityType,
		TargetEntityID:   w.TargetEntityID,
		Properties:       w.Properties,
	}
	if e.eventTime != nil {
		s := FormatTime(*e.eventTime)
		m.EventTime = &s
	}
	return enc.Encode(&m)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (e *Event) DecodeMsgpack(dec *msgpack.Decoder) error {
	var m msgpackEvent
	if err := dec.Decode(&m); err != nil {
		return err
	}
	w := wireEvent{
		Event:            m.Event,
		EntityType:       m.EntityType,
		EntityID:         m.EntityID,
		TargetEntityType: m.TargetEntityType,
		TargetEntityID:   m.TargetEntityID,
		Properties:       m.Properties,
	}
	if m.EventTime != nil {
		t, err := ParseTime(*m.EventTime)
		if err != nil {
			return err
		}
		jt := jsonTime(t)
		w.EventTime = &jt
	}
	e.fromWire(w)
	return nil
}

// ToMsgpack encodes the event as msgpack. Map keys are sorted so equal events
// produce equal bytes.
func (e *Event) ToMsgpack() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(e); err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			return nil, encErr
		}
		return nil, &EncodingError{Op: "msgpack", Err: err}
	}
	return buf.Bytes(), nil
}

// EventFromMsgpack parses an event produced by ToMsgpack. Integer properties
// decode as int64 or uint64 and floats as float64.
func EventFromMsgpack(data []byte) (*Event, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)
	e := NewEvent()
	if err := dec.Decode(e); err != nil {
		return nil, &DecodingError{Op: "msgpack", Err: err}
	}
	return e, nil
}

