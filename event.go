// Package predictionio builds and encodes PredictionIO events.
package predictionio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Event is a PredictionIO event before it is sent to the event server.
//
// The event name, entity type and entity id are mandatory. entityType and
// entityId together identify the entity. Setters return the same *Event so
// calls can be chained; they mutate in place and perform no validation.
//
// An Event is not safe for concurrent mutation. Use Clone to hand a snapshot
// to another goroutine.
type Event struct {
	// mandatory fields
	event      string
	entityType string
	entityID   string

	// optional fields
	targetEntityType *string
	targetEntityID   *string
	properties       map[string]any
	eventTime        *time.Time
}

// NewEvent creates an event with every field unset.
func NewEvent() *Event {
	return &Event{properties: make(map[string]any)}
}

// GetEvent returns the name of the event.
func (e *Event) GetEvent() string {
	return e.event
}

// GetEntityType returns the entity type.
func (e *Event) GetEntityType() string {
	return e.entityType
}

// GetEntityID returns the entity id.
func (e *Event) GetEntityID() string {
	return e.entityID
}

// GetTargetEntityType returns the target entity type, or nil if it is not set.
func (e *Event) GetTargetEntityType() *string {
	return copyString(e.targetEntityType)
}

// GetTargetEntityID returns the target entity id, or nil if it is not set.
func (e *Event) GetTargetEntityID() *string {
	return copyString(e.targetEntityID)
}

// GetProperties returns a copy of the properties. It is never nil.
func (e *Event) GetProperties() map[string]any {
	props := make(map[string]any, len(e.properties))
	for k, v := range e.properties {
		props[k] = v
	}
	return props
}

// GetEventTime returns the event time, or nil if it is not set.
func (e *Event) GetEventTime() *time.Time {
	if e.eventTime == nil {
		return nil
	}
	t := *e.eventTime
	return &t
}

// SetEvent sets the name of the event.
func (e *Event) SetEvent(event string) *Event {
	e.event = event
	return e
}

// SetEntityType sets the entity type.
func (e *Event) SetEntityType(entityType string) *Event {
	e.entityType = entityType
	return e
}

// SetEntityID sets the entity id.
func (e *Event) SetEntityID(entityID string) *Event {
	e.entityID = entityID
	return e
}

// SetTargetEntityType sets the type of the entity the event acts upon.
func (e *Event) SetTargetEntityType(targetEntityType string) *Event {
	e.targetEntityType = &targetEntityType
	return e
}

// SetTargetEntityID sets the id of the entity the event acts upon.
func (e *Event) SetTargetEntityID(targetEntityID string) *Event {
	e.targetEntityID = &targetEntityID
	return e
}

// SetProperty inserts or overwrites a single property.
func (e *Event) SetProperty(key string, value any) *Event {
	if e.properties == nil {
		e.properties = make(map[string]any)
	}
	e.properties[key] = value
	return e
}

// SetProperties merges properties into the event. Keys already present are
// overwritten; other existing keys are kept.
func (e *Event) SetProperties(properties map[string]any) *Event {
	if e.properties == nil {
		e.properties = make(map[string]any, len(properties))
	}
	for k, v := range properties {
		e.properties[k] = v
	}
	return e
}

// SetEventTime sets when the event occurred.
func (e *Event) SetEventTime(eventTime time.Time) *Event {
	e.eventTime = &eventTime
	return e
}

// Clone returns a copy of the event. The properties map is copied, the
// property values themselves are shared.
func (e *Event) Clone() *Event {
	return &Event{
		event:            e.event,
		entityType:       e.entityType,
		entityID:         e.entityID,
		targetEntityType: copyString(e.targetEntityType),
		targetEntityID:   copyString(e.targetEntityID),
		properties:       e.GetProperties(),
		eventTime:        e.GetEventTime(),
	}
}

// wireEvent is the JSON shape of an Event. Field order is the key order.
type wireEvent struct {
	Event            string         `json:"event"`
	EntityType       string         `json:"entityType"`
	EntityID         string         `json:"entityId"`
	TargetEntityType *string        `json:"targetEntityType,omitempty"`
	TargetEntityID   *string        `json:"targetEntityId,omitempty"`
	Properties       map[string]any `json:"properties"`
	EventTime        *jsonTime      `json:"eventTime,omitempty"`
}

func (e Event) toWire() wireEvent {
	w := wireEvent{
		Event:            e.event,
		EntityType:       e.entityType,
		EntityID:         e.entityID,
		TargetEntityType: e.targetEntityType,
		TargetEntityID:   e.targetEntityID,
		Properties:       e.properties,
	}
	if w.Properties == nil {
		w.Properties = map[string]any{}
	}
	if e.eventTime != nil {
		t := jsonTime(*e.eventTime)
		w.EventTime = &t
	}
	return w
}

func (e *Event) fromWire(w wireEvent) {
	e.event = w.Event
	e.entityType = w.EntityType
	e.entityID = w.EntityID
	e.targetEntityType = w.TargetEntityType
	e.targetEntityID = w.TargetEntityID
	e.properties = w.Properties
	if e.properties == nil {
		e.properties = make(map[string]any)
	}
	e.eventTime = nil
	if w.EventTime != nil {
		t := time.Time(*w.EventTime)
		e.eventTime = &t
	}
}

// MarshalJSON implements json.Marshaler. It has a value receiver so Event
// values embedded in other structs or property maps encode too.
func (e Event) MarshalJSON() ([]byte, error) {
	if err := checkGraph(e.properties); err != nil {
		return nil, &EncodingError{Op: "json", Err: err}
	}
	data, err := json.Marshal(e.toWire())
	if err != nil {
		return nil, &EncodingError{Op: "json", Err: err}
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. Numeric properties are decoded
// as json.Number.
func (e *Event) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var w wireEvent
	if err := dec.Decode(&w); err != nil {
		return &DecodingError{Op: "json", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &DecodingError{Op: "json", Err: errors.New("unexpected data after event object")}
	}
	e.fromWire(w)
	return nil
}

// ToJSONString serializes the event. Serialization does not modify the
// event and may be repeated.
func (e Event) ToJSONString() (string, error) {
	data, err := e.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// String returns the JSON form of the event, or a %!Event(...) diagnostic
// when it cannot be encoded.
func (e Event) String() string {
	s, err := e.ToJSONString()
	if err != nil {
		return fmt.Sprintf("%%!Event(%v)", err)
	}
	return s
}

// EventFromJSON parses an event produced by ToJSONString.
func EventFromJSON(data []byte) (*Event, error) {
	e := NewEvent()
	if err := e.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
