// Package cloudevent converts PredictionIO events to and from CloudEvents so
// they can travel through CloudEvents-aware pipelines.
package cloudevent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"

	predictionio "github.com/rajanesh/predictionio-sdk-go"
)

const (
	DefaultSource     = "predictionio-sdk-go"
	DefaultTypePrefix = "io.predictionio.event."
)

// Extension attribute names. CloudEvents only allows lowercase alphanumerics.
const (
	ExtEntityType       = "pioentitytype"
	ExtEntityID         = "pioentityid"
	ExtTargetEntityType = "piotargetentitytype"
	ExtTargetEntityID   = "piotargetentityid"
)

type options struct {
	source     string
	typePrefix string
	now        func() time.Time
	newID      func() string
}

// Option configures FromEvent.
type Option func(*options)

// WithSource sets the CloudEvents source attribute.
func WithSource(source string) Option {
	return func(o *options) { o.source = source }
}

// WithTypePrefix sets the string prepended to the event name to form the
// CloudEvents type.
func WithTypePrefix(prefix string) Option {
	return func(o *options) { o.typePrefix = prefix }
}

// WithClock sets the time used when the event has no eventTime.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// FromEvent wraps e in a CloudEvent. The data is the event's JSON form, so
// ToEvent can restore it exactly.
func FromEvent(e *predictionio.Event, opts ...Option) (cloudevents.Event, error) {
	o := options{
		source:     DefaultSource,
		typePrefix: DefaultTypePrefix,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ce := cloudevents.NewEvent()
	ce.SetID(o.newID())
	ce.SetSource(o.source)
	ce.SetType(o.typePrefix + e.GetEvent())
	ce.SetSubject(e.GetEntityType() + "/" + e.GetEntityID())
	if t := e.GetEventTime(); t != nil {
		ce.SetTime(*t)
	} else {
		ce.SetTime(o.now().UTC())
	}

	ce.SetExtension(ExtEntityType, e.GetEntityType())
	ce.SetExtension(ExtEntityID, e.GetEntityID())
	if v := e.GetTargetEntityType(); v != nil {
		ce.SetExtension(ExtTargetEntityType, *v)
	}
	if v := e.GetTargetEntityID(); v != nil {
		ce.SetExtension(ExtTargetEntityID, *v)
	}

	if err := ce.SetData(cloudevents.ApplicationJSON, e); err != nil {
		var encErr *predictionio.EncodingError
		if errors.As(err, &encErr) {
			return cloudevents.Event{}, encErr
		}
		return cloudevents.Event{}, fmt.Errorf("cloudevent: set data: %w", err)
	}
	if err := ce.Validate(); err != nil {
		return cloudevents.Event{}, fmt.Errorf("cloudevent: %w", err)
	}
	return ce, nil
}

// ToEvent restores the PredictionIO event carried by a CloudEvent created
// with FromEvent.
func ToEvent(ce cloudevents.Event) (*predictionio.Event, error) {
	if mt := ce.DataMediaType(); mt != "" && !strings.HasSuffix(mt, "json") {
		return nil, fmt.Errorf("cloudevent: unsupported data content type %q", mt)
	}
	data := ce.Data()
	if len(data) == 0 {
		return nil, fmt.Errorf("cloudevent: %s carries no data", ce.ID())
	}
	e, err := predictionio.EventFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("cloudevent: %s: %w", ce.ID(), err)
	}
	return e, nil
}
