package predictionio

import (
	"fmt"
	"reflect"
)

// maxEncodeDepth bounds how deeply property values may nest.
const maxEncodeDepth = 1000

var eventType = reflect.TypeOf(Event{})

type visitKey struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// checkGraph reports a reference cycle, or nesting deeper than
// maxEncodeDepth, in v. msgpack has no cycle detection and encoding/json
// loses track of cycles that pass through a nested Event's MarshalJSON.
func checkGraph(v any) error {
	w := graphWalker{onPath: make(map[visitKey]struct{})}
	return w.walk(reflect.ValueOf(v), 0)
}

// graphWalker tracks only the references on the current path, so values
// shared between siblings are not cycles.
type graphWalker struct {
	onPath map[visitKey]struct{}
}

func (w *graphWalker) walk(v reflect.Value, depth int) error {
	if !v.IsValid() {
		return nil
	}
	if depth > maxEncodeDepth {
		return fmt.Errorf("value nested deeper than %d levels", maxEncodeDepth)
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), depth)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return w.enter(visitKey{ptr: v.Pointer(), typ: v.Type()}, func() error {
			return w.walk(v.Elem(), depth+1)
		})
	case reflect.Map:
		if v.IsNil() || v.Len() == 0 || isScalar(v.Type().Elem()) {
			return nil
		}
		return w.enter(visitKey{ptr: v.Pointer(), typ: v.Type()}, func() error {
			iter := v.MapRange()
			for iter.Next() {
				if err := w.walk(iter.Value(), depth+1); err != nil {
					return err
				}
			}
			return nil
		})
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 || isScalar(v.Type().Elem()) {
			return nil
		}
		return w.enter(visitKey{ptr: v.Pointer(), len: v.Len(), typ: v.Type()}, func() error {
			return w.walkElems(v, depth)
		})
	case reflect.Array:
		if isScalar(v.Type().Elem()) {
			return nil
		}
		return w.walkElems(v, depth)
	case reflect.Struct:
		// Event hides its properties from reflection-based encoders but
		// encodes them through its own marshalers.
		if v.Type() == eventType {
			return w.walk(v.FieldByName("properties"), depth+1)
		}
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := w.walk(v.Field(i), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *graphWalker) walkElems(v reflect.Value, depth int) error {
	for i := 0; i < v.Len(); i++ {
		if err := w.walk(v.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *graphWalker) enter(k visitKey, fn func() error) error {
	if _, ok := w.onPath[k]; ok {
		return fmt.Errorf("encountered a cycle via %s", k.typ)
	}
	w.onPath[k] = struct{}{}
	defer delete(w.onPath, k)
	return fn()
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
