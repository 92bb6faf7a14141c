// Package wire converts boxed values to and from protobuf's dynamic
// struct representation (google.protobuf.Value) and its canonical JSON
// form.
//
// The mapping is lossy in places: an Option flattens to its payload or
// null, so Some(None) and None both become null, and a decoded list always
// comes back as a Choice.
package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/funvibe/boxed/pkg/boxed"
)

// maxExact is the largest magnitude an integer can have and still survive
// the trip through a protobuf number (a float64) unchanged.
const maxExact = 1 << 53

var (
	ErrInexact   = errors.New("wire: integer is not exactly representable as a number")
	ErrEmptyList = errors.New("wire: empty list has no boxed form")
	ErrNoKind    = errors.New("wire: value has no kind set")
)

// ToProto converts v to a google.protobuf.Value. Map keys must be Str;
// other key kinds fail with a TypeMismatch.
func ToProto(v boxed.Value) (*structpb.Value, error) {
	switch x := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case boxed.Int32:
		return structpb.NewNumberValue(float64(x)), nil
	case boxed.Int64:
		if x > maxExact || x < -maxExact {
			return nil, fmt.Errorf("%w: %d", ErrInexact, int64(x))
		}
		return structpb.NewNumberValue(float64(x)), nil
	case boxed.Bool:
		return structpb.NewBoolValue(bool(x)), nil
	case boxed.Str:
		return structpb.NewStringValue(string(x)), nil
	case boxed.UUID:
		p, _ := x.Unbox()
		return structpb.NewStringValue(fmt.Sprint(p)), nil
	case boxed.Option:
		if x.IsNone() {
			return structpb.NewNullValue(), nil
		}
		return ToProto(x.MustObject())
	case boxed.Choice:
		return listToProto(x.Candidates())
	case boxed.Map:
		return mapToProto(x)
	case boxed.Host:
		p, _ := x.Unbox()
		pv, err := structpb.NewValue(p)
		if err != nil {
			return nil, fmt.Errorf("wire: host payload: %w", err)
		}
		return pv, nil
	}
	return nil, boxed.Unimplemented("wire encoding", v.Kind().String())
}

func listToProto(items []boxed.Value) (*structpb.Value, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(items))}
	for i, item := range items {
		pv, err := ToProto(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		list.Values = append(list.Values, pv)
	}
	return structpb.NewListValue(list), nil
}

func mapToProto(m boxed.Map) (*structpb.Value, error) {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, m.Len())}
	var err error
	m.Range(func(k boxed.Equality, v boxed.Value) bool {
		key, ok := k.(boxed.Str)
		if !ok {
			err = boxed.Mismatch("wire encoding", boxed.KindStr, k.Kind())
			return false
		}
		var pv *structpb.Value
		if pv, err = ToProto(v); err != nil {
			err = fmt.Errorf("field %s: %w", string(key), err)
			return false
		}
		s.Fields[string(key)] = pv
		return true
	})
	if err != nil {
		return nil, err
	}
	return structpb.NewStructValue(s), nil
}

// FromProto converts a google.protobuf.Value to a boxed value: null is
// None, numbers with an integral value are Int64 (others are carried as a
// float64 Host), structs are Maps keyed by Str and lists are Choices of
// their elements in order.
func FromProto(pv *structpb.Value) (boxed.Value, error) {
	switch k := pv.GetKind().(type) {
	case *structpb.Value_NullValue:
		return boxed.None(), nil
	case *structpb.Value_BoolValue:
		return boxed.Bool(k.BoolValue), nil
	case *structpb.Value_StringValue:
		return boxed.Str(k.StringValue), nil
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n == math.Trunc(n) && math.Abs(n) <= maxExact {
			return boxed.Int64(n), nil
		}
		return boxed.NewHost(n), nil
	case *structpb.Value_StructValue:
		return structFromProto(k.StructValue)
	case *structpb.Value_ListValue:
		return listFromProto(k.ListValue)
	}
	return nil, ErrNoKind
}

func structFromProto(s *structpb.Struct) (boxed.Value, error) {
	m := boxed.EmptyMap()
	for name, fv := range s.GetFields() {
		v, err := FromProto(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		m = m.Put(boxed.Str(name), v)
	}
	return m, nil
}

func listFromProto(l *structpb.ListValue) (boxed.Value, error) {
	values := l.GetValues()
	if len(values) == 0 {
		return nil, ErrEmptyList
	}
	var c boxed.Choice
	for i, ev := range values {
		v, err := FromProto(ev)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if i == 0 {
			c = boxed.Choose(v)
		} else {
			c = c.OrElse(v)
		}
	}
	return c, nil
}

// EncodeJSON renders v as protobuf canonical JSON. The exact whitespace is
// not stable across protobuf releases; decode rather than compare bytes.
func EncodeJSON(v boxed.Value, indent string) ([]byte, error) {
	pv, err := ToProto(v)
	if err != nil {
		return nil, err
	}
	opts := protojson.MarshalOptions{Multiline: indent != "", Indent: indent}
	return opts.Marshal(pv)
}

// DecodeJSON parses JSON into a boxed value through FromProto.
func DecodeJSON(data []byte) (boxed.Value, error) {
	var pv structpb.Value
	if err := protojson.Unmarshal(data, &pv); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return FromProto(&pv)
}
