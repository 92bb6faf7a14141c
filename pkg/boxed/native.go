package boxed

import (
	"fmt"

	"github.com/google/uuid"
)

// FromNative boxes a host-native Go value:
//
//	nil                          None
//	int8, int16, int32, uint8,
//	uint16                       Int32
//	int, int64, uint32           Int64
//	bool                         Bool
//	string                       Str
//	uuid.UUID                    UUID
//	map[string]any, map[any]any  Map (keys and values boxed recursively)
//	Value                        itself
//	anything else                Host
//
// A map whose keys box to a variant without Equality fails with
// CapabilityMissing.
func FromNative(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return None(), nil
	case Value:
		return v, nil
	case int8:
		return Int32(v), nil
	case int16:
		return Int32(v), nil
	case int32:
		return Int32(v), nil
	case uint8:
		return Int32(v), nil
	case uint16:
		return Int32(v), nil
	case int:
		return Int64(v), nil
	case int64:
		return Int64(v), nil
	case uint32:
		return Int64(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return Str(v), nil
	case uuid.UUID:
		return UUID(v), nil
	case map[string]any:
		pairs := make([]Pair, 0, len(v))
		for k, e := range v {
			bv, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			pairs = append(pairs, Pair{Key: Str(k), Value: bv})
		}
		return NewMap(pairs...)
	case map[any]any:
		pairs := make([]Pair, 0, len(v))
		for k, e := range v {
			bk, err := FromNative(k)
			if err != nil {
				return nil, err
			}
			bv, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", k, err)
			}
			pairs = append(pairs, Pair{Key: bk, Value: bv})
		}
		return NewMap(pairs...)
	}
	return NewHost(x), nil
}
