package boxed

import "github.com/funvibe/boxed/internal/config"

// Kind identifies the concrete variant of a boxed value. The set is closed:
// every Value in this package reports one of the constants below, so a
// switch over Kind can be exhaustive.
type Kind uint8

const (
	KindInvalid Kind = iota // reported for a nil Value
	KindInt32
	KindInt64
	KindBool
	KindStr
	KindUUID
	KindHost
	KindOption
	KindChoice
	KindMap
)

// String returns the canonical kind name.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return config.Int32KindName
	case KindInt64:
		return config.Int64KindName
	case KindBool:
		return config.BoolKindName
	case KindStr:
		return config.StrKindName
	case KindUUID:
		return config.UUIDKindName
	case KindHost:
		return config.HostKindName
	case KindOption:
		return config.OptionKindName
	case KindChoice:
		return config.ChoiceKindName
	case KindMap:
		return config.MapKindName
	default:
		return "Invalid"
	}
}

// IsNumeric reports whether values of kind k support arithmetic.
func (k Kind) IsNumeric() bool {
	return k == KindInt32 || k == KindInt64
}

// kindOf is Kind() that tolerates a nil Value.
func kindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}
