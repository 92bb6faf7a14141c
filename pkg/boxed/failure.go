package boxed

import (
	"fmt"
	"strings"
)

// FailureKind classifies a Failure.
type FailureKind uint8

const (
	// UnimplementedOperation: a capability was invoked on a variant that
	// structurally cannot support it, e.g. Object on None.
	UnimplementedOperation FailureKind = iota + 1
	// TypeMismatch: values of incompatible kinds were compared or combined.
	TypeMismatch
	// DivisionByZero: integer division or modulo by zero.
	DivisionByZero
	// CapabilityMissing: a keyed container was built from keys lacking
	// Equality.
	CapabilityMissing
)

func (k FailureKind) String() string {
	switch k {
	case UnimplementedOperation:
		return "UnimplementedOperation"
	case TypeMismatch:
		return "TypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case CapabilityMissing:
		return "CapabilityMissing"
	}
	return fmt.Sprintf("FailureKind(%d)", uint8(k))
}

// Code returns the stable numeric code of the kind.
func (k FailureKind) Code() int {
	return 1000 + int(k)
}

// Failure is the structured error returned by boxed operations. Template
// holds the message with :name placeholders which are substituted from
// Params when the error is rendered.
type Failure struct {
	Kind     FailureKind
	Template string
	Params   map[string]any
}

// Sentinels for errors.Is. A failure matches the sentinel of its kind.
var (
	ErrUnimplemented     = &Failure{Kind: UnimplementedOperation}
	ErrTypeMismatch      = &Failure{Kind: TypeMismatch}
	ErrDivisionByZero    = &Failure{Kind: DivisionByZero}
	ErrCapabilityMissing = &Failure{Kind: CapabilityMissing}
)

func (f *Failure) Error() string {
	if f.Template == "" {
		return f.Kind.String()
	}
	return f.Kind.String() + ": " + FormatMessage(f.Template, f.Params)
}

// Code returns the numeric code of the failure's kind.
func (f *Failure) Code() int {
	return f.Kind.Code()
}

// Is reports whether target is the kind sentinel matching f.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Template == "" && t.Kind == f.Kind
}

// FormatMessage substitutes every :name placeholder in template whose name
// is a key of params. Unknown placeholders are left as written. A name is
// the longest run of letters, digits and underscores after the colon, so
// :method is never matched as :m.
func FormatMessage(template string, params map[string]any) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != ':' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(template) && isNameByte(template[j]) {
			j++
		}
		if v, ok := params[template[i+1:j]]; ok && j > i+1 {
			fmt.Fprint(&b, v)
			i = j - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isNameByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func newFailure(kind FailureKind, template string, params map[string]any) *Failure {
	return &Failure{Kind: kind, Template: template, Params: params}
}

// Unimplemented reports that variant cannot perform method.
func Unimplemented(method, variant string) *Failure {
	return newFailure(UnimplementedOperation,
		":method is not implemented for :variant",
		map[string]any{"method": method, "variant": variant})
}

// Mismatch reports that op cannot combine values of kinds left and right.
func Mismatch(op string, left, right Kind) *Failure {
	return newFailure(TypeMismatch,
		":op: cannot combine :left with :right",
		map[string]any{"op": op, "left": left, "right": right})
}

// DivByZero reports an integer division or modulo by zero.
func DivByZero(op string, kind Kind) *Failure {
	return newFailure(DivisionByZero,
		":op: :kind division by zero",
		map[string]any{"op": op, "kind": kind})
}

// MissingCapability reports that a value of kind lacks capability where
// context requires it.
func MissingCapability(capability string, kind Kind, context string) *Failure {
	return newFailure(CapabilityMissing,
		":context: :kind does not implement :capability",
		map[string]any{"context": context, "kind": kind, "capability": capability})
}
