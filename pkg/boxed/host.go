package boxed

import "fmt"

// Host carries an arbitrary Go value that has no dedicated variant (floats,
// slices, structs). It is Boxable only: it has neither Equality nor
// Comparable, so it cannot be used as a Map key.
//
// A Host has identity: ValuesEqual holds between copies of the same Host
// and nowhere else, whatever the payloads look like.
type Host struct {
	box *hostBox
}

type hostBox struct {
	payload any
}

// NewHost boxes v as a Host value.
func NewHost(v any) Host {
	return Host{box: &hostBox{payload: v}}
}

func (h Host) Kind() Kind { return KindHost }

func (h Host) String() string {
	p, _ := h.Unbox()
	return fmt.Sprintf("%s(%v)", KindHost, p)
}

func (h Host) Unbox() (any, error) {
	if h.box == nil {
		return nil, nil
	}
	return h.box.payload, nil
}

func (h Host) same(other Value) bool {
	o, ok := other.(Host)
	return ok && o.box == h.box
}
