package boxed

// Bool is a boxed boolean. False orders before true.
type Bool bool

func (b Bool) Kind() Kind     { return KindBool }
func (b Bool) String() string { return Describe(b) }
func (b Bool) Hash() uint32 {
	if b {
		return 1
	}
	return 0
}

func (b Bool) Equals(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

func (b Bool) Compare(other Value) (Ordering, error) {
	o, ok := other.(Bool)
	if !ok {
		return Equal, Mismatch("compare", KindBool, kindOf(other))
	}
	switch {
	case b == o:
		return Equal, nil
	case !bool(b):
		return Less, nil
	}
	return Greater, nil
}

func (b Bool) Unbox() (any, error) { return bool(b), nil }

func (b Bool) Not() Bool { return !b }
