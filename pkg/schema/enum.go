package schema

// Enumeration is the constraint satisfied by typed integer enums.
type Enumeration interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32 | ~int
	String() string
}

// EnumAdapter maps wire integers to a closed set of enum members.
type EnumAdapter[T Enumeration] struct {
	members []T
	byValue map[int64]T
	byName  map[string]T
}

// Enum returns an adapter accepting exactly the given members.
func Enum[T Enumeration](members ...T) *EnumAdapter[T] {
	a := &EnumAdapter[T]{
		members: members,
		byValue: make(map[int64]T, len(members)),
		byName:  make(map[string]T, len(members)),
	}
	for _, m := range members {
		a.byValue[int64(m)] = m
		a.byName[m.String()] = m
	}
	return a
}

// Members returns the accepted members in declaration order.
func (a *EnumAdapter[T]) Members() []T { return a.members }

// Names returns value to name pairs for reflection.
func (a *EnumAdapter[T]) Names() map[int64]string {
	out := make(map[int64]string, len(a.members))
	for _, m := range a.members {
		out[int64(m)] = m.String()
	}
	return out
}

func (a *EnumAdapter[T]) Decode(raw int64) (any, error) {
	m, ok := a.byValue[raw]
	if !ok {
		return nil, validationError("%d is not a valid %T", raw, m)
	}
	return m, nil
}

func (a *EnumAdapter[T]) Encode(v any) (int64, error) {
	switch x := v.(type) {
	case T:
		if _, ok := a.byValue[int64(x)]; !ok {
			return 0, validationError("%d is not a valid %T", int64(x), x)
		}
		return int64(x), nil
	case string:
		m, ok := a.byName[x]
		if !ok {
			var zero T
			return 0, validationError("%q is not a valid %T", x, zero)
		}
		return int64(m), nil
	}

	i, err := ToInt(v)
	if err != nil {
		return 0, err
	}
	if _, ok := a.byValue[i]; !ok {
		var zero T
		return 0, validationError("%d is not a valid %T", i, zero)
	}
	return i, nil
}

// Namer is implemented by adapters whose values have symbolic names.
type Namer interface {
	Names() map[int64]string
}

var _ Namer = (*EnumAdapter[Kind])(nil)
