package foundation

// OneOf2 holds exactly one value, either of type A or of type B.
//
// Go has no overloading on type parameters, so the variants are created with
// OneOf2A and OneOf2B.
type OneOf2[A, B any] struct {
	a     A
	b     B
	index int // 1-based ordinal of the selected type
}

// OneOf2A selects the first type.
func OneOf2A[A, B any](a A) OneOf2[A, B] {
	return OneOf2[A, B]{a: a, index: 1}
}

// OneOf2B selects the second type.
func OneOf2B[A, B any](b B) OneOf2[A, B] {
	return OneOf2[A, B]{b: b, index: 2}
}

// OrdinalIndex returns 1 or 2, the position of the selected type argument.
func (o OneOf2[A, B]) OrdinalIndex() int {
	return o.index
}

// Item1 returns the value if the first type is selected.
func (o OneOf2[A, B]) Item1() Option[A] {
	return Maybe(o.a, o.index == 1)
}

// Item2 returns the value if the second type is selected.
func (o OneOf2[A, B]) Item2() Option[B] {
	return Maybe(o.b, o.index == 2)
}

// Switch calls the function matching the selected type. Nil functions are
// skipped.
func (o OneOf2[A, B]) Switch(onA func(A), onB func(B)) {
	switch o.index {
	case 1:
		if onA != nil {
			onA(o.a)
		}
	case 2:
		if onB != nil {
			onB(o.b)
		}
	}
}

// Match2 returns the result of the function matching the selected type.
func Match2[A, B, R any](o OneOf2[A, B], onA func(A) R, onB func(B) R) R {
	if o.index == 2 {
		return onB(o.b)
	}
	return onA(o.a)
}

// OneOf3 holds exactly one value of type A, B or C.
type OneOf3[A, B, C any] struct {
	a     A
	b     B
	c     C
	index int
}

// OneOf3A selects the first type.
func OneOf3A[A, B, C any](a A) OneOf3[A, B, C] {
	return OneOf3[A, B, C]{a: a, index: 1}
}

// OneOf3B selects the second type.
func OneOf3B[A, B, C any](b B) OneOf3[A, B, C] {
	return OneOf3[A, B, C]{b: b, index: 2}
}

// OneOf3C selects the third type.
func OneOf3C[A, B, C any](c C) OneOf3[A, B, C] {
	return OneOf3[A, B, C]{c: c, index: 3}
}

// OrdinalIndex returns the 1-based position of the selected type argument.
func (o OneOf3[A, B, C]) OrdinalIndex() int {
	return o.index
}

func (o OneOf3[A, B, C]) Item1() Option[A] { return Maybe(o.a, o.index == 1) }
func (o OneOf3[A, B, C]) Item2() Option[B] { return Maybe(o.b, o.index == 2) }
func (o OneOf3[A, B, C]) Item3() Option[C] { return Maybe(o.c, o.index == 3) }

// Switch calls the function matching the selected type. Nil functions are
// skipped.
func (o OneOf3[A, B, C]) Switch(onA func(A), onB func(B), onC func(C)) {
	switch {
	case o.index == 1 && onA != nil:
		onA(o.a)
	case o.index == 2 && onB != nil:
		onB(o.b)
	case o.index == 3 && onC != nil:
		onC(o.c)
	}
}

// Match3 returns the result of the function matching the selected type.
func Match3[A, B, C, R any](o OneOf3[A, B, C], onA func(A) R, onB func(B) R, onC func(C) R) R {
	switch o.index {
	case 2:
		return onB(o.b)
	case 3:
		return onC(o.c)
	}
	return onA(o.a)
}
