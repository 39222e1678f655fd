package item

// Stack is an instance of a catalog kind: the descriptor carries the
// metadata, the stack only its identity and quantity.
//
// The quantity's variant is fixed by the descriptor at runtime, so Split takes
// a Weight rather than a Measure and Stack does not satisfy Specific.
type Stack struct {
	kind   *Descriptor
	id     ID
	amount Weight
}

// NewStack returns a stack of kind. It reports false when amount's variant does
// not match the kind's weight.
func NewStack(kind *Descriptor, id ID, amount Weight) (Stack, bool) {
	if kind == nil || amount.Kind() != kind.weight.Kind() {
		return Stack{}, false
	}
	return Stack{kind: kind, id: id, amount: amount}, true
}

func (s Stack) Descriptor() *Descriptor { return s.kind }
func (s Stack) ID() ID                  { return s.id }
func (s Stack) Amount() Weight          { return s.amount }

func (s Stack) TypeName() string {
	if s.kind == nil {
		return ""
	}
	return s.kind.name
}

func (s Stack) TypeDescription() string {
	if s.kind == nil {
		return ""
	}
	return s.kind.description
}

// Mass is the physical mass of the stack. Discrete stacks weigh count * unit size.
func (s Stack) Mass() float32 {
	if count, ok := s.amount.Count(); ok {
		return float32(count) * s.kind.weight.unitSize
	}
	mass, _ := s.amount.Mass()
	return mass
}

// Split moves amount out of s into a new stack with the same kind and id.
// It fails, leaving s unchanged, when amount is the wrong variant or exceeds
// what the stack holds.
func (s *Stack) Split(amount Weight) (Stack, bool) {
	if s.kind == nil || amount.Kind() != s.amount.Kind() {
		return Stack{}, false
	}

	switch amount.Kind() {
	case KindDiscrete:
		want, _ := amount.Count()
		have, _ := s.amount.Count()
		if want > have {
			return Stack{}, false
		}
		s.amount = Discrete(have - want)
	default:
		want, _ := amount.Mass()
		have, _ := s.amount.Mass()
		if want > have {
			return Stack{}, false
		}
		s.amount = Continuous(have - want)
	}

	return Stack{kind: s.kind, id: s.id, amount: amount}, true
}
