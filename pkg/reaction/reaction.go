package reaction

import "fmt"

// Kind tags the variant carried by a Reaction.
type Kind uint8

const (
	KindAction Kind = iota + 1
	KindMutation
	KindEvent
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindMutation:
		return "mutation"
	case KindEvent:
		return "event"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Reaction is one outcome of reacting to an action: a follow-up action,
// a mutation, an event or an error. Exactly one payload is set.
type Reaction[A, M, E any] struct {
	kind     Kind
	action   A
	mutation M
	event    E
	err      error
}

// Action creates a reaction that feeds a follow-up action back into the store.
func Action[A, M, E any](a A) Reaction[A, M, E] {
	return Reaction[A, M, E]{kind: KindAction, action: a}
}

// Mutation creates a reaction routed to the reducer.
func Mutation[A, M, E any](m M) Reaction[A, M, E] {
	return Reaction[A, M, E]{kind: KindMutation, mutation: m}
}

// Event creates a reaction routed to event subscribers.
func Event[A, M, E any](e E) Reaction[A, M, E] {
	return Reaction[A, M, E]{kind: KindEvent, event: e}
}

// Error creates a reaction routed to error subscribers.
// A nil err produces an error reaction carrying ErrNilError.
func Error[A, M, E any](err error) Reaction[A, M, E] {
	if err == nil {
		err = ErrNilError
	}
	return Reaction[A, M, E]{kind: KindError, err: err}
}

// Kind reports which variant r carries. The zero Reaction has kind 0.
func (r Reaction[A, M, E]) Kind() Kind {
	return r.kind
}

func (r Reaction[A, M, E]) Action() (A, bool) {
	return r.action, r.kind == KindAction
}

func (r Reaction[A, M, E]) Mutation() (M, bool) {
	return r.mutation, r.kind == KindMutation
}

func (r Reaction[A, M, E]) Event() (E, bool) {
	return r.event, r.kind == KindEvent
}

// Err returns the carried error, or nil for non-error reactions.
func (r Reaction[A, M, E]) Err() error {
	return r.err
}

func (r Reaction[A, M, E]) String() string {
	switch r.kind {
	case KindAction:
		return fmt.Sprintf("action(%v)", r.action)
	case KindMutation:
		return fmt.Sprintf("mutation(%v)", r.mutation)
	case KindEvent:
		return fmt.Sprintf("event(%v)", r.event)
	case KindError:
		return fmt.Sprintf("error(%v)", r.err)
	default:
		return "reaction(invalid)"
	}
}
