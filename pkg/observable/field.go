package observable

// Field is an explicitly declared observable value, typically one per
// independently observed piece of application data.
type Field[T any] struct {
	cell *Cell[T]
}

// NewField creates a field holding initial.
func NewField[T any](initial T) *Field[T] {
	return &Field[T]{cell: NewCell(initial)}
}

func (f *Field[T]) Get() T {
	return f.cell.Get()
}

func (f *Field[T]) Set(v T) {
	f.cell.Set(v)
}

// Update applies fn to the current value and stores the result.
// It is not atomic with respect to concurrent Set calls.
func (f *Field[T]) Update(fn func(T) T) {
	f.cell.Set(fn(f.cell.Get()))
}

// View exposes the field as a read-only broadcast.
func (f *Field[T]) View() View[T] {
	return f.cell.View()
}
