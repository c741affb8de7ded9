// Пакет edit — состояние сеанса редактирования одной сущности.
//
// Два состояния:
//   - idle — сущность отображается как есть, черновика нет
//   - editing — открыт черновик, изменения не применены к коллекции
//
// Переходы: Begin (idle → editing), Update (editing → editing),
// Finish (editing → idle, черновик возвращается для сохранения),
// Cancel (editing → idle, черновик отбрасывается).
package edit

// State — сеанс редактирования с черновиком типа T.
// Нулевое значение — idle.
type State[T any] struct {
	editing bool
	draft   T
}

// Idle возвращает состояние без черновика.
func Idle[T any]() State[T] {
	return State[T]{}
}

// Begin открывает сеанс с черновиком, засеянным из канонической записи.
func Begin[T any](seed T) State[T] {
	return State[T]{editing: true, draft: seed}
}

// Editing сообщает, открыт ли сеанс.
func (s State[T]) Editing() bool {
	return s.editing
}

// Draft возвращает черновик и признак открытого сеанса.
func (s State[T]) Draft() (T, bool) {
	return s.draft, s.editing
}

// Update заменяет черновик. В состоянии idle ничего не делает.
func (s State[T]) Update(draft T) State[T] {
	if !s.editing {
		return s
	}
	return State[T]{editing: true, draft: draft}
}

// Finish закрывает сеанс и возвращает черновик для применения.
// ok == false, если сеанс не был открыт.
func (s State[T]) Finish() (draft T, next State[T], ok bool) {
	if !s.editing {
		var zero T
		return zero, s, false
	}
	return s.draft, Idle[T](), true
}

// Cancel отбрасывает черновик.
func (s State[T]) Cancel() State[T] {
	return Idle[T]()
}
