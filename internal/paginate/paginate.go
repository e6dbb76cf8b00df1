// Package paginate implements the sliding-window cursor used by every list
// widget. The window is sized to the viewport on each call because the
// terminal may be resized between keystrokes.
package paginate

// Margin is the number of rows kept between the cursor and a window edge that
// still has hidden rows beyond it.
const Margin = 3

// Paginate owns a list and the visible window over it. Replace it wholesale
// when the backing list changes.
type Paginate[T any] struct {
	list     []T
	capacity func() int
	nth      int
	cursor   int
	hovered  T
	hasHover bool
}

// New builds a paginator positioned on the first element. capacity returns the
// number of rows available for the list.
func New[T any](list []T, capacity func() int) *Paginate[T] {
	p := &Paginate[T]{list: list, capacity: capacity}
	p.refreshHovered()
	return p
}

// limit is the window length: min(viewport rows, list length), never below 1
// for a non-empty list.
func (p *Paginate[T]) limit() int {
	n := len(p.list)
	if n == 0 {
		return 0
	}
	rows := n
	if p.capacity != nil {
		rows = p.capacity()
	}
	if rows > n {
		rows = n
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p *Paginate[T]) windowCount() int {
	if len(p.list) == 0 {
		return 0
	}
	return len(p.list) - p.limit() + 1
}

// clamp pulls the window index and cursor back in range after a resize.
func (p *Paginate[T]) clamp() {
	limit := p.limit()
	if limit == 0 {
		p.nth, p.cursor = 0, 0
		return
	}
	if last := p.windowCount() - 1; p.nth > last {
		p.nth = last
	}
	if p.cursor > limit-1 {
		p.cursor = limit - 1
	}
}

// band returns the inclusive cursor range for the current window. Edges with
// hidden rows beyond them keep Margin rows free.
func (p *Paginate[T]) band() (lo, hi int) {
	limit := p.limit()
	first := p.nth == 0
	last := p.nth == p.windowCount()-1
	hi = limit - 1
	if !first {
		lo = Margin
	}
	if !last {
		hi = limit - 1 - Margin
	}
	return lo, hi
}

// NextElem moves the cursor down, or slides the window forward by one when
// the cursor reaches the trailing margin. It reports whether anything moved.
func (p *Paginate[T]) NextElem() bool {
	if len(p.list) == 0 {
		return false
	}
	p.clamp()
	oldCursor, oldNth := p.cursor, p.nth
	_, hi := p.band()
	switch {
	case p.cursor < hi:
		p.cursor++
	case p.nth < p.windowCount()-1:
		p.nth++
	}
	p.refreshHovered()
	return p.cursor != oldCursor || p.nth != oldNth
}

// PrevElem moves the cursor up, or slides the window back by one when the
// cursor reaches the leading margin. It reports whether anything moved.
func (p *Paginate[T]) PrevElem() bool {
	if len(p.list) == 0 {
		return false
	}
	p.clamp()
	oldCursor, oldNth := p.cursor, p.nth
	lo, _ := p.band()
	switch {
	case p.cursor > lo:
		p.cursor--
	case p.nth > 0:
		p.nth--
	}
	p.refreshHovered()
	return p.cursor != oldCursor || p.nth != oldNth
}

// Window returns the visible slice.
func (p *Paginate[T]) Window() []T {
	p.clamp()
	limit := p.limit()
	if limit == 0 {
		return nil
	}
	return p.list[p.nth : p.nth+limit]
}

// Hovered returns the element under the cursor; ok is false iff the list is empty.
func (p *Paginate[T]) Hovered() (T, bool) {
	p.refreshHovered()
	return p.hovered, p.hasHover
}

// Cursor is the cursor position inside the window.
func (p *Paginate[T]) Cursor() int {
	return p.cursor
}

// WindowIndex is the index of the first visible element.
func (p *Paginate[T]) WindowIndex() int {
	return p.nth
}

// Len is the length of the backing list.
func (p *Paginate[T]) Len() int {
	return len(p.list)
}

// List returns the backing list.
func (p *Paginate[T]) List() []T {
	return p.list
}

// Seek moves until the element at index idx is hovered, using the same steps
// as NextElem/PrevElem so the window invariants hold.
func (p *Paginate[T]) Seek(idx int) bool {
	if idx < 0 || idx >= len(p.list) {
		return false
	}
	moved := false
	for steps := 0; steps <= 2*len(p.list); steps++ {
		p.clamp()
		pos := p.nth + p.cursor
		switch {
		case pos < idx:
			if !p.NextElem() {
				return moved
			}
		case pos > idx:
			if !p.PrevElem() {
				return moved
			}
		default:
			return moved
		}
		moved = true
	}
	return moved
}

func (p *Paginate[T]) refreshHovered() {
	var zero T
	p.clamp()
	if len(p.list) == 0 {
		p.hovered, p.hasHover = zero, false
		return
	}
	p.hovered, p.hasHover = p.list[p.nth+p.cursor], true
}
