package canyon

// Population owns the live instances of one entity category.
//
// Entities are never removed while the tick is iterating: effects mark them
// with Kill and Sweep compacts the slice once per tick. A killed entity is
// invisible to Each, Len and Items for the rest of the tick.
type Population[T any] struct {
	items []T
	dead  []bool
	limit int // 0 means unbounded
}

// NewPopulation creates a population holding at most limit live entities.
func NewPopulation[T any](limit int) *Population[T] {
	return &Population[T]{
		items: make([]T, 0, 8),
		dead:  make([]bool, 0, 8),
		limit: limit,
	}
}

// Len returns the number of live entities.
func (p *Population[T]) Len() int {
	n := 0
	for _, d := range p.dead {
		if !d {
			n++
		}
	}
	return n
}

// Full reports whether the population cap has been reached.
func (p *Population[T]) Full() bool {
	return p.limit > 0 && p.Len() >= p.limit
}

// Add appends a new entity unless the cap is reached.
func (p *Population[T]) Add(v T) bool {
	if p.Full() {
		return false
	}
	p.items = append(p.items, v)
	p.dead = append(p.dead, false)
	return true
}

// Each calls fn for every live entity in insertion order.
// fn may Kill the current or any other entity.
func (p *Population[T]) Each(fn func(i int, v *T)) {
	for i := range p.items {
		if p.dead[i] {
			continue
		}
		fn(i, &p.items[i])
	}
}

// Get returns a pointer to entity i, or nil if it is dead or out of range.
func (p *Population[T]) Get(i int) *T {
	if !p.Alive(i) {
		return nil
	}
	return &p.items[i]
}

// Alive reports whether entity i exists and has not been killed.
func (p *Population[T]) Alive(i int) bool {
	return i >= 0 && i < len(p.items) && !p.dead[i]
}

// Kill marks entity i for removal at the next Sweep.
func (p *Population[T]) Kill(i int) {
	if i >= 0 && i < len(p.dead) {
		p.dead[i] = true
	}
}

// Sweep compacts the population, dropping killed entities.
// Returns the number of entities removed.
func (p *Population[T]) Sweep() int {
	kept := p.items[:0]
	removed := 0
	for i, v := range p.items {
		if p.dead[i] {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	// Zero the tail so removed entities are not retained by the backing array.
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
	p.dead = p.dead[:len(kept)]
	for i := range p.dead {
		p.dead[i] = false
	}
	return removed
}

// Items returns a copy of the live entities.
func (p *Population[T]) Items() []T {
	out := make([]T, 0, len(p.items))
	p.Each(func(_ int, v *T) {
		out = append(out, *v)
	})
	return out
}

// Clear removes every entity.
func (p *Population[T]) Clear() {
	p.items = p.items[:0]
	p.dead = p.dead[:0]
}
