package validation

import "github.com/dmitrymomot/livecheck/pkg/logger"

// pass is one validation run writing into a forked store.
//
// guard holds the fields whose chains are on the current call stack; a
// request for one of them is dropped, which breaks dependency cycles.
type pass[T any] struct {
	ctx   *Context[T]
	store *Store
	guard map[string]struct{}
}

func (c *Context[T]) newPass(store *Store) *pass[T] {
	return &pass[T]{ctx: c, store: store}
}

// run evaluates field from the top with a fresh guard.
func (p *pass[T]) run(field string, insufficientOnly bool) {
	p.guard = make(map[string]struct{})
	p.checkRelated(field, insufficientOnly)
}

func (p *pass[T]) checkRelated(field string, insufficientOnly bool) {
	if _, busy := p.guard[field]; busy {
		p.ctx.log.Debug("dependency cycle broken", logger.Field(field))
		return
	}

	ch, ok := p.ctx.chains[field]
	if !ok {
		return
	}
	if insufficientOnly && ch.state() != Insufficient {
		return
	}

	p.guard[field] = struct{}{}
	defer delete(p.guard, field)

	res := ch.continueCheck(p.ctx.entity, p.checkRelated)
	p.store.Put(field, res)
}
