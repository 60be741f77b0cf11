package eytzinger

// WalkAction tells a walk what to do after visiting an entry.
type WalkAction struct {
	op   walkOp
	slot int
}

type walkOp uint8

const (
	opStop walkOp = iota
	opParent
	opChild
)

var (
	// Stop ends the walk at the current entry.
	Stop = WalkAction{op: opStop}
	// Parent moves the walk to the parent of the current entry.
	Parent = WalkAction{op: opParent}
)

// Child moves the walk into child slot c of the current entry.
func Child(c int) WalkAction {
	return WalkAction{op: opChild, slot: c}
}

// WalkHandler is called once per visited entry of a shared walk and
// decides where the walk goes next.
type WalkHandler[V any] func(Entry[V]) WalkAction

// WalkMutHandler is the exclusive-walk analog of WalkHandler. The
// handler may insert into or remove from the entry it is given.
type WalkMutHandler[V any] func(EntryMut[V]) WalkAction

// Walkable is anything a shared walk can start from.
type Walkable[V any] interface {
	Walk(WalkHandler[V])
}

// walk drives a shared walk: Parent on an entry with no parent and
// Child on a vacant entry both terminate. The walk itself imposes no
// iteration bound; a handler bouncing between Parent and Child forever
// is the caller's problem.
func walk[V any](cur Entry[V], h WalkHandler[V]) {
	for {
		act := h(cur)
		switch act.op {
		case opParent:
			p, ok := cur.Parent()
			if !ok {
				return
			}
			cur = p
		case opChild:
			c, ok := cur.ChildEntry(act.slot)
			if !ok {
				return
			}
			cur = c
		default:
			return
		}
	}
}

// walkMut drives an exclusive walk. It tracks the net depth below the
// starting slot: Parent at depth zero terminates instead of moving, so
// the handler can never escape the subtree the walk was given. After
// the loop ends for any reason the downward path is retraced, so the
// entry handed back is always at the slot the walk started from.
func walkMut[V any](cur EntryMut[V], h WalkMutHandler[V]) EntryMut[V] {
	levels := 0
loop:
	for {
		act := h(cur)
		switch act.op {
		case opParent:
			if levels == 0 {
				break loop
			}
			p, ok := cur.ToParent()
			if !ok {
				break loop
			}
			cur = p
			levels--
		case opChild:
			c, ok := cur.ToChildEntry(act.slot)
			if !ok {
				break loop
			}
			cur = c
			levels++
		default:
			break loop
		}
	}

	for ; levels > 0; levels-- {
		p, ok := cur.ToParent()
		if !ok {
			panic("eytzinger: walk retrace lost its path")
		}
		cur = p
	}
	return cur
}
