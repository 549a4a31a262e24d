package scene

import (
	"sync"

	"github.com/gocanvas/sketch"
)

// Display is the redraw target a root compound is bound to. A repaint
// request is a staleness notification, not a draw call: the display
// decides when to actually re-render the scene onto its surface.
//
// Repaint requests may arrive from any goroutine; implementations that
// require thread affinity should wrap themselves in a QueueDisplay.
type Display interface {
	// Repaint marks the whole surface stale.
	Repaint()

	// RepaintRegion marks a rectangular region stale. The region is
	// already expanded to cover stroke overflow.
	RepaintRegion(r sketch.Rect)
}

// RenderQueue serializes callbacks onto a single dedicated goroutine,
// standing in for a rendering thread with affinity requirements.
// Submission is fire-and-forget: Post never blocks the scene graph and
// callbacks run in submission order per posting goroutine.
type RenderQueue struct {
	mu     sync.Mutex
	tasks  chan func()
	closed bool
	done   chan struct{}
}

// NewRenderQueue starts the consumer goroutine. The buffer bounds how
// many pending callbacks can queue up before Post starts dropping.
func NewRenderQueue(buffer int) *RenderQueue {
	if buffer < 1 {
		buffer = 64
	}
	q := &RenderQueue{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *RenderQueue) run() {
	defer close(q.done)
	for fn := range q.tasks {
		fn()
	}
}

// Post submits a callback to run on the render goroutine. It reports
// whether the callback was accepted: a closed or saturated queue drops
// the callback, since a repaint notification that cannot be delivered
// is never worth blocking scene mutation for.
func (q *RenderQueue) Post(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	select {
	case q.tasks <- fn:
		return true
	default:
		sketch.Logger().Warn("scene: render queue full, dropping callback")
		return false
	}
}

// Close stops the queue after draining the callbacks already accepted.
// It blocks until the consumer goroutine exits. Posting after Close
// reports false.
func (q *RenderQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()
	<-q.done
}

// QueueDisplay marshals repaint requests for a wrapped Display onto a
// RenderQueue, so the wrapped display only ever runs on the render
// goroutine regardless of which goroutine mutated the scene.
type QueueDisplay struct {
	queue *RenderQueue
	dst   Display
}

// NewQueueDisplay wraps dst so its methods run on q's goroutine.
func NewQueueDisplay(q *RenderQueue, dst Display) *QueueDisplay {
	return &QueueDisplay{queue: q, dst: dst}
}

// Repaint implements Display.
func (d *QueueDisplay) Repaint() {
	d.queue.Post(d.dst.Repaint)
}

// RepaintRegion implements Display.
func (d *QueueDisplay) RepaintRegion(r sketch.Rect) {
	d.queue.Post(func() { d.dst.RepaintRegion(r) })
}

var _ Display = (*QueueDisplay)(nil)
