package notify

import (
	"log"

	"github.com/rsetcampus/atspam-api/internal/metrics"
)

// Event is one workflow transition fanned out to its recipients.
type Event struct {
	Recipients []uint
	Message    string
}

// Sink persists a single notification row.
type Sink interface {
	Append(userID uint, message string) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		for _, userID := range ev.Recipients {
			if err := d.sink.Append(userID, ev.Message); err != nil {
				log.Println("notify error:", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if len(ev.Recipients) == 0 {
		return
	}

	select {
	case d.queue <- ev:
		// enqueued
	default:
		// queue full; notifications are best-effort, never fail the API
		metrics.NotificationDropped()
		log.Println("notify queue full, dropping event")
	}
}

// Close stops the worker after draining queued events. Dispatch must not
// be called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
