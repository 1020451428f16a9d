package transport

import (
	"log"

	"github.com/google/uuid"

	"github.com/pran-droid/brain/internal/reaction"
)

// Subscriber is one connected viewer, identified by a generated id rather
// than the underlying connection so the hub never depends on the transport
// it's fed over.
type Subscriber struct {
	ID   string
	Send chan []byte
}

// Hub fans a single encoded reaction out to every currently connected
// subscriber. A subscriber whose send buffer is full is dropped rather than
// letting one slow viewer stall the others.
type Hub struct {
	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub builds an unstarted Hub; call Run in its own goroutine to start it.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Subscriber),
		unregister: make(chan *Subscriber),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

// NewSubscriber allocates a subscriber with a fresh id and bounded outbox.
func NewSubscriber() *Subscriber {
	return &Subscriber{ID: uuid.NewString(), Send: make(chan []byte, 64)}
}

// Run owns the subscriber map and never touches it from any other
// goroutine; stop it by closing done via Close.
func (h *Hub) Run() {
	subscribers := make(map[string]*Subscriber)
	for {
		select {
		case <-h.done:
			for _, sub := range subscribers {
				close(sub.Send)
			}
			return
		case sub := <-h.register:
			subscribers[sub.ID] = sub
		case sub := <-h.unregister:
			if _, ok := subscribers[sub.ID]; ok {
				delete(subscribers, sub.ID)
				close(sub.Send)
			}
		case payload := <-h.broadcast:
			for _, sub := range subscribers {
				select {
				case sub.Send <- payload:
				default:
					log.Printf("transport: subscriber %s outbox full, evicting", sub.ID)
					delete(subscribers, sub.ID)
					close(sub.Send)
				}
			}
		}
	}
}

// Close stops Run and closes every subscriber's outbox.
func (h *Hub) Close() {
	close(h.done)
}

// Register adds a subscriber to the fan-out set.
func (h *Hub) Register(sub *Subscriber) {
	h.register <- sub
}

// Unregister removes a subscriber from the fan-out set.
func (h *Hub) Unregister(sub *Subscriber) {
	h.unregister <- sub
}

// Publish implements brain.Publisher: it encodes r once and hands the
// resulting bytes to every current subscriber. An encoding failure is
// logged and the reaction is dropped rather than crashing the stimulus
// loop.
func (h *Hub) Publish(r reaction.Reaction) {
	payload, err := EncodeReaction(r)
	if err != nil {
		log.Printf("transport: encoding reaction: %v", err)
		return
	}
	h.broadcast <- payload
}
