package soa

// Publisher is the outbound half of a Connector: push a record out of the
// system (a file append, in this pipeline).
type Publisher[V any] interface {
	Publish(data V) error
}

// Subscriber is the inbound half of a Connector: consume an external
// source to EOF, dispatching each parsed record to a Service's OnMessage.
// Malformed or unresolvable records are skipped by the implementation and
// logged rather than aborting the whole subscription.
type Subscriber interface {
	Subscribe() error
}

// AddFunc adapts a plain function into a Listener that only reacts to add
// events, the only event the core dataflow ever raises. It keeps
// processors from having to declare empty ProcessRemove/ProcessUpdate
// bodies for every adapter.
type AddFunc[V any] func(data V)

func (f AddFunc[V]) ProcessAdd(data V) { f(data) }
func (f AddFunc[V]) ProcessRemove(V)   {}
func (f AddFunc[V]) ProcessUpdate(V)   {}
