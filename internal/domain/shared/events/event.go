package events

// Event names for all domain events published in the system.
const (
	EventTicketCreated       = "ticket.created"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketAssigned      = "ticket.assigned"
	EventCommentAdded        = "ticket.comment_added"
	EventUserRegistered      = "user.registered"
	EventUserRoleChanged     = "user.role_changed"
	EventRoleRequestReviewed = "rolerequest.reviewed"
)

// DomainEvent is implemented by all domain events.
type DomainEvent interface {
	// EventName returns the dispatch key for the event.
	EventName() string
}

// EventHandler processes domain events of the types it subscribed to.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventName string) bool
}

// EventPublisher publishes domain events.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber registers handlers for domain events.
type EventSubscriber interface {
	Subscribe(eventName string, handler EventHandler) error
	Unsubscribe(eventName string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error
	Stop() error
}

// HandlerFunc adapts a function to the EventHandler interface for a
// single event name.
type HandlerFunc struct {
	eventName string
	fn        func(DomainEvent) error
}

// NewHandlerFunc creates an EventHandler backed by fn for eventName.
func NewHandlerFunc(eventName string, fn func(DomainEvent) error) *HandlerFunc {
	return &HandlerFunc{eventName: eventName, fn: fn}
}

func (h *HandlerFunc) Handle(event DomainEvent) error {
	if h.fn == nil {
		return nil
	}
	return h.fn(event)
}

func (h *HandlerFunc) CanHandle(eventName string) bool {
	return h.eventName == eventName
}
