// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents a stage in the order lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every created order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates the order left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates the order reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was aborted before shipping. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusGraph is the only transition table in the system. Cancelled is
// reachable from Pending and Processing; Delivered and Cancelled have no
// outgoing edges.
var statusGraph = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(statusGraph[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether the lifecycle graph has an edge from s to
// next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusGraph[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsCancellable reports whether an order in this status may still be
// cancelled.
func (s OrderStatus) IsCancellable() bool {
	return s.CanTransitionTo(OrderStatusCancelled)
}
