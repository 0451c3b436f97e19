// Package flight defines the immutable flight record shared by every
// index, predicate, and sort routine in the engine.
package flight

// Flight is an immutable tuple describing one itinerary segment. Flights
// are owned by a single backing slice for the lifetime of the process;
// every index holds only references into that slice, never copies.
type Flight struct {
	Origin      string
	Destination string
	Price       float64
	Seats       int64

	// DepartureStr and ArrivalStr are the original wallclock strings,
	// retained verbatim so output can echo exactly what was read.
	DepartureStr string
	ArrivalStr   string

	// DepTime and ArrTime are UTC epoch seconds. ArrTime >= DepTime is a
	// load-time invariant enforced by the loader, never by Flight itself.
	DepTime int64
	ArrTime int64

	Stops int64
}

// Duration is derived, never stored separately from DepTime/ArrTime.
func (f *Flight) Duration() int64 {
	return f.ArrTime - f.DepTime
}
