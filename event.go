package premis

import (
	"iter"

	"github.com/jacoelho/premis/internal/xiter"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// Link names an agent or object an event refers to. Only the identifier of
// Entity is copied into the event.
type Link struct {
	Entity *xmltree.Element
	Role   string
}

// EventOptions holds the optional parts of an event.
type EventOptions struct {
	// Outcome is an eventOutcomeInformation element, see BuildOutcome.
	Outcome *xmltree.Element
	// Children are appended after the outcome.
	Children []*xmltree.Element
	// LinkingAgents become linkingAgentIdentifier segments.
	LinkingAgents []Link
	// LinkingObjects become linkingObjectIdentifier segments.
	LinkingObjects []Link
}

// Event holds the fields of a premis:event.
type Event struct {
	Identifier     Identifier
	Type           string
	DateTime       string
	Detail         string
	Outcomes       []Outcome
	LinkingAgents  []Identifier
	LinkingObjects []Identifier
}

// BuildEvent returns a premis:event:
//
//	<premis:event>
//	    <premis:eventIdentifier>...</premis:eventIdentifier>
//	    <premis:eventType>digital signature validation</premis:eventType>
//	    <premis:eventDateTime>2015-02-03T13:04:25</premis:eventDateTime>
//	    <premis:eventDetail>...</premis:eventDetail>
//	    {{ outcome }} {{ children }}
//	    <premis:linkingAgentIdentifier>...</premis:linkingAgentIdentifier>
//	    <premis:linkingObjectIdentifier>...</premis:linkingObjectIdentifier>
//	</premis:event>
//
// id must be an eventIdentifier segment. Linked agents and objects may be
// full entities or bare identifier segments; each one without an identifier
// fails with ErrInvalidArgument.
func BuildEvent(id *xmltree.Element, eventType, dateTime, detail string, opts EventOptions) (*xmltree.Element, error) {
	b := builder{op: "build event"}
	b.requireNamed("identifier", PrefixEvent.IdentifierName(), []*xmltree.Element{id})
	if opts.Outcome != nil {
		b.requireNamed("outcome", name("eventOutcomeInformation"), []*xmltree.Element{opts.Outcome})
	}

	event := xmltree.NewElement(name("event"))
	event.Append(id)
	b.text(event, name("eventType"), eventType)
	b.text(event, name("eventDateTime"), dateTime)
	b.text(event, name("eventDetail"), detail)
	event.Append(opts.Outcome)
	appendChildren(&b, event, opts.Children)
	for _, link := range opts.LinkingAgents {
		event.Append(project(&b, link.Entity, PrefixAgent, PrefixLinkingAgent, link.Role))
	}
	for _, link := range opts.LinkingObjects {
		event.Append(project(&b, link.Entity, PrefixObject, PrefixLinkingObject, link.Role))
	}
	return b.done(event)
}

// ParseEvent reads the fields of a premis:event. The eventIdentifier,
// eventType and eventDateTime are required; a missing one fails with
// ErrMalformedDocument.
func ParseEvent(event *xmltree.Element) (Event, error) {
	const op = "parse event"
	if event == nil {
		return Event{}, invalidf(op, "nil event")
	}
	id, ok, err := ParseIdentifier(event, PrefixEvent)
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{}, malformed(op, event.Name, PrefixEvent.IdentifierName())
	}
	eventType, ok := event.ChildText(name("eventType"))
	if !ok {
		return Event{}, malformed(op, event.Name, name("eventType"))
	}
	dateTime, ok := event.ChildText(name("eventDateTime"))
	if !ok {
		return Event{}, malformed(op, event.Name, name("eventDateTime"))
	}

	var outcomes []Outcome
	for info := range event.ChildrenNamed(name("eventOutcomeInformation")) {
		outcomes = append(outcomes, outcomeFields(info))
	}
	agents, err := ParseLinkingIdentifiers(event, PrefixLinkingAgent)
	if err != nil {
		return Event{}, err
	}
	objects, err := ParseLinkingIdentifiers(event, PrefixLinkingObject)
	if err != nil {
		return Event{}, err
	}

	return Event{
		Identifier:     id,
		Type:           eventType,
		DateTime:       dateTime,
		Detail:         childText(event, "eventDetail"),
		Outcomes:       outcomes,
		LinkingAgents:  agents,
		LinkingObjects: objects,
	}, nil
}

// IterEvents yields every premis:event below root in document order.
func IterEvents(root *xmltree.Element) iter.Seq[*xmltree.Element] {
	return IterElements(root, "event")
}

// FindEventByID returns the first event whose eventIdentifierValue equals
// value, or nil.
func FindEventByID(root *xmltree.Element, value string) *xmltree.Element {
	return findByID(root, "event", PrefixEvent, value)
}

// EventCount returns the number of events below root.
func EventCount(root *xmltree.Element) int {
	return xiter.Count(IterEvents(root))
}

// EventsWithType yields the events whose eventType is exactly eventType.
func EventsWithType(events iter.Seq[*xmltree.Element], eventType string) iter.Seq[*xmltree.Element] {
	return withChildText(events, "eventType", eventType)
}

// EventsWithTypeAndDetail yields the events matching both eventType and
// eventDetail exactly.
func EventsWithTypeAndDetail(events iter.Seq[*xmltree.Element], eventType, detail string) iter.Seq[*xmltree.Element] {
	return withChildText(EventsWithType(events, eventType), "eventDetail", detail)
}

// EventsWithOutcome yields the events whose first eventOutcome is exactly
// outcome.
func EventsWithOutcome(events iter.Seq[*xmltree.Element], outcome string) iter.Seq[*xmltree.Element] {
	return xiter.Filter(events, func(e *xmltree.Element) bool {
		got, ok := eventOutcome(e)
		return ok && got == outcome
	})
}

// GroupEventsByOutcome buckets events by their first eventOutcome. Events
// without an outcome are grouped under "".
func GroupEventsByOutcome(events iter.Seq[*xmltree.Element]) map[string][]*xmltree.Element {
	return xiter.GroupBy(events, func(e *xmltree.Element) string {
		outcome, _ := eventOutcome(e)
		return outcome
	})
}

// GroupEventsByType buckets events by eventType.
func GroupEventsByType(events iter.Seq[*xmltree.Element]) map[string][]*xmltree.Element {
	return xiter.GroupBy(events, func(e *xmltree.Element) string {
		return childText(e, "eventType")
	})
}

func eventOutcome(event *xmltree.Element) (string, bool) {
	return event.Child(name("eventOutcomeInformation")).ChildText(name("eventOutcome"))
}
