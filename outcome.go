package premis

import (
	"github.com/jacoelho/premis/pkg/xmltree"
)

// OutcomeOptions holds the optional parts of an event outcome.
type OutcomeOptions struct {
	Note string
	// Extensions are element subtrees placed under
	// eventOutcomeDetailExtension. Bare character data is rejected, as is
	// any subtree Marshal could not write back unchanged.
	Extensions []xmltree.Node
	// SingleExtensionElement puts every extension in one wrapper instead of
	// one wrapper per extension.
	SingleExtensionElement bool
}

// Outcome holds the fields of an eventOutcomeInformation block.
type Outcome struct {
	Outcome    string
	Note       string
	Extensions []*xmltree.Element
}

// BuildOutcome returns an eventOutcomeInformation block:
//
//	<premis:eventOutcomeInformation>
//	    <premis:eventOutcome>success</premis:eventOutcome>
//	    <premis:eventOutcomeDetail>
//	        <premis:eventOutcomeDetailNote>...</premis:eventOutcomeDetailNote>
//	        <premis:eventOutcomeDetailExtension>...</premis:eventOutcomeDetailExtension>
//	    </premis:eventOutcomeDetail>
//	</premis:eventOutcomeInformation>
//
// The extension elements are moved into the outcome.
func BuildOutcome(outcome string, opts OutcomeOptions) (*xmltree.Element, error) {
	b := builder{op: "build outcome"}

	info := xmltree.NewElement(name("eventOutcomeInformation"))
	b.text(info, name("eventOutcome"), outcome)
	detail := info.SubElement(name("eventOutcomeDetail"))
	b.optional(detail, name("eventOutcomeDetailNote"), opts.Note)

	extensions := make([]*xmltree.Element, 0, len(opts.Extensions))
	for i, ext := range opts.Extensions {
		switch v := ext.(type) {
		case *xmltree.Element:
			if v == nil {
				b.invalid("extensions[%d] is nil", i)
				continue
			}
			if err := v.Validate(); err != nil {
				b.fail(err)
				continue
			}
			extensions = append(extensions, v)
		case xmltree.CharData:
			b.invalid("extensions[%d] is character data, want an element", i)
		default:
			b.invalid("extensions[%d] has unsupported type %T", i, ext)
		}
	}

	switch {
	case len(extensions) == 0:
	case opts.SingleExtensionElement:
		detail.SubElement(name("eventOutcomeDetailExtension")).Append(extensions...)
	default:
		for _, ext := range extensions {
			detail.SubElement(name("eventOutcomeDetailExtension")).Append(ext)
		}
	}
	return b.done(info)
}

// ParseOutcome reads the first eventOutcomeInformation block of event. It
// reports false when the event has none.
func ParseOutcome(event *xmltree.Element) (Outcome, bool) {
	info := event.Child(name("eventOutcomeInformation"))
	if info == nil {
		return Outcome{}, false
	}
	return outcomeFields(info), true
}

func outcomeFields(info *xmltree.Element) Outcome {
	out := Outcome{Outcome: childText(info, "eventOutcome")}
	for detail := range info.ChildrenNamed(name("eventOutcomeDetail")) {
		if out.Note == "" {
			out.Note = childText(detail, "eventOutcomeDetailNote")
		}
		for wrapper := range detail.ChildrenNamed(name("eventOutcomeDetailExtension")) {
			out.Extensions = append(out.Extensions, wrapper.Children...)
		}
	}
	return out
}
