package premis

import (
	"errors"
	"fmt"

	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// Check parses every object, event and agent below root and reports all
// failures at once as an errors.List. Each listed error carries a path such
// as "event[2]". Duplicate identifier values within one entity kind are
// reported as malformed. Check returns nil for a clean document.
func Check(root *xmltree.Element) error {
	c := checker{seen: make(map[string]bool)}
	i := 0
	for object := range IterObjects(root) {
		path := fmt.Sprintf("object[%d]", i)
		i++
		obj, err := ParseObject(object)
		if err != nil {
			c.add(path, err)
			continue
		}
		c.unique(path, "object", obj.Identifier)
		if _, err := ParseRelationships(object); err != nil {
			c.add(path, err)
		}
		if _, err := ParseEnvironments(object); err != nil {
			c.add(path, err)
		}
	}
	i = 0
	for event := range IterEvents(root) {
		path := fmt.Sprintf("event[%d]", i)
		i++
		ev, err := ParseEvent(event)
		if err != nil {
			c.add(path, err)
			continue
		}
		c.unique(path, "event", ev.Identifier)
	}
	i = 0
	for agent := range IterAgents(root) {
		path := fmt.Sprintf("agent[%d]", i)
		i++
		ag, err := ParseAgent(agent)
		if err != nil {
			c.add(path, err)
			continue
		}
		c.unique(path, "agent", ag.Identifier)
	}
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

type checker struct {
	errs premiserrors.List
	seen map[string]bool
}

func (c *checker) add(path string, err error) {
	var e *premiserrors.Error
	if !errors.As(err, &e) {
		e = &premiserrors.Error{Code: premiserrors.ErrMalformedDocument, Op: "check", Err: err}
	}
	c.errs = append(c.errs, e.WithPath(path))
}

func (c *checker) unique(path, kind string, id Identifier) {
	key := kind + "\x00" + id.Type + "\x00" + id.Value
	if c.seen[key] {
		c.errs = append(c.errs, premiserrors.Newf(premiserrors.ErrMalformedDocument, "check",
			"duplicate %s identifier %s %q", kind, id.Type, id.Value).WithPath(path))
		return
	}
	c.seen[key] = true
}
