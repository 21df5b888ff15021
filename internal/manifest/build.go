package manifest

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jacoelho/premis"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// Options controls how a manifest becomes a document.
type Options struct {
	// DefaultIdentifierType is used for identifiers without a type.
	DefaultIdentifierType string
	// DefaultAgent, when set, is added to the document and linked to every
	// event that names no agent.
	DefaultAgent *Agent
	// DefaultAgentRole is the role of the DefaultAgent links.
	DefaultAgentRole string
	// NewID generates identifier values for entities without one.
	NewID func() string
	// Now stamps events without a datetime.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.DefaultIdentifierType == "" {
		o.DefaultIdentifierType = "local"
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type builder struct {
	opts         Options
	objects      map[string]*xmltree.Element // value -> objectIdentifier segment
	agents       map[string]*xmltree.Element
	defaultAgent *xmltree.Element
}

// Build returns a premis:premis document with the manifest objects, then
// events, then agents. Links between entities are resolved by identifier
// value; an unknown reference is an error.
func Build(m *Manifest, opts Options) (*xmltree.Element, error) {
	b := &builder{
		opts:    opts.withDefaults(),
		objects: make(map[string]*xmltree.Element),
		agents:  make(map[string]*xmltree.Element),
	}

	agentElems := make([]*xmltree.Element, 0, len(m.Agents)+1)
	for i, a := range m.Agents {
		e, err := b.agent(a)
		if err != nil {
			return nil, fmt.Errorf("agents[%d]: %w", i, err)
		}
		agentElems = append(agentElems, e)
	}
	if a := b.opts.DefaultAgent; a != nil {
		if existing, ok := b.agents[a.ID.Value]; ok && a.ID.Value != "" {
			b.defaultAgent = existing
		} else {
			e, err := b.agent(*a)
			if err != nil {
				return nil, fmt.Errorf("default agent: %w", err)
			}
			b.defaultAgent = e
			agentElems = append(agentElems, e)
		}
	}

	// Object identifiers are registered before any object is built so
	// relationships and dependencies may point forward.
	ids := make([]premis.Identifier, len(m.Objects))
	for i, o := range m.Objects {
		ids[i] = b.identifier(o.ID)
		if _, dup := b.objects[ids[i].Value]; dup {
			return nil, fmt.Errorf("objects[%d]: duplicate identifier %q", i, ids[i].Value)
		}
		segment, err := premis.BuildIdentifier(ids[i], premis.PrefixObject)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		b.objects[ids[i].Value] = segment
	}
	objectElems := make([]*xmltree.Element, 0, len(m.Objects))
	for i, o := range m.Objects {
		e, err := b.object(o, ids[i])
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		objectElems = append(objectElems, e)
	}

	eventElems := make([]*xmltree.Element, 0, len(m.Events))
	for i, ev := range m.Events {
		e, err := b.event(ev)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		eventElems = append(eventElems, e)
	}

	root := premis.BuildDocument(objectElems...)
	root.Append(eventElems...)
	root.Append(agentElems...)
	return root, nil
}

func (b *builder) identifier(id Identifier) premis.Identifier {
	out := premis.Identifier{Type: id.Type, Value: id.Value}
	if out.Type == "" {
		out.Type = b.opts.DefaultIdentifierType
	}
	if out.Value == "" {
		out.Value = b.opts.NewID()
	}
	return out
}

func (b *builder) agent(a Agent) (*xmltree.Element, error) {
	id := b.identifier(a.ID)
	if _, dup := b.agents[id.Value]; dup {
		return nil, fmt.Errorf("duplicate identifier %q", id.Value)
	}
	segment, err := premis.BuildIdentifier(id, premis.PrefixAgent)
	if err != nil {
		return nil, err
	}
	e, err := premis.BuildAgent(segment, a.Name, a.Type, a.Notes...)
	if err != nil {
		return nil, err
	}
	b.agents[id.Value] = e
	return e, nil
}

func (b *builder) object(o Object, id premis.Identifier) (*xmltree.Element, error) {
	opts := premis.ObjectOptions{OriginalName: o.OriginalName}
	switch premis.ObjectKind(o.Kind) {
	case "", premis.KindFile:
	case premis.KindRepresentation:
		opts.Representation = true
	case premis.KindBitstream:
		opts.Bitstream = true
	default:
		return nil, fmt.Errorf("unknown object kind %q", o.Kind)
	}

	characteristics, err := b.characteristics(o)
	if err != nil {
		return nil, err
	}
	opts.Children = append(opts.Children, characteristics...)

	for _, env := range o.Environments {
		e, err := b.environment(env)
		if err != nil {
			return nil, err
		}
		opts.Children = append(opts.Children, e)
	}
	for _, rel := range o.Relationships {
		related, err := b.lookup(b.objects, "object", rel.Object)
		if err != nil {
			return nil, err
		}
		e, err := premis.BuildRelationship(rel.Type, rel.SubType, related)
		if err != nil {
			return nil, err
		}
		opts.Children = append(opts.Children, e)
	}

	segment, err := premis.BuildIdentifier(id, premis.PrefixObject)
	if err != nil {
		return nil, err
	}
	return premis.BuildObject(segment, opts)
}

// characteristics returns the objectCharacteristics block, or nothing when
// the object declares no fixity, format or creation date.
func (b *builder) characteristics(o Object) ([]*xmltree.Element, error) {
	if len(o.Fixity) == 0 && len(o.Formats) == 0 && o.DateCreated == "" && o.CompositionLevel == "" {
		return nil, nil
	}
	var children []*xmltree.Element
	for _, f := range o.Fixity {
		e, err := premis.BuildFixity(f.Digest, f.Algorithm)
		if err != nil {
			return nil, err
		}
		children = append(children, e)
	}
	for _, f := range o.Formats {
		e, err := b.format(f)
		if err != nil {
			return nil, err
		}
		children = append(children, e)
	}
	if o.DateCreated != "" {
		date, err := premis.BuildDateCreated(o.DateCreated)
		if err != nil {
			return nil, err
		}
		app, err := premis.BuildCreatingApplication(date)
		if err != nil {
			return nil, err
		}
		children = append(children, app)
	}
	e, err := premis.BuildObjectCharacteristics(o.CompositionLevel, children...)
	if err != nil {
		return nil, err
	}
	return []*xmltree.Element{e}, nil
}

func (b *builder) format(f FormatInfo) (*xmltree.Element, error) {
	designation, err := premis.BuildFormatDesignation(f.Name, f.Version)
	if err != nil {
		return nil, err
	}
	parts := []*xmltree.Element{designation}
	if f.Registry != "" || f.RegistryKey != "" {
		registry, err := premis.BuildFormatRegistry(f.Registry, f.RegistryKey, "")
		if err != nil {
			return nil, err
		}
		parts = append(parts, registry)
	}
	return premis.BuildFormat(parts...)
}

func (b *builder) environment(env Environment) (*xmltree.Element, error) {
	opts := premis.EnvironmentOptions{
		Characteristic: env.Characteristic,
		Purposes:       env.Purposes,
		Notes:          env.Notes,
	}
	for _, ref := range env.Dependencies {
		target, err := b.lookup(b.objects, "object", ref)
		if err != nil {
			return nil, err
		}
		dep, err := premis.DependencyOf(target)
		if err != nil {
			return nil, err
		}
		opts.Dependencies = append(opts.Dependencies, dep)
	}
	return premis.BuildEnvironment(opts)
}

func (b *builder) event(ev Event) (*xmltree.Element, error) {
	segment, err := premis.BuildIdentifier(b.identifier(ev.ID), premis.PrefixEvent)
	if err != nil {
		return nil, err
	}

	var opts premis.EventOptions
	if ev.Outcome != "" || ev.OutcomeNote != "" {
		opts.Outcome, err = premis.BuildOutcome(ev.Outcome, premis.OutcomeOptions{Note: ev.OutcomeNote})
		if err != nil {
			return nil, err
		}
	}
	for _, link := range ev.Agents {
		agent, err := b.lookup(b.agents, "agent", link.ID)
		if err != nil {
			return nil, err
		}
		opts.LinkingAgents = append(opts.LinkingAgents, premis.Link{Entity: agent, Role: link.Role})
	}
	if len(ev.Agents) == 0 && b.defaultAgent != nil {
		opts.LinkingAgents = append(opts.LinkingAgents, premis.Link{Entity: b.defaultAgent, Role: b.opts.DefaultAgentRole})
	}
	for _, link := range ev.Objects {
		object, err := b.lookup(b.objects, "object", link.ID)
		if err != nil {
			return nil, err
		}
		opts.LinkingObjects = append(opts.LinkingObjects, premis.Link{Entity: object, Role: link.Role})
	}

	dateTime := ev.DateTime
	if dateTime == "" {
		dateTime = b.opts.Now().UTC().Format(time.RFC3339)
	}
	return premis.BuildEvent(segment, ev.Type, dateTime, ev.Detail, opts)
}

func (b *builder) lookup(entities map[string]*xmltree.Element, kind, value string) (*xmltree.Element, error) {
	e, ok := entities[value]
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", kind, value)
	}
	return e, nil
}
