package premis

import (
	"iter"

	"github.com/jacoelho/premis/internal/xiter"
	"github.com/jacoelho/premis/pkg/xmltree"
)

// Agent holds the fields of a premis:agent.
type Agent struct {
	Identifier Identifier
	Name       string
	Type       string
	Notes      []string
}

// BuildAgent returns a premis:agent:
//
//	<premis:agent>
//	    <premis:agentIdentifier>...</premis:agentIdentifier>
//	    <premis:agentName>check_virus_clamscan.py</premis:agentName>
//	    <premis:agentType>software</premis:agentType>
//	    <premis:agentNote>...</premis:agentNote>
//	</premis:agent>
//
// id must be an agentIdentifier segment; it is moved into the agent.
func BuildAgent(id *xmltree.Element, agentName, agentType string, notes ...string) (*xmltree.Element, error) {
	b := builder{op: "build agent"}
	b.requireNamed("identifier", PrefixAgent.IdentifierName(), []*xmltree.Element{id})

	agent := xmltree.NewElement(name("agent"))
	agent.Append(id)
	b.text(agent, name("agentName"), agentName)
	b.text(agent, name("agentType"), agentType)
	b.each(agent, name("agentNote"), notes)
	return b.done(agent)
}

// ParseAgent reads the fields of a premis:agent. The agentIdentifier is
// required.
func ParseAgent(agent *xmltree.Element) (Agent, error) {
	const op = "parse agent"
	if agent == nil {
		return Agent{}, invalidf(op, "nil agent")
	}
	id, ok, err := ParseIdentifier(agent, PrefixAgent)
	if err != nil {
		return Agent{}, err
	}
	if !ok {
		return Agent{}, malformed(op, agent.Name, PrefixAgent.IdentifierName())
	}
	return Agent{
		Identifier: id,
		Name:       childText(agent, "agentName"),
		Type:       childText(agent, "agentType"),
		Notes:      childTexts(agent, "agentNote"),
	}, nil
}

// IterAgents yields every premis:agent below root in document order.
func IterAgents(root *xmltree.Element) iter.Seq[*xmltree.Element] {
	return IterElements(root, "agent")
}

// FindAgentByID returns the first agent whose agentIdentifierValue equals
// value, or nil.
func FindAgentByID(root *xmltree.Element, value string) *xmltree.Element {
	return findByID(root, "agent", PrefixAgent, value)
}

// AgentCount returns the number of agents below root.
func AgentCount(root *xmltree.Element) int {
	return xiter.Count(IterAgents(root))
}

// AgentsWithType yields the agents whose agentType is exactly agentType.
func AgentsWithType(agents iter.Seq[*xmltree.Element], agentType string) iter.Seq[*xmltree.Element] {
	return withChildText(agents, "agentType", agentType)
}

// GroupAgentsByType buckets agents by agentType.
func GroupAgentsByType(agents iter.Seq[*xmltree.Element]) map[string][]*xmltree.Element {
	return xiter.GroupBy(agents, func(e *xmltree.Element) string {
		return childText(e, "agentType")
	})
}
