package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jacoelho/premis"
	"github.com/jacoelho/premis/internal/xiter"
	"github.com/jacoelho/premis/pkg/xmltree"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <document.xml>",
		Short: "List the objects, events and agents of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			a.inspect(a.stdout, root)
			return nil
		},
	}
}

func (a *app) inspect(w io.Writer, root *xmltree.Element) {
	fmt.Fprintf(w, "objects: %d\n", premis.ObjectCount(root))
	for object := range premis.IterObjects(root) {
		o, err := premis.ParseObject(object)
		if err != nil {
			a.log.Warn().Err(err).Msg("skipping object")
			continue
		}
		fmt.Fprintf(w, "  %s %s (%s)", o.Identifier.Type, o.Identifier.Value, o.Kind)
		if o.OriginalName != "" {
			fmt.Fprintf(w, " %s", o.OriginalName)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "events: %d\n", premis.EventCount(root))
	for event := range premis.IterEvents(root) {
		e, err := premis.ParseEvent(event)
		if err != nil {
			a.log.Warn().Err(err).Msg("skipping event")
			continue
		}
		fmt.Fprintf(w, "  %s %s %s %s\n", e.Identifier.Type, e.Identifier.Value, e.DateTime, e.Type)
	}

	fmt.Fprintf(w, "agents: %d\n", premis.AgentCount(root))
	for agent := range premis.IterAgents(root) {
		ag, err := premis.ParseAgent(agent)
		if err != nil {
			a.log.Warn().Err(err).Msg("skipping agent")
			continue
		}
		fmt.Fprintf(w, "  %s %s %s (%s)\n", ag.Identifier.Type, ag.Identifier.Value, ag.Name, ag.Type)
	}

	byOutcome := premis.GroupEventsByOutcome(premis.IterEvents(root))
	if len(byOutcome) == 0 {
		return
	}
	fmt.Fprintln(w, "outcomes:")
	for outcome := range xiter.SortedKeys(byOutcome) {
		label := outcome
		if label == "" {
			label = "(none)"
		}
		fmt.Fprintf(w, "  %s: %d\n", label, len(byOutcome[outcome]))
	}
}
