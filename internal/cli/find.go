package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/premis"
	"github.com/jacoelho/premis/pkg/xmltree"
)

type findFlags struct {
	object string
	event  string
	agent  string
}

func newFindCommand(a *app) *cobra.Command {
	var flags findFlags
	cmd := &cobra.Command{
		Use:   "find <document.xml> --object|--event|--agent <id>",
		Short: "Print the entity with the given identifier value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(args[0], flags.lookup(cmd))
		},
	}
	cmd.Flags().StringVar(&flags.object, "object", "", "objectIdentifierValue to look up")
	cmd.Flags().StringVar(&flags.event, "event", "", "eventIdentifierValue to look up")
	cmd.Flags().StringVar(&flags.agent, "agent", "", "agentIdentifierValue to look up")
	cmd.MarkFlagsMutuallyExclusive("object", "event", "agent")
	cmd.MarkFlagsOneRequired("object", "event", "agent")
	return cmd
}

// findLookup names the entity kind and identifier value to search for.
type findLookup struct {
	kind  string
	value string
}

// lookup picks the flag the user set, even when its value is empty.
func (f findFlags) lookup(cmd *cobra.Command) findLookup {
	switch {
	case cmd.Flags().Changed("object"):
		return findLookup{kind: "object", value: f.object}
	case cmd.Flags().Changed("event"):
		return findLookup{kind: "event", value: f.event}
	default:
		return findLookup{kind: "agent", value: f.agent}
	}
}

func (a *app) runFind(path string, l findLookup) error {
	root, err := a.loadDocument(path)
	if err != nil {
		return err
	}

	var found *xmltree.Element
	switch l.kind {
	case "object":
		found = premis.FindObjectByID(root, l.value)
	case "event":
		found = premis.FindEventByID(root, l.value)
	default:
		found = premis.FindAgentByID(root, l.value)
	}
	if found == nil {
		return fmt.Errorf("%s %q: %w", l.kind, l.value, errNotFound)
	}
	return premis.Encode(a.stdout, found, premis.EncodeOptions{Indent: a.cfg.Output.Indent})
}
