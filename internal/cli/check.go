package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/premis"
	premiserrors "github.com/jacoelho/premis/errors"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <document.xml>",
		Short: "Report every malformed object, event and agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args[0])
		},
	}
}

func (a *app) runCheck(path string) error {
	root, err := a.loadDocument(path)
	if err != nil {
		return err
	}
	if err := premis.Check(root); err != nil {
		list, ok := premiserrors.AsList(err)
		if !ok {
			return err
		}
		for _, issue := range list {
			fmt.Fprintln(a.stderr, issue.Error())
		}
		fmt.Fprintf(a.stderr, "%s has %d problem(s)\n", path, len(list))
		return errReported
	}
	fmt.Fprintf(a.stdout, "%s is well formed\n", path)
	return nil
}
