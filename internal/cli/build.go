package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/premis"
	"github.com/jacoelho/premis/internal/config"
	"github.com/jacoelho/premis/internal/manifest"
)

func newBuildCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "build <manifest.{yaml,yml,toml}>",
		Short: "Build a PREMIS document from a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")
	return cmd
}

func (a *app) runBuild(manifestPath, output string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	root, err := manifest.Build(m, buildOptions(a.cfg))
	if err != nil {
		return fmt.Errorf("build %s: %w", manifestPath, err)
	}
	// Everything written is checked so a manifest can never yield a document
	// premisctl itself would reject.
	if err := premis.Check(root); err != nil {
		return fmt.Errorf("build %s: %w", manifestPath, err)
	}

	var buf bytes.Buffer
	opts := premis.EncodeOptions{Indent: a.cfg.Output.Indent, Declaration: a.cfg.Output.WantDeclaration()}
	if err := premis.Encode(&buf, root, opts); err != nil {
		return err
	}

	a.log.Info().
		Str("manifest", manifestPath).
		Int("objects", premis.ObjectCount(root)).
		Int("events", premis.EventCount(root)).
		Int("agents", premis.AgentCount(root)).
		Msg("document built")

	if output == "" {
		_, err := a.stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

func buildOptions(cfg *config.Config) manifest.Options {
	opts := manifest.Options{DefaultIdentifierType: cfg.Identifiers.DefaultType}
	if agent := cfg.Agent; agent != nil {
		opts.DefaultAgent = &manifest.Agent{
			ID:   manifest.Identifier{Type: agent.IdentifierType, Value: agent.IdentifierValue},
			Name: agent.Name,
			Type: agent.Type,
		}
		opts.DefaultAgentRole = agent.Role
	}
	return opts
}
