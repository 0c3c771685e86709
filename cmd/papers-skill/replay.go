// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/papers-skill/internal/script"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted conversation and print the transcript",
	Long: `Replay reads a YAML script of turns, runs each through the dialog with
the configured catalog and generation backend, and prints what was said.
Useful as a smoke test against live services.

  session_id: demo
  turns:
    - request_type: LaunchRequest
    - intent: GetPapersSummaryIntent
    - intent: ComparePapersIntent
      slots: {firstPaper: "1", secondPaper: segundo}`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Bool("yaml", false, "print the transcript as YAML")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	cfg, err := skillConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	host, store, err := buildHost(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	exchanges, err := script.Replay(cmd.Context(), host, s)
	if err != nil {
		return fmt.Errorf("replaying %s: %w", args[0], err)
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return script.WriteYAML(os.Stdout, exchanges)
	}
	return script.WriteTranscript(os.Stdout, exchanges)
}
