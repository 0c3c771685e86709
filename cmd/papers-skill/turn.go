// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/papers-skill/internal/dialog"
	"github.com/pdiddy/papers-skill/pkg/types"
)

var turnCmd = &cobra.Command{
	Use:   "turn <intent|LaunchRequest|SessionEndedRequest> [slot=value...]",
	Short: "Run one conversational turn from the command line",
	Long: `Turn sends a single turn through the dialog and prints the reply. State
is kept in the SQLite session store between invocations, so consecutive
turns with the same --session continue one conversation:

  papers-skill turn LaunchRequest --session demo --new
  papers-skill turn GetPapersSummaryIntent --session demo
  papers-skill turn GetPaperDetailsIntent paperNumber=segundo --session demo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTurn,
}

func init() {
	turnCmd.Flags().String("session", "", "conversation ID (default: a new random ID)")
	turnCmd.Flags().Bool("new", false, "start a new conversation, ignoring stored state")

	rootCmd.AddCommand(turnCmd)
}

func runTurn(cmd *cobra.Command, args []string) error {
	cfg, err := skillConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	if cfg.Session.Backend == types.SessionMemory {
		cfg.Session.Backend = types.SessionSQLite
	}

	req, err := turnRequest(args)
	if err != nil {
		return err
	}
	req.SessionID, _ = cmd.Flags().GetString("session")
	req.NewSession, _ = cmd.Flags().GetBool("new")
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
		req.NewSession = true
		fmt.Fprintln(os.Stderr, "session:", req.SessionID)
	}

	host, store, err := buildHost(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	printReply(os.Stdout, host.Turn(cmd.Context(), req))
	return nil
}

// turnRequest parses "<name> [slot=value...]" into a request.
func turnRequest(args []string) (types.TurnRequest, error) {
	req := types.TurnRequest{RequestType: dialog.RequestIntent, Intent: args[0]}
	switch args[0] {
	case dialog.RequestLaunch, dialog.RequestSessionEnd:
		req.RequestType, req.Intent = args[0], ""
	}

	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return req, fmt.Errorf("slot %q: expected name=value", arg)
		}
		if req.Slots == nil {
			req.Slots = make(map[string]string)
		}
		req.Slots[name] = value
	}
	return req, nil
}

func printReply(w io.Writer, reply types.Reply) {
	fmt.Fprintln(w, reply.Speech)
	if reply.Reprompt != "" {
		fmt.Fprintf(w, "\n(reprompt) %s\n", reply.Reprompt)
	}
	if reply.EndSession {
		fmt.Fprintln(w, "\n(session ended)")
	}
}
