package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gantrykit/gantry/internal/presentation/tui"
	"github.com/gantrykit/gantry/pkg/protocol"
)

// Screenshot evidence travels base64-encoded on a single line, so the
// scanner needs room well beyond the default 64KiB.
const maxLineSize = 16 * 1024 * 1024

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Serve the protocol over stdin/stdout",
	Long: `Reads one JSON request per line from stdin and writes one JSON
response per line to stdout. This is the native transport for host
processes that spawn the engine as a child. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		if request, _ := cmd.Flags().GetString("request"); request != "" {
			return exchange(cmd.Context(), a, request)
		}

		if term.IsTerminal(int(os.Stdin.Fd())) {
			tui.PrintBanner()
			fmt.Fprintln(os.Stderr, "Paste one JSON request per line. Ctrl-D to exit.")
		}

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			req, derr := protocol.DecodeRequest(line)
			if derr != nil {
				writeResponse(a, protocol.Error(derr))
				continue
			}

			resp, shutdown := a.engine.Dispatch(cmd.Context(), req)
			if shutdown {
				return nil
			}
			writeResponse(a, resp)
		}
		return scanner.Err()
	},
}

// exchange runs a single request given on the command line.
func exchange(ctx context.Context, a *app, request string) error {
	req, derr := protocol.DecodeRequest([]byte(request))
	if derr != nil {
		writeResponse(a, protocol.Error(derr))
		return nil
	}

	resp, shutdown := a.engine.Dispatch(ctx, req)
	if shutdown {
		return nil
	}
	writeResponse(a, resp)
	return nil
}

func writeResponse(a *app, resp protocol.Response) {
	data, err := resp.Encode()
	if err != nil {
		a.logger.Error("failed to encode response", "error", err)
		return
	}
	os.Stdout.Write(data)
	os.Stdout.Write([]byte{'\n'})
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("request", "", "Run a single request and exit")
}
