package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outslept/whimsy/internal/errors"
	"github.com/outslept/whimsy/runes"
)

// stripCommand removes escape sequences from the arguments or stdin.
func stripCommand(cmd *cobra.Command, args []string) error {
	return runStrip(cmd.OutOrStdout(), cmd.InOrStdin(), args)
}

// runStrip prints the argument text with escapes removed, or streams
// stdin line by line.
func runStrip(out io.Writer, in io.Reader, args []string) error {
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, runes.StripVTControlSequences(strings.Join(args, " ")))
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, runes.StripVTControlSequences(scanner.Text())); err != nil {
			return errors.Wrap(err, "Failed to write output")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed to read stdin",
			"Pass the text as an argument instead.")
	}
	return nil
}
