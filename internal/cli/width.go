package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outslept/whimsy/internal/errors"
	"github.com/outslept/whimsy/runes"
)

// widthCommand measures display columns with the config's width
// settings.
func widthCommand(cmd *cobra.Command, args []string) error {
	return runWidth(cmd.OutOrStdout(), cmd.InOrStdin(), args, cfg.Sanitize.Options(), widthVisibleFlag)
}

// runWidth prints one measurement per argument, or one for all of
// stdin when no arguments are given. A trailing newline on stdin is
// not part of the text being measured.
func runWidth(out io.Writer, in io.Reader, args []string, opts runes.Options, visible bool) error {
	if len(args) > 0 {
		for _, arg := range args {
			fmt.Fprintln(out, widthOf(arg, opts, visible))
		}
		return nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed to read stdin",
			"Pass the text as an argument instead.")
	}
	_, err = fmt.Fprintln(out, widthOf(strings.TrimSuffix(string(data), "\n"), opts, visible))
	return err
}

// widthOf measures one string. visible counts characters ignoring
// escape sequences; otherwise the measurement is in terminal columns.
func widthOf(s string, opts runes.Options, visible bool) int {
	if visible {
		return runes.VisibleLength(s)
	}
	return runes.StringWidth(s, opts)
}
