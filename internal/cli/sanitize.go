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

// maxLineBytes caps a single stdin line. Longer lines fail rather than
// silently splitting a whitespace run across sanitize passes.
const maxLineBytes = 1 << 20

// sanitizeCommand resolves settings and runs the sanitize operation.
func sanitizeCommand(cmd *cobra.Command, args []string) error {
	s := MergeSanitizeFlags(cfg.Sanitize, sanitizeFlags, cmd)
	if err := ValidateNormalization(s.Normalize); err != nil {
		return err
	}
	return runSanitize(cmd.OutOrStdout(), cmd.InOrStdin(), args, s.Options())
}

// runSanitize cleans the argument text, or streams stdin when no
// arguments are given.
func runSanitize(out io.Writer, in io.Reader, args []string, opts runes.Options) error {
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, runes.Sanitize(strings.Join(args, " "), opts))
		return err
	}
	return sanitizeStream(out, in, opts)
}

// sanitizeStream copies in to out through a sanitizing writer. Each
// line goes through as one write, keeping whitespace runs intact for
// the consecutive-whitespace cap.
func sanitizeStream(out io.Writer, in io.Reader, opts runes.Options) error {
	w := runes.NewWriter(out, opts)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if _, err := io.WriteString(w, scanner.Text()+"\n"); err != nil {
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
