package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KostasZigo/gitsha/internal/constants"
	"github.com/KostasZigo/gitsha/internal/hashing"
	"github.com/KostasZigo/gitsha/internal/objects"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X github.com/KostasZigo/gitsha/cmd.version=..."
var version = "dev"

// rootCmd is the gitsha CLI. It takes no arguments and prints the blob
// identifier of the built-in content.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gitsha",
		Short: "Print the Git object id of a fixed blob",
		Long: `gitsha computes the identifier a Git object store assigns to content.
The content is framed as "blob <size>\0<content>", hashed with SHA-1 and
printed as 40 lowercase hex characters.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs(),
		RunE:          runHash,
	}
}

// noArgs rejects any positional argument.
// enables usage printing in case of error
func noArgs() cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s accepts no arguments, received %d", cmd.Name(), len(args))
		}
		return nil
	}
}

// runHash hashes the built-in content as a blob and prints its id.
func runHash(cmd *cobra.Command, _ []string) error {
	blob, err := objects.NewBlob([]byte(constants.DefaultContent))
	if err != nil {
		return err
	}

	slog.Debug("Computed object id",
		"algorithm", hashing.SHA1,
		"type", blob.Type(),
		"size", blob.Size(),
		"hash", blob.Hash())

	fmt.Fprintln(cmd.OutOrStdout(), blob.Hash())
	return nil
}

// reportError writes a fatal error to w, in red only when w is a terminal.
func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	if isTerminal(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	red.Fprintf(w, "Error: %v", err)
	fmt.Fprintln(w)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
