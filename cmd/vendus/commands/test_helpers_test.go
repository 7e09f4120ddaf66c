package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newTestRoot resets viper, points it at baseURL and mounts cmds under a
// root command writing to buffers.
func newTestRoot(t *testing.T, baseURL string, cmds ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(apiKeyKey, "test-key")
	viper.Set(baseURLKey, baseURL)
	viper.Set(outputKey, "table")

	root := &cobra.Command{
		Use:           "vendus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(cmds...)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root, stdout, stderr
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}
