package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Vendus API key",
		Long:  "Prompt for an API key, verify it by listing units and save it to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				prompted, err := promptAPIKey(cmd)
				if err != nil {
					return err
				}

				apiKey = prompted
			}

			return runLogin(cmd, strings.TrimSpace(apiKey))
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, apiKey string) error {
	if apiKey == "" {
		return constants.ErrEmptyAPIKey
	}

	api, err := newClient(apiKey)
	if err != nil {
		return err
	}

	_, err = api.Units().Get(commandContext(cmd), nil)
	if err != nil {
		return fmt.Errorf("verifying API key: %w", reportAPIErrors(cmd, api, err))
	}

	path, err := configFilePath()
	if err != nil {
		return err
	}

	config, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	config.APIKey = apiKey

	err = saveConfigStruct(path, config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "API key verified and saved to %s\n", path)

	return nil
}

// promptAPIKey reads the key without echo when stdin is a terminal.
func promptAPIKey(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) { //nolint:gosec // fd fits in int
		key, err := term.ReadPassword(int(file.Fd())) //nolint:gosec // fd fits in int
		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(key), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return line, nil
}
