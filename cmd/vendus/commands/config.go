package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/codetech/vendus-go/pkg/vendusclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration.
type Config struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
	Verbose bool   `json:"verbose,omitempty"  yaml:"verbose,omitempty"`
	Timeout string `json:"timeout,omitempty"  yaml:"timeout,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the vendus config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskAPIKey(config.APIKey)

			out := cmd.OutOrStdout()

			return renderOutput(out, config, func() error {
				return displayConfigTable(out, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api_key, base_url, output, verbose or timeout in the config file",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := loadConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(path, config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			value := args[1]
			if args[0] == apiKeyKey {
				value = maskAPIKey(value)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], value, path)

			return nil
		},
	}
}

// loadConfig returns the effective configuration.
func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString(apiKeyKey),
		BaseURL: viper.GetString(baseURLKey),
		Output:  viper.GetString(outputKey),
		Verbose: viper.GetBool(verboseKey),
		Timeout: viper.GetDuration(timeoutKey).String(),
	}
}

// configFilePath returns the config file in use, or ~/.vendus/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".vendus", "config.yml"), nil
}

// loadConfigFile reads only what is stored in the file. A missing file
// yields an empty config.
func loadConfigFile(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the CLI's own config file
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setConfigValue validates and applies one key.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case apiKeyKey:
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case baseURLKey:
		config.BaseURL = value
	case outputKey:
		err := ValidateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	case verboseKey:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.Verbose = verbose
	case timeoutKey:
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.Timeout = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return renderTable(w, []string{"Property", "Value"}, [][]string{
		{"API Key", valueOrNA(config.APIKey)},
		{"Base URL", baseURL},
		{"Output", valueOrNA(config.Output)},
		{"Verbose", strconv.FormatBool(config.Verbose)},
		{"Timeout", config.Timeout},
		{"Config File", valueOrNA(viper.ConfigFileUsed())},
	})
}

// maskAPIKey keeps the last four characters of the key.
func maskAPIKey(apiKey string) string {
	const visible = 4

	if len(apiKey) <= visible {
		if apiKey == "" {
			return ""
		}

		return constants.RedactedValue
	}

	return constants.RedactedValue + apiKey[len(apiKey)-visible:]
}

// CreateClient creates a Vendus client from the effective configuration.
func CreateClient() (vendus.API, error) {
	apiKey := viper.GetString(apiKeyKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	return newClient(apiKey)
}

func newClient(apiKey string) (vendus.API, error) {
	verbose := viper.GetBool(verboseKey)

	api, err := vendusclient.New(&vendus.Config{
		APIKey:      apiKey,
		BaseURL:     viper.GetString(baseURLKey),
		HTTPTimeout: viper.GetDuration(timeoutKey),
		Debug:       verbose,
		Logger:      newLogger(os.Stderr, verbose),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Vendus client: %w", err)
	}

	return api, nil
}
