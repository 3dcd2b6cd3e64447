// Package config loads arbol defaults from configuration files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/arbol/internal/types"
	"github.com/temirov/arbol/internal/utils"
)

const (
	// TabSizeKey configures the indentation width.
	TabSizeKey = "tabsize"
	// MaxLevelKey configures the maximum display depth.
	MaxLevelKey = "max_level"
	// AllKey configures whether hidden entries are listed.
	AllKey = "all"
	// FormatKey configures the output format.
	FormatKey = "format"
	// CopyKey configures whether the output is copied to the clipboard.
	CopyKey = "copy"

	environmentPrefix = "ARBOL"
	defaultConfigType = "yaml"

	errorTabSizeNegative    = "tab size can't be negative"
	errorLevelNegative      = "level depth can't be negative"
	errorTabSizeTooLarge    = "tab size can't exceed %d"
	errorLevelTooLarge      = "level depth can't exceed %d"
	errorUnsupportedFormat  = "unsupported format %q"
	errorConfigurationIsDir = "configuration path %s is a directory"
)

// ErrInvalidConfiguration marks configuration values that cannot be used.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds optional overrides; nil and empty values are unset.
type ApplicationConfiguration struct {
	TabSize  *int   `mapstructure:"tabsize"`
	MaxLevel *int   `mapstructure:"max_level"`
	All      *bool  `mapstructure:"all"`
	Format   string `mapstructure:"format"`
	Copy     *bool  `mapstructure:"copy"`
}

// ResolvedConfiguration is the validated configuration consumed by the CLI.
type ResolvedConfiguration struct {
	Traversal types.TraversalConfig
	Format    string
	Copy      bool
}

// LoadApplicationConfiguration merges the global file, the local or explicit file,
// and ARBOL_* environment variables, later sources overriding earlier ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if globalPath, err := GlobalConfigurationPath(); err == nil {
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	environmentConfig, environmentErr := loadEnvironmentConfiguration()
	if environmentErr != nil {
		return ApplicationConfiguration{}, environmentErr
	}
	return merged.Merge(environmentConfig), nil
}

// GlobalConfigurationPath returns the per-user configuration file location.
func GlobalConfigurationPath() (string, error) {
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if homeDirectory == "" {
		return "", fmt.Errorf("resolve home directory: empty path")
	}
	return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName), nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf(errorConfigurationIsDir, path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		reader.SetConfigType(defaultConfigType)
	}
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("%w: decode configuration from %s: %w", ErrInvalidConfiguration, path, decodeErr)
	}
	return config, nil
}

func loadEnvironmentConfiguration() (ApplicationConfiguration, error) {
	reader := viper.New()
	reader.SetEnvPrefix(environmentPrefix)
	for _, key := range []string{TabSizeKey, MaxLevelKey, AllKey, FormatKey, CopyKey} {
		if bindErr := reader.BindEnv(key); bindErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("bind environment for %s: %w", key, bindErr)
		}
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("%w: decode %s_* environment: %w", ErrInvalidConfiguration, environmentPrefix, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.TabSize != nil {
		result.TabSize = cloneInt(override.TabSize)
	}
	if override.MaxLevel != nil {
		result.MaxLevel = cloneInt(override.MaxLevel)
	}
	if override.All != nil {
		result.All = cloneBool(override.All)
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	return result
}

// Resolve fills unset values with defaults and validates the result.
func (config ApplicationConfiguration) Resolve() (ResolvedConfiguration, error) {
	resolved := ResolvedConfiguration{
		Traversal: types.DefaultTraversalConfig(),
		Format:    types.FormatRaw,
	}
	if config.TabSize != nil {
		if err := ValidateTabSize(*config.TabSize); err != nil {
			return ResolvedConfiguration{}, err
		}
		resolved.Traversal.TabWidth = *config.TabSize
	}
	if config.MaxLevel != nil {
		if err := ValidateMaxLevel(*config.MaxLevel); err != nil {
			return ResolvedConfiguration{}, err
		}
		resolved.Traversal.MaxDepth = *config.MaxLevel
	}
	if config.All != nil {
		resolved.Traversal.IncludeHidden = *config.All
	}
	if config.Format != "" {
		format := strings.ToLower(strings.TrimSpace(config.Format))
		if !IsSupportedFormat(format) {
			return ResolvedConfiguration{}, invalid(errorUnsupportedFormat, config.Format)
		}
		resolved.Format = format
	}
	if config.Copy != nil {
		resolved.Copy = *config.Copy
	}
	return resolved, nil
}

// ValidateTabSize rejects negative and oversized tab sizes.
func ValidateTabSize(value int) error {
	if value < 0 {
		return invalid(errorTabSizeNegative)
	}
	if value > types.MaximumLevelValue {
		return invalid(errorTabSizeTooLarge, types.MaximumLevelValue)
	}
	return nil
}

// ValidateMaxLevel rejects negative and oversized depth limits.
func ValidateMaxLevel(value int) error {
	if value < 0 {
		return invalid(errorLevelNegative)
	}
	if value > types.MaximumLevelValue {
		return invalid(errorLevelTooLarge, types.MaximumLevelValue)
	}
	return nil
}

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

func invalid(format string, arguments ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, arguments...))
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
