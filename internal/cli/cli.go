// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/arbol/internal/commands"
	"github.com/temirov/arbol/internal/config"
	"github.com/temirov/arbol/internal/output"
	"github.com/temirov/arbol/internal/services/clipboard"
	"github.com/temirov/arbol/internal/services/filesystem"
	"github.com/temirov/arbol/internal/types"
	"github.com/temirov/arbol/internal/utils"
)

const (
	tabSizeFlagName      = "tabsize"
	tabSizeShorthand     = "t"
	maxLevelFlagName     = "max_level"
	maxLevelShorthand    = "L"
	allFlagName          = "all"
	allShorthand         = "a"
	formatFlagName       = "format"
	copyFlagName         = "copy"
	configFlagName       = "config"
	initFlagName         = "init"
	forceFlagName        = "force"
	verboseFlagName      = "verbose"
	versionFlagName      = "version"
	versionShorthand     = "v"
	defaultPath          = "./"
	rootUse              = "arbol [paths...]"
	rootShortDescription = "list contents of directories in a tree-like format"
	rootLongDescription  = `arbol lists the contents of each path as an indented tree, followed by
the number of directories and files it visited. The current directory is
listed when no path is given.

Hidden entries (names beginning with a dot) are skipped unless --all is set.
The entries "." and ".." are never listed.`
	rootUsageExample = `  # Two levels deep with narrow indentation
  arbol -L 3 -t 2 ./cmd

  # Include hidden files and emit JSON
  arbol --all --format json .

  # Write a starter configuration file
  arbol --init`

	tabSizeFlagDescription  = "number of characters used at each indentation level, if size <= 1 no graphics are printed"
	maxLevelFlagDescription = "max display depth of the directory tree"
	allFlagDescription      = "list hidden entries too; \".\" and \"..\" are never listed"
	formatFlagDescription   = "output format: raw, json, or xml"
	copyFlagDescription     = "copy the rendered output to the clipboard"
	configFlagDescription   = "configuration file to load instead of ./" + utils.ConfigFileName
	initFlagDescription     = "write a default configuration file (local or global) and exit"
	forceFlagDescription    = "overwrite an existing configuration file with --init"
	verboseFlagDescription  = "log traversal details to stderr"
	versionFlagDescription  = "output version information and exit"

	initNoOptionValue          = string(config.InitTargetLocal)
	configurationWrittenFormat = "configuration written to %s\n"
	errorCopyFormat            = "copy output to clipboard: %w"
	errorLoggerFormat          = "initialize logger: %w"
	logRootDone                = "root traversed"
	logRootField               = "root"
	logDirectoriesField        = "directories"
	logFilesField              = "files"
)

// Execute runs the arbol application.
func Execute() error {
	application := newApplication(os.Stdout, clipboard.NewService())
	rootCommand := application.createRootCommand()
	rootCommand.SetArgs(os.Args[1:])
	return rootCommand.Execute()
}

// application holds the collaborators of one invocation.
type application struct {
	stdout           io.Writer
	copier           clipboard.Copier
	workingDirectory string
}

func newApplication(stdout io.Writer, copier clipboard.Copier) *application {
	return &application{stdout: stdout, copier: copier}
}

// rootOptions stores the values of every root command flag.
type rootOptions struct {
	tabSize       int
	maxLevel      int
	includeHidden bool
	format        string
	copyOutput    bool
	configPath    string
	initTarget    string
	force         bool
	verbose       bool
	showVersion   bool
}

// createRootCommand builds the arbol Cobra command.
func (app *application) createRootCommand() *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, err := fmt.Fprint(app.stdout, utils.FormatVersion())
				return err
			}
			if options.initTarget != "" {
				return app.runInit(options)
			}
			resolved, resolveError := app.resolveConfiguration(command, options)
			if resolveError != nil {
				return resolveError
			}
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}
			return app.runTree(arguments, resolved, options.verbose)
		},
	}
	rootCommand.SetOut(app.stdout)

	flagSet := rootCommand.Flags()
	registerLevelFlag(flagSet, &options.tabSize, tabSizeFlagName, tabSizeShorthand, types.DefaultTabWidth, tabSizeFlagDescription, config.ValidateTabSize)
	registerLevelFlag(flagSet, &options.maxLevel, maxLevelFlagName, maxLevelShorthand, types.DefaultMaxDepth, maxLevelFlagDescription, config.ValidateMaxLevel)
	registerSwitchFlag(flagSet, &options.includeHidden, allFlagName, allShorthand, false, allFlagDescription)
	flagSet.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerSwitchFlag(flagSet, &options.copyOutput, copyFlagName, "", false, copyFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.initTarget, initFlagName, "", initFlagDescription)
	flagSet.Lookup(initFlagName).NoOptDefVal = initNoOptionValue
	registerSwitchFlag(flagSet, &options.force, forceFlagName, "", false, forceFlagDescription)
	registerSwitchFlag(flagSet, &options.verbose, verboseFlagName, "", false, verboseFlagDescription)
	registerSwitchFlag(flagSet, &options.showVersion, versionFlagName, versionShorthand, false, versionFlagDescription)
	return rootCommand
}

// resolveConfiguration layers explicitly set flags over the configuration files.
func (app *application) resolveConfiguration(command *cobra.Command, options rootOptions) (config.ResolvedConfiguration, error) {
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: app.workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return config.ResolvedConfiguration{}, loadError
	}

	var flagOverrides config.ApplicationConfiguration
	flags := command.Flags()
	if flags.Changed(tabSizeFlagName) {
		flagOverrides.TabSize = &options.tabSize
	}
	if flags.Changed(maxLevelFlagName) {
		flagOverrides.MaxLevel = &options.maxLevel
	}
	if flags.Changed(allFlagName) {
		flagOverrides.All = &options.includeHidden
	}
	if flags.Changed(formatFlagName) {
		flagOverrides.Format = strings.ToLower(options.format)
		if !config.IsSupportedFormat(flagOverrides.Format) {
			return config.ResolvedConfiguration{}, fmt.Errorf("%w: unsupported format %q", config.ErrInvalidConfiguration, options.format)
		}
	}
	if flags.Changed(copyFlagName) {
		flagOverrides.Copy = &options.copyOutput
	}
	return loaded.Merge(flagOverrides).Resolve()
}

func (app *application) runInit(options rootOptions) error {
	writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTarget(strings.ToLower(options.initTarget)),
		Force:            options.force,
		WorkingDirectory: app.workingDirectory,
	})
	if initError != nil {
		return initError
	}
	_, err := fmt.Fprintf(app.stdout, configurationWrittenFormat, writtenPath)
	return err
}

// runTree renders every root in order; a root that cannot be listed still gets its
// summary line and does not stop the remaining roots.
func (app *application) runTree(roots []string, resolved config.ResolvedConfiguration, verbose bool) error {
	logger, loggerError := utils.NewApplicationLogger(verbose)
	if loggerError != nil {
		return fmt.Errorf(errorLoggerFormat, loggerError)
	}
	defer func() { _ = logger.Sync() }()

	var copied bytes.Buffer
	writer := app.stdout
	if resolved.Copy {
		writer = io.MultiWriter(app.stdout, &copied)
	}

	renderer, rendererError := output.NewRenderer(resolved.Format, writer)
	if rendererError != nil {
		return rendererError
	}

	fileSystem := filesystem.NewOSService()
	walker := commands.NewTreeWalker(commands.TreeWalkerOptions{
		Reader: fileSystem,
		Prober: fileSystem,
		Config: resolved.Traversal,
		Logger: logger,
	})

	for _, root := range roots {
		rootPath := utils.EnsureTrailingSeparator(root)
		if err := renderer.Begin(rootPath); err != nil {
			return err
		}
		counters, walkError := walker.Walk(rootPath, renderer)
		if walkError != nil {
			return walkError
		}
		if err := renderer.End(counters); err != nil {
			return err
		}
		logger.Debug(logRootDone, zap.String(logRootField, rootPath), zap.Int(logDirectoriesField, counters.Directories), zap.Int(logFilesField, counters.Files))
	}

	if err := renderer.Flush(); err != nil {
		return err
	}
	if resolved.Copy && app.copier != nil {
		if copyError := app.copier.Copy(copied.String()); copyError != nil {
			return fmt.Errorf(errorCopyFormat, copyError)
		}
	}
	return nil
}
