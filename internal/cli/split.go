package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gluefinance/parse-schema/internal/checksum"
	"github.com/gluefinance/parse-schema/internal/config"
	"github.com/gluefinance/parse-schema/internal/export"
	"github.com/gluefinance/parse-schema/internal/files/filesystem"
	"github.com/gluefinance/parse-schema/internal/logging"
	"github.com/gluefinance/parse-schema/internal/parser"
	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// Environment variable overrides. Flags win over these, these win over
// parse-schema.yaml.
const (
	envOutput  = "PARSE_SCHEMA_OUTPUT"
	envVerbose = "PARSE_SCHEMA_VERBOSE"
)

func runSplit(cmd *cobra.Command, args []string) error {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	verbose := resolveVerbose(cmd, projectCfg)
	logger := logging.NewConsoleLogger(verbose)

	dumpPath := args[0]
	outputDir := resolveOutputDir(args, projectCfg)

	logger.Verbose("reading %s", dumpPath)
	dump, err := os.ReadFile(dumpPath)
	if err != nil {
		return fmt.Errorf("failed to read dump file %s: %v: %w", dumpPath, err, parseschema.ErrFilesystem)
	}

	result, err := parser.NewPipeline(checksum.New(), logger).Split(string(dump))
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	exporter := export.NewExporter(
		filesystem.NewOSFileSystem(),
		checksum.New(),
		logger,
		resolveProgressWriter(cmd, projectCfg),
	)
	exported, err := exporter.Export(outputDir, result.Records)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	printSummary(cmd.OutOrStdout(), outputDir, exported)
	return nil
}

// resolveVerbose applies the flag > environment > parse-schema.yaml
// precedence for verbose output.
func resolveVerbose(cmd *cobra.Command, projectCfg *config.ProjectConfig) bool {
	if getVerboseFlag(cmd) {
		return true
	}
	if os.Getenv(envVerbose) == "1" || os.Getenv(envVerbose) == "true" {
		return true
	}
	return projectCfg != nil && projectCfg.Verbose
}

// resolveOutputDir applies the argument > environment >
// parse-schema.yaml > default precedence for the output root.
func resolveOutputDir(args []string, projectCfg *config.ProjectConfig) string {
	if len(args) > 1 {
		return args[1]
	}
	if dir := os.Getenv(envOutput); dir != "" {
		return dir
	}
	if projectCfg != nil && projectCfg.Output != "" {
		return projectCfg.Output
	}
	return parseschema.DefaultOutputDir
}

// resolveProgressWriter returns the writer the export progress bar
// renders to, or nil when the bar is disabled.
func resolveProgressWriter(cmd *cobra.Command, projectCfg *config.ProjectConfig) io.Writer {
	if disabled, err := cmd.Flags().GetBool("no-progress"); err == nil && disabled {
		return nil
	}
	if projectCfg != nil && projectCfg.Progress != nil && !*projectCfg.Progress {
		return nil
	}
	return os.Stderr
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if parse-schema.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}
