package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/config"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/engine"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/gitinfo"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/history"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/i18n"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/logging"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/sourceset"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/tui"
	"github.com/fnwatchdog/fnwatchdog/internal/application"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	path            string
	definitions     []string
	placeholders    map[string]string
	roots           []string
	failOnViolation bool
	sourceSet       string
	parallel        int
	lang            string
	jsonOutput      bool
	verbose         bool
	logFormat       string
	record          bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check source roots against the naming conventions",
		Long: "Load the naming convention definitions, check every configured source root " +
			"and fail when a package or file violates them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.path, "path", ".", "Project path to check")
	f.StringArrayVar(&opts.definitions, "definition", nil, "Convention definition file (repeatable, overrides definition_sources)")
	f.StringToStringVar(&opts.placeholders, "placeholder", nil, "Placeholder value as name=value (repeatable)")
	f.StringArrayVar(&opts.roots, "root", nil, "Source root to scan (repeatable, overrides scan_roots)")
	f.BoolVar(&opts.failOnViolation, "fail-on-violation", true, "Exit with an error when violations are found")
	f.StringVar(&opts.sourceSet, "source-set", "", "Source set whose directories are scanned by default")
	f.IntVar(&opts.parallel, "parallel", 0, "Number of source roots checked concurrently")
	f.StringVar(&opts.lang, "lang", "", "Message language (en, de)")
	f.BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug entries")
	f.StringVar(&opts.logFormat, "log-format", string(logging.FormatText), "Log format (text, logfmt, json)")
	f.BoolVar(&opts.record, "record", false, "Append the run to the project history")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Verbose: opts.verbose,
		Format:  logging.Format(opts.logFormat),
	})
	if err != nil {
		return err
	}

	fileCfg, err := config.New().Load(opts.path)
	if err != nil {
		return localizeConfigError(err, i18n.New(opts.lang))
	}

	override, err := opts.overrides(cmd)
	if err != nil {
		return err
	}
	cfg := config.Merge(fileCfg, override)

	tr := i18n.New(cfg.Locale)
	svc := application.NewRunService(sourceset.New(), engine.Factory, tr, logger, gitinfo.New())

	result, runErr := svc.Run(cmd.Context(), opts.path, cfg)
	if result == nil {
		return runErr
	}

	if opts.record {
		entry := result.Entry(time.Now().UTC().Format(time.RFC3339))
		if err := history.New().Save(opts.path, entry); err != nil {
			logger.Warn("recording run failed", "err", err)
		}
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunResult(result))
	}

	return runErr
}

// overrides turns the flags the user actually set into a config overlay.
// Paths given on the command line are relative to the working directory.
func (o *checkOptions) overrides(cmd *cobra.Command) (domain.ProjectConfig, error) {
	var cfg domain.ProjectConfig
	flags := cmd.Flags()

	if flags.Changed("definition") {
		sources, err := absPaths(o.definitions)
		if err != nil {
			return cfg, err
		}
		cfg.DefinitionSources = sources
	}
	if flags.Changed("root") {
		roots, err := absPaths(o.roots)
		if err != nil {
			return cfg, err
		}
		cfg.ScanRoots = roots
	}
	if flags.Changed("fail-on-violation") {
		fail := o.failOnViolation
		cfg.FailOnViolation = &fail
	}
	cfg.Placeholders = o.placeholders
	cfg.SourceSet = o.sourceSet
	cfg.Parallelism = o.parallel
	cfg.Locale = o.lang

	if err := cfg.Validate(); err != nil {
		return cfg, &domain.ConfigError{Kind: domain.InvalidConfig, Message: "invalid flags", Err: err}
	}
	return cfg, nil
}

func absPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		out = append(out, abs)
	}
	return out, nil
}

func localizeConfigError(err error, tr domain.Translator) error {
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Kind == domain.InvalidConfig {
		cfgErr.Message = tr.Translate(domain.BundleErrors, domain.MsgInvalidConfig, domain.ConfigFileName)
	}
	return err
}
