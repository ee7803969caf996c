package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kjet-tools/kjet-recon/internal/config"
	"github.com/kjet-tools/kjet-recon/internal/dataset"
	"github.com/kjet-tools/kjet-recon/internal/identity"
	"github.com/kjet-tools/kjet-recon/internal/reconcile"
	"github.com/kjet-tools/kjet-recon/internal/report"
	"github.com/kjet-tools/kjet-recon/internal/server"
	"github.com/kjet-tools/kjet-recon/pkg/schema"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

const (
	exitSchemaFail = 3
)

type cliError struct {
	code int
	err  error
}

func (e cliError) Error() string { return e.err.Error() }

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		var ce cliError
		if errors.As(err, &ce) {
			fmt.Fprintln(os.Stderr, ce.err)
			os.Exit(ce.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose, quiet bool
	root := &cobra.Command{
		Use:   "kjetrecon",
		Short: "Reconcile KJET human and automated application evaluations",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if quiet {
				level = zerolog.WarnLevel
			}
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "warnings and errors only")
	root.AddCommand(newInitCommand())
	root.AddCommand(newCountiesCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newReconcileCommand())
	root.AddCommand(newReportCommand())
	root.AddCommand(newServeCommand())
	return root
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize kjetrecon configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !fileExists("kjetrecon.yaml") {
				if err := os.WriteFile("kjetrecon.yaml", []byte(defaultConfigYAML), 0o644); err != nil {
					return err
				}
			}
			if !fileExists("county_aliases.yaml") {
				if err := os.WriteFile("county_aliases.yaml", []byte(defaultAliasesYAML), 0o644); err != nil {
					return err
				}
			}
			fmt.Println("initialized kjetrecon config and county alias table")
			return nil
		},
	}
}

func newCountiesCommand() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "counties",
		Short: "List counties with an automated payload",
		RunE: func(c *cobra.Command, _ []string) error {
			proj := loadProject(cfgPath)
			src := payloadSource(proj)
			lister, ok := src.(dataset.CountyLister)
			if !ok {
				return fmt.Errorf("source does not support county listing")
			}
			counties, err := lister.Counties(c.Context())
			if err != nil {
				return err
			}
			for _, county := range counties {
				fmt.Println(county)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "kjetrecon.yaml", "project config path")
	return cmd
}

func newValidateCommand() *cobra.Command {
	var cfgPath, payloadPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a county payload against the report schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			if payloadPath == "" {
				return fmt.Errorf("--payload is required")
			}
			proj := loadProject(cfgPath)
			raw, err := os.ReadFile(payloadPath)
			if err != nil {
				return err
			}
			// Legacy payloads are folded into the unified shape first; the
			// schema describes only the shape the engine consumes.
			countyReport, err := dataset.DecodeCountyReport(raw)
			if err != nil {
				return cliError{code: exitSchemaFail, err: err}
			}
			violations, err := schema.Validate(filepath.Join(proj.SchemaDir, "county-report.schema.json"), countyReport)
			if err != nil {
				return err
			}
			if len(violations) > 0 {
				for _, v := range violations {
					fmt.Println(v)
				}
				return cliError{code: exitSchemaFail, err: fmt.Errorf("payload failed schema validation")}
			}
			fmt.Println("payload is valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "kjetrecon.yaml", "project config path")
	cmd.Flags().StringVar(&payloadPath, "payload", "", "county payload JSON path")
	return cmd
}

func newReconcileCommand() *cobra.Command {
	var cfgPath, county, format, outDir string
	var all bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile human and automated evaluations for one or all counties",
		RunE: func(c *cobra.Command, _ []string) error {
			if county == "" && !all {
				return fmt.Errorf("--county or --all is required")
			}
			proj := loadProject(cfgPath)
			if outDir == "" {
				outDir = proj.OutDir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			humans, humanDigest, err := dataset.LoadHumanRecords(proj.HumanExport)
			if err != nil {
				return err
			}
			aliases := countyAliases(proj)
			src := payloadSource(proj)

			counties := []string{county}
			if all {
				lister, ok := src.(dataset.CountyLister)
				if !ok {
					return fmt.Errorf("source does not support county listing")
				}
				if counties, err = lister.Counties(c.Context()); err != nil {
					return err
				}
			}

			for _, name := range counties {
				countyReport, payloadDigest, err := src.Fetch(c.Context(), name)
				if err != nil {
					log.Error().Str("county", name).Err(err).Msg("payload fetch failed, reconciling without it")
					countyReport, payloadDigest = nil, nil
				}
				digests := []types.InputDigest{humanDigest}
				if payloadDigest != nil {
					digests = append(digests, *payloadDigest)
				}
				result := reconcile.Run(reconcile.Inputs{
					County:  name,
					Humans:  humans,
					Report:  countyReport,
					Aliases: aliases,
					Digests: digests,
				})
				for _, w := range result.Warnings {
					log.Warn().Str("county", name).Msg(w)
				}
				paths, err := writeResult(outDir, format, result)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Println(p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "kjetrecon.yaml", "project config path")
	cmd.Flags().StringVar(&county, "county", "", "county to reconcile")
	cmd.Flags().BoolVar(&all, "all", false, "reconcile every county the source serves")
	cmd.Flags().StringVar(&format, "format", "json", "output format (json|md|both)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	return cmd
}

func newReportCommand() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate markdown report from a saved comparison JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			if inPath == "" || outPath == "" {
				return fmt.Errorf("--in and --out are required")
			}
			raw, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			var result types.CountyComparisonResult
			if err := json.Unmarshal(raw, &result); err != nil {
				return err
			}
			if err := report.WriteMarkdown(outPath, result); err != nil {
				return err
			}
			fmt.Println(outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "comparison JSON input")
	cmd.Flags().StringVar(&outPath, "out", "", "markdown output")
	return cmd
}

func newServeCommand() *cobra.Command {
	var cfgPath string
	var port, cacheTTL int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve per-county comparisons over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			proj := loadProject(cfgPath)
			humans, humanDigest, err := dataset.LoadHumanRecords(proj.HumanExport)
			if err != nil {
				return err
			}
			srv := server.New(
				server.Config{Port: port, CacheTTLSeconds: cacheTTL},
				humans, humanDigest, payloadSource(proj), countyAliases(proj),
			)
			addr := fmt.Sprintf(":%d", port)
			log.Info().Str("addr", addr).Msg("comparison API listening")
			return http.ListenAndServe(addr, srv.Handler())
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "kjetrecon.yaml", "project config path")
	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	cmd.Flags().IntVar(&cacheTTL, "cache-ttl-seconds", 300, "comparison cache TTL in seconds")
	return cmd
}

func loadProject(path string) config.Project {
	if !fileExists(path) {
		return config.Default()
	}
	proj, err := config.Load(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("unreadable config, using defaults")
		return config.Default()
	}
	return proj
}

func payloadSource(proj config.Project) dataset.Source {
	if proj.PayloadBaseURL != "" {
		return dataset.HTTPSource{BaseURL: proj.PayloadBaseURL}
	}
	return dataset.LocalSource{Dir: proj.PayloadDir}
}

func countyAliases(proj config.Project) *identity.Aliases {
	if proj.CountyAliases == "" {
		return identity.DefaultAliases()
	}
	aliases, err := identity.LoadAliases(proj.CountyAliases)
	if err != nil {
		log.Warn().Str("path", proj.CountyAliases).Err(err).Msg("unreadable alias table, using defaults")
		return identity.DefaultAliases()
	}
	return aliases
}

func writeResult(outDir, format string, result types.CountyComparisonResult) ([]string, error) {
	base := filepath.Join(outDir, resultFileName(result.County))
	var paths []string
	if format == "json" || format == "both" {
		p := base + ".json"
		if err := report.WriteJSON(p, result); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if format == "md" || format == "both" {
		p := base + ".md"
		if err := report.WriteMarkdown(p, result); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if paths == nil {
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	return paths, nil
}

func resultFileName(county string) string {
	name := identity.NormalizeCounty(county)
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "county"
	}
	return "comparison_" + name
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

const defaultConfigYAML = `human_export: data/kjet-human-final.json
payload_dir: data/gemini
# payload_base_url: https://example.org/latest/gemini
county_aliases: county_aliases.yaml
out_dir: out
schema_dir: schemas/v1
`

const defaultAliasesYAML = `aliases:
  Elgeyo-Marakwet: Elgeiyo Marakwet
  "Nairobi .": Nairobi
  Mgori: Migori
  N/A: Unknown
`
