package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snyk-scan-eval/internal/adapters"
	"snyk-scan-eval/internal/app"
	"snyk-scan-eval/internal/policies"
	"snyk-scan-eval/internal/types"
)

type evaluateOptions struct {
	Input          string
	Output         string
	Format         string
	Prefix         string
	ExitCode       int
	CLIVersion     string
	RepairVersions string
	MultiProject   []string
	Strict         bool
}

func newEvaluateCommand() *cobra.Command {
	opts := evaluateOptions{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a snyk test --all-projects --debug log",
		Long: "Reads the debug log of `snyk test --all-projects --debug` from --input or stdin,\n" +
			"locates the analytics metadata line and reports which manifests were scanned\n" +
			"or skipped, the overall scan status and its duration.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Input, "input", "", "Debug log path (default stdin)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Report path (default stdout)")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatJSON), "Report format (json, yaml)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", adapters.DefaultAnalyticsPrefix, "Marker preceding the analytics metadata json")
	cmd.Flags().IntVar(&opts.ExitCode, "exit-code", -1, "CLI exit code overriding the one in the metadata")
	cmd.Flags().StringVar(&opts.CLIVersion, "cli-version", "", "Version of the snyk CLI that produced the log")
	cmd.Flags().StringVar(&opts.RepairVersions, "repair-versions", adapters.DefaultRepairVersions, "PEP 440 specifier of CLI versions whose truncated metadata is repaired")
	cmd.Flags().StringSliceVar(&opts.MultiProject, "multi-project", policies.DefaultMultiProjectPatterns, "Package managers that may report several projects per manifest")
	cmd.Flags().BoolVar(&opts.Strict, "strict-subsequence", true, "Fail when scanned package managers are out of declared order")

	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("analytics_prefix", cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("exit_code", cmd.Flags().Lookup("exit-code"))
	_ = viper.BindPFlag("cli_version", cmd.Flags().Lookup("cli-version"))
	_ = viper.BindPFlag("repair_versions", cmd.Flags().Lookup("repair-versions"))
	_ = viper.BindPFlag("multi_project", cmd.Flags().Lookup("multi-project"))
	_ = viper.BindPFlag("strict_subsequence", cmd.Flags().Lookup("strict-subsequence"))

	return cmd
}

func runEvaluate(ctx context.Context, cmd *cobra.Command, opts evaluateOptions) error {
	req := app.EvaluateRequest{
		InputPath:      resolveString(cmd, opts.Input, "input", "input"),
		OutputPath:     resolveString(cmd, opts.Output, "output", "output"),
		Format:         types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
		Prefix:         resolveString(cmd, opts.Prefix, "analytics_prefix", "prefix"),
		CLIVersion:     resolveString(cmd, opts.CLIVersion, "cli_version", "cli-version"),
		RepairVersions: resolveString(cmd, opts.RepairVersions, "repair_versions", "repair-versions"),
		MultiProject:   resolveStrings(cmd, opts.MultiProject, "multi_project", "multi-project"),
		Strict:         resolveBool(cmd, opts.Strict, "strict_subsequence", "strict-subsequence"),
	}
	if exitCode := resolveInt(cmd, opts.ExitCode, "exit_code", "exit-code"); exitCode >= 0 {
		req.ExitCode = &exitCode
	}
	_, err := newAppService().Evaluate(ctx, req)
	return err
}
