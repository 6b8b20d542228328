package cli

import (
	"context"

	"github.com/spf13/cobra"

	"snyk-scan-eval/internal/app"
	"snyk-scan-eval/internal/policies"
	"snyk-scan-eval/internal/types"
)

type reconcileOptions struct {
	PackageManagers string
	TargetFiles     string
	Scanned         string
	ScannedProjects int
	MultiProject    []string
	Strict          bool
	Output          string
	Format          string
}

func newReconcileCommand() *cobra.Command {
	opts := reconcileOptions{}
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Classify manifests from raw package manager and target file lists",
		Example: `  snyk-scan-eval reconcile \
    --package-managers "[npm pip gradle]" \
    --target-files "[a/package.json b/requirements.txt c/build.gradle]" \
    --scanned "[npm gradle]"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReconcile(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.PackageManagers, "package-managers", "", "Declared package managers, bracket encoded")
	cmd.Flags().StringVar(&opts.TargetFiles, "target-files", "", "Declared target files, bracket encoded")
	cmd.Flags().StringVar(&opts.Scanned, "scanned", "", "Scanned package managers, bracket encoded")
	cmd.Flags().IntVar(&opts.ScannedProjects, "scanned-projects", 0, "Number of scanned projects reported by the CLI")
	cmd.Flags().StringSliceVar(&opts.MultiProject, "multi-project", policies.DefaultMultiProjectPatterns, "Package managers that may report several projects per manifest")
	cmd.Flags().BoolVar(&opts.Strict, "strict-subsequence", true, "Fail when scanned package managers are out of declared order")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Report path (default stdout)")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatJSON), "Report format (json, yaml)")
	_ = cmd.MarkFlagRequired("package-managers")
	_ = cmd.MarkFlagRequired("target-files")

	return cmd
}

func runReconcile(ctx context.Context, cmd *cobra.Command, opts reconcileOptions) error {
	_, err := newAppService().Reconcile(ctx, app.ReconcileRequest{
		PackageManagers: opts.PackageManagers,
		TargetFiles:     opts.TargetFiles,
		Scanned:         opts.Scanned,
		ScannedProjects: opts.ScannedProjects,
		MultiProject:    resolveStrings(cmd, opts.MultiProject, "multi_project", "multi-project"),
		Strict:          resolveBool(cmd, opts.Strict, "strict_subsequence", "strict-subsequence"),
		OutputPath:      opts.Output,
		Format:          types.OutputFormat(opts.Format),
	})
	return err
}
