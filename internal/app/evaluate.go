package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snyk-scan-eval/internal/core"
	"snyk-scan-eval/internal/policies"
	"snyk-scan-eval/internal/types"
)

func (s Service) Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResult, error) {
	format, err := normalizeFormat(req.Format)
	if err != nil {
		return EvaluateResult{}, err
	}
	evaluator, err := newEvaluator(req.MultiProject, req.Strict)
	if err != nil {
		return EvaluateResult{}, err
	}
	if req.ExitCode != nil {
		override := types.CLIExitCode(*req.ExitCode)
		evaluator.ExitCodeOverride = &override
	}
	source, err := s.MetadataSource(req.Prefix, req.CLIVersion, req.RepairVersions)
	if err != nil {
		return EvaluateResult{}, err
	}

	evaluationID := s.NewID()
	logger := log.With().Str("evaluation_id", evaluationID).Logger()
	logger.Debug().Str("input", displayPath(req.InputPath)).Msg("reading cli debug log")

	reader, err := s.Streams.OpenLog(req.InputPath)
	if err != nil {
		return EvaluateResult{}, err
	}
	defer reader.Close()

	doc, err := source.Extract(ctx, reader)
	if err != nil {
		return EvaluateResult{}, err
	}
	result, err := evaluator.Evaluate(ctx, doc)
	if err != nil {
		return EvaluateResult{}, err
	}
	if result.Empty() {
		logger.Warn().Msg("cli metadata incomplete, reporting empty result")
	} else {
		logger.Info().
			Str("status", string(result.Status)).
			Bool("skipped", result.Skipped()).
			Float64("duration_sec", result.DurationSec).
			Msg("scan evaluated")
	}

	if err := s.writeReport(req.OutputPath, format, result); err != nil {
		return EvaluateResult{}, err
	}
	return EvaluateResult{EvaluationID: evaluationID, Result: result}, nil
}

func (s Service) writeReport(path string, format types.OutputFormat, result types.ScanResult) error {
	writer, err := s.Streams.OpenReport(path)
	if err != nil {
		return err
	}
	if err := s.ReportWriter.Write(writer, format, result); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close report").
			WithCause(err)
	}
	return nil
}

func newEvaluator(patterns []string, strict bool) (core.ScanEvaluator, error) {
	policy := policies.DefaultMultiProjectPolicy()
	if len(patterns) > 0 {
		configured, err := policies.NewMultiProjectPolicy(patterns)
		if err != nil {
			return core.ScanEvaluator{}, err
		}
		policy = configured
	}
	return core.NewScanEvaluator(core.NewSequenceReconciler(strict), core.NewDeduplicator(policy)), nil
}

func normalizeFormat(format types.OutputFormat) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", types.OutputFormatJSON:
		return types.OutputFormatJSON, nil
	case types.OutputFormatYAML, "yml":
		return types.OutputFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
}

func displayPath(path string) string {
	if strings.TrimSpace(path) == "" || strings.TrimSpace(path) == "-" {
		return "stdin"
	}
	return path
}
