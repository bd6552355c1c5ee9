package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
	"github.com/diillson/dell-inventory-report-go/internal/domain/repository"
	"github.com/diillson/dell-inventory-report-go/internal/shared/types"
)

// DellRepositoryFactory builds the Dell client once the configuration is resolved.
type DellRepositoryFactory func(cfg types.Config) repository.DellRepository

// InventoryUseCase handles the inventory report run.
type InventoryUseCase struct {
	newDellRepo DellRepositoryFactory
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	tagRepo     repository.TagRepository
	awsRepo     repository.AWSRepository
	console     types.ConsoleInterface

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewInventoryUseCase creates a new inventory use case.
func NewInventoryUseCase(
	newDellRepo DellRepositoryFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	tagRepo repository.TagRepository,
	awsRepo repository.AWSRepository,
	console types.ConsoleInterface,
) *InventoryUseCase {
	return &InventoryUseCase{
		newDellRepo: newDellRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		tagRepo:     tagRepo,
		awsRepo:     awsRepo,
		console:     console,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

// ResolveConfig monta a configuração final: arquivo, depois ambiente, depois flags.
func (uc *InventoryUseCase) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := uc.configRepo.LoadEnv(args.EnvFile, cfg); err != nil {
		return nil, err
	}

	applyArgs(cfg, args)
	cfg.ApplyDefaults()

	if len(cfg.ReportType) == 0 {
		cfg.ReportType = []string{"csv"}
	}

	if cfg.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.Dir = cwd
	}

	return cfg, nil
}

func applyArgs(cfg *types.Config, args *types.CLIArgs) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setString(&cfg.ClientID, args.ClientID)
	setString(&cfg.ClientSecret, args.ClientSecret)
	setString(&cfg.TagsFile, args.TagsFile)
	setString(&cfg.Dir, args.Dir)
	setString(&cfg.ReportName, args.ReportName)
	setString(&cfg.FailedLog, args.FailedLog)
	setString(&cfg.TokenURL, args.TokenURL)
	setString(&cfg.ComponentsURL, args.ComponentsURL)
	setString(&cfg.EntitlementsURL, args.EntitlementsURL)
	setString(&cfg.S3Bucket, args.S3Bucket)
	setString(&cfg.S3Prefix, args.S3Prefix)
	setString(&cfg.AWSProfile, args.AWSProfile)
	setString(&cfg.LogGroup, args.LogGroup)

	cfg.ServiceTags = append(cfg.ServiceTags, args.Tags...)

	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Delay != nil {
		ms := int(args.Delay.Milliseconds())
		cfg.DelayMillis = &ms
	}
	if args.Timeout != nil {
		ms := int(args.Timeout.Milliseconds())
		cfg.TimeoutMillis = &ms
	}
}

// LoadServiceTags junta as tags da configuração e do arquivo de tags, sem duplicatas.
func (uc *InventoryUseCase) LoadServiceTags(cfg *types.Config) ([]string, error) {
	tags := append([]string{}, cfg.ServiceTags...)
	if cfg.TagsFile != "" {
		fromFile, err := uc.tagRepo.LoadTags(cfg.TagsFile)
		if err != nil {
			return nil, err
		}
		tags = append(tags, fromFile...)
	}
	return normalizeTags(tags), nil
}

// normalizeTags trims every tag, drops empty ones and removes duplicates
// keeping the first occurrence.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

// FetchAsset consulta os dois endpoints para a tag. Os dois são sempre
// chamados, mesmo que o primeiro falhe, para que cada falha seja registrada.
func (uc *InventoryUseCase) FetchAsset(ctx context.Context, dell repository.DellRepository, token, tag string) entity.AssetResult {
	result := entity.AssetResult{Tag: tag}

	components, err := dell.GetAssetComponents(ctx, token, tag)
	if err != nil {
		result.Errors = append(result.Errors, err)
	} else {
		result.Components = components
	}

	entitlements, err := dell.GetAssetEntitlements(ctx, token, tag)
	if err != nil {
		result.Errors = append(result.Errors, err)
	} else {
		result.Entitlements = entitlements
	}

	return result
}

// RunInventory executa o relatório completo.
func (uc *InventoryUseCase) RunInventory(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return types.ErrMissingCredentials
	}

	tags, err := uc.LoadServiceTags(cfg)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return types.ErrNoServiceTags
	}

	if cfg.S3Bucket != "" || cfg.LogGroup != "" {
		accountID, err := uc.awsRepo.GetAccountID(ctx, cfg.AWSProfile)
		if err != nil {
			return err
		}
		uc.console.LogInfo("Publishing results with AWS account %s", accountID)
	}

	dell := uc.newDellRepo(*cfg)

	status := uc.console.Status("Getting new access token...")
	token, err := dell.GetAccessToken(ctx)
	status.Stop()
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	uc.console.LogSuccess("Access token received.")

	startedAt := uc.now().UTC()
	summary, rows, failures, err := uc.writeReport(ctx, cfg, dell, token, tags, startedAt)
	if err != nil {
		return err
	}

	summary.ExportedPaths = uc.exportReports(cfg, rows)

	if cfg.S3Bucket != "" {
		uc.uploadArtifacts(ctx, cfg, startedAt, summary)
	}
	if cfg.LogGroup != "" {
		uc.shipFailures(ctx, cfg, startedAt, failures)
	}

	uc.displaySummary(rows, summary)
	uc.console.LogSuccess("Success! Summary inventory report saved to: %s", summary.ReportPath)

	return nil
}

// writeReport mantém o CSV e o log de falhas abertos durante o loop e os
// fecha em qualquer caminho de saída.
func (uc *InventoryUseCase) writeReport(
	ctx context.Context,
	cfg *types.Config,
	dell repository.DellRepository,
	token string,
	tags []string,
	now time.Time,
) (summary entity.RunSummary, rows []entity.SummaryRow, failures []entity.FailureRecord, err error) {
	sink, err := uc.exportRepo.OpenCSVReport(filepath.Join(cfg.Dir, cfg.ReportName+".csv"))
	if err != nil {
		return summary, nil, nil, err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	failedPath := cfg.FailedLog
	if !filepath.IsAbs(failedPath) {
		failedPath = filepath.Join(cfg.Dir, failedPath)
	}
	failLog, err := uc.exportRepo.OpenFailureLog(failedPath)
	if err != nil {
		return summary, nil, nil, err
	}
	defer func() {
		if cerr := failLog.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	summary = entity.RunSummary{
		TotalTags:     len(tags),
		ReportPath:    sink.Path(),
		FailedLogPath: failLog.Path(),
	}
	rows = []entity.SummaryRow{}

	uc.console.LogInfo("Processing %d tags...", len(tags))
	progress := uc.console.Progress(tags)
	defer progress.Stop()

	delay := cfg.Delay()
	for _, tag := range tags {
		if ctx.Err() != nil {
			return summary, rows, failures, ctx.Err()
		}

		result := uc.FetchAsset(ctx, dell, token, tag)
		// Uma chamada interrompida pelo cancelamento não é falha da tag.
		if ctx.Err() != nil {
			return summary, rows, failures, ctx.Err()
		}
		for _, fetchErr := range result.Errors {
			failure := uc.failureFor(tag, fetchErr, now)
			uc.console.LogWarning("%s", fetchErr)
			if err := failLog.Record(failure); err != nil {
				uc.console.LogError("Failed to write failure log: %s", err)
			}
			failures = append(failures, failure)
		}

		row, buildErr := BuildSummaryRow(result, now)
		switch {
		case buildErr == nil:
			if err := sink.WriteRow(row); err != nil {
				return summary, rows, failures, err
			}
			rows = append(rows, row)
			summary.Processed++
		case errors.Is(buildErr, types.ErrEmptyEntitlements), errors.Is(buildErr, types.ErrMissingComponents):
			uc.console.LogWarning("Skipping tag %s: %s", tag, buildErr)
			summary.Skipped++
			summary.SkippedTags = append(summary.SkippedTags, tag)
		default:
			uc.console.LogWarning("Skipping tag %s due to failed API call.", tag)
			summary.Skipped++
			summary.SkippedTags = append(summary.SkippedTags, tag)
		}

		progress.Increment()

		if delay > 0 {
			if err := uc.sleep(ctx, delay); err != nil {
				return summary, rows, failures, err
			}
		}
	}

	return summary, rows, failures, nil
}

// failureFor converte o erro de uma chamada em um registro do log de falhas.
func (uc *InventoryUseCase) failureFor(tag string, err error, now time.Time) entity.FailureRecord {
	failure := entity.FailureRecord{
		Tag:      tag,
		Reason:   err.Error(),
		FailedAt: now,
	}

	var fetchErr *entity.FetchError
	if errors.As(err, &fetchErr) {
		failure.URL = fetchErr.URL
		failure.Kind = fetchErr.Kind
	}
	return failure
}

func (uc *InventoryUseCase) exportReports(cfg *types.Config, rows []entity.SummaryRow) []string {
	paths := []string{}
	for _, reportType := range cfg.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			// O CSV é gravado durante o loop.
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(rows, cfg.ReportName, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
				paths = append(paths, jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(rows, cfg.ReportName, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
				paths = append(paths, pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored", reportType)
		}
	}
	return paths
}

func (uc *InventoryUseCase) uploadArtifacts(ctx context.Context, cfg *types.Config, startedAt time.Time, summary entity.RunSummary) {
	runID := startedAt.Format("20060102_150405")
	files := append([]string{summary.ReportPath, summary.FailedLogPath}, summary.ExportedPaths...)

	for _, file := range files {
		location, err := uc.awsRepo.UploadFile(ctx, cfg.AWSProfile, cfg.S3Bucket, objectKey(cfg.S3Prefix, runID, file), file)
		if err != nil {
			uc.console.LogError("Failed to upload %s: %s", file, err)
			continue
		}
		uc.console.LogSuccess("Uploaded %s", location)
	}
}

func (uc *InventoryUseCase) shipFailures(ctx context.Context, cfg *types.Config, startedAt time.Time, failures []entity.FailureRecord) {
	if len(failures) == 0 {
		return
	}

	messages := make([]string, 0, len(failures))
	for _, f := range failures {
		messages = append(messages, fmt.Sprintf("%s [%s] %s", f.Line(), f.Kind, f.Reason))
	}

	stream := "dell-inventory-" + startedAt.Format("20060102_150405")
	if err := uc.awsRepo.PutFailureEvents(ctx, cfg.AWSProfile, cfg.LogGroup, stream, messages); err != nil {
		uc.console.LogError("Failed to send failures to CloudWatch Logs: %s", err)
		return
	}
	uc.console.LogSuccess("Sent %d failure records to %s/%s", len(messages), cfg.LogGroup, stream)
}

func (uc *InventoryUseCase) displaySummary(rows []entity.SummaryRow, summary entity.RunSummary) {
	if len(rows) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Service Tag")
		table.AddColumn("Product Line")
		table.AddColumn("Ship Date")
		table.AddColumn("Active Warranties")
		table.AddColumn("Components")
		for _, row := range rows {
			table.AddRow(
				row.ServiceTag,
				row.ProductLineDescription,
				row.ShipDate,
				strings.ReplaceAll(row.ActiveWarranties, "; ", "\n"),
				strings.ReplaceAll(row.AllComponents, "; ", "\n"),
			)
		}
		uc.console.Println(table.Render())
	}

	uc.console.LogInfo("Processed %d of %d tags (%d skipped)", summary.Processed, summary.TotalTags, summary.Skipped)
	if summary.Skipped > 0 {
		uc.console.LogWarning("Skipped tags: %s (see %s)", strings.Join(summary.SkippedTags, ", "), summary.FailedLogPath)
	}
}

// objectKey monta a chave S3 de um arquivo local dentro do prefixo informado.
func objectKey(prefix, runID, filePath string) string {
	prefix = strings.Trim(prefix, "/")
	name := filepath.Base(filePath)
	if prefix == "" {
		return path.Join(runID, name)
	}
	return path.Join(prefix, runID, name)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
