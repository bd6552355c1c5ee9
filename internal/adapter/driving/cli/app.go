package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/diillson/dell-inventory-report-go/internal/application/usecase"
	"github.com/diillson/dell-inventory-report-go/internal/shared/types"
	"github.com/diillson/dell-inventory-report-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	inventoryUseCase *usecase.InventoryUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:   "dell-inventory",
		Short: "Dell hardware and warranty inventory report",
		Long: `Fetches hardware components and warranty entitlements for a list of Dell
service tags from the TechDirect API and writes one summary row per device
to a CSV report. Tags that fail to fetch are written to a failure log.`,
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Dell Inventory Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("env-file", "", "Path to a .env file with DELL_CLIENT_ID / DELL_CLIENT_SECRET (default: ./.env when present)")
	flags.String("client-id", "", "TechDirect API client ID (overrides DELL_CLIENT_ID)")
	flags.String("client-secret", "", "TechDirect API client secret (overrides DELL_CLIENT_SECRET)")
	flags.StringSliceP("tags", "g", nil, "Service tags to process (comma-separated)")
	flags.StringP("tags-file", "f", "", "File with service tags: .csv with a serviceTag column, or one tag per line")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.StringP("report-name", "n", "", "Base name for the report file without extension (default: "+types.DefaultReportName+")")
	flags.String("failed-log", "", "Failure log file, relative to --dir unless absolute (default: "+types.DefaultFailedLog+")")
	flags.StringSliceP("report-type", "y", nil, "Report types: csv, json, pdf (csv is always written)")
	flags.Duration("delay", types.DefaultRequestDelay, "Pause after each service tag")
	flags.Duration("timeout", types.DefaultHTTPTimeout, "HTTP timeout for each API call (0 disables)")
	flags.String("token-url", "", "OAuth token endpoint")
	flags.String("components-url", "", "Asset components endpoint")
	flags.String("entitlements-url", "", "Asset entitlements endpoint")
	flags.String("s3-bucket", "", "Upload the generated files to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded files")
	flags.String("aws-profile", "", "AWS profile used for S3 and CloudWatch Logs")
	flags.String("cloudwatch-log-group", "", "Send failure records to this CloudWatch Logs group")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	clientID, _ := flags.GetString("client-id")
	clientSecret, _ := flags.GetString("client-secret")
	tags, _ := flags.GetStringSlice("tags")
	tagsFile, _ := flags.GetString("tags-file")
	dir, _ := flags.GetString("dir")
	reportName, _ := flags.GetString("report-name")
	failedLog, _ := flags.GetString("failed-log")
	reportType, _ := flags.GetStringSlice("report-type")
	tokenURL, _ := flags.GetString("token-url")
	componentsURL, _ := flags.GetString("components-url")
	entitlementsURL, _ := flags.GetString("entitlements-url")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	logGroup, _ := flags.GetString("cloudwatch-log-group")

	// Converte para caminho absoluto; vazio fica a cargo da configuração
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:      configFile,
		EnvFile:         envFile,
		ClientID:        clientID,
		ClientSecret:    clientSecret,
		Tags:            tags,
		TagsFile:        tagsFile,
		Dir:             dir,
		ReportName:      reportName,
		FailedLog:       failedLog,
		ReportType:      reportType,
		TokenURL:        tokenURL,
		ComponentsURL:   componentsURL,
		EntitlementsURL: entitlementsURL,
		S3Bucket:        s3Bucket,
		S3Prefix:        s3Prefix,
		AWSProfile:      awsProfile,
		LogGroup:        logGroup,
	}

	// Só sobrescreve o arquivo de configuração quando a flag foi informada
	if flags.Changed("delay") {
		delay, err := flags.GetDuration("delay")
		if err != nil {
			return nil, err
		}
		args.Delay = &delay
	}
	if flags.Changed("timeout") {
		timeout, err := flags.GetDuration("timeout")
		if err != nil {
			return nil, err
		}
		args.Timeout = &timeout
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Permite interromper com Ctrl+C fechando os arquivos corretamente
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.inventoryUseCase.RunInventory(ctx, cliArgs)
}

// SetInventoryUseCase sets the inventory use case for the CLI app.
func (app *CLIApp) SetInventoryUseCase(useCase *usecase.InventoryUseCase) {
	app.inventoryUseCase = useCase
}
