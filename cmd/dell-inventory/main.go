package main

import (
	"fmt"
	"os"

	"github.com/diillson/dell-inventory-report-go/internal/adapter/driven/aws"
	"github.com/diillson/dell-inventory-report-go/internal/adapter/driven/config"
	"github.com/diillson/dell-inventory-report-go/internal/adapter/driven/dell"
	"github.com/diillson/dell-inventory-report-go/internal/adapter/driven/export"
	"github.com/diillson/dell-inventory-report-go/internal/adapter/driven/tags"
	"github.com/diillson/dell-inventory-report-go/internal/adapter/driving/cli"
	"github.com/diillson/dell-inventory-report-go/internal/application/usecase"
	"github.com/diillson/dell-inventory-report-go/pkg/console"
	"github.com/diillson/dell-inventory-report-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios. O cliente da Dell depende da configuração
	// final, então é criado pelo caso de uso.
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	tagRepo := tags.NewTagRepository()
	awsRepo := aws.NewAWSRepository()
	consoleImpl := console.NewConsole()

	inventoryUseCase := usecase.NewInventoryUseCase(
		dell.NewDellRepository,
		exportRepo,
		configRepo,
		tagRepo,
		awsRepo,
		consoleImpl,
	)

	app.SetInventoryUseCase(inventoryUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
