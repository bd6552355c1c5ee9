package cli

import (
	"fmt"

	"github.com/diillson/dell-inventory-report-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ____  _____ _     _       ___                      _
        |  _ \| ____| |   | |     |_ _|_ ____   _____ _ __ | |_ ___  _ __ _   _
        | | | |  _| | |   | |      | || '_ \ \ / / _ \ '_ \| __/ _ \| '__| | | |
        | |_| | |___| |___| |___   | || | | \ V /  __/ | | | || (_) | |  | |_| |
        |____/|_____|_____|_____| |___|_| |_|\_/ \___|_| |_|\__\___/|_|   \__, |
                                                                          |___/
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Version {
		formattedVersion = versionStr
	}
	fmt.Println(cyan(fmt.Sprintf("Dell Inventory Report CLI (v%s)", formattedVersion)))
}
