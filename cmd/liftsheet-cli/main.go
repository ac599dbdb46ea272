// Liftsheet CLI — инструмент командной строки для конвертации
// снимков журнала тренировок в книгу .xlsx через HTTP API.
//
// Использование:
//
//	liftsheet [--api-url URL] [--json] <command> [flags]
//
// Команды:
//
//	convert   Конвертация изображений в книгу
//	engines   Список OCR-движков сервера
//	health    Проверка доступности сервера
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/liftsheet/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "liftsheet",
		Short:         "Liftsheet CLI — workout log image to spreadsheet converter",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewConvertCmd(clientFn, outputFn),
		cli.NewEnginesCmd(clientFn, outputFn),
		cli.NewHealthCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
