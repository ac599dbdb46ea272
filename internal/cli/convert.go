package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// NewConvertCmd создаёт команду конвертации изображений.
func NewConvertCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var outputPath string
	var parseOnly bool

	cmd := &cobra.Command{
		Use:   "convert IMAGE...",
		Short: "Convert workout log images to a spreadsheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if parseOnly {
				return printParsed(client, out, args)
			}

			workbook, err := client.Convert(args)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outputPath, workbook.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outputPath, err)
			}

			out.Success(fmt.Sprintf("saved %s (%d bytes, batch %s)",
				outputPath, len(workbook.Data), workbook.BatchID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "workout.xlsx", "Output workbook path")
	cmd.Flags().BoolVar(&parseOnly, "parse-only", false, "Print parsed tables instead of saving a workbook")

	return cmd
}

// printParsed выводит распознанные таблицы без сохранения книги.
func printParsed(client *Client, out *Output, paths []string) error {
	batch, err := client.ConvertJSON(paths)
	if err != nil {
		return err
	}

	headers := []string{"FILE", "TITLE", "EXERCISES", "MAX_SETS"}
	rows := make([][]string, len(batch.Tables))
	for i, t := range batch.Tables {
		rows[i] = []string{
			t.SourceFile,
			t.Title,
			strconv.Itoa(len(t.Rows)),
			strconv.Itoa(t.MaxSets),
		}
	}

	out.Print(headers, rows, batch)
	return nil
}

// NewEnginesCmd создаёт команду списка OCR-движков сервера.
func NewEnginesCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List OCR engines available on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			engines, err := client.Engines()
			if err != nil {
				return err
			}

			headers := []string{"NAME", "ACTIVE"}
			rows := make([][]string, len(engines.Available))
			for i, name := range engines.Available {
				rows[i] = []string{name, strconv.FormatBool(name == engines.Active)}
			}

			out.Print(headers, rows, engines)
			return nil
		},
	}
}

// NewHealthCmd создаёт команду проверки доступности сервера.
func NewHealthCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.Health(); err != nil {
				return err
			}

			out.Success("ok")
			return nil
		},
	}
}
