package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nineblocker/internal/export"
	"nineblocker/internal/league"
)

func newConvertCmd(a *app) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:     "convert <input.xlsx> <seasonCode>",
		Short:   "Convert a league record workbook to JSON",
		Example: `  nineblocker convert "2026-01 리그 기록.xlsx" 202601`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, code := args[0], args[1]

			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			season, err := league.ConvertFile(inputPath, code)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			outputPath := filepath.Join(outputDir, league.FileName(code))
			if err := export.WriteJSON(outputPath, season); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			a.logger.Debug("workbook converted", zap.String("input", inputPath), zap.String("output", outputPath))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "변환 완료: %s\n", outputPath)
			fmt.Fprintf(out, "시즌: %s\n", season.Name)
			fmt.Fprintf(out, "총 라운드: %d\n", season.TotalRounds)
			fmt.Fprintf(out, "총 선수 수: %d\n", season.PlayerCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for the season JSON file")
	return cmd
}
