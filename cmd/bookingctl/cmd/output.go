package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/booking_ledger_engine/internal/dto"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

// readInput returns the raw request from --input.
func readInput(cmd *cobra.Command) ([]byte, error) {
	if inputPath == "" || inputPath == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(inputPath)
}

// writeResult prints resp in the selected format. textReport renders the text format.
func writeResult(cmd *cobra.Command, resp any, textReport func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	switch outputFormat {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(resp)
	case formatText:
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
		textReport(tw)
		return tw.Flush()
	default:
		return writeError(cmd, fmt.Errorf("unknown output format %q", outputFormat))
	}
}

// writeError prints the error payload and returns err so the process exits non-zero.
func writeError(cmd *cobra.Command, err error) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if encErr := enc.Encode(dto.ErrorResponse{Error: err.Error()}); encErr != nil {
		return fmt.Errorf("%w (writing error payload: %v)", err, encErr)
	}
	return err
}

func logDefaulted(ctx context.Context, fields []string) {
	if len(fields) == 0 {
		return
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Amounts out of wire range were written as zero", slog.Any("fields", fields))
}
