package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fbiville/markdown-table-formatter/pkg/markdown"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/trufnetwork/poa-extradata/internal/extradata"
)

const (
	outputText     = "text"
	outputJSON     = "json"
	outputMarkdown = "markdown"
)

type inspectResult struct {
	Signers []common.Address `json:"signers"`
}

func newInspectCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect <extradata>",
		Short: "List the signers encoded in an extraData value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signers, err := extradata.Decode(args[0])
			if err != nil {
				return err
			}
			return writeSigners(cmd.OutOrStdout(), output, signers)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text|json|markdown)")

	return cmd
}

func writeSigners(w io.Writer, output string, signers []common.Address) error {
	switch output {
	case outputText:
		for _, s := range signers {
			if _, err := fmt.Fprintln(w, s.Hex()); err != nil {
				return err
			}
		}
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(inspectResult{Signers: signers})
	case outputMarkdown:
		rows := lo.Map(signers, func(s common.Address, i int) []string {
			return []string{strconv.Itoa(i), s.Hex()}
		})
		table, err := markdown.NewTableFormatterBuilder().
			WithPrettyPrint().
			Build("#", "Signer").
			Format(rows)
		if err != nil {
			return fmt.Errorf("failed to format signers table: %w", err)
		}
		_, err = io.WriteString(w, table)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}
