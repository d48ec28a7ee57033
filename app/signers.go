package app

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/trufnetwork/poa-extradata/internal/config"
	"github.com/trufnetwork/poa-extradata/internal/extradata"
)

var ErrDuplicateSigner = errors.New("duplicate signer address")

func newSignersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signers <address>...",
		Short: "Encode extraData for an ordered list of signers",
		Long: `Concatenates the given signer addresses, in order, between the 32 byte vanity
and the 65 byte seal. Each address may be prefixed with "0x".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateAddresses("signer", args); err != nil {
				return err
			}
			if dup, ok := findDuplicate(args); ok {
				return errors.Wrapf(ErrDuplicateSigner, "%s", dup)
			}

			extra := extradata.EncodeSigners(args)
			zap.L().Debug("encoded extra data",
				zap.Strings("signers", args),
				zap.Int("length", len(extra)))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), extra)
			return err
		},
	}
}

// findDuplicate reports the first address that appears more than once, ignoring
// the "0x" prefix and hex case.
func findDuplicate(addrs []string) (string, bool) {
	keys := lo.Map(addrs, func(a string, _ int) string {
		return strings.ToLower(extradata.Normalize(a))
	})

	for i, k := range keys {
		if slices.Contains(keys[:i], k) {
			return addrs[i], true
		}
	}
	return "", false
}
