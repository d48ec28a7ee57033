package extradata

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrTooShort          = errors.New("extra data shorter than vanity and seal")
	ErrMisalignedSigners = errors.New("signer section is not a multiple of the address length")
)

// Decode parses a "0x" prefixed extraData string and returns the signer addresses
// stored between the vanity and seal regions.
func Decode(extra string) ([]common.Address, error) {
	raw, err := hexutil.Decode(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to decode extra data: %w", err)
	}

	if len(raw) < VanityLength+SealLength {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTooShort, len(raw), VanityLength+SealLength)
	}

	signerBytes := raw[VanityLength : len(raw)-SealLength]
	if len(signerBytes)%common.AddressLength != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMisalignedSigners, len(signerBytes))
	}

	signers := make([]common.Address, len(signerBytes)/common.AddressLength)
	for i := range signers {
		signers[i] = common.BytesToAddress(signerBytes[i*common.AddressLength : (i+1)*common.AddressLength])
	}
	return signers, nil
}
