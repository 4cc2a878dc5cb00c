package fee

import "github.com/holiman/uint256"

const (
	// MaxTax is the largest staker tax.
	MaxTax = 255

	// ProtocolCut is the inverse of the protocol's share of every fee.
	ProtocolCut = 10
)

var stakerDenominator = uint256.NewInt(ProtocolCut * MaxTax)

// Distribution of a fee.
type Distribution struct {
	Stakers   *uint256.Int
	Protocol  *uint256.Int
	Liquidity *uint256.Int
}

// Distribute splits fee. Stakers receive fee * tax / (10 * 255), the protocol
// fee / 10 and liquidity providers the rest.
func Distribute(fee *uint256.Int, tax uint8) Distribution {
	stakers, _ := new(uint256.Int).MulDivOverflow(fee, uint256.NewInt(uint64(tax)), stakerDenominator)
	protocol := new(uint256.Int).Div(fee, uint256.NewInt(ProtocolCut))

	liquidity := new(uint256.Int).Sub(fee, stakers)
	liquidity.Sub(liquidity, protocol)

	return Distribution{
		Stakers:   stakers,
		Protocol:  protocol,
		Liquidity: liquidity,
	}
}
