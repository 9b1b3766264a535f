package launch

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Lamports is an amount in the smallest SOL unit.
type Lamports uint64

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL Lamports = 1_000_000_000

// Fee components of the estimate.
const (
	BaseFee            Lamports = 2_000_000 // 0.002 SOL
	FreezeAuthorityFee Lamports = 400_000   // 0.0004 SOL
	MintAuthorityFee   Lamports = 300_000   // 0.0003 SOL
)

// feeUnit is the display resolution, 0.0001 SOL.
const feeUnit = LamportsPerSOL / 10_000

// EstimatedFee returns the fixed-formula fee estimate for d.
// It is a display figure, not a network fee quote.
func EstimatedFee(d Draft) Lamports {
	fee := BaseFee
	if d.FreezeAuthority {
		fee += FreezeAuthorityFee
	}
	if d.MintAuthority {
		fee += MintAuthorityFee
	}
	return fee
}

// SOL returns l as a floating point SOL amount.
func (l Lamports) SOL() float64 {
	return float64(l) / float64(LamportsPerSOL)
}

// String formats l in SOL with four decimal places, rounding half up.
func (l Lamports) String() string {
	units := (l + feeUnit/2) / feeUnit
	return fmt.Sprintf("%d.%04d", units/10_000, units%10_000)
}

// Placeholders used by PreviewLabel for empty fields.
const (
	PlaceholderName   = "Your Token"
	PlaceholderSymbol = "SYMB"
	PlaceholderSupply = "—"
)

// PreviewLabel returns the one-line summary shown beside the form.
func PreviewLabel(d Draft) string {
	return fmt.Sprintf("%s (%s) • %d dec • %s supply",
		orDefault(d.Name, PlaceholderName),
		orDefault(d.Symbol, PlaceholderSymbol),
		d.Decimals,
		orDefault(d.Supply, PlaceholderSupply))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// addressSegmentLength is the length of each random segment.
const addressSegmentLength = 8

// SimulatedAddress returns a placeholder standing in for a mint address.
//
// The value is the first 4 characters of the symbol and the first 2 of the
// name, uppercased, followed by two random base-36 segments. It is not
// derived from any key, carries no uniqueness guarantee and must never be
// shown as a real on-chain identifier. A nil r uses the global source.
func SimulatedAddress(d Draft, r *rand.Rand) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(truncateRunes(d.Symbol, 4) + truncateRunes(d.Name, 2)))
	for range 2 {
		writeSegment(&b, r)
	}
	return b.String()
}

func writeSegment(b *strings.Builder, r *rand.Rand) {
	for range addressSegmentLength {
		var n int
		if r != nil {
			n = r.IntN(len(base36))
		} else {
			n = rand.IntN(len(base36))
		}
		b.WriteByte(base36[n])
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
