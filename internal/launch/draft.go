package launch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxSymbolLength is the number of characters kept from symbol input.
const MaxSymbolLength = 8

// DefaultDecimals is the decimals value of a fresh draft.
const DefaultDecimals = 9

// DecimalOptions contains the selectable decimals values, in display order.
var DecimalOptions = []int{0, 2, 4, 6, 8, 9}

// Draft is the token configuration being edited in a wizard session.
type Draft struct {
	Name            string `json:"name" yaml:"name"`
	Symbol          string `json:"symbol" yaml:"symbol"`
	Decimals        int    `json:"decimals" yaml:"decimals"`
	Supply          string `json:"supply" yaml:"supply"`
	FreezeAuthority bool   `json:"freeze_authority" yaml:"freeze_authority"`
	MintAuthority   bool   `json:"mint_authority" yaml:"mint_authority"`
	MetadataURI     string `json:"metadata_uri,omitempty" yaml:"metadata_uri,omitempty"`
}

// DefaultDraft returns the draft a new session starts with.
func DefaultDraft() Draft {
	return Draft{
		Decimals:        DefaultDecimals,
		FreezeAuthority: true,
		MintAuthority:   true,
	}
}

// SupplyValue parses the supply as an unsigned integer.
// Values beyond the uint64 range saturate to the maximum.
func (d Draft) SupplyValue() (uint64, bool) {
	if d.Supply == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(d.Supply, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return ^uint64(0), true
		}
		return 0, false
	}
	return v, true
}

// Complete reports whether the draft satisfies the Configure step:
// name, symbol and supply are set and supply is positive.
func (d Draft) Complete() bool {
	if d.Name == "" || d.Symbol == "" {
		return false
	}
	v, ok := d.SupplyValue()
	return ok && v > 0
}

// Field identifies an editable draft field.
type Field string

// Draft fields.
const (
	FieldName            Field = "name"
	FieldSymbol          Field = "symbol"
	FieldDecimals        Field = "decimals"
	FieldSupply          Field = "supply"
	FieldFreezeAuthority Field = "freezeAuthority"
	FieldMintAuthority   Field = "mintAuthority"
	FieldMetadataURI     Field = "metadataUri"
)

// Fields lists every draft field in form order.
var Fields = []Field{
	FieldName,
	FieldSymbol,
	FieldDecimals,
	FieldSupply,
	FieldFreezeAuthority,
	FieldMintAuthority,
	FieldMetadataURI,
}

// ParseField maps a field name to a Field. Matching ignores case,
// underscores and hyphens, so "freeze_authority" and "freezeAuthority"
// name the same field.
func ParseField(name string) (Field, error) {
	key := strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Fields {
		if strings.ToLower(string(f)) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// NormalizeSymbol uppercases s and keeps its first MaxSymbolLength characters.
func NormalizeSymbol(s string) string {
	return truncateRunes(strings.ToUpper(s), MaxSymbolLength)
}

// NormalizeSupply drops every character of s that is not an ASCII digit.
func NormalizeSupply(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidDecimals reports whether n is one of DecimalOptions.
func ValidDecimals(n int) bool {
	for _, d := range DecimalOptions {
		if d == n {
			return true
		}
	}
	return false
}

// parseFlag reads a boolean form value. Checkbox values "on" and "yes" count as true.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "on", "yes", "y":
		return true, true
	case "0", "f", "false", "off", "no", "n", "":
		return false, true
	}
	return false, false
}

// set applies the input transform for f and stores the value.
// Values that cannot be represented are dropped and the field keeps its value.
func (d *Draft) set(f Field, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldSymbol:
		d.Symbol = NormalizeSymbol(value)
	case FieldSupply:
		d.Supply = NormalizeSupply(value)
	case FieldDecimals:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err == nil && ValidDecimals(n) {
			d.Decimals = n
		}
	case FieldFreezeAuthority:
		if v, ok := parseFlag(value); ok {
			d.FreezeAuthority = v
		}
	case FieldMintAuthority:
		if v, ok := parseFlag(value); ok {
			d.MintAuthority = v
		}
	case FieldMetadataURI:
		d.MetadataURI = value
	}
}

// Normalize returns a copy of d with every input transform applied.
// Decimals outside DecimalOptions fall back to DefaultDecimals.
func (d Draft) Normalize() Draft {
	out := d
	out.Symbol = NormalizeSymbol(d.Symbol)
	out.Supply = NormalizeSupply(d.Supply)
	if !ValidDecimals(d.Decimals) {
		out.Decimals = DefaultDecimals
	}
	return out
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
