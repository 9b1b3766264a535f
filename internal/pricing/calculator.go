// Package pricing breaks the launch fee estimate into line items and formats it.
package pricing

import (
	"fmt"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// Estimate contains the itemized fee estimate for a draft.
type Estimate struct {
	// Items is the list of line items, base fee first.
	Items []LineItem

	// Total is the sum of all items.
	Total launch.Lamports

	// Token metadata
	Name     string
	Symbol   string
	Decimals int
	Supply   string
	Preview  string
}

// LineItem represents a single fee component.
type LineItem struct {
	Description string          `json:"description"`
	Amount      launch.Lamports `json:"lamports"`
}

// String returns a formatted string representation of the line item.
func (l LineItem) String() string {
	return fmt.Sprintf("%s: %s SOL", l.Description, l.Amount)
}

// Line item descriptions.
const (
	ItemBase            = "Base fee"
	ItemFreezeAuthority = "Freeze authority"
	ItemMintAuthority   = "Mint authority"
)

// Calculator builds fee estimates from drafts.
type Calculator struct{}

// NewCalculator creates a new calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate returns the itemized estimate for d. Its total always equals
// launch.EstimatedFee(d).
func (c *Calculator) Calculate(d launch.Draft) *Estimate {
	estimate := &Estimate{
		Name:     d.Name,
		Symbol:   d.Symbol,
		Decimals: d.Decimals,
		Supply:   d.Supply,
		Preview:  launch.PreviewLabel(d),
		Items:    make([]LineItem, 0, 3),
	}

	estimate.Items = append(estimate.Items, LineItem{Description: ItemBase, Amount: launch.BaseFee})
	if d.FreezeAuthority {
		estimate.Items = append(estimate.Items, LineItem{Description: ItemFreezeAuthority, Amount: launch.FreezeAuthorityFee})
	}
	if d.MintAuthority {
		estimate.Items = append(estimate.Items, LineItem{Description: ItemMintAuthority, Amount: launch.MintAuthorityFee})
	}

	for _, item := range estimate.Items {
		estimate.Total += item.Amount
	}

	return estimate
}

// Summary is the serialized form of an estimate used by the JSON and YAML
// formats and the HTTP API.
type Summary struct {
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Decimals int             `json:"decimals"`
	Supply   string          `json:"supply"`
	Preview  string          `json:"preview"`
	Items    []LineItem      `json:"items"`
	Total    launch.Lamports `json:"total_lamports"`
	TotalSOL string          `json:"total_sol"`
}

// Summary returns the serialized form of e.
func (e *Estimate) Summary() Summary {
	return Summary{
		Name:     e.Name,
		Symbol:   e.Symbol,
		Decimals: e.Decimals,
		Supply:   e.Supply,
		Preview:  e.Preview,
		Items:    e.Items,
		Total:    e.Total,
		TotalSOL: e.Total.String(),
	}
}
