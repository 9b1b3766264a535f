// Package handlers implements the tokenstudio commands. Each handler is
// called by its cobra command once flags are parsed.
package handlers

import (
	"fmt"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// DraftOptions holds the token fields given on the command line.
type DraftOptions struct {
	Name            string
	Symbol          string
	Supply          string
	Decimals        int
	FreezeAuthority bool
	MintAuthority   bool
	MetadataURI     string
}

// Draft converts the options to a draft with the input transforms applied.
func (o DraftOptions) Draft() (launch.Draft, error) {
	if !launch.ValidDecimals(o.Decimals) {
		return launch.Draft{}, fmt.Errorf("%w: got %d", errInvalidDecimals, o.Decimals)
	}
	d := launch.Draft{
		Name:            o.Name,
		Symbol:          o.Symbol,
		Supply:          o.Supply,
		Decimals:        o.Decimals,
		FreezeAuthority: o.FreezeAuthority,
		MintAuthority:   o.MintAuthority,
		MetadataURI:     o.MetadataURI,
	}
	return d.Normalize(), nil
}

// OutputFormat selects how estimate and preview results are printed.
type OutputFormat string

// Output formats.
const (
	FormatBox     OutputFormat = "box"
	FormatCompact OutputFormat = "compact"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)
