// Package prompt runs the launch wizard as a sequence of huh forms, for
// terminals where the full-screen UI is not wanted.
package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tokenstudio/tokenstudio/internal/launch"
)

// confirmation is a yes/no question with its button labels.
type confirmation struct {
	Title       string
	Description string
	Affirmative string
	Negative    string
}

// Confirmations asked between steps.
var (
	reviewConfirm = confirmation{Title: "Proceed to launch?", Affirmative: "Proceed", Negative: "Back"}
	launchConfirm = confirmation{
		Title:       "Launch token?",
		Description: "Simulated launch. No transaction is sent.",
		Affirmative: "Launch",
		Negative:    "Back",
	}
	anotherConfirm = confirmation{Title: "Create another token?", Affirmative: "Create another", Negative: "Done"}
)

// Runner drives a session through the wizard steps.
type Runner struct {
	configure func(ctx context.Context, d *launch.Draft) error
	confirm   func(ctx context.Context, c confirmation) (bool, error)
}

// New returns a Runner backed by huh forms.
func New() *Runner {
	return &Runner{
		configure: runConfigureGroup,
		confirm:   runConfirm,
	}
}

// Run walks session from its current step until the user launches and
// declines to create another token, or aborts. It returns the last launch
// result, or nil if nothing was launched.
func (r *Runner) Run(ctx context.Context, session *launch.Session) (*launch.Result, error) {
	var last *launch.Result

	for {
		switch session.Step() {
		case launch.StepConfigure:
			d := session.Draft()
			if err := r.configure(ctx, &d); err != nil {
				return last, fmt.Errorf("wizard canceled: %w", err)
			}
			applyDraft(session, d)
			session.Advance()

		case launch.StepReview:
			d := session.Draft()
			c := reviewConfirm
			c.Description = reviewSummary(d)
			ok, err := r.confirm(ctx, c)
			if err != nil {
				return last, fmt.Errorf("wizard canceled: %w", err)
			}
			if ok {
				session.Advance()
			} else {
				session.Back()
			}

		case launch.StepLaunch:
			if !session.Launched() {
				ok, err := r.confirm(ctx, launchConfirm)
				if err != nil {
					return last, fmt.Errorf("wizard canceled: %w", err)
				}
				if !ok {
					session.Back()
					continue
				}
				res, _ := session.Launch()
				last = &res
			}

			another, err := r.confirm(ctx, anotherConfirm)
			if err != nil || !another {
				return last, nil
			}
			session.Reset()

		default:
			return last, nil
		}
	}
}

// applyDraft copies the form values into the session through the
// regular field transforms.
func applyDraft(session *launch.Session, d launch.Draft) {
	session.UpdateField(launch.FieldName, d.Name)
	session.UpdateField(launch.FieldSymbol, d.Symbol)
	session.UpdateField(launch.FieldSupply, d.Supply)
	session.UpdateField(launch.FieldDecimals, strconv.Itoa(d.Decimals))
	session.UpdateField(launch.FieldFreezeAuthority, strconv.FormatBool(d.FreezeAuthority))
	session.UpdateField(launch.FieldMintAuthority, strconv.FormatBool(d.MintAuthority))
	session.UpdateField(launch.FieldMetadataURI, d.MetadataURI)
}

// runConfigureGroup prompts for the token configuration.
func runConfigureGroup(ctx context.Context, d *launch.Draft) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Photon").
				Value(&d.Name).
				Validate(validateName),
			huh.NewInput().
				Title("Symbol").
				Description(fmt.Sprintf("Up to %d characters, stored uppercase", launch.MaxSymbolLength)).
				Placeholder("PHO").
				Value(&d.Symbol).
				Validate(validateSymbol),
			huh.NewInput().
				Title("Supply").
				Description("Whole tokens. Separators are ignored.").
				Placeholder("1000000").
				Value(&d.Supply).
				Validate(validateSupply),
			huh.NewSelect[int]().
				Title("Decimals").
				Options(decimalOptions()...).
				Value(&d.Decimals),
		).Title("Configure"),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Freeze authority").
				Description("Keep the ability to freeze token accounts").
				Value(&d.FreezeAuthority),
			huh.NewConfirm().
				Title("Mint authority").
				Description("Keep the ability to mint more supply").
				Value(&d.MintAuthority),
			huh.NewInput().
				Title("Metadata URI (Optional)").
				Placeholder("https://…/metadata.json").
				Value(&d.MetadataURI),
		).Title("Authorities"),
	).RunWithContext(ctx)
}

func runConfirm(ctx context.Context, c confirmation) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(c.Title).
				Description(c.Description).
				Affirmative(c.Affirmative).
				Negative(c.Negative).
				Value(&ok),
		),
	).RunWithContext(ctx)
	return ok, err
}

func decimalOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(launch.DecimalOptions))
	for _, n := range launch.DecimalOptions {
		opts = append(opts, huh.NewOption(strconv.Itoa(n), n))
	}
	return opts
}

func reviewSummary(d launch.Draft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", launch.PreviewLabel(d))
	fmt.Fprintf(&b, "Freeze authority: %s\n", onOff(d.FreezeAuthority))
	fmt.Fprintf(&b, "Mint authority:   %s\n", onOff(d.MintAuthority))
	if d.MetadataURI != "" {
		fmt.Fprintf(&b, "Metadata URI:     %s\n", d.MetadataURI)
	}
	fmt.Fprintf(&b, "Estimated fee:    %s SOL", launch.EstimatedFee(d))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// validateName mirrors the name half of the Continue gate.
func validateName(s string) error {
	if s == "" {
		return errNameRequired
	}
	return nil
}

func validateSymbol(s string) error {
	if launch.NormalizeSymbol(s) == "" {
		return errSymbolRequired
	}
	return nil
}

func validateSupply(s string) error {
	d := launch.Draft{Supply: launch.NormalizeSupply(s)}
	if v, ok := d.SupplyValue(); !ok || v == 0 {
		return errSupplyRequired
	}
	return nil
}
