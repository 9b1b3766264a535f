// Package site holds the landing page content and its visual skins.
package site

import "time"

// Link is a navigation or footer link.
type Link struct {
	Label string
	Href  string
}

// Feature is a card in the feature grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Step is an entry in the "how it works" section.
type Step struct {
	Index       string
	Title       string
	Description string
}

// Hero is the banner at the top of the page.
type Hero struct {
	Badge        string
	Headline     string
	Lede         string
	PrimaryCTA   Link
	SecondaryCTA Link
	Highlights   []string
}

// Page is everything the landing page renders.
type Page struct {
	Brand      string
	Nav        []Link
	SignIn     Link
	LaunchApp  Link
	Hero       Hero
	Features   []Feature
	StepsTitle string
	Steps      []Step
	Footer     []Link
	Year       int
}

// Brand is the product name shown in the navbar and footer.
const Brand = "Solana Token Studio"

// NewPage returns the landing page content. now sets the copyright year.
func NewPage(now time.Time) Page {
	return Page{
		Brand: Brand,
		Nav: []Link{
			{Label: "Features", Href: "#features"},
			{Label: "How it works", Href: "#how"},
			{Label: "FAQ", Href: "#faq"},
		},
		SignIn:    Link{Label: "Sign in", Href: "#"},
		LaunchApp: Link{Label: "Launch App", Href: "/launch"},
		Hero: Hero{
			Badge:    "Live on Solana — mainnet ready",
			Headline: "Create and launch tokens on Solana in minutes",
			Lede: "A sleek, enterprise‑grade platform to mint, configure, and deploy Solana tokens " +
				"with audit‑friendly metadata and automated best practices.",
			PrimaryCTA:   Link{Label: "Start creating", Href: "/launch"},
			SecondaryCTA: Link{Label: "View docs", Href: "#docs"},
			Highlights: []string{
				"Program-safe minting",
				"No-code & CLI workflows",
				"Immutable metadata support",
			},
		},
		Features: []Feature{
			{
				Icon:        "shield",
				Title:       "Secure by default",
				Description: "Built‑in safeguards, freeze authority options, and verifiable supply to protect your holders.",
			},
			{
				Icon:        "zap",
				Title:       "Lightning fast",
				Description: "Deploy in seconds with pre‑audited flows optimized for Solana performance and fees.",
			},
			{
				Icon:        "layers",
				Title:       "Composable",
				Description: "Works with token metadata, mint authorities, and extensions used across the Solana ecosystem.",
			},
		},
		StepsTitle: "From idea to token — in three steps",
		Steps: []Step{
			{Index: "01", Title: "Configure", Description: "Name, symbol, supply, decimals, authorities, and metadata in one place."},
			{Index: "02", Title: "Review", Description: "Automatic checks and gas estimates before you deploy to mainnet or devnet."},
			{Index: "03", Title: "Launch", Description: "Mint, verify, and publish. Export SDK or use the dashboard to manage."},
		},
		Footer: []Link{
			{Label: "Privacy", Href: "#"},
			{Label: "Terms", Href: "#"},
			{Label: "Docs", Href: "#"},
		},
		Year: now.Year(),
	}
}
