package domain

import "strings"

// ServicePreset pre-fills the add flow for a well-known subscription
// service. Logos come from the logo.dev brand API.
type ServicePreset struct {
	Name      string
	Price     float64
	Cycle     BillingCycle
	Category  string
	Color     string
	LogoURL   string
	CancelURL string
}

const logoToken = "pk_X-1ZO13GSgeOoUrIuJ6GMQ"

func logoFor(domain string) string {
	return "https://img.logo.dev/" + domain + "?token=" + logoToken
}

// PopularServices lists well-known subscription services with their
// typical pricing.
var PopularServices = []ServicePreset{
	{Name: "Netflix", Price: 15.49, Cycle: CycleMonthly, Category: "Streaming", Color: "#E50914", LogoURL: logoFor("netflix.com"), CancelURL: "https://www.netflix.com/cancelplan"},
	{Name: "Spotify", Price: 10.99, Cycle: CycleMonthly, Category: "Music", Color: "#1DB954", LogoURL: logoFor("spotify.com"), CancelURL: "https://www.spotify.com/account/subscription/"},
	{Name: "Disney+", Price: 13.99, Cycle: CycleMonthly, Category: "Streaming", Color: "#113CCF", LogoURL: logoFor("disneyplus.com"), CancelURL: "https://www.disneyplus.com/account"},
	{Name: "Amazon Prime", Price: 14.99, Cycle: CycleMonthly, Category: "Shopping", Color: "#FF9900", LogoURL: logoFor("amazon.com"), CancelURL: "https://www.amazon.com/manageprime"},
	{Name: "YouTube Premium", Price: 13.99, Cycle: CycleMonthly, Category: "Streaming", Color: "#FF0000", LogoURL: logoFor("youtube.com"), CancelURL: "https://www.youtube.com/paid_memberships"},
	{Name: "Apple Music", Price: 10.99, Cycle: CycleMonthly, Category: "Music", Color: "#FA243C", LogoURL: logoFor("apple.com"), CancelURL: "https://support.apple.com/en-us/HT202039"},
	{Name: "HBO Max", Price: 15.99, Cycle: CycleMonthly, Category: "Streaming", Color: "#000000", LogoURL: logoFor("max.com"), CancelURL: "https://www.max.com/account"},
	{Name: "Hulu", Price: 7.99, Cycle: CycleMonthly, Category: "Streaming", Color: "#1CE783", LogoURL: logoFor("hulu.com"), CancelURL: "https://secure.hulu.com/account"},
	{Name: "Adobe Creative Cloud", Price: 54.99, Cycle: CycleMonthly, Category: "Software", Color: "#FF0000", LogoURL: logoFor("adobe.com"), CancelURL: "https://account.adobe.com/plans"},
	{Name: "Microsoft 365", Price: 9.99, Cycle: CycleMonthly, Category: "Software", Color: "#0078D4", LogoURL: logoFor("microsoft.com"), CancelURL: "https://account.microsoft.com/services"},
	{Name: "Notion", Price: 10.00, Cycle: CycleMonthly, Category: "Productivity", Color: "#000000", LogoURL: logoFor("notion.so"), CancelURL: "https://www.notion.so/my-account"},
	{Name: "Slack", Price: 8.75, Cycle: CycleMonthly, Category: "Productivity", Color: "#4A154B", LogoURL: logoFor("slack.com"), CancelURL: "https://slack.com/account/settings"},
	{Name: "Dropbox", Price: 11.99, Cycle: CycleMonthly, Category: "Storage", Color: "#0061FF", LogoURL: logoFor("dropbox.com"), CancelURL: "https://www.dropbox.com/account/plan"},
	{Name: "iCloud+", Price: 2.99, Cycle: CycleMonthly, Category: "Storage", Color: "#3693F3", LogoURL: logoFor("icloud.com"), CancelURL: "https://support.apple.com/en-us/HT201318"},
	{Name: "ChatGPT Plus", Price: 20.00, Cycle: CycleMonthly, Category: "AI Tools", Color: "#10A37F", LogoURL: logoFor("openai.com"), CancelURL: "https://chat.openai.com/settings/subscription"},
	{Name: "Claude Pro", Price: 20.00, Cycle: CycleMonthly, Category: "AI Tools", Color: "#D97757", LogoURL: logoFor("anthropic.com"), CancelURL: "https://claude.ai/settings"},
	{Name: "Gym Membership", Price: 30.00, Cycle: CycleMonthly, Category: "Health", Color: "#FF6B6B"},
	{Name: "NordVPN", Price: 12.99, Cycle: CycleMonthly, Category: "Security", Color: "#4687FF", LogoURL: logoFor("nordvpn.com"), CancelURL: "https://my.nordaccount.com/dashboard/nordvpn/"},
	{Name: "Canva", Price: 12.99, Cycle: CycleMonthly, Category: "Design", Color: "#00C4CC", LogoURL: logoFor("canva.com"), CancelURL: "https://www.canva.com/settings/billing-and-teams"},
	{Name: "Grammarly", Price: 12.00, Cycle: CycleMonthly, Category: "Productivity", Color: "#15C39A", LogoURL: logoFor("grammarly.com"), CancelURL: "https://account.grammarly.com/subscription"},
}

// Categories is the category suggestion list. Stored categories remain free
// text; these only drive the pickers.
var Categories = []string{
	"Streaming",
	"Music",
	"Shopping",
	"Software",
	"Productivity",
	"Storage",
	"AI Tools",
	"Health",
	"Security",
	"Design",
	"Gaming",
	"News",
	"Education",
	"Other",
}

// FindPreset looks up a popular service by name, case-insensitively.
func FindPreset(name string) (ServicePreset, bool) {
	for _, p := range PopularServices {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return ServicePreset{}, false
}
