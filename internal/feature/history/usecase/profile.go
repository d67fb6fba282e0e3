package usecase

import "strings"

// Profile is a short, static company description shown next to the
// performance panel.
type Profile struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// curatedProfiles covers the mega caps the dashboard opens on; everything
// else gets the generic placeholder so the panel never renders empty.
var curatedProfiles = map[string]string{
	"AAPL": "Apple designs iPhone, Mac and services like the App Store, Music and iCloud. " +
		"It drives retention with tight hardware-software integration and is rolling out " +
		"on-device AI to deepen engagement.",
	"MSFT": "Microsoft runs Windows, Office and Azure. Cloud subscriptions are the main " +
		"growth engine, and Copilot brings AI into productivity and developer tools.",
	"NVDA": "NVIDIA builds GPUs and full AI platforms used to train and run large models. " +
		"Its CUDA software ecosystem and data-center chips are a major competitive moat.",
	"AMZN": "Amazon combines a massive logistics network with the high-margin AWS cloud " +
		"business. Ads and subscriptions like Prime add recurring, sticky revenue.",
	"META": "Meta operates Facebook, Instagram and WhatsApp. Ads remain core, supported " +
		"by AI-driven feed ranking, while messaging continues to deepen user engagement.",
	"GOOGL": "Alphabet spans Search, YouTube, Android and Google Cloud. Search and ads " +
		"fund heavy investment into cloud and AI products across the portfolio.",
}

const placeholderDescription = "U.S. listed company. A detailed profile is not available, but this placeholder " +
	"keeps the panel readable and consistent across tickers."

// ProfileFor returns the curated description for symbol, or the placeholder.
func ProfileFor(symbol string) Profile {
	desc, ok := curatedProfiles[strings.ToUpper(symbol)]
	if !ok {
		desc = placeholderDescription
	}
	return Profile{Symbol: symbol, Name: symbol, Description: desc}
}
