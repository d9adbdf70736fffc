package settings

// Settings is the platform configuration singleton.
type Settings struct {
	TMDBAPIKey         string `json:"tmdbApiKey"`
	AdScriptHeader     string `json:"adScriptHeader"`
	AdScriptPopUnder   string `json:"adScriptPopUnder"`
	ActiveMaintenance  bool   `json:"activeMaintenance"`
	VideoSourcePattern string `json:"videoSourcePattern"`
}

func seedSettings() Settings {
	return Settings{
		TMDBAPIKey:         "",
		AdScriptHeader:     "// console.log('Ad Header Loaded')",
		AdScriptPopUnder:   "// console.log('Popunder Loaded')",
		ActiveMaintenance:  false,
		VideoSourcePattern: "https://vidsrc.to/embed/movie/{id}",
	}
}
