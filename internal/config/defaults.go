package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-chat-config",
			TokenDuration: 15 * time.Minute,
			Version:       "dev",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
			TokenRateLimit: 5,
			TokenRateBurst: 10,
		},
		Adapter: Adapter{
			RequestTimeout: 5 * time.Second,
		},
		Workers: Workers{
			CredentialExpiryWindow: 7 * 24 * time.Hour,
		},
	}
}
