package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		AdminKey      string   `json:"admin_key"`
		CredentialTTL Duration `json:"credential_ttl"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenRateLimit float64  `json:"token_rate_limit"`
		TokenRateBurst int      `json:"token_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		CompanyRegistryAddress string   `json:"company_registry_address"`
		RequestTimeout         Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CredentialExpiryInterval Duration `json:"credential_expiry_interval"`
		CredentialExpiryWindow   Duration `json:"credential_expiry_window"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			AdminKey:      jsonCfg.App.AdminKey,
			CredentialTTL: time.Duration(jsonCfg.App.CredentialTTL),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TokenRateLimit: jsonCfg.Server.TokenRateLimit,
			TokenRateBurst: jsonCfg.Server.TokenRateBurst,
		},
		Adapter: Adapter{
			CompanyRegistryAddress: jsonCfg.Adapter.CompanyRegistryAddress,
			RequestTimeout:         time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CredentialExpiryInterval: time.Duration(jsonCfg.Workers.CredentialExpiryInterval),
			CredentialExpiryWindow:   time.Duration(jsonCfg.Workers.CredentialExpiryWindow),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
