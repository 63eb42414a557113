package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Token     string `json:"token"`
		TokenFile string `json:"token_file"`
		PortFile  string `json:"port_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN         string   `json:"dsn"`
		Prefix      []string `json:"prefix"`
		MaxReadKeys int      `json:"max_read_keys"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		APIPrefix      string   `json:"api_prefix"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	RuntimeDir string `json:"runtime_dir"`
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
			Token:     jsonCfg.App.Token,
			TokenFile: jsonCfg.App.TokenFile,
			PortFile:  jsonCfg.App.PortFile,
		},
		Storage: Storage{
			DSN:         jsonCfg.Storage.DSN,
			Prefix:      jsonCfg.Storage.Prefix,
			MaxReadKeys: jsonCfg.Storage.MaxReadKeys,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			APIPrefix:      jsonCfg.Server.APIPrefix,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		RuntimeDir: jsonCfg.RuntimeDir,
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
