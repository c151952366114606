package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors StructuredConfig for the config file. Durations are
// written as strings ("30s") in both JSON and TOML.
type fileConfig struct {
	App struct {
		Version  string `json:"version" toml:"version"`
		LogLevel string `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Sync struct {
		Backend            string   `json:"backend" toml:"backend"`
		WireFormat         string   `json:"wire_format" toml:"wire_format"`
		TopicPrefix        string   `json:"topic_prefix" toml:"topic_prefix"`
		ControlQoS         int      `json:"control_qos" toml:"control_qos"`
		EntityQoS          int      `json:"entity_qos" toml:"entity_qos"`
		AppQoS             int      `json:"app_qos" toml:"app_qos"`
		SnapshotTimeout    Duration `json:"snapshot_timeout" toml:"snapshot_timeout"`
		ConnectTimeout     Duration `json:"connect_timeout" toml:"connect_timeout"`
		KeepAlive          Duration `json:"keep_alive" toml:"keep_alive"`
		ClientIDPrefix     string   `json:"client_id_prefix" toml:"client_id_prefix"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify" toml:"insecure_skip_verify"`
		WebSocketPath      string   `json:"websocket_path" toml:"websocket_path"`
	} `json:"sync" toml:"sync"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Workers struct {
		PruneInterval    Duration `json:"prune_interval" toml:"prune_interval"`
		JournalRetention Duration `json:"journal_retention" toml:"journal_retention"`
	} `json:"workers" toml:"workers"`
}

// parseFile reads a .json or .toml config file; the format is chosen by
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	var raw fileConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		defer f.Close()

		if err = json.NewDecoder(f).Decode(&raw); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return &StructuredConfig{
		App: App{Version: raw.App.Version, LogLevel: raw.App.LogLevel},
		Sync: Sync{
			Backend:            raw.Sync.Backend,
			WireFormat:         raw.Sync.WireFormat,
			TopicPrefix:        raw.Sync.TopicPrefix,
			ControlQoS:         raw.Sync.ControlQoS,
			EntityQoS:          raw.Sync.EntityQoS,
			AppQoS:             raw.Sync.AppQoS,
			SnapshotTimeout:    time.Duration(raw.Sync.SnapshotTimeout),
			ConnectTimeout:     time.Duration(raw.Sync.ConnectTimeout),
			KeepAlive:          time.Duration(raw.Sync.KeepAlive),
			ClientIDPrefix:     raw.Sync.ClientIDPrefix,
			InsecureSkipVerify: raw.Sync.InsecureSkipVerify,
			WebSocketPath:      raw.Sync.WebSocketPath,
		},
		Storage: Storage{DB: DB{DSN: raw.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    raw.Server.HTTPAddress,
			RequestTimeout: time.Duration(raw.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    raw.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(raw.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PruneInterval:    time.Duration(raw.Workers.PruneInterval),
			JournalRetention: time.Duration(raw.Workers.JournalRetention),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and TOML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
