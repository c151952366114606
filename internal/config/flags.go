package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the daemon flags from args (without the program name).
//
// Flags:
//
//	-a, --address           control API address in format [host]:[port]
//	-c, --config            json or toml config file path
//	-d, --dsn               journal database path
//	    --log-level         log level
//	    --backend           transport backend (mqtt|memory)
//	    --wire-format       outbound payload encoding (json|cbor)
//	    --topic-prefix      prefix for all session topics
//	    --snapshot-timeout  GetSessionState wait (e.g. "2s")
//	    --request-timeout   control API request timeout (e.g. "30s")
//	    --prune-interval    journal pruning interval (e.g. "1h")
//	    --journal-retention journal record retention (e.g. "168h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("syncd", pflag.ContinueOnError)

	var address NetAddress
	var configPath, dsn, logLevel, backend, wireFormat, topicPrefix string
	var snapshotTimeout, requestTimeout, pruneInterval, retention time.Duration

	fs.VarP(&address, "address", "a", "Control API address host:port")
	fs.StringVarP(&configPath, "config", "c", "", "Config file path (.json or .toml)")
	fs.StringVarP(&dsn, "dsn", "d", "", "Journal database path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&backend, "backend", "", "Transport backend (mqtt, memory)")
	fs.StringVar(&wireFormat, "wire-format", "", "Outbound payload encoding (json, cbor)")
	fs.StringVar(&topicPrefix, "topic-prefix", "", "Prefix for all session topics")
	fs.DurationVar(&snapshotTimeout, "snapshot-timeout", 0, "Session state wait (e.g. 2s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Control API request timeout (e.g. 30s)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Journal pruning interval (e.g. 1h)")
	fs.DurationVar(&retention, "journal-retention", 0, "Journal record retention (e.g. 168h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Sync: Sync{
			Backend:         backend,
			WireFormat:      wireFormat,
			TopicPrefix:     topicPrefix,
			SnapshotTimeout: snapshotTimeout,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Server: Server{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PruneInterval:    pruneInterval,
			JournalRetention: retention,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
