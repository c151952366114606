package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/worldsync/internal/adapter"
	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, args []string) error
}

// App dispatches syncctl subcommands to the control API.
type App struct {
	adapter adapter.ControlAdapter
	build   models.AppBuildInfo
	out     io.Writer

	commands []command

	logger *logger.Logger
}

func NewApp(controlAdapter adapter.ControlAdapter, build models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: controlAdapter,
		build:   build,
		out:     out,
		logger:  logger,
	}
	a.commands = a.register()
	return a
}

func (a *App) register() []command {
	return []command{
		{"version", "version", "print client and daemon versions", a.version},
		{"list", "list", "list synchronizers", a.list},
		{"add", "add HOST:PORT [--tls] [--transport tcp|websocket]", "add a synchronizer", a.add},
		{"show", "show HOST:PORT", "show one synchronizer", a.show},
		{"remove", "remove HOST:PORT", "remove a synchronizer", a.remove},
		{"connect", "connect HOST:PORT", "connect a synchronizer to its broker", a.connect},
		{"disconnect", "disconnect HOST:PORT", "disconnect a synchronizer", a.disconnect},
		{"session", "session create|destroy|join|exit|state HOST:PORT [--id UUID] [--tag TAG]", "manage the session", a.session},
		{"entities", "entities HOST:PORT", "list the entity registry", a.entities},
		{"entity", "entity add|update|remove HOST:PORT [ID] [state flags]", "manage local entities", a.entity},
		{"send", "send HOST:PORT --topic TOPIC [--payload TEXT] [--qos N]", "publish an application message", a.send},
		{"user", "user HOST:PORT CLIENT_ID", "look up a participant's user tag", a.user},
		{"journal", "journal [--service HOST:PORT] [--session UUID] [--kind KIND] [--limit N]", "list journal records", a.journal},
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	i := slices.IndexFunc(a.commands, func(c command) bool { return c.name == args[0] })
	if i < 0 {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", args[0]).Msg("running command")
	return a.commands[i].run(ctx, args[1:])
}

func (a *App) usage() {
	var b strings.Builder
	b.WriteString("usage: syncctl [global flags] COMMAND [args]\n\ncommands:\n")
	for _, c := range a.commands {
		fmt.Fprintf(&b, "  %-12s %s\n      %s\n", c.name, c.summary, c.usage)
	}
	_, _ = io.WriteString(a.out, b.String())
}

// print writes v as indented JSON.
func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newFlagSet returns a flag set for cmd whose errors are returned, not
// printed and exited on.
func (a *App) newFlagSet(cmd string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseAddress reads the HOST:PORT positional argument at index i.
func parseAddress(args []string, i int) (models.ServiceAddress, error) {
	if len(args) <= i {
		return models.ServiceAddress{}, fmt.Errorf("%w: missing HOST:PORT", ErrUsage)
	}

	var addr config.NetAddress
	if err := addr.Set(args[i]); err != nil {
		return models.ServiceAddress{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return models.ServiceAddress{Host: addr.Host, Port: addr.Port}, nil
}

// parseArgs parses fs and returns the positional arguments, requiring at
// least n of them.
func parseArgs(fs *pflag.FlagSet, args []string, n int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() < n {
		return nil, fmt.Errorf("%w: %s needs %d argument(s)", ErrUsage, fs.Name(), n)
	}
	return fs.Args(), nil
}
