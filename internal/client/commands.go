package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/worldsync/models"
)

func (a *App) version(ctx context.Context, _ []string) error {
	out := struct {
		Client models.VersionResponse  `json:"client"`
		Daemon *models.VersionResponse `json:"daemon,omitempty"`
		Error  string                  `json:"daemon_error,omitempty"`
	}{Client: a.build.Response()}

	daemon, err := a.adapter.Version(ctx)
	if err != nil {
		out.Error = err.Error()
	} else {
		out.Daemon = &daemon
	}
	return a.print(out)
}

func (a *App) list(ctx context.Context, _ []string) error {
	infos, err := a.adapter.ListSynchronizers(ctx)
	if err != nil {
		return err
	}
	if infos == nil {
		infos = []models.SynchronizerInfo{}
	}
	return a.print(infos)
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	useTLS := fs.Bool("tls", false, "use TLS to reach the broker")
	transport := fs.String("transport", string(models.TransportTCP), "broker transport (tcp, websocket)")

	rest, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	addr, err := parseAddress(rest, 0)
	if err != nil {
		return err
	}

	info, err := a.adapter.AddSynchronizer(ctx, models.AddSynchronizerRequest{
		Host:      addr.Host,
		Port:      addr.Port,
		UseTLS:    *useTLS,
		Transport: models.TransportKind(*transport),
	})
	if err != nil {
		return err
	}
	return a.print(info)
}

func (a *App) show(ctx context.Context, args []string) error {
	addr, err := parseAddress(args, 0)
	if err != nil {
		return err
	}

	info, err := a.adapter.GetSynchronizer(ctx, addr)
	if err != nil {
		return err
	}
	return a.print(info)
}

func (a *App) remove(ctx context.Context, args []string) error {
	addr, err := parseAddress(args, 0)
	if err != nil {
		return err
	}
	return a.adapter.RemoveSynchronizer(ctx, addr)
}

func (a *App) connect(ctx context.Context, args []string) error {
	addr, err := parseAddress(args, 0)
	if err != nil {
		return err
	}

	info, err := a.adapter.Connect(ctx, addr)
	if err != nil {
		return err
	}
	return a.print(info)
}

func (a *App) disconnect(ctx context.Context, args []string) error {
	addr, err := parseAddress(args, 0)
	if err != nil {
		return err
	}
	return a.adapter.Disconnect(ctx, addr)
}

func (a *App) session(ctx context.Context, args []string) error {
	fs := a.newFlagSet("session")
	id := fs.String("id", "", "session UUID")
	tag := fs.String("tag", "", "session tag on create, user tag on join")

	rest, err := parseArgs(fs, args, 2)
	if err != nil {
		return err
	}
	addr, err := parseAddress(rest, 1)
	if err != nil {
		return err
	}
	req := models.SessionRequest{SessionID: *id, Tag: *tag}

	switch rest[0] {
	case "create":
		return a.adapter.CreateSession(ctx, addr, req)
	case "destroy":
		return a.adapter.DestroySession(ctx, addr)
	case "join":
		resp, err := a.adapter.JoinSession(ctx, addr, req)
		if err != nil {
			return err
		}
		return a.print(resp)
	case "exit":
		return a.adapter.ExitSession(ctx, addr)
	case "state":
		resp, err := a.adapter.RefreshSessionState(ctx, addr)
		if err != nil {
			return err
		}
		return a.print(resp)
	default:
		return fmt.Errorf("%w: session %q", ErrUnknownCommand, rest[0])
	}
}

func (a *App) entities(ctx context.Context, args []string) error {
	addr, err := parseAddress(args, 0)
	if err != nil {
		return err
	}

	resp, err := a.adapter.ListEntities(ctx, addr)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) entity(ctx context.Context, args []string) error {
	fs := a.newFlagSet("entity")
	sf := bindStateFlags(fs)

	rest, err := parseArgs(fs, args, 2)
	if err != nil {
		return err
	}
	addr, err := parseAddress(rest, 1)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "add":
		req, err := sf.request()
		if err != nil {
			return err
		}
		if len(rest) > 2 {
			req.EntityID = rest[2]
		}
		resp, err := a.adapter.AddEntity(ctx, addr, req)
		if err != nil {
			return err
		}
		return a.print(resp)
	case "update":
		if len(rest) < 3 {
			return fmt.Errorf("%w: entity update needs an entity id", ErrUsage)
		}
		req, err := sf.request()
		if err != nil {
			return err
		}
		req.EntityID = rest[2]
		return a.adapter.UpdateEntity(ctx, addr, req)
	case "remove":
		if len(rest) < 3 {
			return fmt.Errorf("%w: entity remove needs an entity id", ErrUsage)
		}
		return a.adapter.RemoveEntity(ctx, addr, rest[2])
	default:
		return fmt.Errorf("%w: entity %q", ErrUnknownCommand, rest[0])
	}
}

func (a *App) send(ctx context.Context, args []string) error {
	fs := a.newFlagSet("send")
	topic := fs.String("topic", "", "application topic")
	payload := fs.String("payload", "", "message payload")
	qos := fs.Int("qos", -1, "QoS level 0-2; the daemon default when omitted")

	rest, err := parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	addr, err := parseAddress(rest, 0)
	if err != nil {
		return err
	}

	req := models.MessageRequest{Topic: *topic, Payload: *payload}
	if *qos >= 0 {
		q := models.QoS(*qos)
		req.QoS = &q
	}
	return a.adapter.SendMessage(ctx, addr, req)
}

func (a *App) user(ctx context.Context, args []string) error {
	addr, err := parseAddress(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: user needs a client id", ErrUsage)
	}

	resp, err := a.adapter.GetUserTag(ctx, addr, args[1])
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) journal(ctx context.Context, args []string) error {
	fs := a.newFlagSet("journal")
	service := fs.String("service", "", "only records of the synchronizer at HOST:PORT")
	sessionID := fs.String("session", "", "only records of this session")
	kind := fs.String("kind", "", "only records of this kind (entity_create, entity_update, entity_destroy, app_message)")
	limit := fs.Uint64("limit", 0, "maximum number of records")

	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}

	resp, err := a.adapter.ListJournal(ctx, models.JournalFilter{
		Service:   *service,
		SessionID: *sessionID,
		Kind:      models.JournalKind(*kind),
		Limit:     *limit,
	})
	if err != nil {
		return err
	}
	return a.print(resp)
}
