package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/internal/utils"
	"github.com/MKhiriev/worldsync/models"
)

const (
	synchronizerPath = "/api/synchronizers/{host}/{port}"
	userAgent        = "syncctl"
)

type httpControlAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPControlAdapter constructs the HTTP implementation of
// [ControlAdapter]. It normalises cfg.HTTPAddress into a base URL (adding
// http:// when no scheme is given) and applies cfg.RequestTimeout to every
// call.
func NewHTTPControlAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ControlAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, userAgent)
	return &httpControlAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpControlAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var v models.VersionResponse
	err := h.do(h.request(ctx).SetResult(&v), resty.MethodGet, "/api/version", "version")
	return v, err
}

func (h *httpControlAdapter) ListSynchronizers(ctx context.Context) ([]models.SynchronizerInfo, error) {
	var infos []models.SynchronizerInfo
	err := h.do(h.request(ctx).SetResult(&infos), resty.MethodGet, "/api/synchronizers", "list synchronizers")
	return infos, err
}

func (h *httpControlAdapter) AddSynchronizer(ctx context.Context, req models.AddSynchronizerRequest) (models.SynchronizerInfo, error) {
	var info models.SynchronizerInfo
	err := h.do(h.request(ctx).SetBody(req).SetResult(&info), resty.MethodPost, "/api/synchronizers", "add synchronizer")
	return info, err
}

func (h *httpControlAdapter) GetSynchronizer(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error) {
	var info models.SynchronizerInfo
	err := h.do(h.at(ctx, addr).SetResult(&info), resty.MethodGet, synchronizerPath, "get synchronizer")
	return info, err
}

func (h *httpControlAdapter) RemoveSynchronizer(ctx context.Context, addr models.ServiceAddress) error {
	return h.do(h.at(ctx, addr), resty.MethodDelete, synchronizerPath, "remove synchronizer")
}

func (h *httpControlAdapter) Connect(ctx context.Context, addr models.ServiceAddress) (models.SynchronizerInfo, error) {
	var info models.SynchronizerInfo
	err := h.do(h.at(ctx, addr).SetResult(&info), resty.MethodPost, synchronizerPath+"/connect", "connect")
	return info, err
}

func (h *httpControlAdapter) Disconnect(ctx context.Context, addr models.ServiceAddress) error {
	return h.do(h.at(ctx, addr), resty.MethodPost, synchronizerPath+"/disconnect", "disconnect")
}

func (h *httpControlAdapter) CreateSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) error {
	return h.do(h.at(ctx, addr).SetBody(req), resty.MethodPost, synchronizerPath+"/session", "create session")
}

func (h *httpControlAdapter) DestroySession(ctx context.Context, addr models.ServiceAddress) error {
	return h.do(h.at(ctx, addr), resty.MethodDelete, synchronizerPath+"/session", "destroy session")
}

func (h *httpControlAdapter) JoinSession(ctx context.Context, addr models.ServiceAddress, req models.SessionRequest) (models.JoinResponse, error) {
	var resp models.JoinResponse
	err := h.do(h.at(ctx, addr).SetBody(req).SetResult(&resp), resty.MethodPost, synchronizerPath+"/session/join", "join session")
	return resp, err
}

func (h *httpControlAdapter) ExitSession(ctx context.Context, addr models.ServiceAddress) error {
	return h.do(h.at(ctx, addr), resty.MethodPost, synchronizerPath+"/session/exit", "exit session")
}

func (h *httpControlAdapter) RefreshSessionState(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error) {
	var resp models.EntitiesResponse
	err := h.do(h.at(ctx, addr).SetResult(&resp), resty.MethodPost, synchronizerPath+"/session/state", "refresh session state")
	return resp, err
}

func (h *httpControlAdapter) ListEntities(ctx context.Context, addr models.ServiceAddress) (models.EntitiesResponse, error) {
	var resp models.EntitiesResponse
	err := h.do(h.at(ctx, addr).SetResult(&resp), resty.MethodGet, synchronizerPath+"/entities", "list entities")
	return resp, err
}

func (h *httpControlAdapter) AddEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) (models.EntityResponse, error) {
	var resp models.EntityResponse
	err := h.do(h.at(ctx, addr).SetBody(req).SetResult(&resp), resty.MethodPost, synchronizerPath+"/entities", "add entity")
	return resp, err
}

func (h *httpControlAdapter) UpdateEntity(ctx context.Context, addr models.ServiceAddress, req models.EntityRequest) error {
	r := h.at(ctx, addr).SetPathParam("entityID", req.EntityID).SetBody(req)
	return h.do(r, resty.MethodPut, synchronizerPath+"/entities/{entityID}", "update entity")
}

func (h *httpControlAdapter) RemoveEntity(ctx context.Context, addr models.ServiceAddress, entityID string) error {
	r := h.at(ctx, addr).SetPathParam("entityID", entityID)
	return h.do(r, resty.MethodDelete, synchronizerPath+"/entities/{entityID}", "remove entity")
}

func (h *httpControlAdapter) SendMessage(ctx context.Context, addr models.ServiceAddress, req models.MessageRequest) error {
	return h.do(h.at(ctx, addr).SetBody(req), resty.MethodPost, synchronizerPath+"/messages", "send message")
}

func (h *httpControlAdapter) GetUserTag(ctx context.Context, addr models.ServiceAddress, clientID string) (models.UserTagResponse, error) {
	var resp models.UserTagResponse
	r := h.at(ctx, addr).SetPathParam("clientID", clientID).SetResult(&resp)
	err := h.do(r, resty.MethodGet, synchronizerPath+"/users/{clientID}", "get user tag")
	return resp, err
}

func (h *httpControlAdapter) ListJournal(ctx context.Context, filter models.JournalFilter) (models.JournalResponse, error) {
	var resp models.JournalResponse

	r := h.request(ctx).SetResult(&resp)
	if filter.Service != "" {
		r.SetQueryParam("service", filter.Service)
	}
	if filter.SessionID != "" {
		r.SetQueryParam("session_id", filter.SessionID)
	}
	if filter.Kind != "" {
		r.SetQueryParam("kind", string(filter.Kind))
	}
	if filter.Limit > 0 {
		r.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	err := h.do(r, resty.MethodGet, "/api/journal", "list journal")
	return resp, err
}

func (h *httpControlAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// at returns a request bound to the synchronizer at addr.
func (h *httpControlAdapter) at(ctx context.Context, addr models.ServiceAddress) *resty.Request {
	return h.request(ctx).SetPathParams(map[string]string{
		"host": addr.Host,
		"port": strconv.Itoa(addr.Port),
	})
}

func (h *httpControlAdapter) do(r *resty.Request, method, path, op string) error {
	resp, err := r.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpControlAdapter.do").
			Str("op", op).Int("status", resp.StatusCode()).Err(err).Msg("control API error")
		return err
	}
	return nil
}
