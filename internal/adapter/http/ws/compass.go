package wshandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/adapter/http/ws/dto"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/compass"
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/service/qibla"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/metrics"
	ws "github.com/ilyaskrnz/ezan-uygulamasi/pkg/wsHub"
)

type DeviceAuth interface {
	Authenticate(ctx context.Context, token string) (*models.Device, error)
}

type SettingsStore interface {
	Get(ctx context.Context, deviceID string) (*models.DeviceSettings, error)
	SetCalibration(ctx context.Context, deviceID string, offsetDegrees float64, source string) error
}

// session is the per-connection compass state. All mutation happens either on
// the socket read loop or behind mu (for calibration updates arriving from
// the broker).
type session struct {
	mu      sync.Mutex
	tracker *compass.HeadingTracker
	target  *models.BearingResult
}

// CompassGateway owns the live compass sockets. One heading tracker per
// connection, rekeyed by device id.
type CompassGateway struct {
	hub      *ws.ConnectionHub
	calc     qibla.Calculator
	auth     DeviceAuth
	settings SettingsStore

	alpha     float64
	tolerance float64

	mu       sync.Mutex
	sessions map[string]*session

	upgrader websocket.Upgrader
	l        logger.Logger
}

func NewCompassGateway(hub *ws.ConnectionHub, calc qibla.Calculator, auth DeviceAuth, settings SettingsStore, alpha, tolerance float64, l logger.Logger) *CompassGateway {
	if tolerance <= 0 {
		tolerance = qibla.DefaultToleranceDegrees
	}
	return &CompassGateway{
		hub:       hub,
		calc:      calc,
		auth:      auth,
		settings:  settings,
		alpha:     alpha,
		tolerance: tolerance,
		sessions:  make(map[string]*session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

// HandleWS godoc
// @Summary      Compass stream
// @Description  WebSocket endpoint streaming magnetometer samples up and compass frames down
// @Tags         Compass
// @Param        device_id  path   string  true  "Device identifier"
// @Param        token      query  string  true  "Device access token"
// @Success      101
// @Router       /ws/compass/{device_id} [get]
func (g *CompassGateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionHeadingStream)

	deviceID := r.PathValue("device_id")
	if deviceID == "" {
		http.Error(w, "device_id is required", http.StatusBadRequest)
		return
	}
	ctx = wrap.WithDeviceID(ctx, deviceID)

	d, err := g.authenticate(ctx, r)
	if err != nil {
		g.l.Warn(ctx, "compass socket rejected", "error", err.Error())
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if d.DeviceID != deviceID {
		http.Error(w, "token does not match device", http.StatusForbidden)
		return
	}

	socket, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.l.Error(wrap.ErrorCtx(ctx, err), "websocket upgrade failed", err)
		return
	}

	conn := ws.NewConn(ctx, deviceID, socket)
	if err := g.hub.Add(conn); err != nil {
		g.l.Error(wrap.ErrorCtx(ctx, err), "failed to register connection", err)
		conn.Close()
		return
	}

	sess := g.openSession(ctx, d)

	metrics.WebSocketConnectionsGauge.WithLabelValues("compass").Inc()
	g.l.Info(ctx, "compass stream opened", "platform", d.Platform)

	defer func() {
		metrics.WebSocketConnectionsGauge.WithLabelValues("compass").Dec()
		g.closeSession(deviceID, sess)
		g.hub.DeleteConn(conn)
		g.l.Info(ctx, "compass stream closed")
	}()

	if err := conn.Listen(func(msg map[string]any) error {
		return g.handleMessage(ctx, conn, sess, msg)
	}); err != nil {
		g.l.Debug(ctx, "compass stream listen ended", "reason", err.Error())
	}
}

// authenticate accepts the token either as a Bearer header or a query
// parameter; mobile websocket clients cannot always set headers.
func (g *CompassGateway) authenticate(ctx context.Context, r *http.Request) (*models.Device, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		header := r.Header.Get("Authorization")
		if len(header) > 7 && header[:7] == "Bearer " {
			token = header[7:]
		}
	}
	if token == "" {
		return nil, errors.New("missing token")
	}

	return g.auth.Authenticate(ctx, token)
}

// openSession builds the per-connection tracker, seeding the calibration
// offset and saved location from the device's stored settings.
func (g *CompassGateway) openSession(ctx context.Context, d *models.Device) *session {
	tracker := compass.NewHeadingTracker(compass.MapperForPlatform(types.Platform(d.Platform)), g.alpha)

	sess := &session{tracker: tracker}

	if stored, err := g.settings.Get(ctx, d.DeviceID); err == nil {
		tracker.SetCalibrationOffset(stored.CalibrationOffsetDegrees)
		if stored.Latitude != nil && stored.Longitude != nil {
			observer := models.GeoPoint{Latitude: *stored.Latitude, Longitude: *stored.Longitude}
			if result, err := g.calc.ToKaaba(observer); err == nil {
				sess.target = &result
			}
		}
	} else {
		g.l.Warn(ctx, "failed to seed session from settings", "error", err.Error())
	}

	g.mu.Lock()
	g.sessions[d.DeviceID] = sess
	g.mu.Unlock()

	return sess
}

// closeSession removes the session only if it is still the one this handler
// opened. After a reconnect the map holds the replacement's session, which the
// replaced handler must leave alone.
func (g *CompassGateway) closeSession(deviceID string, sess *session) {
	g.mu.Lock()
	if g.sessions[deviceID] == sess {
		delete(g.sessions, deviceID)
	}
	g.mu.Unlock()
}

func (g *CompassGateway) handleMessage(ctx context.Context, conn *ws.Conn, sess *session, raw map[string]any) error {
	var msg dto.CompassMsg
	b, err := json.Marshal(raw)
	if err != nil {
		return errorResponse(conn, "malformed message")
	}
	if err := json.Unmarshal(b, &msg); err != nil {
		return errorResponse(conn, "malformed message")
	}

	v := newValidator()
	msg.Validate(v)
	if !v.Valid() {
		return failedValidationResponse(conn, v.Errors)
	}

	deviceID := conn.DeviceID()

	sess.mu.Lock()
	switch msg.Type {
	case dto.MsgSample:
		sess.tracker.Update(msg.Sample())
		metrics.HeadingSamplesTotal.WithLabelValues("compass").Inc()

	case dto.MsgLocation:
		result, err := g.calc.ToKaaba(msg.Location())
		if err != nil {
			sess.mu.Unlock()
			return errorResponse(conn, err.Error())
		}
		sess.target = &result

	case dto.MsgCalibrateZero:
		sess.tracker.CalibrateToCurrentAsZero()
		g.persistOffset(ctx, deviceID, sess.tracker.CalibrationOffset())
		metrics.CalibrationEventsTotal.WithLabelValues("compass", "zero").Inc()

	case dto.MsgAdjust:
		sess.tracker.AdjustCalibration(*msg.Delta)
		g.persistOffset(ctx, deviceID, sess.tracker.CalibrationOffset())
		metrics.CalibrationEventsTotal.WithLabelValues("compass", "adjust").Inc()

	case dto.MsgReset:
		sess.tracker.ResetCalibration()
		g.persistOffset(ctx, deviceID, 0)
		metrics.CalibrationEventsTotal.WithLabelValues("compass", "reset").Inc()
	}
	frame := g.frame(sess)
	sess.mu.Unlock()

	return conn.Send(frame)
}

// persistOffset stores the new offset; the settings service publishes the
// change so other live sessions of the device follow.
func (g *CompassGateway) persistOffset(ctx context.Context, deviceID string, offset float64) {
	if err := g.settings.SetCalibration(ctx, deviceID, offset, "stream"); err != nil {
		g.l.Error(wrap.ErrorCtx(ctx, err), "failed to persist calibration offset", err)
	}
}

// frame builds the outbound update. Caller holds sess.mu.
func (g *CompassGateway) frame(sess *session) map[string]any {
	heading := sess.tracker.Heading()

	frame := models.CompassFrame{
		HeadingDegrees:    heading,
		RawHeadingDegrees: sess.tracker.RawHeading(),
	}
	if sess.target != nil {
		frame.TargetBearing = sess.target.BearingDegrees
		frame.DistanceKm = sess.target.DistanceKm
		frame.RelativeDirection = g.calc.Classify(sess.target.BearingDegrees, heading, g.tolerance)
	}

	out := map[string]any{
		"type":                       "frame",
		"calibration_offset_degrees": sess.tracker.CalibrationOffset(),
	}

	b, err := json.Marshal(frame)
	if err != nil {
		return out
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return out
	}
	for k, val := range m {
		out[k] = val
	}
	return out
}

// ApplyCalibration pushes a broker-delivered calibration change into the live
// session of the device, if one is connected. Changes made over the stream
// itself were already applied locally and are skipped.
func (g *CompassGateway) ApplyCalibration(ctx context.Context, msg models.CalibrationUpdateMessage) error {
	if msg.Source == "stream" {
		return nil
	}

	ctx = wrap.WithDeviceID(ctx, msg.DeviceID)

	g.mu.Lock()
	sess, ok := g.sessions[msg.DeviceID]
	g.mu.Unlock()
	if !ok {
		return nil
	}

	sess.mu.Lock()
	sess.tracker.SetCalibrationOffset(msg.OffsetDegrees)
	frame := g.frame(sess)
	sess.mu.Unlock()

	if err := g.hub.SendTo(msg.DeviceID, frame); err != nil {
		return fmt.Errorf("failed to push calibration frame: %w", err)
	}

	g.l.Info(ctx, "applied calibration update from broker", "offset", msg.OffsetDegrees)
	return nil
}
