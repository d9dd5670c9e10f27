package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"isolated_box/internal/control"
	"isolated_box/internal/models"
	"isolated_box/internal/sensor"
	"isolated_box/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockBox struct {
	configureErr error
	decision     service.Decision
	compErr      error
	targetC      float64
	targetErr    error
	setpoints    service.Setpoints
	snapshot     models.BoxState

	lastMin, lastMax float64
	lastTempC        float64
	lastPoint        control.Point
	compCalls        int
}

func (m *mockBox) Configure(ctx context.Context, minC, maxC float64) error {
	m.lastMin, m.lastMax = minC, maxC
	return m.configureErr
}
func (m *mockBox) Compensate(ctx context.Context, tempC float64) (service.Decision, error) {
	m.compCalls++
	m.lastTempC = tempC
	return m.decision, m.compErr
}
func (m *mockBox) SetTarget(ctx context.Context, p control.Point) (float64, error) {
	m.lastPoint = p
	return m.targetC, m.targetErr
}
func (m *mockBox) Setpoints() service.Setpoints { return m.setpoints }
func (m *mockBox) Target() float64              { return m.targetC }
func (m *mockBox) Snapshot() models.BoxState    { return m.snapshot }

type mockMonitoring struct {
	state models.BoxState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.BoxState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	resp     []models.BoxEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.BoxEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockPipeline struct {
	ingestErr error
	depth     int
	recent    []models.StoredSample
	recentErr error

	ingested  []models.SampleRecord
	lastLimit int
}

func (m *mockPipeline) Run(ctx context.Context, src sensor.Source, tick time.Duration) {
	<-ctx.Done()
}
func (m *mockPipeline) Ingest(ctx context.Context, rec models.SampleRecord) error {
	if m.ingestErr != nil {
		return m.ingestErr
	}
	m.ingested = append(m.ingested, rec)
	m.depth++
	return nil
}
func (m *mockPipeline) QueueDepth() int { return m.depth }
func (m *mockPipeline) Recent(ctx context.Context, limit int) ([]models.StoredSample, error) {
	m.lastLimit = limit
	return m.recent, m.recentErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
