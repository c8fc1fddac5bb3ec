package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ggplay-backend/common"
	"ggplay-backend/database"
	"ggplay-backend/model"
	"ggplay-backend/service/auth_service"
	"ggplay-backend/service/build_service"
	"ggplay-backend/service/metaverse_service"
	"ggplay-backend/service/subscription_service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory stores backing the HTTP-level tests.

type memUsers struct {
	mu    sync.Mutex
	users map[string]*model.User
	subs  map[string]*model.Subscription
}

func newMemUsers() *memUsers {
	return &memUsers{
		users: make(map[string]*model.User),
		subs:  make(map[string]*model.Subscription),
	}
}

func (m *memUsers) CreateWithSubscription(user *model.User, sub *model.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	sub.UserID = user.ID
	scp := *sub
	m.subs[user.ID] = &scp
	return nil
}

func (m *memUsers) GetByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memUsers) GetByID(id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetSubByUserID(userID string) (*model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (m *memUsers) UpdateSub(sub *model.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sub
	m.subs[sub.UserID] = &cp
	return nil
}

// subStoreAdapter exposes memUsers as a subscription store.
type subStoreAdapter struct{ users *memUsers }

func (a subStoreAdapter) GetByUserID(userID string) (*model.Subscription, error) {
	return a.users.GetSubByUserID(userID)
}

func (a subStoreAdapter) Update(sub *model.Subscription) error {
	return a.users.UpdateSub(sub)
}

type memMetaverses struct {
	mu   sync.Mutex
	rows map[string]*model.Metaverse
}

func newMemMetaverses() *memMetaverses {
	return &memMetaverses{rows: make(map[string]*model.Metaverse)}
}

func (m *memMetaverses) Create(mv *model.Metaverse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *mv
	m.rows[mv.ID] = &cp
	return nil
}

func (m *memMetaverses) GetByID(id string) (*model.Metaverse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *mv
	return &cp, nil
}

func (m *memMetaverses) GetByIDForUser(id, userID string) (*model.Metaverse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.rows[id]
	if !ok || mv.UserID != userID {
		return nil, database.ErrNotFound
	}
	cp := *mv
	return &cp, nil
}

func (m *memMetaverses) ListByUser(userID string) ([]*model.Metaverse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Metaverse
	for _, mv := range m.rows {
		if mv.UserID == userID {
			cp := *mv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memMetaverses) SetStatus(id string, status model.MetaverseStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	mv.Status = status
	return nil
}

func (m *memMetaverses) SetStatusPlayers(id string, status model.MetaverseStatus, players int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	mv.Status = status
	mv.PlayersOnline = players
	return nil
}

func (m *memMetaverses) AccrueUsage(id string, minutes, hours int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	mv.UptimeMinutes += minutes
	mv.HoursUsed += hours
	return nil
}

func (m *memMetaverses) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memProjects struct {
	mu   sync.Mutex
	rows map[string]*model.Project
}

func newMemProjects() *memProjects {
	return &memProjects{rows: make(map[string]*model.Project)}
}

func (m *memProjects) add(p *model.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.rows[p.ID] = &cp
}

func (m *memProjects) GetByID(id string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type memJobs struct {
	mu   sync.Mutex
	rows map[string]*model.BuildJob
}

func newMemJobs() *memJobs {
	return &memJobs{rows: make(map[string]*model.BuildJob)}
}

func (m *memJobs) Create(job *model.BuildJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.rows[job.ID] = &cp
	return nil
}

func (m *memJobs) GetByID(id string) (*model.BuildJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memJobs) SetStatus(id string, status model.BuildStatus, logs string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	job.Status = status
	job.Logs = logs
	return nil
}

// noopScheduler never fires; lifecycle actions stay in their transient
// states, which is all these HTTP tests need.
type noopScheduler struct{}

func (noopScheduler) AfterFunc(d time.Duration, fn func()) {}

func (noopScheduler) NewTicker(d time.Duration) common.Ticker { return noopTicker{} }

type noopTicker struct{}

func (noopTicker) C() <-chan time.Time { return nil }
func (noopTicker) Stop()               {}

type testEnv struct {
	router   *gin.Engine
	tokens   *auth_service.TokenService
	users    *memUsers
	mvs      *memMetaverses
	projects *memProjects
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newMemUsers()
	tokens := auth_service.NewTokenService("test-secret", time.Hour)
	authService := auth_service.NewAuthService(users, tokens)

	mvs := newMemMetaverses()
	sched := noopScheduler{}
	tracker := metaverse_service.NewUsageTracker(mvs, sched, time.Minute)
	lifecycle := metaverse_service.NewLifecycleService(mvs, tracker, sched, metaverse_service.LifecycleOptions{Seed: 1})

	subs := subscription_service.NewSubscriptionService(subStoreAdapter{users: users})

	projects := newMemProjects()
	builds := build_service.NewBuildService(projects, newMemJobs(), sched, build_service.BuildOptions{
		ProcessingDelay: 3 * time.Second,
		DoneDelay:       10 * time.Second,
	})

	authHandler := NewAuthHandler(authService)
	metaverseHandler := NewMetaverseHandler(lifecycle)
	subscriptionHandler := NewSubscriptionHandler(subs)
	buildHandler := NewBuildHandler(builds)
	authRequired := AuthMiddleware(tokens)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authRequired, authHandler.Me)
	v1.POST("/metaverses", authRequired, metaverseHandler.Create)
	v1.GET("/metaverses", authRequired, metaverseHandler.List)
	v1.GET("/metaverses/:id", authRequired, metaverseHandler.Get)
	v1.POST("/metaverses/start/:id", authRequired, metaverseHandler.Start)
	v1.DELETE("/metaverses/delete/:id", authRequired, metaverseHandler.Delete)
	v1.GET("/subscription", authRequired, subscriptionHandler.Get)
	v1.POST("/subscription/buy-hours", authRequired, subscriptionHandler.BuyHours)
	v1.POST("/build", buildHandler.Create)
	v1.GET("/build/:id", buildHandler.Get)

	return &testEnv{router: r, tokens: tokens, users: users, mvs: mvs, projects: projects}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestHTTP_SignupLoginMe(t *testing.T) {
	env := newTestEnv(t)

	token := env.signup(t, "demo@gg.play")

	w := env.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "demo@gg.play")

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "demo@gg.play",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "demo@gg.play",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHTTP_SignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "demo@gg.play")

	w := env.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":    "demo@gg.play",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHTTP_AuthRequired(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/metaverses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), auth_service.CodeTokenInvalid)
}

func TestHTTP_ExpiredTokenCode(t *testing.T) {
	env := newTestEnv(t)

	expired := auth_service.NewTokenService("test-secret", -time.Minute)
	token, err := expired.Generate("user-1", "demo@gg.play")
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/v1/metaverses", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), auth_service.CodeTokenExpired)
}

func TestHTTP_MetaverseLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "demo@gg.play")

	w := env.do(t, http.MethodPost, "/api/v1/metaverses", token, gin.H{
		"name": "Ocean Explorers",
		"kind": "THREE_D",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Region string `json:"region"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "STOPPED", created.Data.Status)
	assert.Equal(t, "ASIA", created.Data.Region)

	w = env.do(t, http.MethodPost, "/api/v1/metaverses/start/"+created.Data.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "STARTING")

	// Starting an instance that is already STARTING violates the
	// precondition.
	w = env.do(t, http.MethodPost, "/api/v1/metaverses/start/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/metaverses/delete/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/metaverses/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTP_MetaverseKindValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "demo@gg.play")

	w := env.do(t, http.MethodPost, "/api/v1/metaverses", token, gin.H{
		"name": "Broken",
		"kind": "FOUR_D",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTP_MetaverseOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signup(t, "owner@gg.play")
	intruder := env.signup(t, "intruder@gg.play")

	w := env.do(t, http.MethodPost, "/api/v1/metaverses", owner, gin.H{
		"name": "Private World",
		"kind": "TWO_D",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, http.MethodGet, "/api/v1/metaverses/"+created.Data.ID, intruder, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTP_SubscriptionBuyHours(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "demo@gg.play")

	w := env.do(t, http.MethodGet, "/api/v1/subscription", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INDIE")

	w = env.do(t, http.MethodPost, "/api/v1/subscription/buy-hours", token, gin.H{
		"hours": 50,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Out of range per request validation.
	w = env.do(t, http.MethodPost, "/api/v1/subscription/buy-hours", token, gin.H{
		"hours": 501,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTP_BuildRoutesNeedNoToken(t *testing.T) {
	env := newTestEnv(t)

	// An unknown project falls through to the handler, not the auth
	// middleware.
	w := env.do(t, http.MethodPost, "/api/v1/build", "", gin.H{
		"project_id": "missing",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "project not found")

	env.projects.add(&model.Project{ID: "p1", Name: "gg.play default"})

	w = env.do(t, http.MethodPost, "/api/v1/build", "", gin.H{
		"project_id": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			JobID string `json:"job_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.JobID)

	w = env.do(t, http.MethodGet, "/api/v1/build/"+created.Data.JobID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "QUEUED")
}
