//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutritrack/backend/config"
	"github.com/nutritrack/backend/internal/infra/dependency"
	"github.com/nutritrack/backend/internal/integration/persistence/model"
	"github.com/nutritrack/backend/test/integration/mock"
)

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	timeMock    *mock.Time
	userID      uuid.UUID
	otherUserID uuid.UUID
	goalIDs     map[string]uuid.UUID
	foodIDs     map[string]uuid.UUID
	lastFoodID  uuid.UUID
	lastMealID  uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testServerPort int
	sharedClock    = mock.NewTime()
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: sharedClock,
		db:       mock.NewDb(model.All()...),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should start with "([^"]*)"$`, test.theResponseFieldShouldStartWith)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	registerNutritionSteps(ctx, test)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.userID = uuid.New()
	t.otherUserID = uuid.New()
	t.goalIDs = make(map[string]uuid.UUID)
	t.foodIDs = make(map[string]uuid.UUID)
	t.lastFoodID = uuid.Nil
	t.lastMealID = uuid.Nil
	t.timeMock.Reset()

	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		redisClient := mock.NewRedis()

		injector := dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
			Redis:    redisClient,
			Clock:    t.timeMock,
			Location: time.UTC,
			CacheHealthChecker: func() bool {
				return redisClient.Ping(context.Background()).Err() == nil
			},
		})
		engine := injector.Router.Setup("test")

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders expands {{user_id}}, {{goal_id:TYPE}}, {{food_id:Name}} and friends.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{user_id}}", t.userID.String())
	content = strings.ReplaceAll(content, "{{other_user_id}}", t.otherUserID.String())
	content = strings.ReplaceAll(content, "{{meal_id}}", t.lastMealID.String())
	content = strings.ReplaceAll(content, "{{food_id}}", t.lastFoodID.String())
	content = strings.ReplaceAll(content, "{{random_id}}", uuid.NewString())

	for goalType, id := range t.goalIDs {
		content = strings.ReplaceAll(content, "{{goal_id:"+goalType+"}}", id.String())
	}
	for name, id := range t.foodIDs {
		content = strings.ReplaceAll(content, "{{food_id:"+name+"}}", id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var decoded any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = decoded
	t.captureIDs(decoded)

	return nil
}

// captureIDs remembers ids of created resources so later steps can reference them.
func (t *testContext) captureIDs(body any) {
	switch v := body.(type) {
	case []any:
		// Goal hierarchies come back as arrays
		for _, element := range v {
			if goal, ok := element.(map[string]any); ok {
				t.captureGoal(goal)
			}
		}
	case map[string]any:
		id, err := uuid.Parse(fmt.Sprintf("%v", v["id"]))
		if err != nil {
			return
		}
		if _, isMeal := v["items"]; isMeal {
			t.lastMealID = id
			return
		}
		if name, isFood := v["name"].(string); isFood {
			t.lastFoodID = id
			t.foodIDs[name] = id
			return
		}
		t.captureGoal(v)
	}
}

func (t *testContext) captureGoal(goal map[string]any) {
	goalType, ok := goal["type"].(string)
	if !ok {
		return
	}
	if id, err := uuid.Parse(fmt.Sprintf("%v", goal["id"])); err == nil {
		t.goalIDs[goalType] = id
	}
}
