//go:build integration
// +build integration

package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/AndrewAitken/simp/internal/adapter/db"
	httpadapter "github.com/AndrewAitken/simp/internal/adapter/http"
	"github.com/AndrewAitken/simp/internal/adapter/http/dto"
	"github.com/AndrewAitken/simp/internal/adapter/http/handlers"
	"github.com/AndrewAitken/simp/internal/adapter/notify"
	appservice "github.com/AndrewAitken/simp/internal/app/service"
	"github.com/AndrewAitken/simp/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.IntegrationSuiteBase.SetupTest()
	s.router = s.buildRouter()
}

func (s *TasksIntegrationSuite) buildRouter() *gin.Engine {
	stateRepo, err := dbadapter.NewStateRepository(s.DB)
	s.Require().NoError(err)

	taskService, err := appservice.NewTaskService(context.Background(), stateRepo)
	s.Require().NoError(err)

	router := gin.New()
	healthHandler := handlers.NewHealthHandler(s.DB)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notify.NewToastFeed(10))
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler, notificationHandler)
	return router
}

func (s *TasksIntegrationSuite) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) TestFirstRunSeedsExampleTasks() {
	rec := s.request(http.MethodGet, "/api/tasks", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 6)
	s.Require().Equal("Record podcast video", got[0].Title)

	for _, item := range got {
		s.Require().NotEmpty(item.ID)
		s.Require().NotEmpty(item.Title)
		s.Require().NotEmpty(item.Status)
		s.Require().NotEmpty(item.Category)
		s.Require().NotEmpty(item.CreatedAt)
	}
}

func (s *TasksIntegrationSuite) TestTaskLifecycle() {
	rec := s.request(http.MethodPost, "/api/tasks",
		`{"title":"Buy milk","category":"today","time":"14:00","reminder":"1hour"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().Equal("pending", created.Status)
	s.Require().Equal("normal", created.Priority)
	s.Require().Empty(created.Subtasks)

	rec = s.request(http.MethodPost, "/api/tasks/"+created.ID+"/toggle", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var toggled dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &toggled))
	s.Require().Equal("completed", toggled.Status)

	rec = s.request(http.MethodPost, "/api/tasks/"+created.ID+"/subtasks", `{"title":"From the corner shop"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodDelete, "/api/tasks/"+created.ID, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.request(http.MethodGet, "/api/tasks/"+created.ID, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var apiErr apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &apiErr))
	s.Require().Equal(http.StatusNotFound, apiErr.ErrDetails.Code)
}

func (s *TasksIntegrationSuite) TestStateSurvivesServiceRestart() {
	rec := s.request(http.MethodPost, "/api/tasks", `{"title":"Water plants","category":"tomorrow"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	// Rebuild the whole stack on the same database: the second run must
	// load persisted state instead of reseeding.
	s.router = s.buildRouter()

	rec = s.request(http.MethodGet, "/api/tasks/"+created.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var reloaded dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reloaded))
	s.Require().Equal("Water plants", reloaded.Title)
	s.Require().Equal(created.CreatedAt, reloaded.CreatedAt)

	rec = s.request(http.MethodGet, "/api/tasks", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var all []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &all))
	s.Require().Len(all, 7)
}

func (s *TasksIntegrationSuite) TestFocusView() {
	for i := 0; i < 4; i++ {
		rec := s.request(http.MethodPost, "/api/tasks", `{"title":"Deep work","priority":"focus"}`)
		s.Require().Equal(http.StatusCreated, rec.Code)
	}

	rec := s.request(http.MethodGet, "/api/tasks/focus", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 3)
	for _, item := range got {
		s.Require().Equal("focus", item.Priority)
		s.Require().Equal("pending", item.Status)
	}
}

func (s *TasksIntegrationSuite) TestGenerateSubtasksForTask() {
	rec := s.request(http.MethodPost, "/api/tasks", `{"title":"Spring cleaning"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.request(http.MethodPost, "/api/tasks/"+created.ID+"/subtasks/generate",
		`{"text":"clean the apartment"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Subtasks, 5)
	s.Require().Equal("Clear away the clutter", got.Subtasks[0].Title)
}

func (s *TasksIntegrationSuite) TestHealthReport() {
	rec := s.request(http.MethodGet, "/api/health/report", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlers.HealthAdvanced
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(handlers.StatusOk, got.Status.Storage)
}
