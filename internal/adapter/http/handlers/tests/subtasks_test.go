package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AndrewAitken/simp/internal/adapter/http/dto"
	"github.com/AndrewAitken/simp/internal/core/domain"
	"github.com/AndrewAitken/simp/pkg/apierrors"
)

func TestTaskHandler_AddSubtask_Success(t *testing.T) {
	withSubtask := sampleTask()
	withSubtask.Subtasks = append(withSubtask.Subtasks, domain.SubTask{
		ID: "sub-2", Title: "Test microphone",
	})

	serviceMock := new(taskServiceMock)
	serviceMock.On("AddSubtask", mock.Anything, "task-1", "Test microphone").
		Return(withSubtask, nil).Once()

	rec := doRequest(newTestRouter(serviceMock), http.MethodPost, "/api/tasks/task-1/subtasks",
		`{"title":"Test microphone"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Subtasks, 2)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AddSubtask_BlankTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)

	rec := doRequest(newTestRouter(serviceMock), http.MethodPost, "/api/tasks/task-1/subtasks",
		`{"title":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The subtask payload is invalid.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "AddSubtask")
}

func TestTaskHandler_AddSubtask_TaskNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("AddSubtask", mock.Anything, "missing", "x").
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	rec := doRequest(newTestRouter(serviceMock), http.MethodPost, "/api/tasks/missing/subtasks",
		`{"title":"x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_RemoveSubtask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("RemoveSubtask", mock.Anything, "task-1", "sub-1").Return(nil).Once()

	rec := doRequest(newTestRouter(serviceMock), http.MethodDelete,
		"/api/tasks/task-1/subtasks/sub-1", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleSubtaskStatus_SubtaskNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleSubtaskStatus", mock.Anything, "task-1", "missing").
		Return(domain.Task{}, domain.ErrSubtaskNotFound).Once()

	rec := doRequest(newTestRouter(serviceMock), http.MethodPost,
		"/api/tasks/task-1/subtasks/missing/toggle", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Subtask not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_SuggestSubtasks(t *testing.T) {
	generated := []domain.SubTask{
		{ID: "g1", Title: "Gather reference material"},
		{ID: "g2", Title: "Outline the structure"},
		{ID: "g3", Title: "Write the first draft"},
		{ID: "g4", Title: "Edit for clarity"},
		{ID: "g5", Title: "Proofread the final text"},
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("GenerateSubtasksList", "write a blog post").Return(generated).Once()

	rec := doRequest(newTestRouter(serviceMock), http.MethodPost, "/api/subtasks/suggestions",
		`{"text":"write a blog post"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.SubtaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 5)
	require.Equal(t, "Write the first draft", got[2].Title)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GenerateSubtasks_TaskNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GenerateSubtasksForTask", mock.Anything, "missing", "anything").
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	rec := doRequest(newTestRouter(serviceMock), http.MethodPost,
		"/api/tasks/missing/subtasks/generate", `{"text":"anything"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}
