package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/adiprasetyo/task-tracker-api/internal/models"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	env     testEnv
	ownerID uint64
	token   string
	project *models.Project
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.ownerID, suite.token = suite.env.registerAndLogin(suite.T(), "owner@example.com")

	suite.project = &models.Project{
		ProjectName: "Test Project",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.env.db.Create(suite.project).Error)
}

func (suite *TaskHandlerTestSuite) createTask(userID uint64, title string) *models.Task {
	task := &models.Task{
		ProjectID: suite.project.ID,
		UserID:    userID,
		Title:     title,
		Status:    "pending",
		DueDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.env.db.Create(task).Error)
	return task
}

func (suite *TaskHandlerTestSuite) taskPayload() map[string]interface{} {
	return map[string]interface{}{
		"project_id": suite.project.ID,
		"user_id":    suite.ownerID,
		"title":      "Write report",
		"status":     "pending",
		"due_date":   "2024-06-01",
	}
}

func (suite *TaskHandlerTestSuite) TestStore() {
	w := suite.env.doJSON(suite.T(), http.MethodPost, "/tasks", suite.taskPayload(), "")

	suite.Equal(http.StatusCreated, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("Task created successfully", body["message"])

	data := body["data"].(map[string]interface{})
	suite.Equal("Write report", data["title"])
	suite.Equal("2024-06-01", data["due_date"])
	suite.Nil(data["description"])
}

func (suite *TaskHandlerTestSuite) TestStore_DanglingProject() {
	payload := suite.taskPayload()
	payload["project_id"] = 9999

	w := suite.env.doJSON(suite.T(), http.MethodPost, "/tasks", payload, "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	fields := decodeBody(suite.T(), w)["message"].(map[string]interface{})
	suite.Equal("The selected project_id is invalid.", fields["project_id"])

	var count int64
	suite.env.db.Model(&models.Task{}).Count(&count)
	suite.Zero(count, "no task row is created when a reference is dangling")
}

func (suite *TaskHandlerTestSuite) TestStore_DanglingUser() {
	payload := suite.taskPayload()
	payload["user_id"] = 9999

	w := suite.env.doJSON(suite.T(), http.MethodPost, "/tasks", payload, "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	fields := decodeBody(suite.T(), w)["message"].(map[string]interface{})
	suite.Equal("The selected user_id is invalid.", fields["user_id"])
}

func (suite *TaskHandlerTestSuite) TestStore_BadDueDate() {
	payload := suite.taskPayload()
	payload["due_date"] = "June 1st"

	w := suite.env.doJSON(suite.T(), http.MethodPost, "/tasks", payload, "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	fields := decodeBody(suite.T(), w)["message"].(map[string]interface{})
	suite.Equal("The due_date is not a valid date.", fields["due_date"])
}

func (suite *TaskHandlerTestSuite) TestShow() {
	task := suite.createTask(suite.ownerID, "Visible")

	w := suite.env.doJSON(suite.T(), http.MethodGet, fmt.Sprintf("/tasks/%d", task.ID), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("Task retrieved successfully", body["message"])
	suite.Equal("Visible", body["data"].(map[string]interface{})["title"])
}

func (suite *TaskHandlerTestSuite) TestShow_MissingIs500() {
	w := suite.env.doJSON(suite.T(), http.MethodGet, "/tasks/9999", nil, "")
	suite.Equal(http.StatusInternalServerError, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Contains(body["message"], "An error occurred while retrieving the task:")
}

func (suite *TaskHandlerTestSuite) TestUpdate_Owner() {
	task := suite.createTask(suite.ownerID, "Before")

	payload := suite.taskPayload()
	payload["title"] = "After"

	w := suite.env.doJSON(suite.T(), http.MethodPut, fmt.Sprintf("/tasks/%d", task.ID), payload, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("Task updated successfully", body["message"])
	suite.Equal("After", body["data"].(map[string]interface{})["title"])
}

func (suite *TaskHandlerTestSuite) TestUpdate_NotOwner() {
	otherID, _ := suite.env.registerAndLogin(suite.T(), "other@example.com")
	task := suite.createTask(otherID, "Someone else's")

	w := suite.env.doJSON(suite.T(), http.MethodPut, fmt.Sprintf("/tasks/%d", task.ID), suite.taskPayload(), suite.token)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Unauthorized to update this task", decodeBody(suite.T(), w)["message"])

	// The row is untouched.
	var reloaded models.Task
	suite.Require().NoError(suite.env.db.First(&reloaded, task.ID).Error)
	suite.Equal("Someone else's", reloaded.Title)
}

func (suite *TaskHandlerTestSuite) TestUpdate_RequiresAuth() {
	task := suite.createTask(suite.ownerID, "Locked")

	w := suite.env.doJSON(suite.T(), http.MethodPut, fmt.Sprintf("/tasks/%d", task.ID), suite.taskPayload(), "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDestroy_NotOwner() {
	otherID, _ := suite.env.registerAndLogin(suite.T(), "other@example.com")
	task := suite.createTask(otherID, "Protected")

	w := suite.env.doJSON(suite.T(), http.MethodDelete, fmt.Sprintf("/tasks/%d", task.ID), nil, suite.token)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Unauthorized to delete this task", decodeBody(suite.T(), w)["message"])

	var count int64
	suite.env.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *TaskHandlerTestSuite) TestDestroy_Owner() {
	task := suite.createTask(suite.ownerID, "Done with this")

	w := suite.env.doJSON(suite.T(), http.MethodDelete, fmt.Sprintf("/tasks/%d", task.ID), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Task deleted successfully", decodeBody(suite.T(), w)["message"])

	var count int64
	suite.env.db.Model(&models.Task{}).Count(&count)
	suite.Zero(count)
}

func (suite *TaskHandlerTestSuite) TestIndex_ReadsUnrestricted() {
	suite.createTask(suite.ownerID, "Open read")

	// No bearer token needed for reads.
	w := suite.env.doJSON(suite.T(), http.MethodGet, "/tasks", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	body := decodeBody(suite.T(), w)
	suite.Equal("Tasks retrieved successfully", body["message"])
	suite.Len(body["data"].([]interface{}), 1)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
