package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mentorlink/mentorship-api/internal/database"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
	"github.com/mentorlink/mentorship-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GroupHandlerTestSuite defines the test suite for GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *GroupHandler
}

// SetupTest runs before each test
func (suite *GroupHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.JobTitle{},
		&models.Mentorship{},
		&models.Group{},
		&models.GroupMember{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	groupRepo := repository.NewGroupRepository(suite.db)
	suite.handler = NewGroupHandler(services.NewGroupService(groupRepo, userRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *GroupHandlerTestSuite) createTestUser(email string, role models.UserRole) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	suite.db.Create(user)
	return user
}

func (suite *GroupHandlerTestSuite) createTestGroup(name string, creatorID uint64) *models.Group {
	group := &models.Group{
		Name:      name,
		CreatorID: creatorID,
	}
	suite.db.Create(group)
	suite.db.Create(&models.GroupMember{
		GroupID: group.ID,
		UserID:  creatorID,
		Status:  models.MembershipStatusAccepted,
	})
	return group
}

func (suite *GroupHandlerTestSuite) createTestMember(groupID, userID uint64, status models.MembershipStatus) *models.GroupMember {
	member := &models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Status:  status,
	}
	suite.db.Create(member)
	return member
}

// Helper function to create authenticated context
func (suite *GroupHandlerTestSuite) createAuthContext(method, url string, body []byte, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", user.ID)
	c.Set("user_role", user.Role)

	return c, w
}

func (suite *GroupHandlerTestSuite) setGroupIDParam(c *gin.Context, groupID uint64) {
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(groupID, 10)}}
}

// TestCreateGroup_Success tests group creation by a student
func (suite *GroupHandlerTestSuite) TestCreateGroup_Success() {
	student := suite.createTestUser("student@example.com", models.RoleStudent)

	requestBody := map[string]interface{}{
		"name":        "Go Study Group",
		"description": "Weekly sessions",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/groups", body, student)

	suite.handler.CreateGroup(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Go Study Group", response["name"])

	// The creator is an accepted member from the start
	members := response["members"].([]interface{})
	assert.Len(suite.T(), members, 1)
	first := members[0].(map[string]interface{})
	assert.Equal(suite.T(), "ACCEPTED", first["status"])
}

// TestCreateGroup_MentorForbidden tests that mentors cannot create groups
func (suite *GroupHandlerTestSuite) TestCreateGroup_MentorForbidden() {
	mentor := suite.createTestUser("mentor@example.com", models.RoleMentor)

	requestBody := map[string]interface{}{
		"name": "Mentor Group",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/groups", body, mentor)

	suite.handler.CreateGroup(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestCreateGroup_MissingName tests validation of the group name
func (suite *GroupHandlerTestSuite) TestCreateGroup_MissingName() {
	student := suite.createTestUser("student@example.com", models.RoleStudent)

	body, _ := json.Marshal(map[string]interface{}{"description": "no name"})

	c, w := suite.createAuthContext("POST", "/api/groups", body, student)

	suite.handler.CreateGroup(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetGroup_Success tests fetching a group with members
func (suite *GroupHandlerTestSuite) TestGetGroup_Success() {
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", student.ID)

	c, w := suite.createAuthContext("GET", "/api/groups/1", nil, student)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.GetGroup(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Go Study Group", response["name"])
}

// TestListGroups_Pagination tests the paginated group listing
func (suite *GroupHandlerTestSuite) TestListGroups_Pagination() {
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	suite.createTestGroup("Group A", student.ID)
	suite.createTestGroup("Group B", student.ID)
	suite.createTestGroup("Group C", student.ID)

	c, w := suite.createAuthContext("GET", "/api/groups", nil, student)
	c.Request.URL.RawQuery = "page=1&limit=2"

	suite.handler.ListGroups(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	groups := response["groups"].([]interface{})
	assert.Len(suite.T(), groups, 2)

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(3), pagination["total"])
}

// TestGetMyGroups_OnlyAccepted tests that pending memberships are excluded
func (suite *GroupHandlerTestSuite) TestGetMyGroups_OnlyAccepted() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	joined := suite.createTestGroup("Joined Group", creator.ID)
	pending := suite.createTestGroup("Pending Group", creator.ID)
	suite.createTestMember(joined.ID, student.ID, models.MembershipStatusAccepted)
	suite.createTestMember(pending.ID, student.ID, models.MembershipStatusPending)

	c, w := suite.createAuthContext("GET", "/api/groups/my", nil, student)

	suite.handler.GetMyGroups(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Joined Group", response[0]["name"])
}

// TestJoinGroup_Success tests filing a join request
func (suite *GroupHandlerTestSuite) TestJoinGroup_Success() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)

	c, w := suite.createAuthContext("POST", "/api/groups/1/join", nil, student)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.JoinGroup(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "PENDING", response["status"])
}

// TestJoinGroup_AlreadyRequested tests that a second join request is rejected
func (suite *GroupHandlerTestSuite) TestJoinGroup_AlreadyRequested() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusPending)

	c, w := suite.createAuthContext("POST", "/api/groups/1/join", nil, student)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.JoinGroup(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestJoinGroup_RejectedCannotRejoin tests that a rejected user stays blocked
func (suite *GroupHandlerTestSuite) TestJoinGroup_RejectedCannotRejoin() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusRejected)

	c, w := suite.createAuthContext("POST", "/api/groups/1/join", nil, student)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.JoinGroup(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestJoinGroup_GroupNotFound tests joining a non-existent group
func (suite *GroupHandlerTestSuite) TestJoinGroup_GroupNotFound() {
	student := suite.createTestUser("student@example.com", models.RoleStudent)

	c, w := suite.createAuthContext("POST", "/api/groups/9999/join", nil, student)
	suite.setGroupIDParam(c, 9999)

	suite.handler.JoinGroup(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestRespondToJoinRequest_Accept tests accepting a pending request
func (suite *GroupHandlerTestSuite) TestRespondToJoinRequest_Accept() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusPending)

	body, _ := json.Marshal(map[string]interface{}{"accept": true})

	c, w := suite.createAuthContext("PUT", "/api/groups/1/members/2", body, creator)
	c.Params = gin.Params{
		{Key: "id", Value: strconv.FormatUint(group.ID, 10)},
		{Key: "user_id", Value: strconv.FormatUint(student.ID, 10)},
	}

	suite.handler.RespondToJoinRequest(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.GroupMember
	err := suite.db.Where("group_id = ? AND user_id = ?", group.ID, student.ID).First(&stored).Error
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MembershipStatusAccepted, stored.Status)
}

// TestRespondToJoinRequest_Reject tests rejecting a pending request
func (suite *GroupHandlerTestSuite) TestRespondToJoinRequest_Reject() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusPending)

	body, _ := json.Marshal(map[string]interface{}{"accept": false})

	c, w := suite.createAuthContext("PUT", "/api/groups/1/members/2", body, creator)
	c.Params = gin.Params{
		{Key: "id", Value: strconv.FormatUint(group.ID, 10)},
		{Key: "user_id", Value: strconv.FormatUint(student.ID, 10)},
	}

	suite.handler.RespondToJoinRequest(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// The row stays as a rejection marker
	var stored models.GroupMember
	err := suite.db.Where("group_id = ? AND user_id = ?", group.ID, student.ID).First(&stored).Error
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MembershipStatusRejected, stored.Status)
}

// TestRespondToJoinRequest_NotPending tests responding to an accepted membership
func (suite *GroupHandlerTestSuite) TestRespondToJoinRequest_NotPending() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusAccepted)

	body, _ := json.Marshal(map[string]interface{}{"accept": true})

	c, w := suite.createAuthContext("PUT", "/api/groups/1/members/2", body, creator)
	c.Params = gin.Params{
		{Key: "id", Value: strconv.FormatUint(group.ID, 10)},
		{Key: "user_id", Value: strconv.FormatUint(student.ID, 10)},
	}

	suite.handler.RespondToJoinRequest(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestLeaveGroup_Success tests leaving a group
func (suite *GroupHandlerTestSuite) TestLeaveGroup_Success() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusAccepted)

	c, w := suite.createAuthContext("POST", "/api/groups/1/leave", nil, student)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.LeaveGroup(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", group.ID, student.ID).
		Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestLeaveGroup_CreatorForbidden tests that the creator cannot leave
func (suite *GroupHandlerTestSuite) TestLeaveGroup_CreatorForbidden() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)

	c, w := suite.createAuthContext("POST", "/api/groups/1/leave", nil, creator)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.LeaveGroup(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestLeaveGroup_PendingMember tests leaving with only a pending request
func (suite *GroupHandlerTestSuite) TestLeaveGroup_PendingMember() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusPending)

	c, w := suite.createAuthContext("POST", "/api/groups/1/leave", nil, student)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.LeaveGroup(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteGroup_Success tests deleting a group and its memberships
func (suite *GroupHandlerTestSuite) TestDeleteGroup_Success() {
	creator := suite.createTestUser("creator@example.com", models.RoleStudent)
	student := suite.createTestUser("student@example.com", models.RoleStudent)
	group := suite.createTestGroup("Go Study Group", creator.ID)
	suite.createTestMember(group.ID, student.ID, models.MembershipStatusAccepted)

	c, w := suite.createAuthContext("DELETE", "/api/groups/1", nil, creator)
	suite.setGroupIDParam(c, group.ID)

	suite.handler.DeleteGroup(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Group{}).Where("id = ?", group.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	suite.db.Model(&models.GroupMember{}).Where("group_id = ?", group.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
