package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/auth"
	"github.com/shopdash/shopdash/engine/auth/model"
	"github.com/shopdash/shopdash/engine/auth/token"
	"github.com/shopdash/shopdash/engine/auth/uc"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *mockRepo) PromoteUser(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

const testSecret = "test-secret"

func newTestRouter(t *testing.T, repo uc.Repository) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := token.NewService([]byte(testSecret), time.Hour)
	middleware := auth.NewMiddleware(tokens, nil, repo)
	engine := gin.New()
	RegisterRoutes(engine.Group(""), uc.NewFactory(repo), tokens, nil, middleware, false)
	return engine, tokens
}

func adminCookie(t *testing.T, tokens *token.Service, email string) *http.Cookie {
	t.Helper()
	signed, err := tokens.Issue(email)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: signed}
}

func expectAdmin(repo *mockRepo, email string) {
	repo.On("GetUserByEmail", mock.Anything, email).
		Return(&model.User{Email: email, Role: model.RoleAdmin}, nil)
}

func TestLoginAndLogout(t *testing.T) {
	t.Run("Should set the credential cookie on login", func(t *testing.T) {
		engine, _ := newTestRouter(t, new(mockRepo))
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"loginSuccess":true`)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})
	t.Run("Should reject a login without an email", func(t *testing.T) {
		engine, _ := newTestRouter(t, new(mockRepo))
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should clear the cookie on logout", func(t *testing.T) {
		engine, _ := newTestRouter(t, new(mockRepo))
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/logout", strings.NewReader(`{"email":"a@x.com"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"logoutSuccess":true`)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})
}

func TestAdminGating(t *testing.T) {
	t.Run("Should return 401 without a cookie", func(t *testing.T) {
		engine, _ := newTestRouter(t, new(mockRepo))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/users", http.NoBody))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("Should return 403 for a non-admin cookie", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetUserByEmail", mock.Anything, "a@x.com").
			Return(&model.User{Email: "a@x.com", Role: model.RoleUser}, nil)
		engine, tokens := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", http.NoBody)
		req.AddCookie(adminCookie(t, tokens, "a@x.com"))
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
	t.Run("Should return the user list for an admin cookie", func(t *testing.T) {
		repo := new(mockRepo)
		expectAdmin(repo, "boss@x.com")
		repo.On("ListUsers", mock.Anything).Return([]*model.User{
			{Email: "boss@x.com", Role: model.RoleAdmin},
			{Email: "a@x.com", Role: model.RoleUser},
		}, nil)
		engine, tokens := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", http.NoBody)
		req.AddCookie(adminCookie(t, tokens, "boss@x.com"))
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var users []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})
}

func TestRegisterUser(t *testing.T) {
	t.Run("Should insert a new user", func(t *testing.T) {
		repo := new(mockRepo)
		id := primitive.NewObjectID()
		repo.On("GetUserByEmail", mock.Anything, "new@x.com").Return(nil, uc.ErrUserNotFound)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(id, nil)
		engine, _ := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"new@x.com","name":"New"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id.Hex())
	})
	t.Run("Should report an existing email without inserting", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetUserByEmail", mock.Anything, "a@x.com").
			Return(&model.User{Email: "a@x.com", Role: model.RoleUser}, nil)
		engine, _ := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"a@x.com"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
		assert.Contains(t, w.Body.String(), `"insertedId":null`)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestCheckAdmin(t *testing.T) {
	t.Run("Should reflect a promotion on the next check", func(t *testing.T) {
		// First check: regular role. Promote. Second check: admin.
		repo := new(mockRepo)
		expectAdmin(repo, "boss@x.com")
		id := primitive.NewObjectID()
		repo.On("GetUserByEmail", mock.Anything, "a@x.com").
			Return(&model.User{ID: id, Email: "a@x.com", Role: model.RoleUser}, nil).Once()
		repo.On("PromoteUser", mock.Anything, id).Return(int64(1), int64(1), nil)
		repo.On("GetUserByEmail", mock.Anything, "a@x.com").
			Return(&model.User{ID: id, Email: "a@x.com", Role: model.RoleAdmin}, nil)
		engine, tokens := newTestRouter(t, repo)

		check := func() string {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/users/admin/a@x.com", http.NoBody)
			req.AddCookie(adminCookie(t, tokens, "boss@x.com"))
			engine.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
			return w.Body.String()
		}
		assert.Contains(t, check(), `"admin":false`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/users/admin/"+id.Hex(), http.NoBody)
		req.AddCookie(adminCookie(t, tokens, "boss@x.com"))
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"modifiedCount":1`)

		assert.Contains(t, check(), `"admin":true`)
	})
}

func TestPromoteAndRemove(t *testing.T) {
	t.Run("Should report zero counts when promoting a missing id", func(t *testing.T) {
		repo := new(mockRepo)
		expectAdmin(repo, "boss@x.com")
		id := primitive.NewObjectID()
		repo.On("PromoteUser", mock.Anything, id).Return(int64(0), int64(0), nil)
		engine, tokens := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/users/admin/"+id.Hex(), http.NoBody)
		req.AddCookie(adminCookie(t, tokens, "boss@x.com"))
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"matchedCount":0`)
	})
	t.Run("Should surface a malformed id as a server error", func(t *testing.T) {
		repo := new(mockRepo)
		expectAdmin(repo, "boss@x.com")
		engine, tokens := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/users/admin/not-a-hex-id", http.NoBody)
		req.AddCookie(adminCookie(t, tokens, "boss@x.com"))
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})
	t.Run("Should report the delete count", func(t *testing.T) {
		repo := new(mockRepo)
		expectAdmin(repo, "boss@x.com")
		id := primitive.NewObjectID()
		repo.On("DeleteUser", mock.Anything, id).Return(int64(1), nil)
		engine, tokens := newTestRouter(t, repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/users/admin/"+id.Hex(), http.NoBody)
		req.AddCookie(adminCookie(t, tokens, "boss@x.com"))
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deletedCount":1`)
	})
}
