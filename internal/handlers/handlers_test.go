package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfolio/portfolio-api/internal/handlers"
	"github.com/devfolio/portfolio-api/internal/middleware"
	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{Level: "debug", Environment: "development"}); err != nil {
		panic(err)
	}
}

func perform(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSkillHandler_List(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.GET("/skills", handlers.NewSkillHandler(svc).List)

	svc.On("List", mock.Anything).Return([]*models.Skill{{ID: 1, Name: "Go", Level: 90}}, nil).Once()

	w := perform(router, http.MethodGet, "/skills", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
}

func TestSkillHandler_Create(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.POST("/skills", handlers.NewSkillHandler(svc).Create)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.CreateSkillRequest) bool {
		return r.Name == "Go" && r.Level != nil && *r.Level == 90
	})).Return(&models.Skill{ID: 7, Name: "Go", Level: 90}, nil).Once()

	w := perform(router, http.MethodPost, "/skills", `{"name":"Go","level":90}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Skill created successfully", body["message"])
	assert.Equal(t, float64(7), body["data"].(map[string]any)["id"])
}

func TestSkillHandler_Create_ValidationError(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.POST("/skills", handlers.NewSkillHandler(svc).Create)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, services.NewValidationError("level", "The level field must not be greater than 100.")).Once()

	w := perform(router, http.MethodPost, "/skills", `{"name":"Go","level":150}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"message": "The given data was invalid.",
		"errors": {"level": ["The level field must not be greater than 100."]}
	}`, w.Body.String())
}

func TestSkillHandler_Create_WrongFieldType(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.POST("/skills", handlers.NewSkillHandler(svc).Create)

	w := perform(router, http.MethodPost, "/skills", `{"name":"Go","level":"high"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Contains(t, body["errors"], "level")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSkillHandler_Create_MalformedJSON(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.POST("/skills", handlers.NewSkillHandler(svc).Create)

	w := perform(router, http.MethodPost, "/skills", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestSkillHandler_Show_NotFound(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.GET("/skills/:id", handlers.NewSkillHandler(svc).Show)

	svc.On("Get", mock.Anything, int64(404)).Return(nil, apperrors.NotFoundError("Skill")).Once()

	w := perform(router, http.MethodGet, "/skills/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Skill not found"}`, w.Body.String())

	w = perform(router, http.MethodGet, "/skills/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillHandler_Delete_InternalError(t *testing.T) {
	svc := new(MockSkillService)
	router := gin.New()
	router.DELETE("/skills/:id", handlers.NewSkillHandler(svc).Delete)

	svc.On("Delete", mock.Anything, int64(1)).Return(errors.New("connection refused")).Once()

	w := perform(router, http.MethodDelete, "/skills/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
}

func TestBlogHandler_ShowBySlug(t *testing.T) {
	svc := new(MockBlogService)
	router := gin.New()
	router.GET("/blogs/:slug", handlers.NewBlogHandler(svc).ShowBySlug)

	svc.On("ViewBySlug", mock.Anything, "hello-world").Return(&models.Blog{ID: 1, Slug: "hello-world", Views: 3}, nil).Once()
	svc.On("ViewBySlug", mock.Anything, "draft-post").Return(nil, apperrors.NotFoundError("Blog")).Once()

	w := perform(router, http.MethodGet, "/blogs/hello-world", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode(t, w)["data"].(map[string]any)["views"])

	w = perform(router, http.MethodGet, "/blogs/draft-post", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog not found", decode(t, w)["message"])

	w = perform(router, http.MethodGet, "/blogs/Not_A_Slug", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNumberOfCalls(t, "ViewBySlug", 2)
}

func TestContactHandler_Submit(t *testing.T) {
	svc := new(MockContactService)
	router := gin.New()
	router.POST("/contact", handlers.NewContactHandler(svc).Submit)

	svc.On("Submit", mock.Anything, mock.Anything).Return(&models.Contact{ID: 1}, nil).Once()

	w := perform(router, http.MethodPost, "/contact",
		`{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Let us build something."}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message sent successfully! We will get back to you soon."}`, w.Body.String())
}

func TestContactHandler_MarkRead_EmptyBody(t *testing.T) {
	svc := new(MockContactService)
	router := gin.New()
	router.PATCH("/contacts/:id/read", handlers.NewContactHandler(svc).MarkRead)

	svc.On("MarkRead", mock.Anything, int64(2), &models.MarkContactRequest{}).
		Return(&models.Contact{ID: 2, IsRead: true}, nil).Once()

	w := perform(router, http.MethodPatch, "/contacts/2/read", "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestProfileHandler_Update_Multipart(t *testing.T) {
	svc := new(MockProfileService)
	router := gin.New()
	router.POST("/profile", handlers.NewProfileHandler(svc, 2*1024*1024).Update)

	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("name", "Jane Doe"))
	part, err := form.CreateFormFile("profile_image", "me.png")
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	svc.On("Update", mock.Anything,
		mock.MatchedBy(func(r *models.UpdateProfileRequest) bool {
			return r.Name != nil && *r.Name == "Jane Doe" && r.Bio == nil
		}),
		mock.MatchedBy(func(img *models.ImageUpload) bool {
			return img != nil && img.ContentType == "image/png" && img.Size == int64(len(pngHeader))
		}),
	).Return(&models.Profile{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profile", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Profile updated successfully", decode(t, w)["message"])
	svc.AssertExpectations(t)
}

func TestProfileHandler_Update_JSONWithoutImage(t *testing.T) {
	svc := new(MockProfileService)
	router := gin.New()
	router.PUT("/profile", handlers.NewProfileHandler(svc, 0).Update)

	svc.On("Update", mock.Anything, mock.Anything, (*models.ImageUpload)(nil)).Return(&models.Profile{}, nil).Once()

	w := perform(router, http.MethodPut, "/profile", `{"bio":"Hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	router := gin.New()
	router.POST("/login", handlers.NewAuthHandler(svc).Login)

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.UnauthorizedError("Invalid credentials")).Once()

	w := perform(router, http.MethodPost, "/login", `{"email":"admin@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid credentials"}`, w.Body.String())
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)
	session := &models.AdminSession{Email: "admin@example.com", TokenID: "jti-1"}

	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(svc))
	router.POST("/logout", handlers.NewAuthHandler(svc).Logout)

	svc.On("Authenticate", mock.Anything, "token-1").Return(session, nil).Once()
	svc.On("Logout", mock.Anything, session).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", http.NoBody)
	req.Header.Set("Authorization", "Bearer token-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decode(t, w)["message"])
	svc.AssertExpectations(t)
}

func TestHealthHandler_Healthcheck(t *testing.T) {
	router := gin.New()
	router.GET("/health", handlers.NewHealthHandler(func(context.Context) error { return nil }).Healthcheck)

	w := perform(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Server is running", body["message"])
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	router := gin.New()
	router.GET("/health", handlers.NewHealthHandler(func(context.Context) error { return errors.New("dial tcp: refused") }).Healthcheck)

	w := perform(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.NoRoute(handlers.NotFound)

	w := perform(router, http.MethodGet, "/api/v1/unknown", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Endpoint not found"}`, w.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	svc := new(MockAuthService)
	session := &models.AdminSession{Email: "admin@example.com", Name: "Admin", TokenID: "jti-1"}

	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(svc))
	router.GET("/me", handlers.NewAuthHandler(svc).Me)

	svc.On("Authenticate", mock.Anything, "token-1").Return(session, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer token-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"email":"admin@example.com","name":"Admin"}}`, w.Body.String())
}

func TestStatsHandler_Get(t *testing.T) {
	svc := new(MockStatsService)
	router := gin.New()
	router.GET("/stats", handlers.NewStatsHandler(svc).Get)

	svc.On("Get", mock.Anything).Return(&models.Stats{
		TotalProjects: 3, PublishedProjects: 2, TotalMessages: 5, UnreadMessages: 1,
	}, nil).Once()

	w := perform(router, http.MethodGet, "/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["total_projects"])
	assert.Equal(t, float64(2), data["published_projects"])
	assert.Equal(t, float64(1), data["unread_messages"])
	assert.Equal(t, float64(0), data["total_skills"])
}
