package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserHandler_GetMe(t *testing.T) {
	userID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "successful get",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return &models.User{
						ID:        id,
						Email:     "test@example.com",
						Name:      "Test User",
						CreatedAt: now,
						UpdatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "test@example.com", data["email"])
			},
		},
		{
			name:           "missing user in context",
			userID:         "",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed user id",
			userID:         "not-a-hex-id",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "user not found",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			if tt.userID != "" {
				router.Use(setUserID(tt.userID))
			}
			router.GET("/me", handler.GetMe)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_UpdateMe(t *testing.T) {
	userID := primitive.NewObjectID()
	updatedName := "Updated Name"

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name: "successful update",
			body: models.UpdateUserRequest{Name: &updatedName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
					return &models.User{ID: id, Name: *req.Name}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "user not found",
			body: models.UpdateUserRequest{Name: &updatedName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.Use(setUserID(userID.Hex()))
			router.PUT("/me", handler.UpdateMe)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/me", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_DeleteMe(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name: "successful delete",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, id primitive.ObjectID) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "internal server error",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, id primitive.ObjectID) error {
					return errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.Use(setUserID(userID.Hex()))
			router.DELETE("/me", handler.DeleteMe)

			req := httptest.NewRequest(http.MethodDelete, "/me", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
