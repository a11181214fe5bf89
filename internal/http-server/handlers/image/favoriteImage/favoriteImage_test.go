package favoriteImage_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptGallery/internal/http-server/handlers/image/favoriteImage"
	"promptGallery/internal/http-server/handlers/image/favoriteImage/mocks"
	kafkaMocks "promptGallery/internal/kafka/producer/mocks"
	"promptGallery/internal/models"
)

func TestFavoriteImage(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	favorited := &models.Image{ID: testUUID, Prompt: "a sunset", IsFavorite: true}

	tests := []struct {
		name           string
		imageID        string
		mockImage      *models.Image
		mockErr        error
		expectedStatus int
	}{
		{
			name:           "Success",
			imageID:        testUUID.String(),
			mockImage:      favorited,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid UUID",
			imageID:        "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Not Found",
			imageID:        testUUID.String(),
			mockErr:        sql.ErrNoRows,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Internal Error",
			imageID:        testUUID.String(),
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			togglerMock := mocks.NewFavoriteToggler(t)
			producerMock := kafkaMocks.NewProducerIface(t)

			if tt.name != "Invalid UUID" {
				togglerMock.On("ToggleFavorite", mock.Anything, testUUID).
					Return(tt.mockImage, tt.mockErr).Once()
			}
			if tt.mockImage != nil {
				producerMock.On("SendMessage", mock.Anything, mock.Anything).Return(nil).Once()
			}

			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/images/%s/favorite", tt.imageID), nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.imageID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := favoriteImage.New(log, togglerMock, producerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			if tt.mockImage != nil {
				var result models.Image
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
				require.Equal(t, testUUID, result.ID)
				require.True(t, result.IsFavorite)
			}
		})
	}
}
