package generateImage_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptGallery/internal/http-server/handlers/image/generateImage"
	"promptGallery/internal/http-server/handlers/image/generateImage/mocks"
	kafkaMocks "promptGallery/internal/kafka/producer/mocks"
	"promptGallery/internal/models"
)

const testSecret = "test-secret"

func testJPEG(t *testing.T) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil))

	return buf.Bytes()
}

func TestGenerateImage(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()
	jpegBytes := testJPEG(t)

	testImage := &models.Image{
		ID:      testUUID,
		URL:     "https://cdn.example/ai-generated/a.jpg",
		Prompt:  "a sunset",
		Width:   2,
		Height:  2,
		Latency: 842,
	}

	tests := []struct {
		name           string
		secret         string
		body           string
		mockImageData  []byte
		mockGenErr     error
		mockUploadErr  error
		mockSaveErr    error
		mockKafkaErr   error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			secret:         testSecret,
			body:           `{"text":"a sunset"}`,
			mockImageData:  jpegBytes,
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"success":true,"imageUrl":"https://cdn.example/ai-generated/a.jpg","imageId":"%s"}`, testUUID),
		},
		{
			name:           "Unauthorized",
			secret:         "wrong-secret",
			body:           `{"text":"a sunset"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"Unauthorized"}`,
		},
		{
			name:           "Empty Text",
			secret:         testSecret,
			body:           `{"text":""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"field Text is a required field"}`,
		},
		{
			name:           "Malformed Body",
			secret:         testSecret,
			body:           `{"text":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"failed to decode request"}`,
		},
		{
			name:           "Generation Failed",
			secret:         testSecret,
			body:           `{"text":"a sunset"}`,
			mockGenErr:     errors.New("upstream error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Failed to process request"}`,
		},
		{
			name:           "Invalid Image Data",
			secret:         testSecret,
			body:           `{"text":"a sunset"}`,
			mockImageData:  []byte("not a jpeg"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Failed to process request"}`,
		},
		{
			name:           "Upload Failed",
			secret:         testSecret,
			body:           `{"text":"a sunset"}`,
			mockImageData:  jpegBytes,
			mockUploadErr:  errors.New("storage error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Failed to process request"}`,
		},
		{
			name:           "Save Failed",
			secret:         testSecret,
			body:           `{"text":"a sunset"}`,
			mockImageData:  jpegBytes,
			mockSaveErr:    errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Failed to process request"}`,
		},
		{
			name:           "Event Publish Failure Is Not Fatal",
			secret:         testSecret,
			body:           `{"text":"a sunset"}`,
			mockImageData:  jpegBytes,
			mockKafkaErr:   errors.New("kafka error"),
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"success":true,"imageUrl":"https://cdn.example/ai-generated/a.jpg","imageId":"%s"}`, testUUID),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generatorMock := mocks.NewImageGenerator(t)
			uploaderMock := mocks.NewImageUploader(t)
			saverMock := mocks.NewImageSaver(t)
			producerMock := kafkaMocks.NewProducerIface(t)

			authorized := tt.secret == testSecret
			validBody := tt.name != "Empty Text" && tt.name != "Malformed Body"

			if authorized && validBody {
				generatorMock.On("Generate", mock.Anything, "a sunset").
					Return(tt.mockImageData, tt.mockGenErr).Once()
			}
			if authorized && validBody && tt.mockGenErr == nil && tt.name != "Invalid Image Data" {
				uploaderMock.On("Upload", mock.Anything, tt.mockImageData).
					Return(testImage.URL, tt.mockUploadErr).Once()

				if tt.mockUploadErr == nil {
					saverMock.On("SaveImage", mock.Anything, mock.MatchedBy(func(params models.ImageParams) bool {
						return params.URL == testImage.URL &&
							params.Prompt == "a sunset" &&
							params.Width == 2 &&
							params.Height == 2 &&
							params.Latency >= 0
					})).Return(testImage, tt.mockSaveErr).Once()
				}
				if tt.mockUploadErr == nil && tt.mockSaveErr == nil {
					producerMock.On("SendMessage", mock.Anything, mock.Anything).
						Return(tt.mockKafkaErr).Once()
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/generate-image", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("X-API-Key", tt.secret)

			rr := httptest.NewRecorder()

			handler := generateImage.New(log, testSecret, generatorMock, uploaderMock, saverMock, producerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualMap))
			require.NoError(t, json.Unmarshal([]byte(tt.expectedBody), &expectedMap))
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
