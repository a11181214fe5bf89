package generateImage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"promptGallery/internal/kafka/producer"
	"promptGallery/internal/lib/api/response"
	"promptGallery/internal/lib/logger/sl"
	"promptGallery/internal/models"
)

var validate = validator.New()

type Request struct {
	Text string `json:"text" validate:"required"`
}

type Response struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl,omitempty"`
	ImageID  string `json:"imageId,omitempty"`
	Error    string `json:"error,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageGenerator
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageUploader
type ImageUploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSaver
type ImageSaver interface {
	SaveImage(ctx context.Context, params models.ImageParams) (*models.Image, error)
}

// New builds the generation pipeline handler. The steps run strictly in
// order: authorize, generate, upload, persist. A failed step terminates the
// request with nothing committed; there is no retry and no rollback.
// @Summary      Generates an image from a text prompt
// @Description  Calls the external generator, uploads the result to cloud storage and persists a metadata record
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string  true  "Shared API secret"
// @Param        request  body  generateImage.Request  true  "Prompt text"
// @Success      200  {object}  generateImage.Response
// @Failure      400  {object}  generateImage.Response
// @Failure      401  {object}  generateImage.Response
// @Failure      500  {object}  generateImage.Response
// @Router       /api/generate-image [post]
func New(
	log *slog.Logger,
	apiSecret string,
	imageGenerator ImageGenerator,
	imageUploader ImageUploader,
	imageSaver ImageSaver,
	kafkaProducer producer.ProducerIface,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.generateImage.New"

		log = log.With(slog.String("op", op))

		if r.Header.Get("X-API-Key") != apiSecret {
			log.Warn("request with invalid API secret rejected")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, Response{Error: "Unauthorized"})
			return
		}

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "failed to decode request"})
			return
		}

		if err := validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: response.ValidationError(validateErr).Error})
			return
		}

		log.Info("generating image", slog.String("prompt", req.Text))

		startTime := time.Now()

		imageData, err := imageGenerator.Generate(r.Context(), req.Text)
		if err != nil {
			log.Error("failed to generate image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to process request"})
			return
		}

		img, err := imaging.Decode(bytes.NewReader(imageData))
		if err != nil {
			log.Error("generator returned invalid image data", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to process request"})
			return
		}
		bounds := img.Bounds()

		imageURL, err := imageUploader.Upload(r.Context(), imageData)
		if err != nil {
			log.Error("failed to upload image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to process request"})
			return
		}

		image, err := imageSaver.SaveImage(r.Context(), models.ImageParams{
			URL:     imageURL,
			Prompt:  req.Text,
			Width:   bounds.Dx(),
			Height:  bounds.Dy(),
			Latency: time.Since(startTime).Milliseconds(),
		})
		if err != nil {
			log.Error("failed to save image metadata", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Failed to process request"})
			return
		}

		log.Info("image generated",
			slog.String("image_id", image.ID.String()),
			slog.Int64("latency_ms", image.Latency),
		)

		kafkaMessage := struct {
			Event   string    `json:"event"`
			ImageID uuid.UUID `json:"image_id"`
			Prompt  string    `json:"prompt"`
		}{
			Event:   "image.created",
			ImageID: image.ID,
			Prompt:  image.Prompt,
		}

		// the record is committed at this point, events are advisory
		message, err := json.Marshal(kafkaMessage)
		if err == nil {
			err = kafkaProducer.SendMessage(r.Context(), message)
		}
		if err != nil {
			log.Error("failed to publish image.created event", sl.Err(err))
		}

		render.JSON(w, r, Response{
			Success:  true,
			ImageURL: image.URL,
			ImageID:  image.ID.String(),
		})
	}
}
