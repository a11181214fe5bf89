package deleteImage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"promptGallery/internal/kafka/producer"
	"promptGallery/internal/lib/api/response"
	"promptGallery/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageDeleter
type ImageDeleter interface {
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type Response struct {
	response.Response
}

// New builds the delete handler. Deletes are soft: the store flags the
// record and keeps the row.
// @Summary      Soft-deletes an image
// @Tags         images
// @Produce      json
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  deleteImage.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/images/{id}/delete [post]
func New(log *slog.Logger, imageDeleter ImageDeleter, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.deleteImage.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		imageID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse image ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid image ID"))
			return
		}

		err = imageDeleter.DeleteImage(r.Context(), imageID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn("image not found for deletion", slog.String("image_id", imageID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("image not found"))
				return
			}

			log.Error("failed to delete image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete image"))
			return
		}

		log.Info("image deleted", slog.String("image_id", imageID.String()))

		kafkaMessage := struct {
			Event   string    `json:"event"`
			ImageID uuid.UUID `json:"image_id"`
		}{
			Event:   "image.deleted",
			ImageID: imageID,
		}

		message, err := json.Marshal(kafkaMessage)
		if err == nil {
			err = kafkaProducer.SendMessage(r.Context(), message)
		}
		if err != nil {
			log.Error("failed to publish image.deleted event", sl.Err(err))
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
		})
	}
}
