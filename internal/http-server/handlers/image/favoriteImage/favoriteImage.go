package favoriteImage

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
	"promptGallery/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FavoriteToggler
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, id uuid.UUID) (*models.Image, error)
}

// New builds the favorite-toggle handler. Toggling an unknown id reports
// not found and never creates a record.
// @Summary      Toggles the favorite flag of an image
// @Tags         images
// @Produce      json
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  models.Image
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/images/{id}/favorite [post]
func New(log *slog.Logger, favoriteToggler FavoriteToggler, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.favoriteImage.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		imageID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse image ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid image ID"))
			return
		}

		image, err := favoriteToggler.ToggleFavorite(r.Context(), imageID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Warn("image not found", slog.String("image_id", imageID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("image not found"))
				return
			}

			log.Error("failed to toggle favorite", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update favorite status"))
			return
		}

		log.Info("favorite toggled",
			slog.String("image_id", image.ID.String()),
			slog.Bool("is_favorite", image.IsFavorite),
		)

		kafkaMessage := struct {
			Event      string    `json:"event"`
			ImageID    uuid.UUID `json:"image_id"`
			IsFavorite bool      `json:"is_favorite"`
		}{
			Event:      "image.favorited",
			ImageID:    image.ID,
			IsFavorite: image.IsFavorite,
		}

		message, err := json.Marshal(kafkaMessage)
		if err == nil {
			err = kafkaProducer.SendMessage(r.Context(), message)
		}
		if err != nil {
			log.Error("failed to publish image.favorited event", sl.Err(err))
		}

		render.JSON(w, r, image)
	}
}
