package listImages

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"promptGallery/internal/gallery"
	"promptGallery/internal/lib/api/response"
	"promptGallery/internal/lib/logger/sl"
	"promptGallery/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageLister
type ImageLister interface {
	ListImages(ctx context.Context) ([]models.Image, error)
}

// New builds the listing handler. The store already excludes soft-deleted
// rows and orders newest first; the optional search and favorites query
// parameters apply the presentation filter on top.
// @Summary      Lists generated images
// @Tags         images
// @Produce      json
// @Param        search     query  string  false  "Substring to match against prompts"
// @Param        favorites  query  bool    false  "Only return favorited images"
// @Success      200  {array}  models.Image
// @Failure      500  {object}  response.Response
// @Router       /api/images [get]
func New(log *slog.Logger, imageLister ImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.listImages.New"

		log = log.With(slog.String("op", op))

		images, err := imageLister.ListImages(r.Context())
		if err != nil {
			log.Error("failed to list images", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch images"))
			return
		}

		filter := gallery.Filter{
			Query:         r.URL.Query().Get("search"),
			FavoritesOnly: r.URL.Query().Get("favorites") == "true",
		}

		render.JSON(w, r, filter.Apply(images))
	}
}
