package checkContent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"promptGallery/internal/lib/api/response"
	"promptGallery/internal/lib/logger/sl"
	"promptGallery/internal/moderation"
)

var validate = validator.New()

type Request struct {
	Text string `json:"text" validate:"required"`
}

type Response struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentChecker
type ContentChecker interface {
	Check(ctx context.Context, text string) (*moderation.Result, error)
}

// New builds the content-safety handler. Unsafe verdicts are a normal
// 200 response; only transport or provider failures produce an error.
// @Summary      Checks a prompt for content safety
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        request  body  checkContent.Request  true  "Prompt text"
// @Success      200  {object}  checkContent.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/check-content [post]
func New(log *slog.Logger, checker ContentChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.moderation.checkContent.New"

		log = log.With(slog.String("op", op))

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		result, err := checker.Check(r.Context(), req.Text)
		if err != nil {
			log.Error("content check failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check content safety"))
			return
		}

		if !result.Safe {
			log.Info("prompt rejected by moderation", slog.String("reason", result.Reason))
		}

		render.JSON(w, r, Response{
			Safe:   result.Safe,
			Reason: result.Reason,
		})
	}
}
