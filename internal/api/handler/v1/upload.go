package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/pkg/uploads"
)

type UploadHandler struct {
	storage *uploads.Storage
	baseURL string
}

func NewUploadHandler(storage *uploads.Storage, baseURL string) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		baseURL: baseURL,
	}
}

// HandleUpload godoc
//
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerToken
// @Param        image  formData   file  true  "image file (max 5 MiB)"
// @Success      201    {object}   response.UploadResponse
// @Failure      400    {object}   response.Err
// @Failure      401    {object}   response.Err
// @Failure      500    {object}   response.Err
// @Router       /api/upload [post]
func (h *UploadHandler) HandleUpload(ctx *gin.Context) {
	header, err := ctx.FormFile("image")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("image file is required")))

		return
	}

	filename, err := h.storage.Save(header)
	if err != nil {
		if errors.Is(err, uploads.ErrFileTooLarge) || errors.Is(err, uploads.ErrUnsupportedFormat) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.UploadResponse{
		FileURL:  h.baseURL + "/uploads/" + filename,
		Filename: filename,
	})
}
