package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/httpresp"
	"github.com/barbershop-project/booking-api/internal/images"
	"github.com/barbershop-project/booking-api/internal/storage"
)

const maxPhotoUploadBytes = 5 << 20 // 5 MB

// BarberPhotoHandler recebe a foto de um barbeiro, normaliza para WebP e
// publica no bucket configurado.
type BarberPhotoHandler struct {
	repo     domain.Repository
	uploader *storage.Uploader
}

func NewBarberPhotoHandler(repo domain.Repository, uploader *storage.Uploader) *BarberPhotoHandler {
	return &BarberPhotoHandler{
		repo:     repo,
		uploader: uploader,
	}
}

func (h *BarberPhotoHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_not_configured", "Upload de fotos não está configurado.")
		return
	}

	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	barber, err := h.repo.GetBarber(c.Request.Context(), barberID)
	if err != nil {
		httperr.NotFound(c, httperr.CodeBarberNotFound, "Barbeiro não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}
	if fileHeader.Size > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima do limite de 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}
	defer file.Close()

	normalized, err := images.NormalizePhoto(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "A foto precisa ser JPEG ou PNG.")
		return
	}

	key := fmt.Sprintf("barbers/%s/%d.webp", barber.ID, time.Now().Unix())

	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", normalized)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	barber.PhotoURL = url
	if err := h.repo.UpdateBarber(c.Request.Context(), barber); err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao salvar a foto.")
		return
	}

	httpresp.OK(c, barber)
}
