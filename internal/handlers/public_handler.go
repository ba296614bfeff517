package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/httpresp"
	ucBooking "github.com/barbershop-project/booking-api/internal/usecase/booking"
)

// PublicHandler expõe o catálogo, os barbeiros/serviços e a consulta de
// disponibilidade, sem autenticação.
type PublicHandler struct {
	repo         domain.Repository
	availability *ucBooking.GetAvailability
	policy       schedule.Policy
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	policy schedule.Policy,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
		policy:       policy,
	}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListActiveBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

// ListSlots devolve o catálogo completo de horários do dia.
func (h *PublicHandler) ListSlots(c *gin.Context) {
	httpresp.List(c, schedule.Catalog())
}

// CheckWorkingDay informa se uma data aceita agendamentos.
func (h *PublicHandler) CheckWorkingDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":     date,
		"bookable": h.policy.IsBookableDate(date, time.Now()),
	})
}

// Availability exige barbeiro e data; sem os dois a consulta não roda.
func (h *PublicHandler) Availability(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	date := c.Query("date")

	if barberIDStr == "" || date == "" {
		httperr.BadRequest(c, "missing_barber_or_date", "Barbeiro e data são obrigatórios.")
		return
	}

	barberID, err := uuid.Parse(barberIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	result, err := h.availability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidDate):
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Data inválida.")
		case httperr.IsBusiness(err, httperr.CodeBarberNotFound):
			httperr.NotFound(c, httperr.CodeBarberNotFound, "Barbeiro não encontrado.")
		default:
			httperr.Internal(c, "failed_to_get_availability", "Erro ao consultar disponibilidade.")
		}
		return
	}

	httpresp.OK(c, result)
}
