package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/httpresp"
	"github.com/barbershop-project/booking-api/internal/middleware"
	"github.com/barbershop-project/booking-api/internal/models"
	ucBooking "github.com/barbershop-project/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucBooking.CreateAppointment
	listUC         *ucBooking.ListAppointments
	getUC          *ucBooking.GetAppointment
	updateStatusUC *ucBooking.UpdateStatus
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	listUC *ucBooking.ListAppointments,
	getUC *ucBooking.GetAppointment,
	updateStatusUC *ucBooking.UpdateStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		listUC:         listUC,
		getUC:          getUC,
		updateStatusUC: updateStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required,uuid"`
	BarberID      string `json:"barber_id" binding:"required,uuid"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	serviceID, _ := uuid.Parse(req.ServiceID)
	barberID, _ := uuid.Parse(req.BarberID)

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		UserID:        &userID,
		ServiceID:     serviceID,
		BarberID:      barberID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeSlotTaken):
		httperr.Conflict(c, httperr.CodeSlotTaken, "Este horário já está ocupado. Escolha outro horário.")
	case httperr.IsBusiness(err, httperr.CodeSlotBusy):
		httperr.Conflict(c, httperr.CodeSlotBusy, "Este horário está sendo reservado. Tente novamente.")
	case httperr.IsBusiness(err, httperr.CodeNonWorkingDay):
		httperr.BadRequest(c, httperr.CodeNonWorkingDay, "A barbearia não atende nesta data.")
	case httperr.IsBusiness(err, httperr.CodeInvalidDate):
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Data inválida.")
	case httperr.IsBusiness(err, httperr.CodeInvalidTime):
		httperr.BadRequest(c, httperr.CodeInvalidTime, "Horário inválido.")
	case httperr.IsBusiness(err, httperr.CodeInvalidPhone):
		httperr.BadRequest(c, httperr.CodeInvalidPhone, "Telefone inválido.")
	case httperr.IsBusiness(err, "invalid_name"):
		httperr.BadRequest(c, "invalid_name", "Nome obrigatório.")
	case httperr.IsBusiness(err, httperr.CodeBarberNotFound):
		httperr.BadRequest(c, httperr.CodeBarberNotFound, "Barbeiro não encontrado.")
	case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
		httperr.BadRequest(c, httperr.CodeServiceNotFound, "Serviço não encontrado.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	role, _ := c.Get(middleware.ContextUserRole)

	filter := domain.ListFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	}

	if role == models.RoleAdmin {
		// Admin filtra livremente.
		if v := c.Query("barber_id"); v != "" {
			if id, err := uuid.Parse(v); err == nil {
				filter.BarberID = &id
			}
		}
		if v := c.Query("customer_id"); v != "" {
			if id, err := uuid.Parse(v); err == nil {
				filter.CustomerID = &id
			}
		}
	} else {
		// Cliente só enxerga os próprios agendamentos.
		filter.UserID = &userID
	}

	out, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	role, _ := c.Get(middleware.ContextUserRole)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	if role != models.RoleAdmin && !h.ownsAppointment(c, userID, id) {
		httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	role, _ := c.Get(middleware.ContextUserRole)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Cliente só pode cancelar o próprio agendamento; as demais
	// transições são administrativas.
	if role != models.RoleAdmin {
		if req.Status != string(schedule.StatusCancelled) {
			httperr.Forbidden(c, "admin_only", "Operação restrita ao administrador.")
			return
		}
		if !h.ownsAppointment(c, userID, id) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
			return
		}
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), &userID, id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidStatus):
			httperr.BadRequest(c, httperr.CodeInvalidStatus, "Status inválido.")
		case httperr.IsBusiness(err, httperr.CodeAppointmentNotFound):
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Agendamento não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			httperr.Conflict(c, httperr.CodeSlotTaken, "Este horário já foi reservado por outro cliente.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ownsAppointment confirma que o agendamento pertence a um cliente
// vinculado ao usuário autenticado.
func (h *AppointmentHandler) ownsAppointment(c *gin.Context, userID uuid.UUID, id uuid.UUID) bool {
	out, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{UserID: &userID})
	if err != nil {
		return false
	}
	for _, ap := range out {
		if ap.ID == id {
			return true
		}
	}
	return false
}
