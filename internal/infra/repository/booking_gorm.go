package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbershop-project/booking-api/internal/domain/booking"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/httperr"
	"github.com/barbershop-project/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) BookedTimes(
	ctx context.Context,
	barberID uuid.UUID,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(schedule.StatusCancelled),
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Booking (transactional)
// --------------------------------------------------

// BookSlot roda re-check de conflito, find-or-create do cliente e insert
// do agendamento em uma transação. O índice único parcial é o backstop
// contra corridas que passam pelo re-check; a violação vira o mesmo erro
// de negócio slot_taken.
func (r *BookingGormRepository) BookSlot(
	ctx context.Context,
	in domain.BookSlotInput,
) (*models.Appointment, error) {

	var created models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time = ? AND status <> ?",
				in.BarberID, in.Date, in.Time, string(schedule.StatusCancelled),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		customer, err := findOrCreateCustomer(tx, in)
		if err != nil {
			return err
		}

		ap := models.Appointment{
			ID:         uuid.New(),
			CustomerID: customer.ID,
			BarberID:   in.BarberID,
			ServiceID:  in.ServiceID,
			Date:       in.Date,
			Time:       in.Time,
			Status:     string(schedule.InitialStatus()),
		}

		if err := tx.Create(&ap).Error; err != nil {
			if IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// findOrCreateCustomer busca o cliente pelo telefone; se não existir,
// cria. O nome não é atualizado em reuso.
func findOrCreateCustomer(tx *gorm.DB, in domain.BookSlotInput) (*models.Customer, error) {
	var customer models.Customer
	err := tx.
		Where("phone = ?", in.CustomerPhone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		ID:     uuid.New(),
		Name:   in.CustomerName,
		Phone:  in.CustomerPhone,
		UserID: in.UserID,
	}

	if err := tx.Create(&customer).Error; err != nil {
		// Corrida no uniqueIndex do telefone: outro request criou o
		// mesmo cliente primeiro. Reaproveita o registro existente.
		if IsUniqueViolation(err) {
			if err2 := tx.Where("phone = ?", in.CustomerPhone).First(&customer).Error; err2 == nil {
				return &customer, nil
			}
		}
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service")

	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.UserID != nil {
		q = q.Where(
			"customer_id IN (?)",
			r.db.Model(&models.Customer{}).Select("id").Where("user_id = ?", *f.UserID),
		)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}

	var aps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// UpdateAppointmentStatus grava o status sem checar transição: repetir o
// status atual é sucesso idempotente.
func (r *BookingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if ap.Status != status {
		if err := r.db.WithContext(ctx).
			Model(&ap).
			Update("status", status).Error; err != nil {
			// Reativar um agendamento cancelado pode colidir com quem
			// reservou o slot nesse meio tempo.
			if IsUniqueViolation(err) {
				return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return nil, err
		}
	}

	return r.GetAppointment(ctx, id)
}

// IsUniqueViolation detecta SQLSTATE 23505 (unique_violation) do Postgres.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
