package main

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/barbershop-project/booking-api/internal/config"
	dbpkg "github.com/barbershop-project/booking-api/internal/db"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/logger"
	"github.com/barbershop-project/booking-api/internal/models"
)

// Popula o banco de desenvolvimento com o cardápio de serviços, alguns
// barbeiros, um admin inicial (admin@barbearia.local / admin123) e uma
// manhã de agendamentos de demonstração para o dia seguinte.
func main() {

	cfg := config.Load()
	log.Logger = logger.New(cfg.Env)

	db := dbpkg.NewDB(cfg)

	services := []models.Service{
		{Name: "Corte", DurationMin: 30, Price: 45.00, Description: "Corte masculino tradicional"},
		{Name: "Barba", DurationMin: 30, Price: 35.00, Description: "Barba com toalha quente"},
		{Name: "Corte + Barba", DurationMin: 60, Price: 70.00, Description: "Combo completo"},
		{Name: "Sobrancelha", DurationMin: 15, Price: 15.00},
	}

	for _, s := range services {
		var count int64
		db.Model(&models.Service{}).Where("name = ?", s.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&s).Error; err != nil {
				log.Fatal().Err(err).Str("service", s.Name).Msg("failed to seed service")
			}
		}
	}

	var barberCount int64
	db.Model(&models.Barber{}).Count(&barberCount)
	if barberCount == 0 {
		for i := 0; i < 4; i++ {
			barber := models.Barber{
				Name:   gofakeit.Name(),
				Active: true,
			}
			if err := db.Create(&barber).Error; err != nil {
				log.Fatal().Err(err).Msg("failed to seed barber")
			}
		}
	}

	var apCount int64
	db.Model(&models.Appointment{}).Count(&apCount)
	if apCount == 0 {
		var barber models.Barber
		var service models.Service
		if db.First(&barber).Error != nil || db.First(&service).Error != nil {
			log.Fatal().Msg("no barber or service to seed appointments for")
		}

		// Uma manhã cheia amanhã, direto no banco: dados de demonstração
		// não passam pela política de dias úteis.
		demoDay := time.Now().AddDate(0, 0, 1).Format(schedule.DateLayout)
		for _, hhmm := range schedule.Generate("09:00", "11:00", 30) {
			customer := models.Customer{
				Name:  gofakeit.Name(),
				Phone: gofakeit.Numerify("119########"),
			}
			if err := db.Create(&customer).Error; err != nil {
				log.Fatal().Err(err).Msg("failed to seed customer")
			}

			ap := models.Appointment{
				CustomerID: customer.ID,
				BarberID:   barber.ID,
				ServiceID:  service.ID,
				Date:       demoDay,
				Time:       hhmm,
				Status:     string(schedule.StatusConfirmed),
			}
			if err := db.Create(&ap).Error; err != nil {
				log.Fatal().Err(err).Str("time", hhmm).Msg("failed to seed appointment")
			}
		}
	}

	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}

		admin := models.User{
			Name:         "Admin",
			Email:        "admin@barbearia.local",
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin")
		}
	}

	log.Info().Msg("seed complete")
}
