package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/studiobelle/salon-manager/internal/domain/appointment"
	"github.com/studiobelle/salon-manager/internal/httperr"
	"github.com/studiobelle/salon-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service / Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", professionalID, salonID).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
		Status:  "active",
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *AppointmentGormRepository) AccrueClientVisit(
	ctx context.Context,
	clientID uint,
	amount float64,
	when time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"total_spent": gorm.Expr("total_spent + ?", amount),
			"last_visit":  when,
		}).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"professional_id = ? AND status IN ('pending','confirmed') AND start_time < ? AND end_time > ?",
			professionalID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	appointmentID uint,
	salonID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Finance
// --------------------------------------------------

func (r *AppointmentGormRepository) RecordIncome(
	ctx context.Context,
	salonID uint,
	description string,
	amount float64,
	date time.Time,
) error {

	tx := models.Transaction{
		SalonID:     salonID,
		Type:        "income",
		Description: description,
		Amount:      amount,
		Date:        date,
		Method:      "cash",
		Status:      "confirmed",
	}

	return r.db.WithContext(ctx).Create(&tx).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"professional_id = ? AND status IN ('pending','confirmed') AND start_time >= ? AND start_time < ?",
			professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) IsWithinWorkingHours(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	weekday := int(start.Weekday())

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error; err != nil {
		return false, nil
	}

	return domain.WithinWorkingHours(&wh, start, end), nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID,
			start,
			end,
		)

	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
