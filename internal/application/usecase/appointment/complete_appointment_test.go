package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id, salonID uuid.UUID) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok || appointment.SalonID != salonID {
		return nil, domainerror.ErrAppointmentNotFound
	}
	return appointment, nil
}

func (r *fakeAppointmentRepo) FindByFilter(_ context.Context, filter adapter.AppointmentFilter) ([]*entity.Appointment, error) {
	var matches []*entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.SalonID != filter.SalonID {
			continue
		}
		if filter.Status != nil && appointment.Status != *filter.Status {
			continue
		}
		matches = append(matches, appointment)
	}
	return matches, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = appointment
	return nil
}

type fakeTransactionRepo struct {
	created []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.created = append(r.created, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTransactionRepo) FindCompletedByPeriod(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTransactionRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ entity.TransactionStatus) error {
	return errors.New("not implemented")
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id, salonID uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok || customer.SalonID != salonID {
		return nil, domainerror.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) FindBySalon(_ context.Context, salonID uuid.UUID) ([]*entity.Customer, error) {
	var matches []*entity.Customer
	for _, customer := range r.customers {
		if customer.SalonID == salonID {
			matches = append(matches, customer)
		}
	}
	return matches, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) ExistsByEmail(_ context.Context, salonID uuid.UUID, email string) (bool, error) {
	for _, customer := range r.customers {
		if customer.SalonID == salonID && customer.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type completionFixture struct {
	useCase     *CompleteAppointmentUseCase
	appointment *entity.Appointment
	customer    *entity.Customer
	sales       *fakeTransactionRepo
	salonID     uuid.UUID
}

func newCompletionFixture(t *testing.T) *completionFixture {
	t.Helper()
	salonID := uuid.New()

	customerRepo := newFakeCustomerRepo()
	cust := entity.NewCustomer(salonID, "Alice", "alice@example.com", "")
	if err := customerRepo.Create(context.Background(), cust); err != nil {
		t.Fatalf("seeding customer: %v", err)
	}

	appointmentRepo := newFakeAppointmentRepo()
	appt := entity.NewAppointment(
		salonID,
		cust.ID,
		entity.ServiceRef{ID: uuid.New(), Name: "Haircut"},
		entity.StaffRef{ID: uuid.New(), Name: "Dana"},
		time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC),
		decimal.NewFromInt(50),
		decimal.NewFromInt(5),
		decimal.Zero,
	)
	if err := appointmentRepo.Create(context.Background(), appt); err != nil {
		t.Fatalf("seeding appointment: %v", err)
	}

	sales := &fakeTransactionRepo{}
	return &completionFixture{
		useCase:     NewCompleteAppointmentUseCase(appointmentRepo, sales, customerRepo),
		appointment: appt,
		customer:    cust,
		sales:       sales,
		salonID:     salonID,
	}
}

func TestCompleteAppointment_RecordsSaleAndVisit(t *testing.T) {
	fx := newCompletionFixture(t)
	completedAt := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	output, err := fx.useCase.Execute(context.Background(), CompleteAppointmentInput{
		SalonID:       fx.salonID,
		AppointmentID: fx.appointment.ID,
		CompletedAt:   completedAt,
		TipAmount:     decimal.NewFromInt(10),
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Appointment.Status != entity.AppointmentStatusCompleted {
		t.Errorf("expected completed status, got %s", output.Appointment.Status)
	}

	if len(fx.sales.created) != 1 {
		t.Fatalf("expected 1 sale record, got %d", len(fx.sales.created))
	}
	sale := fx.sales.created[0]
	if sale.Status != entity.TransactionStatusCompleted {
		t.Errorf("expected completed sale, got %s", sale.Status)
	}
	if !sale.GrossAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected gross 50, got %s", sale.GrossAmount)
	}
	if !sale.TipAmount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected tip 10, got %s", sale.TipAmount)
	}
	if sale.Service == nil || sale.Service.Name != "Haircut" {
		t.Errorf("expected service ref carried onto the sale, got %+v", sale.Service)
	}
	if !sale.OccurredAt.Equal(completedAt) {
		t.Errorf("expected sale at %v, got %v", completedAt, sale.OccurredAt)
	}

	if fx.customer.VisitCount != 1 {
		t.Errorf("expected visit count 1, got %d", fx.customer.VisitCount)
	}
	if !fx.customer.TotalSpent.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected total spent 50 (tip excluded), got %s", fx.customer.TotalSpent)
	}
	if fx.customer.LastVisitAt == nil || !fx.customer.LastVisitAt.Equal(completedAt) {
		t.Errorf("expected last visit %v, got %v", completedAt, fx.customer.LastVisitAt)
	}
}

func TestCompleteAppointment_InvalidPaymentMethod(t *testing.T) {
	fx := newCompletionFixture(t)

	_, err := fx.useCase.Execute(context.Background(), CompleteAppointmentInput{
		SalonID:       fx.salonID,
		AppointmentID: fx.appointment.ID,
		PaymentMethod: "crypto",
	})

	var appointmentErr *domainerror.AppointmentError
	if !errors.As(err, &appointmentErr) || appointmentErr.Code != domainerror.ErrCodeInvalidPaymentMethod {
		t.Fatalf("expected invalid payment method error, got %v", err)
	}
	if len(fx.sales.created) != 0 {
		t.Errorf("no sale should be recorded, got %d", len(fx.sales.created))
	}
}

func TestCompleteAppointment_OnlyScheduledCanComplete(t *testing.T) {
	fx := newCompletionFixture(t)
	fx.appointment.Status = entity.AppointmentStatusCancelled

	_, err := fx.useCase.Execute(context.Background(), CompleteAppointmentInput{
		SalonID:       fx.salonID,
		AppointmentID: fx.appointment.ID,
		PaymentMethod: "cash",
	})

	var appointmentErr *domainerror.AppointmentError
	if !errors.As(err, &appointmentErr) || appointmentErr.Code != domainerror.ErrCodeAppointmentNotScheduled {
		t.Fatalf("expected not-scheduled error, got %v", err)
	}
}

func TestCompleteAppointment_SecondCompletionRejected(t *testing.T) {
	fx := newCompletionFixture(t)

	input := CompleteAppointmentInput{
		SalonID:       fx.salonID,
		AppointmentID: fx.appointment.ID,
		PaymentMethod: "cash",
	}
	if _, err := fx.useCase.Execute(context.Background(), input); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	_, err := fx.useCase.Execute(context.Background(), input)
	var appointmentErr *domainerror.AppointmentError
	if !errors.As(err, &appointmentErr) || appointmentErr.Code != domainerror.ErrCodeAppointmentNotScheduled {
		t.Fatalf("expected not-scheduled error on second completion, got %v", err)
	}
	if len(fx.sales.created) != 1 {
		t.Errorf("expected exactly 1 sale record, got %d", len(fx.sales.created))
	}
	if fx.customer.VisitCount != 1 {
		t.Errorf("expected visit count 1 after rejected retry, got %d", fx.customer.VisitCount)
	}
}

func TestCompleteAppointment_ForeignSalonNotFound(t *testing.T) {
	fx := newCompletionFixture(t)

	_, err := fx.useCase.Execute(context.Background(), CompleteAppointmentInput{
		SalonID:       uuid.New(),
		AppointmentID: fx.appointment.ID,
		PaymentMethod: "cash",
	})

	var appointmentErr *domainerror.AppointmentError
	if !errors.As(err, &appointmentErr) || appointmentErr.Code != domainerror.ErrCodeAppointmentNotFound {
		t.Fatalf("expected not-found error for foreign salon, got %v", err)
	}
}

func TestCreateAppointment_UnknownCustomerRejected(t *testing.T) {
	salonID := uuid.New()
	useCase := NewCreateAppointmentUseCase(newFakeAppointmentRepo(), newFakeCustomerRepo())

	_, err := useCase.Execute(context.Background(), CreateAppointmentInput{
		SalonID:     salonID,
		CustomerID:  uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Haircut",
		StaffID:     uuid.New(),
		StaffName:   "Dana",
		ScheduledAt: time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC),
		GrossAmount: decimal.NewFromInt(50),
	})

	var customerErr *domainerror.CustomerError
	if !errors.As(err, &customerErr) || customerErr.Code != domainerror.ErrCodeCustomerNotFound {
		t.Fatalf("expected customer not found error, got %v", err)
	}
}
