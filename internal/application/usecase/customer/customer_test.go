package customer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// fakeCustomerRepo preserves insertion order, matching the created_at
// ordering of the real repository.
type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.customers = append(r.customers, customer)
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id, salonID uuid.UUID) (*entity.Customer, error) {
	for _, customer := range r.customers {
		if customer.ID == id && customer.SalonID == salonID {
			return customer, nil
		}
	}
	return nil, domainerror.ErrCustomerNotFound
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
	for i, existing := range r.customers {
		if existing.ID == customer.ID {
			r.customers[i] = customer
			return nil
		}
	}
	return domainerror.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) ExistsByEmail(_ context.Context, salonID uuid.UUID, email string) (bool, error) {
	for _, customer := range r.customers {
		if customer.SalonID == salonID && customer.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateCustomer_TrimsAndPersists(t *testing.T) {
	repo := &fakeCustomerRepo{}
	useCase := NewCreateCustomerUseCase(repo)
	salonID := uuid.New()

	output, err := useCase.Execute(context.Background(), CreateCustomerInput{
		SalonID: salonID,
		Name:    "  Alice  ",
		Email:   " alice@example.com ",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Customer.Name != "Alice" {
		t.Errorf("expected trimmed name, got %q", output.Customer.Name)
	}
	if output.Customer.Email != "alice@example.com" {
		t.Errorf("expected trimmed email, got %q", output.Customer.Email)
	}
	if !output.Customer.IsActive {
		t.Error("new customers start active")
	}
	if len(repo.customers) != 1 {
		t.Errorf("expected 1 persisted customer, got %d", len(repo.customers))
	}
}

func TestCreateCustomer_BlankNameRejected(t *testing.T) {
	useCase := NewCreateCustomerUseCase(&fakeCustomerRepo{})

	_, err := useCase.Execute(context.Background(), CreateCustomerInput{
		SalonID: uuid.New(),
		Name:    "   ",
	})

	var customerErr *domainerror.CustomerError
	if !errors.As(err, &customerErr) || customerErr.Code != domainerror.ErrCodeCustomerNameRequired {
		t.Fatalf("expected name required error, got %v", err)
	}
}

func TestListCustomers_Paging(t *testing.T) {
	repo := &fakeCustomerRepo{}
	salonID := uuid.New()
	for i := 0; i < 5; i++ {
		cust := entity.NewCustomer(salonID, fmt.Sprintf("Customer %d", i), "", "")
		if err := repo.Create(context.Background(), cust); err != nil {
			t.Fatalf("seeding customer: %v", err)
		}
	}
	useCase := NewListCustomersUseCase(repo)

	tests := []struct {
		name      string
		limit     int
		offset    int
		wantNames []string
	}{
		{"no paging", 0, 0, []string{"Customer 0", "Customer 1", "Customer 2", "Customer 3", "Customer 4"}},
		{"first page", 2, 0, []string{"Customer 0", "Customer 1"}},
		{"second page", 2, 2, []string{"Customer 2", "Customer 3"}},
		{"short last page", 2, 4, []string{"Customer 4"}},
		{"offset past end", 2, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := useCase.Execute(context.Background(), ListCustomersInput{
				SalonID: salonID,
				Limit:   tt.limit,
				Offset:  tt.offset,
			})
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if output.Total != 5 {
				t.Errorf("Total must be the full roster size, got %d", output.Total)
			}
			if len(output.Customers) != len(tt.wantNames) {
				t.Fatalf("expected %d customers, got %d", len(tt.wantNames), len(output.Customers))
			}
			for i, want := range tt.wantNames {
				if output.Customers[i].Name != want {
					t.Errorf("position %d: expected %s, got %s", i, want, output.Customers[i].Name)
				}
			}
		})
	}
}

func TestUpdateCustomer_PartialUpdate(t *testing.T) {
	repo := &fakeCustomerRepo{}
	salonID := uuid.New()
	cust := entity.NewCustomer(salonID, "Alice", "alice@example.com", "555-1234")
	if err := repo.Create(context.Background(), cust); err != nil {
		t.Fatalf("seeding customer: %v", err)
	}
	useCase := NewUpdateCustomerUseCase(repo)

	vip := true
	output, err := useCase.Execute(context.Background(), UpdateCustomerInput{
		SalonID:    salonID,
		CustomerID: cust.ID,
		IsVIP:      &vip,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !output.Customer.IsVIP {
		t.Error("expected VIP flag set")
	}
	if output.Customer.Name != "Alice" || output.Customer.Email != "alice@example.com" {
		t.Errorf("untouched fields must survive: %+v", output.Customer)
	}
}

func TestUpdateCustomer_ForeignSalonNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{}
	cust := entity.NewCustomer(uuid.New(), "Alice", "", "")
	if err := repo.Create(context.Background(), cust); err != nil {
		t.Fatalf("seeding customer: %v", err)
	}
	useCase := NewUpdateCustomerUseCase(repo)

	name := "Eve"
	_, err := useCase.Execute(context.Background(), UpdateCustomerInput{
		SalonID:    uuid.New(),
		CustomerID: cust.ID,
		Name:       &name,
	})

	var customerErr *domainerror.CustomerError
	if !errors.As(err, &customerErr) || customerErr.Code != domainerror.ErrCodeCustomerNotFound {
		t.Fatalf("expected not found for foreign salon, got %v", err)
	}
}
