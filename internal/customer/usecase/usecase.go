package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/customer"
	"github.com/fekuna/omnipos-console/internal/customer/dto"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	now    func() time.Time
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.Validation("name required")
	}
	status := input.Status
	if status == "" {
		status = model.CustomerActive
	}
	if !status.IsValid() {
		return nil, apperr.Validationf("invalid status %q", status)
	}
	if input.TotalOrders < 0 || input.TotalSpend.IsNegative() {
		return nil, apperr.Validation("totals must not be negative")
	}

	today := uc.now().UTC().Format("2006-01-02")
	joined := input.Joined
	if joined == "" {
		joined = today
	}
	lastOrder := input.LastOrderDate
	if lastOrder == "" {
		lastOrder = today
	}

	id, err := uc.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	c := &model.Customer{
		ID:            id,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Status:        status,
		Joined:        joined,
		TotalOrders:   input.TotalOrders,
		TotalSpend:    input.TotalSpend,
		LastOrderDate: lastOrder,
		Notes:         input.Notes,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("customer created", zap.String("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("customer", id)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	c, err := uc.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperr.Validation("name required")
		}
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperr.Validationf("invalid status %q", *input.Status)
		}
		c.Status = *input.Status
	}
	if input.Joined != nil {
		c.Joined = *input.Joined
	}
	if input.TotalOrders != nil {
		if *input.TotalOrders < 0 {
			return nil, apperr.Validation("totals must not be negative")
		}
		c.TotalOrders = *input.TotalOrders
	}
	if input.TotalSpend != nil {
		if input.TotalSpend.IsNegative() {
			return nil, apperr.Validation("totals must not be negative")
		}
		c.TotalSpend = *input.TotalSpend
	}
	if input.LastOrderDate != nil {
		c.LastOrderDate = *input.LastOrderDate
	}
	if input.Notes != nil {
		c.Notes = *input.Notes
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.logger.Info("customer updated", zap.String("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := uc.GetCustomer(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("customer deleted", zap.String("customer_id", id))
	return nil
}

// ToggleStatus activates an inactive customer and blocks any other.
func (uc *customerUseCase) ToggleStatus(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status == model.CustomerInactive {
		c.Status = model.CustomerActive
	} else {
		c.Status = model.CustomerInactive
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.logger.Info("customer status toggled", zap.String("customer_id", id), zap.String("status", string(c.Status)))
	return c, nil
}

func (uc *customerUseCase) Stats(ctx context.Context) (*dto.CustomerStats, error) {
	customers, _, err := uc.repo.FindAll(ctx, &dto.CustomerFilters{})
	if err != nil {
		return nil, err
	}

	stats := &dto.CustomerStats{Total: len(customers), TotalSpend: decimal.Zero}
	for _, c := range customers {
		switch c.Status {
		case model.CustomerActive:
			stats.Active++
		case model.CustomerVIP:
			stats.VIP++
		}
		stats.TotalSpend = stats.TotalSpend.Add(c.TotalSpend)
	}
	return stats, nil
}
