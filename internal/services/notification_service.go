package services

import (
	"go.uber.org/zap"
	"videostore/internal/domain/entities"
	"videostore/pkg/utils"
)

// NotificationService tells customers about their rentals and statements.
// In a real store this would send email or print a receipt; here it writes a
// structured log record per notification.
type NotificationService struct {
	logger *zap.Logger
}

func NewNotificationService(logger *zap.Logger) *NotificationService {
	return &NotificationService{logger: logger.Named("notification")}
}

// NotifyRentalRecorded confirms a new rental to the customer
func (s *NotificationService) NotifyRentalRecorded(customer *entities.Customer, rental *entities.Rental) {
	s.logger.Info("rental recorded",
		zap.String("customer_id", customer.ID),
		zap.String("customer_name", customer.Name),
		zap.String("title", rental.Movie().Title()),
		zap.Int("days_rented", rental.DaysRented()),
		zap.String("charge", utils.FormatAmount(rental.Price())),
		zap.Int("points", rental.RentalPoints()),
	)
}

// NotifyStatementIssued records that a statement was produced for the customer
func (s *NotificationService) NotifyStatementIssued(customerID string, stmt entities.Statement) {
	s.logger.Info("statement issued",
		zap.String("customer_id", customerID),
		zap.String("customer_name", stmt.CustomerName),
		zap.Int("rentals", len(stmt.Lines)),
		zap.String("total_charge", utils.FormatDecimal(stmt.TotalCharge)),
		zap.Int("total_points", stmt.TotalPoints),
	)
}
