package services

import (
	"fmt"

	"autocare/internal/models"
	"autocare/internal/utils"
)

// SMSService texts customers when their booking is confirmed.
type SMSService struct {
	client *utils.SMSClient
}

func NewSMSService(client *utils.SMSClient) *SMSService {
	if client == nil {
		return nil
	}
	return &SMSService{client: client}
}

func (s *SMSService) NotifyConfirmed(b *models.Booking) error {
	if s == nil || s.client == nil {
		return nil
	}
	text := fmt.Sprintf("AutoCare24: your %s %s wash on %s at %s is confirmed. Amount: Rs. %d.",
		b.VehicleType, b.Package, b.Date, b.Time, b.Price)
	_, err := s.client.SendSMS(b.Phone, text)
	return err
}
