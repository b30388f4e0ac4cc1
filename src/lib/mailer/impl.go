package mailer

import (
	"fmt"
	"log"
	"os"

	"panditseva/src/db"
	"panditseva/src/lib"
	"panditseva/src/models"
	"panditseva/src/types"
)

// NotifyBooking dispatches booking summary emails to the customer and, if
// one is bound, the pandit. Best-effort: failures are logged and never
// surfaced to the caller.
func NotifyBooking(bookingID uint) {
	d := db.GetDb()
	var booking models.Booking
	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingID}).
		Preload("Service").
		Preload("Customer").
		Preload("Pandit").
		First(&booking).
		Error; err != nil {
		log.Printf("[mailer] Could not load Booking [%d]: %s\n", bookingID, err.Error())
		return
	}
	if booking.Customer != nil {
		subject := fmt.Sprintf("Booking #%d received", booking.ID)
		body := customerBody(&booking)
		send(&booking, booking.Customer.Email, subject, body)
	}
	if booking.Pandit != nil {
		subject := fmt.Sprintf("Booking #%d assigned to you", booking.ID)
		body := panditBody(&booking)
		send(&booking, booking.Pandit.Email, subject, body)
	}
}

func send(booking *models.Booking, to, subject, body string) {
	from := os.Getenv("MAIL_FROM")
	fromName := os.Getenv("MAIL_FROM_NAME")
	status := "sent"
	if err := lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{to},
		Subject:  subject,
		Body:     body,
	}); err != nil {
		log.Printf("[mailer] Could not send mail for Booking [%d]: %s\n", booking.ID, err.Error())
		status = "failed"
	}
	d := db.GetDb()
	n := models.Notification{
		BookingID: booking.ID,
		Recipient: to,
		Subject:   subject,
		Status:    status,
		Body: &types.JSONB{
			"status":   string(booking.Status),
			"location": booking.Location,
		},
	}
	if err := d.Create(&n).Error; err != nil {
		log.Printf("[mailer] Could not record notification for Booking [%d]: %s\n", booking.ID, err.Error())
	}
}

func customerBody(b *models.Booking) string {
	serviceName := ""
	if b.Service != nil {
		serviceName = b.Service.Name
	}
	date := ""
	if b.TentativeDate != nil {
		date = b.TentativeDate.Format("2006-01-02")
	}
	return fmt.Sprintf(
		"Namaste,\n\nYour booking for %s on %s at %s has been received and is %s.\nWe will notify you once a pandit accepts it.\n",
		serviceName, date, b.Location, b.Status,
	)
}

func panditBody(b *models.Booking) string {
	serviceName := ""
	if b.Service != nil {
		serviceName = b.Service.Name
	}
	date := ""
	if b.TentativeDate != nil {
		date = b.TentativeDate.Format("2006-01-02")
	}
	return fmt.Sprintf(
		"Namaste,\n\nYou have been assigned booking #%d: %s on %s.\nLocation: %s\nAddress: %s\n",
		b.ID, serviceName, date, b.Location, b.Address,
	)
}
