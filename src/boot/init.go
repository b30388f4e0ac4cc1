package boot

import (
	"log"
	"time"

	"panditseva/src/common"
	"panditseva/src/db"
	"panditseva/src/lib"
	"panditseva/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	d := db.GetDb()

	err := d.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return d
}

// InitScheduler starts the cancellation policy job: pending bookings whose
// tentative date has passed are moved to cancelled.
func InitScheduler() {
	id, err := lib.CreateCronJob(func() {
		common.CancelStalePending(db.GetDb())
	}, time.Hour)
	if err != nil {
		log.Printf("Error scheduling job: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled cancellation policy job: %s\n", *id)
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
