package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/tatenda10/sms-sub003/app/routes/fees"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 6:00 AM
			if now.Hour() == 6 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [06:00]...")

				// Flag unpaid fees past their due date
				flagged, err := fees.MarkOverdueFees(db)
				if err != nil {
					log.Printf("Error marking overdue fees: %v", err)
				} else if flagged > 0 {
					log.Printf("Marked %d fees as overdue", flagged)
				}
			}
		}
	}()
}
