package main

import (
	"errors"
	"log"
	"net/http"

	"panditseva/src/common"
	"panditseva/src/db"
	"panditseva/src/lib/mailer"
	"panditseva/src/models"
	"panditseva/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			d := db.GetDb()
			booking, err := common.CreateBooking(d, userId, &body)
			if err != nil {
				if errors.Is(err, common.ErrServiceNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				log.Printf("Could not create booking: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			common.CacheCreatedBooking(userId, body.RequestID, booking)
			go mailer.NotifyBooking(booking.ID)
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			d := db.GetDb()
			bookings, err := common.BookingsForCustomer(d, userId)
			if err != nil {
				// read path degrades to an empty list
				log.Printf("Could not list bookings for user %d: %s\n", userId, err.Error())
				bookings = []models.Booking{}
			}
			bookings = common.MergeCachedBookings(userId, bookings)
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			d := db.GetDb()
			var booking models.Booking
			if err := d.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID, CreatedBy: userId}).
				Preload("Service").
				Preload("Pandit").
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			d := db.GetDb()
			if err := common.CancelBooking(d, params.ID, userId); err != nil {
				switch {
				case errors.Is(err, common.ErrBookingNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, common.ErrNotBookingOwner):
					ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				case errors.Is(err, common.ErrBookingConflict):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					log.Printf("Could not cancel booking [%d]: %s\n", params.ID, err.Error())
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				}
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/stats", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			d := db.GetDb()
			bookings, err := common.BookingsForCustomer(d, userId)
			if err != nil {
				log.Printf("Could not compute stats for user %d: %s\n", userId, err.Error())
				bookings = []models.Booking{}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": common.ComputeStats(bookings)})
		})
	return g
}
