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

func currentPandit(ctx *gin.Context) (*models.User, error) {
	userId := ctx.GetUint("id")
	d := db.GetDb()
	var pandit models.User
	if err := d.
		Model(&models.User{}).
		Where(&models.User{ID: userId}).
		First(&pandit).
		Error; err != nil {
		return nil, err
	}
	return &pandit, nil
}

func panditHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/pandit/bookings", func(ctx *gin.Context) {
			var filters types.BookingQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pandit, err := currentPandit(ctx)
			if err != nil {
				ctx.Status(http.StatusUnauthorized)
				return
			}
			d := db.GetDb()
			bookings, err := common.BookingsForPandit(d, pandit)
			if err != nil {
				log.Printf("Could not list bookings for pandit %d: %s\n", pandit.ID, err.Error())
				bookings = []models.Booking{}
			}
			if filters.Status != "" {
				status, err := types.ParseBookingStatus(filters.Status)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				filtered := make([]models.Booking, 0, len(bookings))
				for _, b := range bookings {
					if b.Status == status {
						filtered = append(filtered, b)
					}
				}
				bookings = filtered
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		PUT("/pandit/bookings/:id/accept", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			d := db.GetDb()
			booking, err := common.AcceptBooking(d, params.ID, userId)
			if err != nil {
				switch {
				case errors.Is(err, common.ErrBookingNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, common.ErrBookingConflict):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					log.Printf("Could not accept booking [%d]: %s\n", params.ID, err.Error())
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				}
				return
			}
			go mailer.NotifyBooking(booking.ID)
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/pandit/bookings/:id/reject", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			d := db.GetDb()
			if err := common.RejectBooking(d, params.ID); err != nil {
				switch {
				case errors.Is(err, common.ErrBookingNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, common.ErrBookingConflict):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					log.Printf("Could not reject booking [%d]: %s\n", params.ID, err.Error())
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				}
				return
			}
			go mailer.NotifyBooking(params.ID)
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/pandit/bookings/:id/complete", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			d := db.GetDb()
			if err := common.CompleteBooking(d, params.ID, userId, false); err != nil {
				switch {
				case errors.Is(err, common.ErrBookingNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, common.ErrBookingConflict):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					log.Printf("Could not complete booking [%d]: %s\n", params.ID, err.Error())
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				}
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/pandit/stats", func(ctx *gin.Context) {
			pandit, err := currentPandit(ctx)
			if err != nil {
				ctx.Status(http.StatusUnauthorized)
				return
			}
			d := db.GetDb()
			bookings, err := common.BookingsForPandit(d, pandit)
			if err != nil {
				log.Printf("Could not compute stats for pandit %d: %s\n", pandit.ID, err.Error())
				bookings = []models.Booking{}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": common.ComputeStats(bookings)})
		}).
		GET("/pandit/earnings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			d := db.GetDb()
			earnings, err := common.PanditEarnings(d, userId)
			if err != nil {
				log.Printf("Could not compute earnings for pandit %d: %s\n", userId, err.Error())
				ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"earnings": 0}})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"earnings": earnings}})
		})
	return g
}
