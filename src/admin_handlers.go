package main

import (
	"errors"
	"log"
	"net/http"

	"panditseva/src/common"
	"panditseva/src/db"
	"panditseva/src/models"
	"panditseva/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/admin/bookings", func(ctx *gin.Context) {
			var filters types.BookingQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			d := db.GetDb()
			tx := d.
				Model(&models.Booking{}).
				Preload("Service").
				Preload("Customer").
				Preload("Pandit").
				Order("created_at desc")
			if filters.Status != "" {
				tx = tx.Where("status = ?", filters.Status)
			}
			var bookings []models.Booking
			if err := tx.Find(&bookings).Error; err != nil {
				log.Printf("Could not list bookings: %s\n", err.Error())
				bookings = []models.Booking{}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/admin/stats", func(ctx *gin.Context) {
			d := db.GetDb()
			var bookings []models.Booking
			if err := d.
				Model(&models.Booking{}).
				Find(&bookings).
				Error; err != nil {
				log.Printf("Could not load bookings for stats: %s\n", err.Error())
				bookings = []models.Booking{}
			}
			stats := common.ComputeStats(bookings)
			var customers, pandits int64
			d.Model(&models.User{}).Where("role = ?", types.ROLE_CUSTOMER).Count(&customers)
			d.Model(&models.User{}).Where("role = ?", types.ROLE_PANDIT).Count(&pandits)
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"bookings":  stats,
				"customers": customers,
				"pandits":   pandits,
			}})
		}).
		GET("/admin/users", func(ctx *gin.Context) {
			d := db.GetDb()
			var users []models.User
			if err := d.
				Model(&models.User{}).
				Order("created_at desc").
				Find(&users).
				Error; err != nil {
				log.Printf("Could not list users: %s\n", err.Error())
				users = []models.User{}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
		}).
		PUT("/admin/pandits/:id/verify", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			d := db.GetDb()
			res := d.
				Model(&models.User{}).
				Where("id = ? AND role = ?", params.ID, types.ROLE_PANDIT).
				Update("verified", true)
			if res.Error != nil {
				log.Printf("Could not verify pandit [%d]: %s\n", params.ID, res.Error.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "pandit not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/admin/bookings/:id/complete", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			d := db.GetDb()
			if err := common.CompleteBooking(d, params.ID, userId, true); err != nil {
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
		POST("/admin/services", func(ctx *gin.Context) {
			var body types.CreateServiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			service := models.Service{
				Name:        body.Name,
				Slug:        slug.Make(body.Name),
				Description: body.Description,
				Price:       body.Price,
				ImageKey:    body.ImageKey,
			}
			d := db.GetDb()
			if err := d.Create(&service).Error; err != nil {
				log.Printf("Could not create service: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": service})
		})
	return g
}
