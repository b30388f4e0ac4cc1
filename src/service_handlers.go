package main

import (
	"log"
	"net/http"

	"panditseva/src/db"
	"panditseva/src/models"
	"panditseva/src/types"

	"github.com/gin-gonic/gin"
)

func serviceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/services", func(ctx *gin.Context) {
			d := db.GetDb()
			var services []models.Service
			if err := d.
				Model(&models.Service{}).
				Order("name asc").
				Find(&services).
				Error; err != nil {
				log.Printf("Could not list services: %s\n", err.Error())
				services = []models.Service{}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": services, "count": len(services)})
		}).
		GET("/services/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			d := db.GetDb()
			var service models.Service
			if err := d.
				Model(&models.Service{}).
				Where(&models.Service{ID: params.ID}).
				First(&service).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": service})
		})
	return g
}
