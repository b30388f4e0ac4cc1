package main

import (
	"fmt"
	"log"
	"net/http"

	"panditseva/src/db"
	awslib "panditseva/src/lib/aws"
	"panditseva/src/models"
	"panditseva/src/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func profileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/profile", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			d := db.GetDb()
			var user models.User
			if err := d.
				Model(&models.User{}).
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		PUT("/profile", func(ctx *gin.Context) {
			var body types.UpdateProfileRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			updates := models.User{
				Name:    body.Name,
				Address: body.Address,
			}
			// role is immutable here; pandit fields only apply to pandits
			if role == string(types.ROLE_PANDIT) {
				updates.Expertise = body.Expertise
				updates.WorkLocations = body.WorkLocations
			}
			d := db.GetDb()
			if err := d.
				Model(&models.User{}).
				Where(&models.User{ID: userId}).
				Updates(&updates).
				Error; err != nil {
				log.Printf("Could not update profile for user %d: %s\n", userId, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				return
			}
			var user models.User
			if err := d.
				Model(&models.User{}).
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		GET("/profile/image", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			d := db.GetDb()
			var user models.User
			if err := d.
				Model(&models.User{}).
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if user.ImageKey == "" {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "no profile image"})
				return
			}
			body, contentType, err := awslib.S3DownloadProfileImage(user.ImageKey)
			if err != nil {
				log.Printf("Could not fetch image for user %d: %s\n", userId, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not fetch image"})
				return
			}
			if body == nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "no profile image"})
				return
			}
			ctx.Data(http.StatusOK, contentType, body)
		}).
		POST("/profile/image", func(ctx *gin.Context) {
			file, err := ctx.FormFile("image")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			src, err := file.Open()
			if err != nil {
				log.Printf("Could not open uploaded file: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			defer src.Close()
			userId := ctx.GetUint("id")
			key := fmt.Sprintf("profiles/%d/%s", userId, uuid.NewString())
			contentType := file.Header.Get("Content-Type")
			if err := awslib.S3UploadProfileImage(key, src, contentType); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not store image"})
				return
			}
			d := db.GetDb()
			if err := d.
				Model(&models.User{}).
				Where(&models.User{ID: userId}).
				Update("image_key", key).
				Error; err != nil {
				log.Printf("Could not save image key for user %d: %s\n", userId, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error while processing request"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"image_key": key}})
		})
	return g
}
