package main

import (
	"log"
	"net/http"

	"panditseva/src/db"
	"panditseva/src/models"
	"panditseva/src/types"
	"panditseva/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	auth := apiv1.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			var body types.RegisterUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			role, err := types.ParseRole(body.Role)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hash, err := utils.HashPassword(body.Password)
			if err != nil {
				log.Printf("Error hashing password: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			user := models.User{
				Name:         body.Name,
				Email:        body.Email,
				PasswordHash: hash,
				Role:         role,
			}
			if role == types.ROLE_PANDIT {
				user.Expertise = body.Expertise
				user.WorkLocations = body.WorkLocations
			}
			d := db.GetDb()
			err = d.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.
					Model(&models.User{}).
					Where("email = ?", body.Email).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count > 0 {
					return gorm.ErrDuplicatedKey
				}
				return tx.Create(&user).Error
			})
			if err != nil {
				log.Printf("Could not register user: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "could not register user"})
				return
			}
			token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
			if err != nil {
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"token": token, "data": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"role":  user.Role,
			}})
		}).
		POST("/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			d := db.GetDb()
			var user models.User
			if err := d.
				Model(&models.User{}).
				Where("email = ?", body.Email).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "invalid credentials"})
				return
			}
			if !utils.CheckPassword(user.PasswordHash, body.Password) {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
			if err != nil {
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"token": token, "data": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"role":  user.Role,
			}})
		})
	return apiv1
}
