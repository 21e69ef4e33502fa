package controllers

import (
	"net/http"

	"hms-backend/models"
	"hms-backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	admins *services.AdminService
}

func NewAdminController(admins *services.AdminService) *AdminController {
	return &AdminController{admins: admins}
}

// Login handles admin login by username.
func (ctl *AdminController) Login(c *gin.Context) {
	var login models.Login
	if err := c.BindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.admins.Login(login)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
