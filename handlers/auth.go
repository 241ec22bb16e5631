package handlers

import (
	"net/http"

	"meetsync/services/calendar"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var oauthConfig *oauth2.Config

// SetOAuthConfig injects the Google OAuth client configuration.
func SetOAuthConfig(cfg *oauth2.Config) {
	oauthConfig = cfg
}

// AuthURL returns the Google consent-screen URL for the front-end to open.
func AuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"url": calendar.AuthURL(oauthConfig, uuid.New().String()),
	})
}

// AuthCallback exchanges the authorization code for a token. The front-end
// holds the token and sends it back with every chat turn.
func AuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing authorization code", "")
		return
	}

	token, err := calendar.ExchangeCode(c.Request.Context(), oauthConfig, code)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "authorization code exchange failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"creds":  token,
	})
}
