package routes

import (
	"net/http"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the router wires together; main builds it once.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Tokens    *utils.TokenIssuer
	Photos    services.PhotoUploader
	Geocoder  services.AddressGeocoder
	Moderator services.PhotoModerator
	Mailer    services.ResetMailer
}

func SetupRouter(deps *Deps) *gin.Engine {
	r := gin.Default()

	members := services.NewMemberService(deps.DB, deps.Photos, deps.Geocoder, deps.Moderator)
	auth := services.NewAuthService(deps.DB, deps.Tokens, deps.Mailer, deps.Config.ResetTokenTTL)
	hearts := services.NewHeartService(deps.DB)
	visits := services.NewVisitService(deps.DB)
	messages := services.NewMessageService(deps.DB)

	memberCtrl := controllers.NewMemberController(members, deps.Config.UploadDir)
	authCtrl := controllers.NewAuthController(auth)
	heartCtrl := controllers.NewHeartController(hearts)
	visitCtrl := controllers.NewVisitController(visits)
	messageCtrl := controllers.NewMessageController(messages)

	authRequired := middlewares.AuthMiddleware(deps.DB, deps.Tokens)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Lonely Hearts!")
	})

	api := r.Group("/api")
	{
		// Public member routes
		api.POST("/members/signup", memberCtrl.Signup)
		api.POST("/members/login", authCtrl.Login)
		api.POST("/members/reset-password", authCtrl.RequestPasswordReset)
		api.POST("/members/set-new-password", authCtrl.SetNewPassword)

		// Protected member routes
		api.PATCH("/members/change-password", authRequired, authCtrl.ChangePassword)
		api.GET("/members", authRequired, memberCtrl.List)
		api.GET("/members/:id", authRequired, memberCtrl.Get)
		api.PATCH("/members/:id", authRequired, memberCtrl.Update)
		api.DELETE("/members/:id", authRequired, memberCtrl.Delete)
		api.GET("/members/:id/distances", authRequired, memberCtrl.Distances)

		api.POST("/favorites/:favoriteId", authRequired, memberCtrl.AddFavorite)
		api.DELETE("/favorites/:favoriteId", authRequired, memberCtrl.RemoveFavorite)

		api.POST("/hearts", authRequired, heartCtrl.Send)
		api.GET("/hearts/:id", authRequired, heartCtrl.ListForMember)
		api.PATCH("/hearts/:id", authRequired, heartCtrl.Confirm)
		api.DELETE("/hearts/:id", authRequired, heartCtrl.Delete)

		api.POST("/visits", authRequired, visitCtrl.Create)
		api.GET("/visits/:id", authRequired, visitCtrl.ListByVisitor)
		api.DELETE("/visits/:id", authRequired, visitCtrl.Delete)

		api.POST("/messages", authRequired, messageCtrl.Send)
		api.GET("/messages", authRequired, messageCtrl.List)
		api.GET("/messages/:id", authRequired, messageCtrl.ListBySender)
		api.PATCH("/messages/:id", authRequired, messageCtrl.Edit)
		api.DELETE("/messages/:id", authRequired, messageCtrl.Delete)

		api.GET("/threads/inbox/:id", authRequired, messageCtrl.Inbox)
		api.GET("/threads/outbox/:id", authRequired, messageCtrl.Outbox)
		api.GET("/threads/messages", authRequired, messageCtrl.ThreadMessages)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound,
			models.NewHTTPError(http.StatusNotFound, "Could not find route: "+c.Request.URL.Path))
	})

	return r
}
