package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter monta o roteador com CORS liberado para o painel, as rotas
// públicas de autenticação e o grupo protegido por bearer token.
func NewRouter(handler *Handler, authMiddleware, optionalAuthMiddleware, adminMiddleware gin.HandlerFunc, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	auth.POST("/sign-in", handler.signIn)
	auth.POST("/sign-up", optionalAuthMiddleware, handler.signUp)
	auth.POST("/forgot-password", handler.forgotPassword)
	auth.POST("/reset-password", handler.resetPassword)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/auth/profile", handler.profile)
	protected.POST("/auth/change-password", handler.changePassword)

	protected.GET("/clients", handler.listClients)
	protected.POST("/clients", handler.createClient)
	protected.GET("/clients/:id", handler.getClient)
	protected.PUT("/clients/:id", handler.updateClient)
	protected.DELETE("/clients/:id", handler.deleteClient)
	protected.GET("/clients/:id/contracts", handler.listClientContracts)

	protected.GET("/contracts", handler.listContracts)
	protected.POST("/contracts", handler.createContract)
	protected.GET("/contracts/:id", handler.getContract)
	protected.PUT("/contracts/:id", handler.updateContract)
	protected.DELETE("/contracts/:id", handler.deleteContract)

	protected.GET("/receivables", handler.listReceivables)
	protected.GET("/receivables/eligible-contracts", handler.listEligibleContracts)
	protected.POST("/receivables/generate/:contractId", handler.generateReceivable)
	protected.GET("/receivables/:id", handler.getReceivable)
	protected.PUT("/receivables/:id", handler.updateReceivable)
	protected.PATCH("/receivables/:id/status", handler.advanceReceivableStatus)
	protected.DELETE("/receivables/:id", handler.deleteReceivable)

	protected.GET("/dashboard/stats", handler.dashboardStats)

	protected.GET("/reports/clients/:id/ficha", handler.clientFichaReport)
	protected.GET("/reports/sales-by-year", handler.salesByYearReport)
	protected.GET("/reports/sales-by-state", handler.salesByStateReport)
	protected.GET("/reports/active-warranties", handler.activeWarrantiesReport)
	protected.GET("/reports/contracts/excel", handler.contractsWorkbook)
	protected.GET("/reports/receivables/excel", handler.receivablesWorkbook)

	protected.GET("/cep/:code", handler.lookupCEP)

	admin := protected.Group("/users")
	admin.Use(adminMiddleware)
	admin.GET("", handler.listUsers)
	admin.DELETE("/:id", handler.deleteUser)

	return router
}
