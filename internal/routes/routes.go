package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garageops/workshop-api/internal/audit"
	"github.com/garageops/workshop-api/internal/cache"
	"github.com/garageops/workshop-api/internal/config"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/handlers"
	infraRepo "github.com/garageops/workshop-api/internal/infra/repository"
	"github.com/garageops/workshop-api/internal/middleware"
	ucServiceRecord "github.com/garageops/workshop-api/internal/usecase/servicerecord"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cacheClient *cache.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var recordRepo domain.Repository = infraRepo.NewServiceRecordGormRepository(db)
	if cacheClient != nil {
		recordRepo = infraRepo.NewCachedLookupRepository(recordRepo, cacheClient)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: SERVICE RECORDS
	// ======================================================
	createRecordUC := ucServiceRecord.NewCreateServiceRecord(
		recordRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	updateRecordUC := ucServiceRecord.NewUpdateServiceRecord(
		recordRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	completeRecordUC := ucServiceRecord.NewCompleteServiceRecord(
		recordRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	softDeleteRecordUC := ucServiceRecord.NewSoftDeleteServiceRecord(
		recordRepo,
		auditDispatcher,
	)

	listRecordsUC := ucServiceRecord.NewListRecordsForActor(recordRepo)
	getRecordUC := ucServiceRecord.NewGetServiceRecord(recordRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	mechanicHandler := handlers.NewMechanicHandler(db, auditDispatcher)
	carHandler := handlers.NewCarHandler(db, cacheClient, auditDispatcher)

	serviceRecordHandler := handlers.NewServiceRecordHandler(
		createRecordUC,
		updateRecordUC,
		completeRecordUC,
		softDeleteRecordUC,
		listRecordsUC,
		getRecordUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/public/rate", publicHandler.GetRate)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)
			secured.PATCH("/me/customers/:id", customerHandler.Update)
			secured.DELETE("/me/customers/:id", customerHandler.Delete)

			secured.GET("/me/mechanics", mechanicHandler.List)
			secured.POST("/me/mechanics", mechanicHandler.Create)
			secured.PATCH("/me/mechanics/:id", mechanicHandler.Update)
			secured.DELETE("/me/mechanics/:id", mechanicHandler.Delete)

			secured.GET("/me/cars", carHandler.List)
			secured.GET("/me/cars/:id", carHandler.Get)
			secured.POST("/me/cars", carHandler.Create)
			secured.PATCH("/me/cars/:id", carHandler.Update)
			secured.DELETE("/me/cars/:id", carHandler.Delete)

			// ------------------------------
			// SERVICE RECORDS
			// ------------------------------
			secured.GET("/me/service-records", serviceRecordHandler.List)
			secured.GET("/me/service-records/:id", serviceRecordHandler.Get)
			secured.POST("/me/service-records", serviceRecordHandler.Create)
			secured.PATCH("/me/service-records/:id", serviceRecordHandler.Update)
			secured.PATCH("/me/service-records/:id/complete", serviceRecordHandler.Complete)
			secured.DELETE("/me/service-records/:id", serviceRecordHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
