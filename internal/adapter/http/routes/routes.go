package routes

import (
	"context"
	"log"
	"strconv"

	_ "dealcost/docs" // This will be auto-generated
	"dealcost/internal/adapter/http/handlers"
	repository2 "dealcost/internal/adapter/persistence/repository"
	"dealcost/internal/infrastructure/database"
	"dealcost/internal/infrastructure/ocr"
	"dealcost/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	accountRepo := repository2.NewAccountDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	reportRepo := repository2.NewReportDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	scanner := ocr.NewTextractGateway(awsCfg)

	accountHandler := handlers.NewAccountHandler(usecase.NewAccountUseCase(accountRepo))
	vehicleHandler := handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo, reportRepo))
	reportHandler := handlers.NewReportHandler(usecase.NewReportUseCase(reportRepo))
	expenseHandler := handlers.NewExpenseHandler(usecase.NewExpenseUseCase(expenseRepo))
	depositHandler := handlers.NewDepositHandler(usecase.NewDepositUseCase(depositRepo))
	taskHandler := handlers.NewTaskHandler(usecase.NewTaskUseCase(taskRepo))
	dashboardHandler := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(vehicleRepo, reportRepo))
	documentHandler := handlers.NewDocumentHandler(usecase.NewDocumentUseCase(scanner))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDealershipRoutes(v1, &dealershipHandlers{
		accounts:  accountHandler,
		vehicles:  vehicleHandler,
		reports:   reportHandler,
		expenses:  expenseHandler,
		deposits:  depositHandler,
		tasks:     taskHandler,
		dashboard: dashboardHandler,
		documents: documentHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
