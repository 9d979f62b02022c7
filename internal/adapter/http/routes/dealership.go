package routes

import (
	"dealcost/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAccounts  = "/accounts"
	PathVehicles  = "/vehicles"
	PathReports   = "/reports"
	PathExpenses  = "/expenses"
	PathDeposits  = "/deposits"
	PathTasks     = "/tasks"
	PathDashboard = "/dashboard"
	PathDocuments = "/documents"
)

type dealershipHandlers struct {
	accounts  *handlers.AccountHandler
	vehicles  *handlers.VehicleHandler
	reports   *handlers.ReportHandler
	expenses  *handlers.ExpenseHandler
	deposits  *handlers.DepositHandler
	tasks     *handlers.TaskHandler
	dashboard *handlers.DashboardHandler
	documents *handlers.DocumentHandler
}

func addDealershipRoutes(rg *gin.RouterGroup, h *dealershipHandlers) {
	accounts := rg.Group(PathAccounts)
	{
		accounts.POST("", h.accounts.CreateAccount)
		accounts.POST("/login", h.accounts.Login)
		accounts.GET("/:username", h.accounts.GetAccount)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", h.vehicles.AddVehicle)
		vehicles.GET("", h.vehicles.ListInventory)
		vehicles.GET("/:vin", h.vehicles.GetVehicle)
		vehicles.PATCH("/:vin", h.vehicles.UpdateVehicle)
		vehicles.DELETE("/:vin", h.vehicles.DeleteVehicle)
	}

	reports := rg.Group(PathReports)
	{
		reports.POST("", h.reports.InsertReport)
		reports.GET("", h.reports.ListReports)
		// Registered before /:id so gin does not treat it as a report id.
		reports.GET("/monthly-profits", h.dashboard.GetMonthlyProfits)
		reports.GET("/:id", h.reports.GetReport)
		reports.PATCH("/:id", h.reports.UpdateReport)
		reports.DELETE("/:id", h.reports.DeleteReport)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", h.expenses.CreateExpense)
		expenses.GET("", h.expenses.ListExpenses)
		expenses.PATCH("/:id", h.expenses.UpdateExpense)
		expenses.DELETE("/:id", h.expenses.DeleteExpense)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("", h.deposits.CreateDeposit)
		deposits.GET("", h.deposits.ListDeposits)
		deposits.PATCH("/:id", h.deposits.UpdateDeposit)
		deposits.DELETE("/:id", h.deposits.DeleteDeposit)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.POST("", h.tasks.CreateTask)
		tasks.GET("", h.tasks.ListTasks)
		tasks.PATCH("/:id", h.tasks.UpdateTask)
		tasks.POST("/:id/complete", h.tasks.CompleteTask)
		tasks.POST("/:id/reopen", h.tasks.ReopenTask)
		tasks.DELETE("/:id", h.tasks.DeleteTask)
	}

	rg.GET(PathDashboard, h.dashboard.GetDashboard)
	rg.POST(PathDocuments+"/scan", h.documents.ScanDocument)
}
