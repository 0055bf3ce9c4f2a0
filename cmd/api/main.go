package main

import (
	"fmt"
	"net/http"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/config"
	appHTTP "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/handler/http"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/jwt"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/repository/postgresql"
	advanceService "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/service/advance"
	loanService "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/service/loan"
	mobilebillService "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/service/mobilebill"
	payrollService "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/service/payroll"
	trainingService "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/service/training"
	uniformService "github.com/jacklittlebird-ui/hr-erp-backend-go/internal/service/uniform"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	billRepo := postgresql.NewBillRepository(db)
	issuanceRepo := postgresql.NewIssuanceRepository(db)
	trainingRepo := postgresql.NewTrainingRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	loanSvc := loanService.NewLoanService(loanRepo, employeeRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	billSvc := mobilebillService.NewBillService(billRepo)
	uniformSvc := uniformService.NewUniformService(issuanceRepo, employeeRepo, cfg.Payroll.AutoArchiveAtZero)
	trainingSvc := trainingService.NewTrainingService(trainingRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, loanRepo, advanceSvc, billSvc)

	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	mobileBillHandler := appHTTP.NewMobileBillHandler(billSvc)
	uniformHandler := appHTTP.NewUniformHandler(uniformSvc)
	trainingHandler := appHTTP.NewTrainingHandler(trainingSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		loanHandler,
		advanceHandler,
		mobileBillHandler,
		uniformHandler,
		trainingHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
