package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/config"
	appHTTP "github.com/absensi-rfid/attendance-backend-go/internal/handler/http"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/jwt"
	"github.com/absensi-rfid/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/absensi-rfid/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/absensi-rfid/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/absensi-rfid/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/absensi-rfid/attendance-backend-go/internal/service/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/service/master"
	payrollService "github.com/absensi-rfid/attendance-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", cfg.App.Timezone)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	masterService := master.NewMasterService(db, positionRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, positionRepo, nil)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, nil, loc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo, nil, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, employeeRepo, positionRepo, nil, loc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		masterHandler,
		payrollHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
