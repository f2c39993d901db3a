package main

import (
	"fmt"
	"net/http"

	"github.com/hamkar/worklog-backend-go/internal/config"
	appHTTP "github.com/hamkar/worklog-backend-go/internal/handler/http"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/hamkar/worklog-backend-go/internal/pkg/jwt"
	"github.com/hamkar/worklog-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/hamkar/worklog-backend-go/internal/service/auth"
	serviceLeave "github.com/hamkar/worklog-backend-go/internal/service/leave"
	serviceWorkLog "github.com/hamkar/worklog-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	workEventRepo := postgresql.NewWorkEventRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	workLogService := serviceWorkLog.NewWorkLogService(db, workEventRepo, userRepo, cfg.App.Location)
	leaveService := serviceLeave.NewLeaveService(db, leaveRepo, userRepo, cfg.App.Location)

	authHandler := appHTTP.NewAuthHandler(authService)
	workLogHandler := appHTTP.NewWorkLogHandler(workLogService)
	leaveHandler := appHTTP.NewLeaveHandler(leaveService)

	router := appHTTP.NewRouter(JWTService, cfg.App.Env, authHandler, workLogHandler, leaveHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
