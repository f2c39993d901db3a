package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hamkar/worklog-backend-go/internal/config"
	"github.com/hamkar/worklog-backend-go/internal/handler/telegram"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/hamkar/worklog-backend-go/internal/repository/postgresql"
	serviceLeave "github.com/hamkar/worklog-backend-go/internal/service/leave"
	serviceWorkLog "github.com/hamkar/worklog-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if cfg.Telegram.Token == "" {
		fmt.Println("TELEGRAM_API_TOKEN is required")
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

	workLogService := serviceWorkLog.NewWorkLogService(db, workEventRepo, userRepo, cfg.App.Location)
	leaveService := serviceLeave.NewLeaveService(db, leaveRepo, userRepo, cfg.App.Location)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		fmt.Println("Error connecting to Telegram:", err)
		return
	}
	bot.Debug = cfg.Telegram.Debug
	slog.Info("Bot authorized", "username", bot.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := telegram.NewHandler(bot, userRepo, workLogService, leaveService, cfg.App.Location)
	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()
	handler.HandleUpdates(ctx, updates)
}
