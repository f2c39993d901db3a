package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hamkar/worklog-backend-go/internal/domain/leave"
	"github.com/hamkar/worklog-backend-go/internal/domain/user"
	"github.com/hamkar/worklog-backend-go/internal/domain/worklog"
	"github.com/hamkar/worklog-backend-go/internal/pkg/jalali"
	"github.com/hamkar/worklog-backend-go/internal/pkg/validator"
)

// Handler routes bot commands to the same services the HTTP API uses. Users
// are matched by their Telegram chat id; accounts are created through the
// API first.
type Handler struct {
	bot            *tgbotapi.BotAPI
	userRepository user.UserRepository
	workLogService worklog.WorkLogService
	leaveService   leave.LeaveService
	location       *time.Location
}

func NewHandler(bot *tgbotapi.BotAPI, userRepository user.UserRepository, workLogService worklog.WorkLogService, leaveService leave.LeaveService, location *time.Location) *Handler {
	return &Handler{
		bot:            bot,
		userRepository: userRepository,
		workLogService: workLogService,
		leaveService:   leaveService,
		location:       location,
	}
}

func (h *Handler) HandleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			h.handleCommand(ctx, update.Message)
		}
	}
}

func (h *Handler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "help":
		h.reply(message.Chat.ID, helpText)
		return
	}

	userData, err := h.userRepository.GetByTelegramID(ctx, strconv.FormatInt(message.Chat.ID, 10))
	if err != nil {
		slog.Error("Failed to resolve bot user", "chat_id", message.Chat.ID, "error", err)
		h.reply(message.Chat.ID, "Account not found. Register through the API with this Telegram ID first.")
		return
	}

	args := strings.Fields(message.CommandArguments())

	switch message.Command() {
	case "in":
		h.recordEvent(ctx, message.Chat.ID, userData.ID, worklog.StatusStarted, message.CommandArguments())
	case "out":
		h.recordEvent(ctx, message.Chat.ID, userData.ID, worklog.StatusEnded, message.CommandArguments())
	case "day":
		h.dayReport(ctx, message.Chat.ID, userData.ID, args)
	case "month":
		h.monthlyReport(ctx, message.Chat.ID, userData.ID, args)
	case "jmonth":
		h.jalaliMonthlyReport(ctx, message.Chat.ID, userData.ID, args)
	case "leave":
		h.createLeave(ctx, message.Chat.ID, userData.ID, args)
	case "jleave":
		h.createJalaliLeave(ctx, message.Chat.ID, userData.ID, args)
	case "leaves":
		h.jalaliLeaveReport(ctx, message.Chat.ID, userData.ID, args)
	default:
		h.reply(message.Chat.ID, "Unknown command. Use /help for the command list.")
	}
}

const helpText = `Worklog bot commands:
/in [comment] - start a work session
/out [comment] - end the current session
/day [YYYY-MM-DD] - worked time for a day (default today)
/month [year month] - worked time for a Gregorian month
/jmonth <year> <month> - worked time for a Jalali month
/leave <YYYY-MM-DD> [HH:MM HH:MM] [reason] - record leave
/jleave <YYYY-MM-DD> [HH:MM HH:MM] [reason] - record leave by Jalali date
/leaves <jalali year> [month] - leave totals for a Jalali month or year`

func (h *Handler) recordEvent(ctx context.Context, chatID int64, userID string, status worklog.Status, comment string) {
	req := worklog.CreateWorkEventRequest{Status: string(status)}
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		req.Comment = &trimmed
	}

	result, err := h.workLogService.CreateEvent(ctx, userID, req)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	verb := "started"
	if status == worklog.StatusEnded {
		verb = "ended"
	}
	h.reply(chatID, fmt.Sprintf("Work %s at %s (%s %s)", verb, result.RecordedTime, result.JalaliDayOfWeek, result.JalaliDate))
}

func (h *Handler) dayReport(ctx context.Context, chatID int64, userID string, args []string) {
	date := time.Now().In(h.location)
	if len(args) > 0 {
		parsed, ok := validator.IsValidDate(args[0])
		if !ok {
			h.reply(chatID, "Usage: /day [YYYY-MM-DD]")
			return
		}
		date = parsed
	}

	result, err := h.workLogService.DayReport(ctx, userID, date)
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.reply(chatID, fmt.Sprintf("Worked on %s: %s", date.Format("2006-01-02"), result.TotalTime))
}

func (h *Handler) monthlyReport(ctx context.Context, chatID int64, userID string, args []string) {
	now := time.Now().In(h.location)
	year, month := now.Year(), int(now.Month())
	if len(args) >= 2 {
		var ok bool
		if year, month, ok = parseYearMonth(args[0], args[1]); !ok {
			h.reply(chatID, "Usage: /month [year month]")
			return
		}
	}

	result, err := h.workLogService.MonthlyReport(ctx, userID, year, time.Month(month))
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.reply(chatID, fmt.Sprintf("Worked in %d-%02d: %d hours, %d minutes, %d seconds over %d events",
		year, month, result.TotalWorkTime.Hours, result.TotalWorkTime.Minutes, result.TotalWorkTime.Seconds, len(result.WorkLogs)))
}

func (h *Handler) jalaliMonthlyReport(ctx context.Context, chatID int64, userID string, args []string) {
	if len(args) < 2 {
		h.reply(chatID, "Usage: /jmonth <year> <month>")
		return
	}
	year, month, ok := parseYearMonth(args[0], args[1])
	if !ok {
		h.reply(chatID, "Usage: /jmonth <year> <month>")
		return
	}

	result, err := h.workLogService.JalaliMonthlyReport(ctx, userID, year, month)
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	monthName, _ := jalali.MonthName(month)
	h.reply(chatID, fmt.Sprintf("Worked in %s %d: %d days, %d hours, %d minutes over %d events",
		monthName, year, result.TotalHours.Days, result.TotalHours.Hours, result.TotalHours.Minutes, len(result.WorkLogs)))
}

func (h *Handler) createLeave(ctx context.Context, chatID int64, userID string, args []string) {
	if len(args) < 1 {
		h.reply(chatID, "Usage: /leave <YYYY-MM-DD> [HH:MM HH:MM] [reason]")
		return
	}

	req := leave.CreateLeaveRequest{LeaveDate: args[0]}
	req.StartTime, req.EndTime, req.Reason = parseLeaveArgs(args[1:])

	result, err := h.leaveService.CreateLeave(ctx, userID, req)
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.reply(chatID, formatLeaveReply(result))
}

func (h *Handler) createJalaliLeave(ctx context.Context, chatID int64, userID string, args []string) {
	if len(args) < 1 {
		h.reply(chatID, "Usage: /jleave <YYYY-MM-DD> [HH:MM HH:MM] [reason]")
		return
	}

	req := leave.CreateJalaliLeaveRequest{JalaliLeaveDate: args[0]}
	req.StartTime, req.EndTime, req.Reason = parseLeaveArgs(args[1:])

	result, err := h.leaveService.CreateJalaliLeave(ctx, userID, req)
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.reply(chatID, formatLeaveReply(result))
}

func (h *Handler) jalaliLeaveReport(ctx context.Context, chatID int64, userID string, args []string) {
	if len(args) < 1 {
		h.reply(chatID, "Usage: /leaves <jalali year> [month]")
		return
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		h.reply(chatID, "Usage: /leaves <jalali year> [month]")
		return
	}

	if len(args) >= 2 {
		month, err := strconv.Atoi(args[1])
		if err != nil {
			h.reply(chatID, "Usage: /leaves <jalali year> [month]")
			return
		}
		result, err := h.leaveService.JalaliMonthlyReport(ctx, userID, year, month)
		if err != nil {
			h.replyError(chatID, err)
			return
		}
		monthName, _ := jalali.MonthName(month)
		h.reply(chatID, fmt.Sprintf("Leave in %s %d: %d full days, %d hours, %d minutes",
			monthName, year, result.Days, result.Hours, result.Minutes))
		return
	}

	result, err := h.leaveService.JalaliYearlyReport(ctx, userID, year)
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	h.reply(chatID, fmt.Sprintf("Leave in year %d: %d days, %d hours, %d minutes",
		year, result.Days, result.Hours, result.Minutes))
}

// parseYearMonth parses "<year> <month>" arguments for the report commands.
func parseYearMonth(yearArg, monthArg string) (int, int, bool) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthArg)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// parseLeaveArgs splits optional "HH:MM HH:MM" times from a trailing reason.
func parseLeaveArgs(args []string) (startTime, endTime, reason *string) {
	if len(args) >= 2 {
		_, startOK := validator.IsValidClock(args[0])
		_, endOK := validator.IsValidClock(args[1])
		if startOK && endOK {
			startTime, endTime = &args[0], &args[1]
			args = args[2:]
		}
	}
	if len(args) > 0 {
		joined := strings.Join(args, " ")
		reason = &joined
	}
	return startTime, endTime, reason
}

func formatLeaveReply(result leave.LeaveResponse) string {
	if result.StartTime != nil && result.EndTime != nil {
		return fmt.Sprintf("Hourly leave recorded for %s (%s) from %s to %s",
			result.LeaveDate, result.JalaliDate, *result.StartTime, *result.EndTime)
	}
	return fmt.Sprintf("Full-day leave recorded for %s (%s)", result.LeaveDate, result.JalaliDate)
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("Failed to send bot message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) replyError(chatID int64, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var b strings.Builder
		b.WriteString("Invalid input:")
		for _, e := range validationErrs {
			fmt.Fprintf(&b, "\n- %s: %s", e.Field, e.Message)
		}
		h.reply(chatID, b.String())
		return
	}
	h.reply(chatID, "Error: "+err.Error())
}
