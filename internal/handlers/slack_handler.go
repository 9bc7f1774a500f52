package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/mathcamp/daily-problem-bot/internal/domain"
	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
	slackcmd "github.com/mathcamp/daily-problem-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient    contract.SlackClient
	problemService contract.ProblemService
	signingSecret  string
	selectionMode  string
}

func New(slackClient contract.SlackClient, problemService contract.ProblemService, signingSecret, selectionMode string) *SlackHandler {
	return &SlackHandler{
		slackClient:    slackClient,
		problemService: problemService,
		signingSecret:  signingSecret,
		selectionMode:  selectionMode,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSkip:
		return h.handleSkip(cmd)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSkip(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Usage: `/problems skip N` where N is the problem number you want for today")
	}

	n, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse("Usage: `/problems skip N` where N is the problem number you want for today")
	}

	stats, err := h.problemService.Stats()
	if err != nil {
		return h.createErrorResponse("Failed to check the problem database")
	}

	if stats.Total == 0 {
		return h.createErrorResponse("There are no problems in the database.")
	}

	if n < 1 || n > stats.Total {
		return h.createErrorResponse(fmt.Sprintf("The number must be between 1 and %d.", stats.Total))
	}

	// In offset mode the skip redirects tomorrow's scheduled delivery; in
	// plain mode it is a read-only preview of the requested problem.
	if h.selectionMode == domain.ModeOffset {
		return h.handleSkipOffset(n, stats.Used)
	}

	problem, err := h.problemService.GetByPosition(n)
	if err != nil {
		if errors.Is(err, domain.ErrPositionOutOfRange) {
			return h.createErrorResponse(fmt.Sprintf("The number must be between 1 and %d.", stats.Total))
		}
		return h.createErrorResponse("Failed to fetch the requested problem")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         domain.FormatProblem(problem, n),
	}
}

func (h *SlackHandler) handleSkipOffset(n, used int64) *slack.Msg {
	offset, err := h.problemService.SkipTo(n)
	if err != nil {
		if errors.Is(err, domain.ErrBehindProgress) {
			return h.createErrorResponse(fmt.Sprintf("Problem #%d is already behind current progress (used = %d).", n, used))
		}
		return h.createErrorResponse("Failed to update the skip offset")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Today's delivery is set to problem #%d.\n(used = %d, skip offset = %d)", n, used, offset),
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	stats, err := h.problemService.Stats()
	if err != nil {
		return h.createErrorResponse("Failed to check the problem database")
	}

	message := fmt.Sprintf(
		"📊 Problems in the database: %d\n"+
			"✅ Already sent: %d\n"+
			"🕒 Pending: %d\n"+
			"⏭ Current skip offset: %d\n"+
			"➡️ Next logical problem: #%d",
		stats.Total, stats.Used, stats.Remaining, stats.SkipOffset, stats.NextLogicalIndex,
	)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         message,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
