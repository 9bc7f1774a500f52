package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/mathcamp/daily-problem-bot/internal/domain"
	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

type scheduler struct {
	problems      contract.ProblemService
	slackClient   contract.SlackClient
	cfg           Config
	location      *time.Location
	sendHour      int
	sendMinute    int
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newScheduler(problems contract.ProblemService, slackClient contract.SlackClient, cfg Config) (*scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	hour, minute, err := parseSendTime(cfg.SendTime)
	if err != nil {
		return nil, err
	}

	return &scheduler{
		problems:      problems,
		slackClient:   slackClient,
		cfg:           cfg,
		location:      location,
		sendHour:      hour,
		sendMinute:    minute,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}, nil
}

func parseSendTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid send time format %q, expected HH:MM", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in send time %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in send time %q", value)
	}

	return hour, minute, nil
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// Channel is full, scheduler will recalculate eventually
	}
}

func (s *scheduler) mainLoop() {
	for {
		nextTime := s.nextDeliveryTime(time.Now().In(s.location))
		log.Printf("Next delivery at %s", nextTime.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			s.deliver()
			// Wait 1 minute to prevent re-processing the same time
			time.Sleep(1 * time.Minute)

		case <-s.configChanged:
			timer.Stop()
			log.Println("Configuration changed, recalculating schedule...")
			continue

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextDeliveryTime returns the next occurrence of the configured wall-clock
// time in the configured location: today if it has not passed yet, otherwise
// tomorrow.
func (s *scheduler) nextDeliveryTime(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.sendHour, s.sendMinute, 0, 0, s.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// deliver runs one delivery cycle: import, select, format, send. Errors are
// logged and the cycle ends; nothing is retried until the next day.
func (s *scheduler) deliver() {
	added, err := s.problems.ImportFromFile(s.cfg.ProblemsPath)
	if err != nil {
		log.Printf("Failed to import problems: %v", err)
	} else if added > 0 {
		log.Printf("Imported %d new problems from %s", added, s.cfg.ProblemsPath)
	}

	stats, err := s.problems.Stats()
	if err != nil {
		log.Printf("Failed to get problem stats: %v", err)
		return
	}

	if stats.Total == 0 {
		s.notify("❌ There are no problems in the database.")
		return
	}

	if stats.Remaining == 0 {
		s.notify("❌ All problems in the database have been used.")
		return
	}

	problem, number, err := s.problems.PickScheduled(context.Background())
	if errors.Is(err, domain.ErrNoProblemAvailable) {
		s.notify("❌ No problem available with the current skip offset.")
		return
	}
	if err != nil {
		log.Printf("Failed to pick today's problem: %v", err)
		return
	}

	s.notify(domain.FormatProblem(problem, number))
	log.Printf("Delivered problem #%d (id=%d)", number, problem.ID)
}

func (s *scheduler) notify(message string) {
	_, _, err := s.slackClient.PostMessage(
		s.cfg.ProblemChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		log.Printf("Failed to send message to problem channel: %v", err)
	}
}

// AnnounceStatus posts a queue summary to the info channel. Called once at
// process startup.
func (s *scheduler) AnnounceStatus() {
	if s.cfg.InfoChannelID == "" {
		return
	}

	stats, err := s.problems.Stats()
	if err != nil {
		log.Printf("Failed to get problem stats: %v", err)
		return
	}

	message := fmt.Sprintf(
		"📊 Problems in the database: %d\n"+
			"✅ Already sent: %d\n"+
			"🕒 Pending: %d\n"+
			"⏭ Current skip offset: %d\n"+
			"➡️ Next logical problem: #%d",
		stats.Total, stats.Used, stats.Remaining, stats.SkipOffset, stats.NextLogicalIndex,
	)

	_, _, err = s.slackClient.PostMessage(
		s.cfg.InfoChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		log.Printf("Failed to send message to info channel: %v", err)
	}
}
