package service

import (
	"github.com/mathcamp/daily-problem-bot/internal/domain/contract"
)

// Config carries everything the selector needs, passed explicitly at
// construction instead of living in package globals.
type Config struct {
	SelectionMode    string
	SendTime         string // HH:MM, local to Timezone
	Timezone         string // IANA name
	InfoChannelID    string
	ProblemChannelID string
	ProblemsPath     string
}

type Instance struct {
	Problem   *problemService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, cfg Config) (*Instance, error) {
	problemService := newProblem(dm, cfg.SelectionMode)

	scheduler, err := newScheduler(problemService, slackClient, cfg)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Problem:   problemService,
		Scheduler: scheduler,
	}, nil
}
