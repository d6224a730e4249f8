package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/statusvillain/statusvillain/internal/credentials"
	"github.com/statusvillain/statusvillain/internal/models"
	"github.com/statusvillain/statusvillain/internal/services"
	"github.com/statusvillain/statusvillain/internal/streak"
)

// ErrAuthenticationRejected is the terminal outcome of a session whose
// credentials did not check out. Not an internal failure: the user was
// already told, the caller just exits non-zero.
var ErrAuthenticationRejected = errors.New("authentication rejected")

type sessionState int

const (
	stateStart sessionState = iota
	stateAuthenticating
	stateRejected
	stateFetchHistory
	statePresentStreakAndPrior
	stateElicitToday
	stateElicitYesterdayCompletion
	stateElicitYesterdayText
	statePersist
	stateDone
)

// reportSession carries the state of one report submission. Each step reads
// what it needs, fills in its part, and names the next state; cancellation
// at any prompt unwinds the whole session before anything is persisted.
type reportSession struct {
	app   *App
	state sessionState

	creds      *credentials.Credentials
	history    []models.StatusReport
	priorToday string

	today     string
	yesterday string
	completed bool
}

// Report runs a full report session: authenticate, show streak and the
// previous plan, elicit today's and yesterday's content, persist.
func (a *App) Report(ctx context.Context) error {
	return a.runFlow(ctx, func(ctx context.Context) error {
		s := &reportSession{app: a, state: stateStart}
		return s.run(ctx)
	})
}

func (s *reportSession) run(ctx context.Context) error {
	for s.state != stateDone {
		var err error
		switch s.state {
		case stateStart:
			err = s.resolveCredentials(ctx)
		case stateAuthenticating:
			err = s.authenticate(ctx)
		case stateRejected:
			fmt.Fprintln(s.app.out, "Could not authenticate, check your credentials.")
			return ErrAuthenticationRejected
		case stateFetchHistory:
			err = s.fetchHistory(ctx)
		case statePresentStreakAndPrior:
			s.presentStreakAndPrior()
		case stateElicitToday:
			err = s.elicitToday(ctx)
		case stateElicitYesterdayCompletion:
			err = s.elicitYesterdayCompletion(ctx)
		case stateElicitYesterdayText:
			err = s.elicitYesterdayText(ctx)
		case statePersist:
			err = s.persist(ctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveCredentials prefers the persisted credential file and falls back to
// interactive prompting when it is absent.
func (s *reportSession) resolveCredentials(ctx context.Context) error {
	creds, err := s.app.creds.Load()
	if err == nil {
		s.creds = creds
		s.state = stateAuthenticating
		return nil
	}
	if !errors.Is(err, credentials.ErrNotFound) {
		return err
	}

	email, err := getSimpleText(ctx, s.app.reader, "E-mail address", s.app.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(ctx, s.app.reader, "Username", s.app.out)
	if err != nil {
		return err
	}
	password, err := getPassword(ctx, "Password", s.app.out)
	if err != nil {
		return err
	}

	s.creds = &credentials.Credentials{Email: email, Username: username, Password: password}
	s.state = stateAuthenticating
	return nil
}

func (s *reportSession) authenticate(ctx context.Context) error {
	ok, err := s.app.auth.Authenticate(ctx, s.creds.Email, s.creds.Username, s.creds.Password)
	if err != nil {
		return err
	}
	if !ok {
		s.app.log.Warn(ctx, "authentication rejected", "email", s.creds.Email)
		s.state = stateRejected
		return nil
	}
	s.state = stateFetchHistory
	return nil
}

func (s *reportSession) fetchHistory(ctx context.Context) error {
	history, err := s.app.reports.History(ctx, s.creds.Email)
	if err != nil {
		return err
	}
	s.history = history
	s.state = statePresentStreakAndPrior
	return nil
}

// presentStreakAndPrior celebrates a running streak and shows the previous
// report's plan, which becomes the candidate "yesterday" content.
func (s *reportSession) presentStreakAndPrior() {
	if n := streak.Current(s.history); n > 1 {
		fmt.Fprintf(s.app.out, "You are on a %d-day streak. Keep it going!\n", n)
	}
	if len(s.history) > 0 {
		s.priorToday = s.history[0].TodayMessage
		fmt.Fprintln(s.app.out, "Here is what you were planning yesterday:")
		fmt.Fprintln(s.app.out, "  "+s.priorToday)
	}
	s.state = stateElicitToday
}

func (s *reportSession) elicitToday(ctx context.Context) error {
	today, err := getMultiline(ctx, s.app.reader, "What is your plan for today?", s.app.out)
	if err != nil {
		return err
	}
	s.today = today
	if s.priorToday != "" {
		s.state = stateElicitYesterdayCompletion
	} else {
		s.state = stateElicitYesterdayText
	}
	return nil
}

// elicitYesterdayCompletion carries the previous plan forward as yesterday's
// text and asks whether it was completed.
func (s *reportSession) elicitYesterdayCompletion(ctx context.Context) error {
	completed, err := getConfirm(ctx, s.app.reader, "Did you complete yesterday's goals?", s.app.out)
	if err != nil {
		return err
	}
	s.yesterday = s.priorToday
	s.completed = completed
	s.state = statePersist
	return nil
}

// elicitYesterdayText asks for a free-text description of yesterday's work.
// With no prior plan to judge against, completion stays false.
func (s *reportSession) elicitYesterdayText(ctx context.Context) error {
	yesterday, err := getMultiline(ctx, s.app.reader, "What did you work on yesterday?", s.app.out)
	if err != nil {
		return err
	}
	s.yesterday = yesterday
	s.completed = false
	s.state = statePersist
	return nil
}

func (s *reportSession) persist(ctx context.Context) error {
	report, err := s.app.reports.Submit(ctx, s.creds.Email, s.today, s.yesterday, s.completed)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateReport) {
			fmt.Fprintln(s.app.out, "A report with the same id already exists, nothing was saved. Please try again.")
			return err
		}
		return err
	}
	s.app.log.Info(ctx, "report saved", "id", report.ID)
	fmt.Fprintln(s.app.out, "Your report is in. See you tomorrow!")
	s.state = stateDone
	return nil
}
