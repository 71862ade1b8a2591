package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/config"
	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/workflow"
)

// Agent identifiers used in workflow state and logs.
const (
	AgentMonitor  = "payment_monitor"
	AgentReminder = "reminder_generator"
	AgentResponse = "response_handler"
)

// Step and agent state values.
const (
	StepPending   = "pending"
	StepRunning   = "running"
	StepCompleted = "completed"
	StepError     = "error"

	AgentIdle      = "idle"
	AgentRunning   = "running"
	AgentCompleted = "completed"
	AgentError     = "error"
)

// maxLogEntries bounds the in-memory log ring.
const maxLogEntries = 100

// WorkflowStep is one ordered stage of a run.
type WorkflowStep struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// WorkflowStatus is the observable state of the orchestrator, safe to return
// while a run is in flight.
type WorkflowStatus struct {
	Running           bool                `json:"running"`
	Steps             []WorkflowStep      `json:"steps"`
	Agents            map[string]string   `json:"agents"`
	Logs              []RunLogEntry       `json:"logs"`
	Stats             *AggregateStats     `json:"stats,omitempty"`
	AnalysisReport    string              `json:"analysisReport,omitempty"`
	GeneratedMessages []*GeneratedMessage `json:"generatedMessages,omitempty"`
	ResponseAnalysis  *ResponseResult     `json:"responseAnalysis,omitempty"`
	Provider          string              `json:"provider,omitempty"`
	Model             string              `json:"model,omitempty"`
	StartedAt         *time.Time          `json:"startedAt,omitempty"`
	CompletedAt       *time.Time          `json:"completedAt,omitempty"`
}

var stepNames = []string{
	"Load invoices",
	"Analyze payments",
	"Generate reminders",
	"Wait for responses",
	"Handle response",
}

type workflowService struct {
	cfg            *config.Config
	invoiceService InvoiceService
	agentService   AgentService
	runner         *workflow.Runner
	logger         *zap.Logger

	// state below is guarded by the runner's coarse lock pattern: the run
	// goroutine writes, Status copies. A dedicated mutex keeps it simple.
	state workflowState
}

type workflowState struct {
	mu sync.RWMutex

	steps             []string
	agents            map[string]string
	logs              []RunLogEntry
	invoices          []*models.Invoice
	stats             *AggregateStats
	analysisReport    string
	generatedMessages []*GeneratedMessage
	responseAnalysis  *ResponseResult
	provider          string
	model             string
	opts              AgentOptions
	startedAt         *time.Time
	completedAt       *time.Time
}

func NewWorkflowService(
	cfg *config.Config,
	invoiceService InvoiceService,
	agentService AgentService,
	logger *zap.Logger,
) WorkflowService {
	svc := &workflowService{
		cfg:            cfg,
		invoiceService: invoiceService,
		agentService:   agentService,
		logger:         logger,
	}
	svc.runner = workflow.NewRunner(logger, svc.executeRun)
	svc.state.reset()
	return svc
}

// Start launches a new run in the background and returns immediately.
func (s *workflowService) Start(ctx context.Context, opts AgentOptions) error {
	s.state.mu.Lock()
	if s.runner.IsRunning() {
		s.state.mu.Unlock()
		return workflow.ErrAlreadyRunning
	}
	s.state.reset()
	now := time.Now().UTC()
	s.state.startedAt = &now
	s.state.opts = opts
	s.state.provider = string(opts.Provider)
	s.state.model = opts.Model
	s.state.mu.Unlock()

	// The run must outlive the HTTP request that started it.
	return s.runner.Start(context.WithoutCancel(ctx))
}

// Stop cancels the active run. The run goroutine observes the cancellation at
// its next context check and winds down cleanly.
func (s *workflowService) Stop() error {
	return s.runner.Stop()
}

func (s *workflowService) IsRunning() bool {
	return s.runner.IsRunning()
}

// Status returns a copy of the current orchestrator state, logs newest first.
func (s *workflowService) Status() *WorkflowStatus {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	steps := make([]WorkflowStep, len(s.state.steps))
	for i, status := range s.state.steps {
		steps[i] = WorkflowStep{ID: i + 1, Name: stepNames[i], Status: status}
	}

	agents := make(map[string]string, len(s.state.agents))
	for k, v := range s.state.agents {
		agents[k] = v
	}

	logs := make([]RunLogEntry, len(s.state.logs))
	copy(logs, s.state.logs)

	return &WorkflowStatus{
		Running:           s.runner.IsRunning(),
		Steps:             steps,
		Agents:            agents,
		Logs:              logs,
		Stats:             s.state.stats,
		AnalysisReport:    s.state.analysisReport,
		GeneratedMessages: s.state.generatedMessages,
		ResponseAnalysis:  s.state.responseAnalysis,
		Provider:          s.state.provider,
		Model:             s.state.model,
		StartedAt:         s.state.startedAt,
		CompletedAt:       s.state.completedAt,
	}
}

// Snapshot freezes the current state for persistence to run history.
func (s *workflowService) Snapshot(name string) *RunSnapshot {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	status := "completed"
	for _, st := range s.state.steps {
		if st == StepError {
			status = "error"
			break
		}
	}

	var stats AggregateStats
	if s.state.stats != nil {
		stats = *s.state.stats
	}

	logs := make([]RunLogEntry, len(s.state.logs))
	copy(logs, s.state.logs)

	return &RunSnapshot{
		Name:              name,
		Status:            status,
		Stats:             stats,
		MessagesGenerated: len(s.state.generatedMessages),
		AIProvider:        s.state.provider,
		AIModel:           s.state.model,
		AnalysisReport:    s.state.analysisReport,
		GeneratedMessages: s.state.generatedMessages,
		ResponseAnalysis:  s.state.responseAnalysis,
		Invoices:          s.state.invoices,
		Logs:              logs,
	}
}

// executeRun drives the five steps. A context.Canceled from any step is a
// user-initiated stop: agents go back to idle and the run ends cleanly. Any
// other error marks every agent errored and halts the run.
func (s *workflowService) executeRun(ctx context.Context) error {
	steps := []func(context.Context) error{
		s.stepLoadInvoices,
		s.stepAnalyze,
		s.stepGenerateReminders,
		s.stepWait,
		s.stepHandleResponse,
	}

	s.log("system", "Workflow run started", "info")

	for i, step := range steps {
		s.setStep(i, StepRunning)

		if err := step(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				s.setStep(i, StepPending)
				s.resetAgents()
				s.log("system", "Workflow stopped by user", "warning")
				s.finish()
				return err
			}

			s.setStep(i, StepError)
			s.failAgents()
			s.log("system", fmt.Sprintf("Workflow failed: %v", err), "error")
			s.finish()
			return err
		}

		s.setStep(i, StepCompleted)
	}

	s.log("system", "Workflow run completed", "success")
	s.finish()
	return nil
}

func (s *workflowService) stepLoadInvoices(ctx context.Context) error {
	s.log("system", "Loading invoices", "info")

	invoices, err := s.invoiceService.List(ctx)
	if err != nil {
		return err
	}
	if len(invoices) == 0 {
		return ErrNoInvoices
	}

	s.state.mu.Lock()
	s.state.invoices = invoices
	s.state.mu.Unlock()

	s.log("system", fmt.Sprintf("Loaded %d invoices", len(invoices)), "success")
	return nil
}

func (s *workflowService) stepAnalyze(ctx context.Context) error {
	s.setAgent(AgentMonitor, AgentRunning)
	s.log(AgentMonitor, "Analyzing invoice portfolio", "info")

	result, err := s.agentService.RunPaymentMonitor(ctx, s.options())
	if err != nil {
		return err
	}

	s.state.mu.Lock()
	s.state.stats = &result.Stats
	s.state.analysisReport = result.Analysis
	s.state.provider = string(result.Provider)
	s.state.model = result.Model
	s.state.mu.Unlock()

	s.setAgent(AgentMonitor, AgentCompleted)
	s.log(AgentMonitor,
		fmt.Sprintf("Analysis completed: %d invoices, %d overdue", result.Stats.TotalInvoices, result.Stats.OverdueInvoices),
		"success")
	return nil
}

func (s *workflowService) stepGenerateReminders(ctx context.Context) error {
	s.setAgent(AgentReminder, AgentRunning)
	s.log(AgentReminder, "Generating payment reminders", "info")

	messages, err := s.agentService.RunReminderGenerator(ctx, s.options(), nil)
	if err != nil && !errors.Is(err, ErrNoInvoices) {
		return err
	}

	s.state.mu.Lock()
	s.state.generatedMessages = messages
	s.state.mu.Unlock()

	s.setAgent(AgentReminder, AgentCompleted)
	if len(messages) == 0 {
		s.log(AgentReminder, "No invoices eligible for reminders", "warning")
	} else {
		s.log(AgentReminder, fmt.Sprintf("Generated %d reminder drafts", len(messages)), "success")
	}
	return nil
}

// stepWait simulates the pause between sending reminders and receiving
// customer replies. It is a plain timer raced against cancellation.
func (s *workflowService) stepWait(ctx context.Context) error {
	wait := time.Duration(s.cfg.Workflow.WaitSeconds) * time.Second
	s.log("system", fmt.Sprintf("Waiting %s for customer responses", wait), "info")

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *workflowService) stepHandleResponse(ctx context.Context) error {
	s.state.mu.RLock()
	messages := s.state.generatedMessages
	s.state.mu.RUnlock()

	if len(messages) == 0 {
		s.log(AgentResponse, "No reminders sent, skipping response handling", "warning")
		return nil
	}

	s.setAgent(AgentResponse, AgentRunning)
	s.log(AgentResponse, "Analyzing simulated customer response", "info")

	result, err := s.agentService.RunResponseHandler(ctx, s.options(), messages[0].InvoiceID, s.cfg.Workflow.SimulatedReply)
	if err != nil {
		return err
	}

	s.state.mu.Lock()
	s.state.responseAnalysis = result
	s.state.mu.Unlock()

	s.setAgent(AgentResponse, AgentCompleted)
	s.log(AgentResponse,
		fmt.Sprintf("Response classified: intent=%s risk=%s", result.Analysis.Intent, result.Analysis.RiskLevel),
		"success")
	return nil
}

func (s *workflowService) options() AgentOptions {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return s.state.opts
}

func (s *workflowService) setStep(i int, status string) {
	s.state.mu.Lock()
	s.state.steps[i] = status
	s.state.mu.Unlock()
}

func (s *workflowService) setAgent(agent, status string) {
	s.state.mu.Lock()
	s.state.agents[agent] = status
	s.state.mu.Unlock()
}

func (s *workflowService) resetAgents() {
	s.state.mu.Lock()
	for agent := range s.state.agents {
		s.state.agents[agent] = AgentIdle
	}
	s.state.mu.Unlock()
}

func (s *workflowService) failAgents() {
	s.state.mu.Lock()
	for agent := range s.state.agents {
		s.state.agents[agent] = AgentError
	}
	s.state.mu.Unlock()
}

func (s *workflowService) finish() {
	now := time.Now().UTC()
	s.state.mu.Lock()
	s.state.completedAt = &now
	s.state.mu.Unlock()
}

// log prepends an entry so logs read newest first, and trims the ring.
func (s *workflowService) log(agent, message, level string) {
	entry := RunLogEntry{
		Agent:     agent,
		Message:   message,
		Type:      level,
		Timestamp: time.Now().UTC(),
	}

	s.state.mu.Lock()
	s.state.logs = append([]RunLogEntry{entry}, s.state.logs...)
	if len(s.state.logs) > maxLogEntries {
		s.state.logs = s.state.logs[:maxLogEntries]
	}
	s.state.mu.Unlock()

	s.logger.Info("Workflow log",
		zap.String("agent", agent),
		zap.String("type", level),
		zap.String("message", message))
}

func (st *workflowState) reset() {
	st.steps = make([]string, len(stepNames))
	for i := range st.steps {
		st.steps[i] = StepPending
	}
	st.agents = map[string]string{
		AgentMonitor:  AgentIdle,
		AgentReminder: AgentIdle,
		AgentResponse: AgentIdle,
	}
	st.logs = nil
	st.invoices = nil
	st.stats = nil
	st.analysisReport = ""
	st.generatedMessages = nil
	st.responseAnalysis = nil
	st.provider = ""
	st.model = ""
	st.opts = AgentOptions{}
	st.startedAt = nil
	st.completedAt = nil
}
