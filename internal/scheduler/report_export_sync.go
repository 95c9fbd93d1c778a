package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/awin-report-api/internal/config"
	"github.com/vfg2006/awin-report-api/internal/domain"
	"github.com/vfg2006/awin-report-api/internal/usecases/reporting"
)

// ReportExportSyncConfig representa a configuração da exportação agendada de relatórios
type ReportExportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	Selection    string
	OutputDir    string
	SyncEnabled  bool
}

// ReportExportSyncService agenda a geração dos relatórios da Awin e grava os arquivos em disco
type ReportExportSyncService struct {
	scheduler  *gocron.Scheduler
	config     ReportExportSyncConfig
	runner     reporting.Runner
	credential string
	now        func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastOutputDir       string
	lastArtifacts       int
	lastFailures        int
	lastError           string
}

// NewReportExportSyncService cria uma nova instância do serviço de exportação agendada
func NewReportExportSyncService(runner reporting.Runner, appConfig *config.Config) *ReportExportSyncService {
	exportConfig := ReportExportSyncConfig{
		CronSchedule: appConfig.ReportExport.CronSchedule,
		LookbackDays: appConfig.ReportExport.LookbackDays,
		Selection:    appConfig.ReportExport.Selection,
		OutputDir:    appConfig.Report.OutputDir,
		SyncEnabled:  appConfig.ReportExport.Enabled,
	}

	if exportConfig.LookbackDays < 1 {
		exportConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"lookback_days": exportConfig.LookbackDays,
		"selection":     exportConfig.Selection,
		"output_dir":    exportConfig.OutputDir,
		"sync_enabled":  exportConfig.SyncEnabled,
	}).Info("scheduler: report export configuration loaded")

	return &ReportExportSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     exportConfig,
		runner:     runner,
		credential: appConfig.Awin.AccessToken,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *ReportExportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: report export disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting report export scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.exportReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping report export scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// DateRange retorna o período exportado: os últimos LookbackDays dias terminando ontem
func (s *ReportExportSyncService) DateRange() domain.DateRange {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return domain.DateRange{
		Start: today.AddDate(0, 0, -s.config.LookbackDays),
		End:   today.AddDate(0, 0, -1),
	}
}

// exportReports executa o pipeline e grava os arquivos. Execuções sobrepostas são ignoradas.
func (s *ReportExportSyncService) exportReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: report export already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	dateRange := s.DateRange()
	logger := logrus.WithFields(logrus.Fields{
		"selection":  s.config.Selection,
		"start_date": dateRange.StartDate(),
		"end_date":   dateRange.EndDate(),
	})
	logger.Info("scheduler: starting report export")

	var (
		result    *reporting.RunResult
		outputDir string
		err       error
	)

	defer func() {
		s.syncMutex.Lock()
		defer s.syncMutex.Unlock()

		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastOutputDir = outputDir
		s.lastError = ""
		if err != nil {
			s.lastError = err.Error()
		}
		if result != nil {
			s.lastRunID = result.RunID
			s.lastArtifacts = len(result.Artifacts)
			s.lastFailures = len(result.Failures)
		}
	}()

	result, err = s.runner.Run(ctx, reporting.RunRequest{
		Selection:  s.config.Selection,
		DateRange:  dateRange,
		Credential: s.credential,
		Archive:    true,
	})
	if err != nil {
		logger.WithError(err).Error("scheduler: report export failed")
		return
	}

	outputDir, err = s.writeArtifacts(result)
	if err != nil {
		logger.WithError(err).Error("scheduler: failed to write report files")
		return
	}

	logger.WithFields(logrus.Fields{
		"run_id":     result.RunID,
		"output_dir": outputDir,
		"artifacts":  len(result.Artifacts),
		"failures":   len(result.Failures),
	}).Info("scheduler: report export finished")
}

// writeArtifacts grava CSVs e zip em OutputDir/{runID}
func (s *ReportExportSyncService) writeArtifacts(result *reporting.RunResult) (string, error) {
	artifacts := result.Artifacts
	if result.Archive != nil {
		artifacts = append(artifacts[:len(artifacts):len(artifacts)], result.Archive)
	}

	if len(artifacts) == 0 {
		return "", nil
	}

	runID := result.RunID
	if runID == "" {
		runID = result.GeneratedAt.Format("20060102T150405")
	}

	dir := filepath.Join(s.config.OutputDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	for _, artifact := range artifacts {
		path := filepath.Join(dir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Content, 0o644); err != nil {
			return dir, errors.Wrapf(err, "erro ao gravar %s", path)
		}
	}

	return dir, nil
}

// TriggerManualSync inicia manualmente uma exportação. Retorna false se já houver uma em andamento.
func (s *ReportExportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("scheduler: report export already running, ignoring manual request")
		return false
	}

	logrus.Info("scheduler: starting manual report export")
	go s.exportReports(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportExportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"selection":              s.config.Selection,
		"output_dir":             s.config.OutputDir,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_output_dir":        s.lastOutputDir,
		"last_artifacts":         s.lastArtifacts,
		"last_failures":          s.lastFailures,
		"last_error":             s.lastError,
	}
}
