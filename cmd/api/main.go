package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/awin-report-api/infrastructure/integrator/awin"
	"github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/awinclient"
	"github.com/vfg2006/awin-report-api/internal/api"
	"github.com/vfg2006/awin-report-api/internal/config"
	"github.com/vfg2006/awin-report-api/internal/scheduler"
	"github.com/vfg2006/awin-report-api/internal/usecases/exporting"
	"github.com/vfg2006/awin-report-api/internal/usecases/reporting"
	"github.com/vfg2006/awin-report-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Nível, formato e arquivo de log vêm da configuração
	logCloser := log.Setup(log.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})
	defer logCloser.Close()
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	if cfg.Awin.AccessToken == "" {
		logrus.Warn("AWIN_ACCESS_TOKEN não configurado, as chamadas à Awin vão falhar com 401")
	}
	if len(cfg.Awin.Merchants) == 0 {
		logrus.Warn("AWIN_MERCHANTS vazio, nenhum relatório poderá ser gerado")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	awinClient := awinclient.NewClient(cfg)
	awinIntegrator := awin.New(awinClient)

	reportService := reporting.NewService(awinIntegrator, cfg.Report.MaxConcurrentFetches)
	pipeline := reporting.NewPipeline(cfg.Awin.Merchants, reportService, exporting.NewPackager())

	reportExportSyncService := scheduler.NewReportExportSyncService(pipeline, cfg)
	if err := reportExportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação de relatórios")
	} else {
		logrus.Info("Agendador de exportação de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, pipeline, reportExportSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env ao lado do main seja encontrado em execução local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}
