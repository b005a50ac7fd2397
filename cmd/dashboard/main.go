package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/config"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/services/dashboard/gateway"
	"github.com/piresc/smartdustbin/services/dashboard/locator"
	"github.com/piresc/smartdustbin/services/dashboard/notifier"
	"github.com/piresc/smartdustbin/services/dashboard/usecase"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if level, err := logrus.ParseLevel(configs.Logger.Level); err == nil {
		log.SetLevel(level)
	}

	timeout := time.Duration(configs.Dashboard.RequestTimeout) * time.Second
	apiGW := gateway.NewAPIGW(configs.Dashboard.APIBaseURL, timeout, log)

	var position *models.Location
	if configs.Dashboard.Latitude != nil && configs.Dashboard.Longitude != nil {
		position = &models.Location{
			Latitude:  *configs.Dashboard.Latitude,
			Longitude: *configs.Dashboard.Longitude,
		}
	}
	loc := locator.NewCachedLocator(
		locator.NewStaticLocator(configs.Dashboard.LocationEnabled, position),
		0, 0,
	)

	dashboardUC := usecase.NewDashboardUC(apiGW, loc, notifier.NewLogNotifier(log), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("api", configs.Dashboard.APIBaseURL).Info("Starting dashboard")

	r := newREPL(dashboardUC, os.Stdin, os.Stdout)
	if err := r.Run(ctx); err != nil {
		log.WithError(err).Fatal("dashboard stopped")
	}
}
