package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/catalogd/catalogd/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@every 1h", func() {
		a.SchedCatalogStatsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedCatalogStatsTask logs a periodic snapshot of the catalog size.
func (a *Application) SchedCatalogStatsTask() {
	var total int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&total).Error; err != nil {
		zap.L().Error("catalog stats query failed", zap.Error(err))
		return
	}
	zap.L().Info("catalog stats", zap.Int64("total_products", total))
}
