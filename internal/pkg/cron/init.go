package cron

import log "log/slog"

// InitCron 注册全部定时任务并启动调度引擎
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
