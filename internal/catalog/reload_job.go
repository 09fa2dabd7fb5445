package catalog

import "context"

// ReloadJob reloads a catalog when processed by a worker pool
type ReloadJob struct {
	svc Service
}

// NewReloadJob creates a job that reloads svc
func NewReloadJob(svc Service) *ReloadJob {
	return &ReloadJob{svc: svc}
}

func (j *ReloadJob) Process(ctx context.Context) error {
	return j.svc.Reload(ctx)
}
