package build_service

import (
	"log"
	"time"

	"ggplay-backend/common"
	"ggplay-backend/model"

	"github.com/google/uuid"
)

// ProjectStore resolves build targets.
type ProjectStore interface {
	GetByID(id string) (*model.Project, error)
}

// JobStore persists build jobs.
type JobStore interface {
	Create(job *model.BuildJob) error
	GetByID(id string) (*model.BuildJob, error)
	SetStatus(id string, status model.BuildStatus, logs string) error
}

// BuildOptions stage delays measured from job creation.
type BuildOptions struct {
	ProcessingDelay time.Duration
	DoneDelay       time.Duration
}

// BuildService simulates a multi-stage asset-bundling pipeline. A job
// advances QUEUED -> PROCESSING -> DONE on fixed delays; stages are
// unconditional updates with no cancellation and no recovery after a
// process restart.
type BuildService struct {
	projects ProjectStore
	jobs     JobStore
	sched    common.Scheduler
	opts     BuildOptions
}

// NewBuildService creates a build simulator.
func NewBuildService(projects ProjectStore, jobs JobStore, sched common.Scheduler, opts BuildOptions) *BuildService {
	return &BuildService{
		projects: projects,
		jobs:     jobs,
		sched:    sched,
		opts:     opts,
	}
}

// CreateBuild queues a job for the project and schedules its stage
// transitions. Returns immediately; callers poll GetBuild for progress.
func (s *BuildService) CreateBuild(projectID string) (*model.BuildJob, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		return nil, err
	}

	job := &model.BuildJob{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Status:    model.BuildStatusQueued,
		Logs:      "Build request queued.",
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}

	s.scheduleBuild(job.ID)

	return job, nil
}

// GetBuild returns the current status and log text of a job.
func (s *BuildService) GetBuild(jobID string) (*model.BuildJob, error) {
	return s.jobs.GetByID(jobID)
}

func (s *BuildService) scheduleBuild(jobID string) {
	s.sched.AfterFunc(s.opts.ProcessingDelay, func() {
		if err := s.jobs.SetStatus(jobID, model.BuildStatusProcessing, "Processing assets…"); err != nil {
			log.Printf("Failed to advance build job %s to PROCESSING: %v", jobID, err)
		}
	})

	s.sched.AfterFunc(s.opts.DoneDelay, func() {
		if err := s.jobs.SetStatus(jobID, model.BuildStatusDone, "Build completed successfully."); err != nil {
			log.Printf("Failed to advance build job %s to DONE: %v", jobID, err)
		}
	})
}
