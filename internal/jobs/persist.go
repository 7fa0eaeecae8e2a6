package jobs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/aadk-dev/aadk/internal/config"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

const (
	// StateFileName is the job registry file under the daemon state dir.
	StateFileName = "jobs.json"

	schemaVersion = 1

	persistDebounce   = 250 * time.Millisecond
	persistQueueDepth = 32

	// retentionSchedule re-runs the retention pass even when no job
	// activity triggers a persist.
	retentionSchedule = "@every 5m"
)

// RetentionPolicy bounds the persisted job registry. Queued and running
// jobs are always kept; the limits apply to completed jobs only.
type RetentionPolicy struct {
	// MaxJobs caps the total number of retained jobs. Zero disables it.
	MaxJobs int
	// MaxAge drops completed jobs older than this. Zero disables it.
	MaxAge time.Duration
}

// RetentionFromConfig derives the retention policy from daemon
// configuration.
func RetentionFromConfig(cfg *config.Config) RetentionPolicy {
	policy := RetentionPolicy{MaxJobs: cfg.JobHistoryMax}
	if cfg.JobHistoryRetentionDays > 0 {
		policy.MaxAge = time.Duration(cfg.JobHistoryRetentionDays) * 24 * time.Hour
	}
	return policy
}

// The on-disk schema. Field names are part of the state file format;
// changing them orphans existing files.

type stateFile struct {
	SchemaVersion uint32         `json:"schema_version"`
	Jobs          []persistedJob `json:"jobs"`
}

type persistedJob struct {
	JobID                string           `json:"job_id"`
	JobType              string           `json:"job_type"`
	State                int32            `json:"state"`
	CreatedAtUnixMillis  int64            `json:"created_at_unix_millis"`
	StartedAtUnixMillis  *int64           `json:"started_at_unix_millis,omitempty"`
	FinishedAtUnixMillis *int64           `json:"finished_at_unix_millis,omitempty"`
	DisplayName          string           `json:"display_name"`
	CorrelationID        string           `json:"correlation_id"`
	RunID                string           `json:"run_id"`
	ProjectID            *string          `json:"project_id,omitempty"`
	TargetID             *string          `json:"target_id,omitempty"`
	ToolchainSetID       *string          `json:"toolchain_set_id,omitempty"`
	History              []persistedEvent `json:"history"`
}

type persistedEvent struct {
	AtUnixMillis int64            `json:"at_unix_millis"`
	Payload      persistedPayload `json:"payload"`
}

// persistedPayload is a tagged union: Type selects the shape of Data.
type persistedPayload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	payloadStateChanged = "state_changed"
	payloadProgress     = "progress"
	payloadLog          = "log"
	payloadCompleted    = "completed"
	payloadFailed       = "failed"
)

type stateChangedData struct {
	NewState int32 `json:"new_state"`
}

type progressData struct {
	Progress *progressRecord `json:"progress,omitempty"`
}

type progressRecord struct {
	Percent uint32           `json:"percent"`
	Phase   string           `json:"phase"`
	Metrics []keyValueRecord `json:"metrics"`
}

type logData struct {
	Chunk *logChunkRecord `json:"chunk,omitempty"`
}

type logChunkRecord struct {
	Stream    string `json:"stream"`
	Data      []byte `json:"data"`
	Truncated bool   `json:"truncated"`
}

type completedData struct {
	Summary string           `json:"summary"`
	Outputs []keyValueRecord `json:"outputs"`
}

type failedData struct {
	Error *errorDetailRecord `json:"error,omitempty"`
}

type keyValueRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type remediationRecord struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ActionID    string           `json:"action_id"`
	Params      []keyValueRecord `json:"params"`
}

type errorDetailRecord struct {
	Code             int32               `json:"code"`
	Message          string              `json:"message"`
	TechnicalDetails string              `json:"technical_details"`
	Remedies         []remediationRecord `json:"remedies"`
	CorrelationID    string              `json:"correlation_id"`
}

func keyValuesToRecords(items []*apiv1.KeyValue) []keyValueRecord {
	records := make([]keyValueRecord, 0, len(items))
	for _, item := range items {
		records = append(records, keyValueRecord{Key: item.GetKey(), Value: item.GetValue()})
	}
	return records
}

func keyValuesFromRecords(records []keyValueRecord) []*apiv1.KeyValue {
	items := make([]*apiv1.KeyValue, 0, len(records))
	for _, rec := range records {
		items = append(items, &apiv1.KeyValue{Key: rec.Key, Value: rec.Value})
	}
	return items
}

func errorDetailToRecord(detail *apiv1.ErrorDetail) *errorDetailRecord {
	if detail == nil {
		return nil
	}
	remedies := make([]remediationRecord, 0, len(detail.GetRemedies()))
	for _, remedy := range detail.GetRemedies() {
		remedies = append(remedies, remediationRecord{
			Title:       remedy.GetTitle(),
			Description: remedy.GetDescription(),
			ActionID:    remedy.GetActionId(),
			Params:      keyValuesToRecords(remedy.GetParams()),
		})
	}
	return &errorDetailRecord{
		Code:             int32(detail.GetCode()),
		Message:          detail.GetMessage(),
		TechnicalDetails: detail.GetTechnicalDetails(),
		Remedies:         remedies,
		CorrelationID:    detail.GetCorrelationId(),
	}
}

func errorDetailFromRecord(rec *errorDetailRecord) *apiv1.ErrorDetail {
	if rec == nil {
		return nil
	}
	remedies := make([]*apiv1.Remediation, 0, len(rec.Remedies))
	for _, remedy := range rec.Remedies {
		remedies = append(remedies, &apiv1.Remediation{
			Title:       remedy.Title,
			Description: remedy.Description,
			ActionId:    remedy.ActionID,
			Params:      keyValuesFromRecords(remedy.Params),
		})
	}
	return &apiv1.ErrorDetail{
		Code:             apiv1.ErrorCode(rec.Code),
		Message:          rec.Message,
		TechnicalDetails: rec.TechnicalDetails,
		Remedies:         remedies,
		CorrelationId:    rec.CorrelationID,
	}
}

func encodePayload(tag string, data any) (persistedPayload, bool) {
	raw, err := json.Marshal(data)
	if err != nil {
		return persistedPayload{}, false
	}
	return persistedPayload{Type: tag, Data: raw}, true
}

func persistPayload(payload apiv1.JobEventPayload) (persistedPayload, bool) {
	switch p := payload.(type) {
	case *apiv1.JobEvent_StateChanged:
		return encodePayload(payloadStateChanged, stateChangedData{
			NewState: int32(p.StateChanged.GetNewState()),
		})
	case *apiv1.JobEvent_Progress:
		var progress *progressRecord
		if pr := p.Progress.GetProgress(); pr != nil {
			progress = &progressRecord{
				Percent: pr.GetPercent(),
				Phase:   pr.GetPhase(),
				Metrics: keyValuesToRecords(pr.GetMetrics()),
			}
		}
		return encodePayload(payloadProgress, progressData{Progress: progress})
	case *apiv1.JobEvent_Log:
		var chunk *logChunkRecord
		if c := p.Log.GetChunk(); c != nil {
			chunk = &logChunkRecord{
				Stream:    c.GetStream(),
				Data:      c.GetData(),
				Truncated: c.GetTruncated(),
			}
		}
		return encodePayload(payloadLog, logData{Chunk: chunk})
	case *apiv1.JobEvent_Completed:
		return encodePayload(payloadCompleted, completedData{
			Summary: p.Completed.GetSummary(),
			Outputs: keyValuesToRecords(p.Completed.GetOutputs()),
		})
	case *apiv1.JobEvent_Failed:
		return encodePayload(payloadFailed, failedData{
			Error: errorDetailToRecord(p.Failed.GetError()),
		})
	default:
		return persistedPayload{}, false
	}
}

func (p persistedPayload) restore() (apiv1.JobEventPayload, bool) {
	switch p.Type {
	case payloadStateChanged:
		var data stateChangedData
		if err := json.Unmarshal(p.Data, &data); err != nil {
			return nil, false
		}
		return &apiv1.JobEvent_StateChanged{
			StateChanged: &apiv1.JobStateChanged{NewState: apiv1.JobState(data.NewState)},
		}, true
	case payloadProgress:
		var data progressData
		if err := json.Unmarshal(p.Data, &data); err != nil {
			return nil, false
		}
		updated := &apiv1.JobProgressUpdated{}
		if data.Progress != nil {
			updated.Progress = &apiv1.JobProgress{
				Percent: data.Progress.Percent,
				Phase:   data.Progress.Phase,
				Metrics: keyValuesFromRecords(data.Progress.Metrics),
			}
		}
		return &apiv1.JobEvent_Progress{Progress: updated}, true
	case payloadLog:
		var data logData
		if err := json.Unmarshal(p.Data, &data); err != nil {
			return nil, false
		}
		appended := &apiv1.JobLogAppended{}
		if data.Chunk != nil {
			appended.Chunk = &apiv1.LogChunk{
				Stream:    data.Chunk.Stream,
				Data:      data.Chunk.Data,
				Truncated: data.Chunk.Truncated,
			}
		}
		return &apiv1.JobEvent_Log{Log: appended}, true
	case payloadCompleted:
		var data completedData
		if err := json.Unmarshal(p.Data, &data); err != nil {
			return nil, false
		}
		return &apiv1.JobEvent_Completed{
			Completed: &apiv1.JobCompleted{
				Summary: data.Summary,
				Outputs: keyValuesFromRecords(data.Outputs),
			},
		}, true
	case payloadFailed:
		var data failedData
		if err := json.Unmarshal(p.Data, &data); err != nil {
			return nil, false
		}
		return &apiv1.JobEvent_Failed{
			Failed: &apiv1.JobFailed{Error: errorDetailFromRecord(data.Error)},
		}, true
	default:
		return nil, false
	}
}

// persistEvent converts an event for storage. Events without a payload
// are skipped.
func persistEvent(evt *apiv1.JobEvent) (persistedEvent, bool) {
	if evt == nil || evt.Payload == nil {
		return persistedEvent{}, false
	}
	payload, ok := persistPayload(evt.Payload)
	if !ok {
		return persistedEvent{}, false
	}
	return persistedEvent{
		AtUnixMillis: evt.GetAt().GetUnixMillis(),
		Payload:      payload,
	}, true
}

// restore rebuilds the proto event. Unknown payload tags are skipped so
// a newer daemon's state file degrades instead of failing the load.
func (p persistedEvent) restore(jobID string) (*apiv1.JobEvent, bool) {
	payload, ok := p.Payload.restore()
	if !ok {
		return nil, false
	}
	return &apiv1.JobEvent{
		At:      &apiv1.Timestamp{UnixMillis: p.AtUnixMillis},
		JobId:   &apiv1.Id{Value: jobID},
		Payload: payload,
	}, true
}

func msPtr(ts *apiv1.Timestamp) *int64 {
	if ts == nil {
		return nil
	}
	ms := ts.UnixMillis
	return &ms
}

func tsFromPtr(ms *int64) *apiv1.Timestamp {
	if ms == nil {
		return nil
	}
	return &apiv1.Timestamp{UnixMillis: *ms}
}

func idPtr(id *apiv1.Id) *string {
	if id == nil {
		return nil
	}
	value := id.Value
	return &value
}

func idFromPtr(value *string) *apiv1.Id {
	if value == nil {
		return nil
	}
	return &apiv1.Id{Value: *value}
}

func persistJob(job *apiv1.Job, history []*apiv1.JobEvent) persistedJob {
	events := make([]persistedEvent, 0, len(history))
	for _, evt := range history {
		if pe, ok := persistEvent(evt); ok {
			events = append(events, pe)
		}
	}
	return persistedJob{
		JobID:                job.GetJobId().GetValue(),
		JobType:              job.GetJobType(),
		State:                int32(job.GetState()),
		CreatedAtUnixMillis:  job.GetCreatedAt().GetUnixMillis(),
		StartedAtUnixMillis:  msPtr(job.GetStartedAt()),
		FinishedAtUnixMillis: msPtr(job.GetFinishedAt()),
		DisplayName:          job.GetDisplayName(),
		CorrelationID:        job.GetCorrelationId(),
		RunID:                job.GetRunId().GetValue(),
		ProjectID:            idPtr(job.GetProjectId()),
		TargetID:             idPtr(job.GetTargetId()),
		ToolchainSetID:       idPtr(job.GetToolchainSetId()),
		History:              events,
	}
}

// restore rebuilds the job and its event history. A blank correlation
// id falls back to the job id, matching what StartJob would have set.
func (p persistedJob) restore() (*apiv1.Job, []*apiv1.JobEvent) {
	correlation := p.CorrelationID
	if correlation == "" {
		correlation = p.JobID
	}
	var runID *apiv1.RunId
	if strings.TrimSpace(p.RunID) != "" {
		runID = &apiv1.RunId{Value: p.RunID}
	}

	job := &apiv1.Job{
		JobId:          &apiv1.Id{Value: p.JobID},
		JobType:        p.JobType,
		State:          apiv1.JobState(p.State),
		CreatedAt:      &apiv1.Timestamp{UnixMillis: p.CreatedAtUnixMillis},
		StartedAt:      tsFromPtr(p.StartedAtUnixMillis),
		FinishedAt:     tsFromPtr(p.FinishedAtUnixMillis),
		DisplayName:    p.DisplayName,
		CorrelationId:  correlation,
		RunId:          runID,
		ProjectId:      idFromPtr(p.ProjectID),
		TargetId:       idFromPtr(p.TargetID),
		ToolchainSetId: idFromPtr(p.ToolchainSetID),
	}

	events := make([]*apiv1.JobEvent, 0, len(p.History))
	for _, pe := range p.History {
		if evt, ok := pe.restore(p.JobID); ok {
			events = append(events, evt)
		}
	}
	return job, events
}

func (p persistedJob) active() bool {
	switch apiv1.JobState(p.State) {
	case apiv1.JobState_JOB_STATE_QUEUED, apiv1.JobState_JOB_STATE_RUNNING:
		return true
	default:
		return false
	}
}

// sortKey orders jobs by completion time, falling back to creation
// time for jobs that never finished.
func (p persistedJob) sortKey() int64 {
	if p.FinishedAtUnixMillis != nil {
		return *p.FinishedAtUnixMillis
	}
	return p.CreatedAtUnixMillis
}

// applyRetention prunes completed jobs by age, then by count, and
// returns the keepers sorted newest first. Active jobs always survive
// and consume part of the count budget.
func applyRetention(jobs []persistedJob, policy RetentionPolicy) []persistedJob {
	nowMS := nowMillis()

	var active, completed []persistedJob
	for _, job := range jobs {
		if job.active() {
			active = append(active, job)
		} else {
			completed = append(completed, job)
		}
	}

	if policy.MaxAge > 0 {
		maxAgeMS := policy.MaxAge.Milliseconds()
		fresh := make([]persistedJob, 0, len(completed))
		for _, job := range completed {
			if nowMS-job.sortKey() <= maxAgeMS {
				fresh = append(fresh, job)
			}
		}
		completed = fresh
	}

	if policy.MaxJobs > 0 {
		maxCompleted := policy.MaxJobs - len(active)
		if maxCompleted < 0 {
			maxCompleted = 0
		}
		if len(completed) > maxCompleted {
			sort.SliceStable(completed, func(i, j int) bool {
				return completed[i].sortKey() > completed[j].sortKey()
			})
			completed = completed[:maxCompleted]
		}
	}

	kept := make([]persistedJob, 0, len(active)+len(completed))
	kept = append(kept, active...)
	kept = append(kept, completed...)
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].sortKey() > kept[j].sortKey()
	})
	return kept
}

func loadStateFile(path string) stateFile {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Warnf("Failed to read %s: %v", path, err)
		}
		return stateFile{SchemaVersion: schemaVersion}
	}

	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		logrus.Warnf("Failed to parse %s: %v", path, err)
		return stateFile{SchemaVersion: schemaVersion}
	}
	if file.SchemaVersion == 0 {
		file.SchemaVersion = schemaVersion
	}
	return file
}

// LoadStore rebuilds the registry from the state file at path. A
// missing or corrupt file yields an empty registry; retention applies
// on the way in so a long-idle daemon does not resurrect stale jobs.
func LoadStore(path string, policy RetentionPolicy) *Store {
	state := loadStateFile(path)
	state.Jobs = applyRetention(state.Jobs, policy)

	store := NewStore()
	for _, pj := range state.Jobs {
		job, history := pj.restore()
		rec := store.Insert(job)
		rec.restoreHistory(history)
	}

	if len(state.Jobs) > 0 {
		logrus.Infof("Loaded %d job(s) from %s", len(state.Jobs), path)
	}
	return store
}

func writeJSONAtomic(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// persistState snapshots every record, applies retention to the
// snapshot and the live registry alike, and rewrites the state file
// atomically.
func persistState(store *Store, path string, policy RetentionPolicy) error {
	entries := store.entries()
	snapshot := make([]persistedJob, 0, len(entries))
	for _, rec := range entries {
		job, history := rec.Snapshot()
		snapshot = append(snapshot, persistJob(job, history))
	}
	snapshot = applyRetention(snapshot, policy)

	keep := make(map[string]bool, len(snapshot))
	for _, job := range snapshot {
		keep[job.JobID] = true
	}
	store.PruneTo(keep)

	return writeJSONAtomic(path, stateFile{SchemaVersion: schemaVersion, Jobs: snapshot})
}

// Worker owns background persistence of the job registry. Persist
// requests are debounced so event bursts collapse into one state-file
// rewrite, and a cron entry re-runs retention on a fixed schedule
// regardless of traffic.
type Worker struct {
	store  *Store
	path   string
	policy RetentionPolicy

	signals  chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	cron     *cron.Cron
}

// NewWorker creates a persistence worker for the registry. Call Start
// to begin processing and Stop to flush and halt.
func NewWorker(store *Store, path string, policy RetentionPolicy) *Worker {
	return &Worker{
		store:   store,
		path:    path,
		policy:  policy,
		signals: make(chan struct{}, persistQueueDepth),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		cron:    cron.New(),
	}
}

// Start launches the debounce loop and the retention schedule.
func (w *Worker) Start() {
	go w.run()
	if _, err := w.cron.AddFunc(retentionSchedule, w.Schedule); err != nil {
		logrus.Warnf("Failed to schedule job retention: %v", err)
	}
	w.cron.Start()
}

// Schedule requests a persist pass. Requests made while one is pending
// coalesce into it.
func (w *Worker) Schedule() {
	select {
	case w.signals <- struct{}{}:
	default:
	}
}

// Stop halts the schedule and the loop, then writes the state file one
// final time so nothing recorded after the last debounce window is
// lost. Safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.cron.Stop()
		close(w.stop)
	})
	<-w.done

	if err := persistState(w.store, w.path, w.policy); err != nil {
		logrus.Warnf("Failed to persist job history: %v", err)
	}
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		case <-w.signals:
		}

		select {
		case <-w.stop:
			return
		case <-time.After(persistDebounce):
		}
		w.drain()

		if err := persistState(w.store, w.path, w.policy); err != nil {
			logrus.Warnf("Failed to persist job history: %v", err)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case <-w.signals:
		default:
			return
		}
	}
}
