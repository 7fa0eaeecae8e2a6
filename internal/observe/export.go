package observe

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"

	"github.com/aadk-dev/aadk/internal/bundle"
	"github.com/aadk-dev/aadk/internal/publish"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Export phases, in order. Progress percent is fixed per phase so
// subscribers see a monotonic ramp regardless of item counts.
const (
	phasePreflight  = "preflight"
	phaseCollecting = "collecting"
	phaseArchiving  = "archiving"
	phaseFinalizing = "finalizing"
	phaseCompleted  = "completed"
)

const defaultRecentRunsLimit = 5

// bundleManifest is the first entry of every exported archive.
type bundleManifest struct {
	SchemaVersion       uint32 `json:"schema_version"`
	Kind                string `json:"kind"`
	RunID               string `json:"run_id"`
	CorrelationID       string `json:"correlation_id"`
	CreatedAtUnixMillis int64  `json:"created_at_unix_millis"`
	Hostname            string `json:"hostname,omitempty"`
	OS                  string `json:"os"`
	Arch                string `json:"arch"`
}

func newManifest(kind, runID, correlation string) bundleManifest {
	hostname, _ := os.Hostname()
	return bundleManifest{
		SchemaVersion:       schemaVersion,
		Kind:                kind,
		RunID:               runID,
		CorrelationID:       correlation,
		CreatedAtUnixMillis: nowMillis(),
		Hostname:            hostname,
		OS:                  runtime.GOOS,
		Arch:                runtime.GOARCH,
	}
}

func marshalEntry(value any) []byte {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		// Every entry type here is plain structs and strings; an
		// encoding failure is a programming error.
		logrus.Errorf("Failed to encode bundle entry: %v", err)
		return []byte("{}")
	}
	return append(data, '\n')
}

// runSupportExport drives one support bundle job end to end. It runs
// detached from the RPC that started it and reports through job events
// only.
func (s *Service) runSupportExport(req *apiv1.ExportSupportBundleRequest, runID, correlation, jobID, relPath string) {
	ctx := context.Background()
	pub := publish.New(s.jobs, "observe")
	sig := publish.Watch(ctx, s.jobs, jobID)

	fail := func(detail *apiv1.ErrorDetail) {
		if err := pub.Failed(ctx, jobID, detail); err != nil {
			logrus.Warnf("Failed to publish export failure for %s: %v", jobID, err)
		}
		s.finishRun(runID, "failed", detail.GetMessage())
	}
	cancelled := func() bool {
		if !sig.Cancelled() && !publish.IsCancelled(ctx, s.jobs, jobID) {
			return false
		}
		s.finishRun(runID, "cancelled", "")
		return true
	}

	pub.State(ctx, jobID, apiv1.JobState_JOB_STATE_RUNNING)
	pub.Log(ctx, jobID, "support bundle export started\n")
	pub.Progress(ctx, jobID, 5, phasePreflight, []*apiv1.KeyValue{{Key: "run_id", Value: runID}})

	if cancelled() {
		return
	}

	pub.Progress(ctx, jobID, 35, phaseCollecting, nil)
	items := []bundle.Item{
		bundle.ByteItem{Name: "manifest.json", Data: marshalEntry(newManifest("support_bundle", runID, correlation))},
	}
	if req.GetIncludeConfig() {
		items = append(items, bundle.ByteItem{Name: "config/env.json", Data: marshalEntry(collectEnv())})
		if snapshot, ok := hostSnapshot(); ok {
			items = append(items, bundle.ByteItem{Name: "config/host.json", Data: marshalEntry(snapshot)})
		}
	}
	// Collaborator state files are copied as-is; a service that has
	// never run simply has no file, and the entry is skipped.
	items = append(items,
		bundle.FileItem{Source: s.cfg.StateFile("projects.json"), Name: "state/projects.json"},
		bundle.FileItem{Source: s.cfg.StateFile("builds.json"), Name: "state/builds.json"},
		bundle.FileItem{Source: s.cfg.StateFile("targets.json"), Name: "state/targets.json"},
	)
	if req.GetIncludeToolchainProvenance() {
		items = append(items, bundle.FileItem{Source: s.cfg.StateFile("toolchains.json"), Name: "toolchains.json"})
	}
	if req.GetIncludeRecentRuns() {
		limit := int(req.GetRecentRunsLimit())
		if limit == 0 {
			limit = defaultRecentRunsLimit
		}
		items = append(items, bundle.ByteItem{Name: "runs.json", Data: marshalEntry(s.recentRuns(limit))})
	}
	if req.GetIncludeLogs() {
		items = append(items, s.collectRunLogs(ctx, runID)...)
	}

	if cancelled() {
		return
	}

	pub.Progress(ctx, jobID, 70, phaseArchiving, nil)
	outputPath := filepath.Join(s.cfg.DataDir, filepath.FromSlash(relPath))
	if err := bundle.Write(bundle.Plan{OutputPath: outputPath, Items: items}); err != nil {
		fail(ioErrorDetail("failed to write support bundle", err, correlation))
		return
	}

	if cancelled() {
		return
	}

	pub.Progress(ctx, jobID, 90, phaseFinalizing, nil)
	s.store.UpsertOutputs(runID, []*apiv1.RunOutput{{
		Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
		OutputType: "support_bundle",
		Path:       outputPath,
		Label:      "Support bundle",
		JobId:      &apiv1.Id{Value: jobID},
	}})
	s.finishRun(runID, "success", "")
	s.sweeper.Sweep()

	pub.Progress(ctx, jobID, 100, phaseCompleted, nil)
	pub.Completed(ctx, jobID, "Support bundle exported", []*apiv1.KeyValue{
		{Key: "output_path", Value: outputPath},
		{Key: "run_id", Value: runID},
	})
}

// runEvidenceExport archives a single run snapshot: manifest plus the
// run record itself.
func (s *Service) runEvidenceExport(runID, correlation, jobID, relPath string) {
	ctx := context.Background()
	pub := publish.New(s.jobs, "observe")
	sig := publish.Watch(ctx, s.jobs, jobID)

	pub.State(ctx, jobID, apiv1.JobState_JOB_STATE_RUNNING)
	pub.Progress(ctx, jobID, 10, phasePreflight, []*apiv1.KeyValue{{Key: "run_id", Value: runID}})

	run, ok := s.store.Run(runID)
	if !ok {
		pub.Failed(ctx, jobID, &apiv1.ErrorDetail{
			Code:          apiv1.ErrorCode_ERROR_CODE_NOT_FOUND,
			Message:       "run disappeared during export",
			CorrelationId: correlation,
		})
		return
	}

	if sig.Cancelled() || publish.IsCancelled(ctx, s.jobs, jobID) {
		return
	}

	pub.Progress(ctx, jobID, 60, phaseArchiving, nil)
	outputPath := filepath.Join(s.cfg.DataDir, filepath.FromSlash(relPath))
	err := bundle.Write(bundle.Plan{
		OutputPath: outputPath,
		Items: []bundle.Item{
			bundle.ByteItem{Name: "manifest.json", Data: marshalEntry(newManifest("evidence_bundle", runID, correlation))},
			bundle.ByteItem{Name: "run.json", Data: marshalEntry(persistRun(run))},
		},
	})
	if err != nil {
		pub.Failed(ctx, jobID, ioErrorDetail("failed to write evidence bundle", err, correlation))
		return
	}

	if sig.Cancelled() {
		return
	}

	s.store.UpsertOutputs(runID, []*apiv1.RunOutput{{
		Kind:       apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE,
		OutputType: "evidence_bundle",
		Path:       outputPath,
		Label:      "Evidence bundle",
		JobId:      &apiv1.Id{Value: jobID},
	}})
	s.sweeper.Sweep()

	pub.Completed(ctx, jobID, "Evidence bundle exported", []*apiv1.KeyValue{
		{Key: "output_path", Value: outputPath},
		{Key: "run_id", Value: runID},
	})
}

// finishRun records a terminal run result. Export bookkeeping is
// best-effort; the job events are the authoritative signal.
func (s *Service) finishRun(runID, result, errMsg string) {
	req := &apiv1.UpsertRunRequest{
		RunId:      &apiv1.RunId{Value: runID},
		Result:     result,
		FinishedAt: nowTS(),
	}
	if errMsg != "" {
		req.Summary = []*apiv1.KeyValue{{Key: "error", Value: errMsg}}
	}
	s.store.UpsertRun(req)
}

// recentRuns returns persisted-form snapshots of the newest runs for
// the runs.json bundle entry.
func (s *Service) recentRuns(limit int) []persistedRun {
	runs := s.store.Runs()
	if len(runs) > limit {
		runs = runs[:limit]
	}
	records := make([]persistedRun, 0, len(runs))
	for _, run := range runs {
		records = append(records, persistRun(run))
	}
	return records
}

// collectRunLogs rebuilds per-job log files from each run job's event
// history, one entry per (job, stream) pair. Jobs the job service no
// longer remembers are skipped.
func (s *Service) collectRunLogs(ctx context.Context, runID string) []bundle.Item {
	run, ok := s.store.Run(runID)
	if !ok {
		return nil
	}

	var items []bundle.Item
	for _, id := range run.GetJobIds() {
		jobID := id.GetValue()
		streams, order := s.jobLogStreams(ctx, jobID)
		for _, stream := range order {
			name := "logs/" + bundle.SanitizeComponent(jobID) + "/" + bundle.SanitizeComponent(stream) + ".log"
			items = append(items, bundle.ByteItem{Name: name, Data: streams[stream]})
		}
	}
	return items
}

// jobLogStreams folds a job's LogAppended history into per-stream
// buffers, keeping first-appearance stream order.
func (s *Service) jobLogStreams(ctx context.Context, jobID string) (map[string][]byte, []string) {
	streams := make(map[string][]byte)
	var order []string

	token := ""
	for {
		resp, err := s.jobs.ListJobHistory(ctx, &apiv1.ListJobHistoryRequest{
			JobId:  &apiv1.Id{Value: jobID},
			Filter: &apiv1.JobHistoryFilter{Kinds: []apiv1.JobEventKind{apiv1.JobEventKind_JOB_EVENT_KIND_LOG}},
			Page:   &apiv1.Pagination{PageSize: 200, PageToken: token},
		})
		if err != nil {
			logrus.Debugf("No log history for job %s: %v", jobID, err)
			return streams, order
		}
		for _, evt := range resp.GetEvents() {
			chunk := evt.GetLog().GetChunk()
			if chunk == nil {
				continue
			}
			stream := chunk.GetStream()
			if _, seen := streams[stream]; !seen {
				order = append(order, stream)
			}
			streams[stream] = append(streams[stream], chunk.GetData()...)
		}
		token = resp.GetPageInfo().GetNextPageToken()
		if token == "" {
			return streams, order
		}
	}
}

// collectEnv gathers the AADK_ environment, sorted by name. Only the
// control plane's own variables go into bundles; arbitrary process env
// would leak credentials.
func collectEnv() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if ok && strings.HasPrefix(key, "AADK_") {
			env[key] = value
		}
	}
	return env
}

// hostInfo is the config/host.json schema.
type hostInfo struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Arch            string `json:"arch"`
	NumCPU          int    `json:"num_cpu"`
	TotalMemoryMB   uint64 `json:"total_memory_mb"`
	UptimeSeconds   uint64 `json:"uptime_seconds"`
}

// hostSnapshot captures host diagnostics for support bundles. Any
// probe failure drops the entry rather than failing the export.
func hostSnapshot() (hostInfo, bool) {
	info, err := host.Info()
	if err != nil {
		logrus.Debugf("Host snapshot unavailable: %v", err)
		return hostInfo{}, false
	}
	snapshot := hostInfo{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Arch:            info.KernelArch,
		NumCPU:          runtime.NumCPU(),
		UptimeSeconds:   info.Uptime,
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snapshot.TotalMemoryMB = vm.Total / (1 << 20)
	}
	return snapshot, true
}

// ioErrorDetail classifies a filesystem failure for a Failed payload.
func ioErrorDetail(message string, err error, correlation string) *apiv1.ErrorDetail {
	code := apiv1.ErrorCode_ERROR_CODE_INTERNAL
	if os.IsPermission(err) {
		code = apiv1.ErrorCode_ERROR_CODE_PERMISSION_DENIED
	}
	return &apiv1.ErrorDetail{
		Code:             code,
		Message:          message,
		TechnicalDetails: err.Error(),
		CorrelationId:    correlation,
		Remedies: []*apiv1.Remediation{{
			Title:       "Check data directory",
			Description: "Verify the AADK data directory exists and is writable.",
		}},
	}
}
