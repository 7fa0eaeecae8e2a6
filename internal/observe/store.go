// Package observe keeps the run registry: which jobs belong to each
// run, how the run ended, and the bundles and artifacts it produced.
package observe

import (
	"fmt"
	"strings"
	"sync"
	"time"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// maxRuns caps the registry. The oldest runs fall off once exceeded.
const maxRuns = 200

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func nowTS() *apiv1.Timestamp {
	return &apiv1.Timestamp{UnixMillis: nowMillis()}
}

// Store is the in-memory run registry, mirrored to disk on every
// mutation. Runs keep insertion order, newest first.
type Store struct {
	mu      sync.Mutex
	path    string
	order   []string
	runs    map[string]*apiv1.RunRecord
	outputs map[string][]*apiv1.RunOutput
}

// NewStore creates an empty registry persisting to path. An empty path
// disables persistence.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		runs:    make(map[string]*apiv1.RunRecord),
		outputs: make(map[string][]*apiv1.RunOutput),
	}
}

// UpsertRun creates or merges a run record and returns the merged
// snapshot. Merge rules: non-empty scalar fields overwrite, job ids
// union-append in arrival order, summary entries upsert by key, and
// timestamps overwrite when present. The output summary is recomputed
// after every merge.
func (s *Store) UpsertRun(req *apiv1.UpsertRunRequest) *apiv1.RunRecord {
	runID := strings.TrimSpace(req.GetRunId().GetValue())

	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		run = &apiv1.RunRecord{
			RunId:     &apiv1.RunId{Value: runID},
			Result:    "running",
			StartedAt: nowTS(),
		}
		s.runs[runID] = run
		s.order = append([]string{runID}, s.order...)
		s.evictLocked()
	}

	if v := strings.TrimSpace(req.GetCorrelationId()); v != "" {
		run.CorrelationId = v
	}
	if req.GetProjectId().GetValue() != "" {
		run.ProjectId = cloneID(req.ProjectId)
	}
	if req.GetTargetId().GetValue() != "" {
		run.TargetId = cloneID(req.TargetId)
	}
	if req.GetToolchainSetId().GetValue() != "" {
		run.ToolchainSetId = cloneID(req.ToolchainSetId)
	}
	for _, id := range req.GetJobIds() {
		appendJobID(run, id.GetValue())
	}
	if v := strings.TrimSpace(req.GetResult()); v != "" {
		run.Result = v
	}
	for _, kv := range req.GetSummary() {
		upsertKeyValue(&run.Summary, kv)
	}
	if req.GetStartedAt() != nil {
		run.StartedAt = cloneTS(req.StartedAt)
	}
	if req.GetFinishedAt() != nil {
		run.FinishedAt = cloneTS(req.FinishedAt)
	}
	run.OutputSummary = computeSummary(s.outputs[runID])

	snapshot := cloneRun(run)
	s.persistLocked()
	return snapshot
}

// UpsertOutputs records outputs for a run, replacing entries that share
// an output_id and appending the rest. Blank output ids are derived
// from the job id or the run scope; blank created_at defaults to now.
// A minimal running run is created when none exists.
func (s *Store) UpsertOutputs(runID string, outputs []*apiv1.RunOutput) *apiv1.RunOutputSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		run = &apiv1.RunRecord{
			RunId:     &apiv1.RunId{Value: runID},
			Result:    "running",
			StartedAt: nowTS(),
		}
		s.runs[runID] = run
		s.order = append([]string{runID}, s.order...)
		s.evictLocked()
	}

	existing := s.outputs[runID]
	for _, out := range outputs {
		normalized := cloneOutput(out)
		normalized.RunId = &apiv1.RunId{Value: runID}
		if normalized.OutputId == "" {
			normalized.OutputId = deriveOutputID(normalized, runID)
		}
		if normalized.CreatedAt == nil {
			normalized.CreatedAt = nowTS()
		}

		replaced := false
		for i, have := range existing {
			if have.OutputId == normalized.OutputId {
				existing[i] = normalized
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, normalized)
		}
	}
	s.outputs[runID] = existing

	run.OutputSummary = computeSummary(existing)
	summary := cloneSummary(run.OutputSummary)
	s.persistLocked()
	return summary
}

// Run returns a snapshot of the run with the given id.
func (s *Store) Run(runID string) (*apiv1.RunRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok {
		return nil, false
	}
	return cloneRun(run), true
}

// RunByCorrelation returns the newest run carrying the correlation id.
func (s *Store) RunByCorrelation(correlationID string) (*apiv1.RunRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, runID := range s.order {
		if run := s.runs[runID]; run.GetCorrelationId() == correlationID {
			return cloneRun(run), true
		}
	}
	return nil, false
}

// Runs returns snapshots of every run, newest first.
func (s *Store) Runs() []*apiv1.RunRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := make([]*apiv1.RunRecord, 0, len(s.order))
	for _, runID := range s.order {
		runs = append(runs, cloneRun(s.runs[runID]))
	}
	return runs
}

// Outputs returns snapshots of a run's outputs in insertion order.
func (s *Store) Outputs(runID string) []*apiv1.RunOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	outputs := make([]*apiv1.RunOutput, 0, len(s.outputs[runID]))
	for _, out := range s.outputs[runID] {
		outputs = append(outputs, cloneOutput(out))
	}
	return outputs
}

// Summary returns the derived output summary for a run, or an empty
// summary when the run is unknown.
func (s *Store) Summary(runID string) *apiv1.RunOutputSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeSummary(s.outputs[runID])
}

// Len returns the number of tracked runs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// evictLocked drops the oldest runs beyond the registry cap, along
// with their outputs.
func (s *Store) evictLocked() {
	for len(s.order) > maxRuns {
		victim := s.order[len(s.order)-1]
		s.order = s.order[:len(s.order)-1]
		delete(s.runs, victim)
		delete(s.outputs, victim)
	}
}

// appendJobID unions a job id into the run, preserving arrival order.
func appendJobID(run *apiv1.RunRecord, jobID string) {
	if jobID == "" {
		return
	}
	for _, have := range run.JobIds {
		if have.GetValue() == jobID {
			return
		}
	}
	run.JobIds = append(run.JobIds, &apiv1.Id{Value: jobID})
}

// upsertKeyValue overwrites the entry with a matching key or appends.
func upsertKeyValue(list *[]*apiv1.KeyValue, kv *apiv1.KeyValue) {
	if kv.GetKey() == "" {
		return
	}
	for _, have := range *list {
		if have.Key == kv.Key {
			have.Value = kv.GetValue()
			return
		}
	}
	*list = append(*list, &apiv1.KeyValue{Key: kv.Key, Value: kv.Value})
}

// deriveOutputID synthesizes a stable output id. Outputs produced by a
// job key on the job; everything else keys on the run scope.
func deriveOutputID(out *apiv1.RunOutput, runID string) string {
	if jobID := out.GetJobId().GetValue(); jobID != "" {
		return fmt.Sprintf("artifact:%s:%s", jobID, out.GetPath())
	}
	return fmt.Sprintf("%s:%s:%s", out.GetOutputType(), runID, out.GetPath())
}

// computeSummary folds a run's outputs into counts, the newest update
// time, and the newest bundle. Later outputs win created_at ties.
func computeSummary(outputs []*apiv1.RunOutput) *apiv1.RunOutputSummary {
	summary := &apiv1.RunOutputSummary{}

	var lastBundleAt int64
	for _, out := range outputs {
		created := out.GetCreatedAt().GetUnixMillis()
		switch out.GetKind() {
		case apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE:
			summary.BundleCount++
			if summary.LastBundleId == "" || created >= lastBundleAt {
				summary.LastBundleId = out.GetOutputId()
				lastBundleAt = created
			}
		case apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT:
			summary.ArtifactCount++
		}
		if summary.LastUpdatedAt == nil || created >= summary.LastUpdatedAt.UnixMillis {
			summary.LastUpdatedAt = &apiv1.Timestamp{UnixMillis: created}
		}
	}
	return summary
}

func cloneID(id *apiv1.Id) *apiv1.Id {
	if id == nil {
		return nil
	}
	return &apiv1.Id{Value: id.Value}
}

func cloneRunID(id *apiv1.RunId) *apiv1.RunId {
	if id == nil {
		return nil
	}
	return &apiv1.RunId{Value: id.Value}
}

func cloneTS(ts *apiv1.Timestamp) *apiv1.Timestamp {
	if ts == nil {
		return nil
	}
	return &apiv1.Timestamp{UnixMillis: ts.UnixMillis}
}

func cloneKeyValues(list []*apiv1.KeyValue) []*apiv1.KeyValue {
	if len(list) == 0 {
		return nil
	}
	out := make([]*apiv1.KeyValue, 0, len(list))
	for _, kv := range list {
		out = append(out, &apiv1.KeyValue{Key: kv.Key, Value: kv.Value})
	}
	return out
}

func cloneSummary(summary *apiv1.RunOutputSummary) *apiv1.RunOutputSummary {
	if summary == nil {
		return nil
	}
	return &apiv1.RunOutputSummary{
		BundleCount:   summary.BundleCount,
		ArtifactCount: summary.ArtifactCount,
		LastUpdatedAt: cloneTS(summary.LastUpdatedAt),
		LastBundleId:  summary.LastBundleId,
	}
}

func cloneRun(run *apiv1.RunRecord) *apiv1.RunRecord {
	if run == nil {
		return nil
	}
	clone := &apiv1.RunRecord{
		RunId:          cloneRunID(run.RunId),
		CorrelationId:  run.CorrelationId,
		ProjectId:      cloneID(run.ProjectId),
		TargetId:       cloneID(run.TargetId),
		ToolchainSetId: cloneID(run.ToolchainSetId),
		StartedAt:      cloneTS(run.StartedAt),
		FinishedAt:     cloneTS(run.FinishedAt),
		Result:         run.Result,
		Summary:        cloneKeyValues(run.Summary),
		OutputSummary:  cloneSummary(run.OutputSummary),
	}
	for _, id := range run.JobIds {
		clone.JobIds = append(clone.JobIds, cloneID(id))
	}
	return clone
}

func cloneOutput(out *apiv1.RunOutput) *apiv1.RunOutput {
	if out == nil {
		return nil
	}
	return &apiv1.RunOutput{
		OutputId:   out.OutputId,
		RunId:      cloneRunID(out.RunId),
		Kind:       out.Kind,
		OutputType: out.OutputType,
		Path:       out.Path,
		Label:      out.Label,
		JobId:      cloneID(out.JobId),
		CreatedAt:  cloneTS(out.CreatedAt),
		Metadata:   cloneKeyValues(out.Metadata),
	}
}
