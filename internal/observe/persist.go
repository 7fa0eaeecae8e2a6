package observe

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

const (
	// StateFileName is the registry's file under the state directory.
	StateFileName = "observe.json"

	schemaVersion = 1
)

// The on-disk schema. Field names are part of the state file format;
// changing them orphans existing files.

type stateFile struct {
	SchemaVersion uint32            `json:"schema_version"`
	Runs          []persistedRun    `json:"runs"`
	Outputs       []persistedOutput `json:"outputs"`
}

type persistedRun struct {
	RunID                string           `json:"run_id"`
	CorrelationID        string           `json:"correlation_id,omitempty"`
	ProjectID            *string          `json:"project_id,omitempty"`
	TargetID             *string          `json:"target_id,omitempty"`
	ToolchainSetID       *string          `json:"toolchain_set_id,omitempty"`
	StartedAtUnixMillis  *int64           `json:"started_at_unix_millis,omitempty"`
	FinishedAtUnixMillis *int64           `json:"finished_at_unix_millis,omitempty"`
	Result               string           `json:"result"`
	JobIDs               []string         `json:"job_ids,omitempty"`
	Summary              []keyValueRecord `json:"summary,omitempty"`
}

type persistedOutput struct {
	OutputID            string           `json:"output_id"`
	RunID               string           `json:"run_id"`
	Kind                string           `json:"kind"`
	OutputType          string           `json:"output_type,omitempty"`
	Path                string           `json:"path"`
	Label               string           `json:"label,omitempty"`
	JobID               *string          `json:"job_id,omitempty"`
	CreatedAtUnixMillis int64            `json:"created_at_unix_millis"`
	Metadata            []keyValueRecord `json:"metadata,omitempty"`
}

type keyValueRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func keyValuesToRecords(items []*apiv1.KeyValue) []keyValueRecord {
	if len(items) == 0 {
		return nil
	}
	records := make([]keyValueRecord, 0, len(items))
	for _, item := range items {
		records = append(records, keyValueRecord{Key: item.GetKey(), Value: item.GetValue()})
	}
	return records
}

func keyValuesFromRecords(records []keyValueRecord) []*apiv1.KeyValue {
	if len(records) == 0 {
		return nil
	}
	items := make([]*apiv1.KeyValue, 0, len(records))
	for _, rec := range records {
		items = append(items, &apiv1.KeyValue{Key: rec.Key, Value: rec.Value})
	}
	return items
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

func kindToString(kind apiv1.RunOutputKind) string {
	switch kind {
	case apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE:
		return "bundle"
	case apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT:
		return "artifact"
	default:
		return ""
	}
}

func kindFromString(s string) apiv1.RunOutputKind {
	switch s {
	case "bundle":
		return apiv1.RunOutputKind_RUN_OUTPUT_KIND_BUNDLE
	case "artifact":
		return apiv1.RunOutputKind_RUN_OUTPUT_KIND_ARTIFACT
	default:
		return apiv1.RunOutputKind_RUN_OUTPUT_KIND_UNSPECIFIED
	}
}

func persistRun(run *apiv1.RunRecord) persistedRun {
	pr := persistedRun{
		RunID:                run.GetRunId().GetValue(),
		CorrelationID:        run.GetCorrelationId(),
		ProjectID:            idPtr(run.GetProjectId()),
		TargetID:             idPtr(run.GetTargetId()),
		ToolchainSetID:       idPtr(run.GetToolchainSetId()),
		StartedAtUnixMillis:  msPtr(run.GetStartedAt()),
		FinishedAtUnixMillis: msPtr(run.GetFinishedAt()),
		Result:               run.GetResult(),
		Summary:              keyValuesToRecords(run.GetSummary()),
	}
	for _, id := range run.GetJobIds() {
		pr.JobIDs = append(pr.JobIDs, id.GetValue())
	}
	return pr
}

// restore rebuilds the run record. The output summary is recomputed by
// the caller once outputs are attached.
func (p persistedRun) restore() *apiv1.RunRecord {
	run := &apiv1.RunRecord{
		RunId:          &apiv1.RunId{Value: p.RunID},
		CorrelationId:  p.CorrelationID,
		ProjectId:      idFromPtr(p.ProjectID),
		TargetId:       idFromPtr(p.TargetID),
		ToolchainSetId: idFromPtr(p.ToolchainSetID),
		StartedAt:      tsFromPtr(p.StartedAtUnixMillis),
		FinishedAt:     tsFromPtr(p.FinishedAtUnixMillis),
		Result:         p.Result,
		Summary:        keyValuesFromRecords(p.Summary),
	}
	if run.Result == "" {
		run.Result = "running"
	}
	for _, id := range p.JobIDs {
		if id != "" {
			run.JobIds = append(run.JobIds, &apiv1.Id{Value: id})
		}
	}
	return run
}

func persistOutput(out *apiv1.RunOutput) persistedOutput {
	return persistedOutput{
		OutputID:            out.GetOutputId(),
		RunID:               out.GetRunId().GetValue(),
		Kind:                kindToString(out.GetKind()),
		OutputType:          out.GetOutputType(),
		Path:                out.GetPath(),
		Label:               out.GetLabel(),
		JobID:               idPtr(out.GetJobId()),
		CreatedAtUnixMillis: out.GetCreatedAt().GetUnixMillis(),
		Metadata:            keyValuesToRecords(out.GetMetadata()),
	}
}

func (p persistedOutput) restore() *apiv1.RunOutput {
	return &apiv1.RunOutput{
		OutputId:   p.OutputID,
		RunId:      &apiv1.RunId{Value: p.RunID},
		Kind:       kindFromString(p.Kind),
		OutputType: p.OutputType,
		Path:       p.Path,
		Label:      p.Label,
		JobId:      idFromPtr(p.JobID),
		CreatedAt:  &apiv1.Timestamp{UnixMillis: p.CreatedAtUnixMillis},
		Metadata:   keyValuesFromRecords(p.Metadata),
	}
}

// snapshotLocked serializes the registry in memory order, outputs
// grouped behind their run.
func (s *Store) snapshotLocked() stateFile {
	state := stateFile{
		SchemaVersion: schemaVersion,
		Runs:          []persistedRun{},
		Outputs:       []persistedOutput{},
	}
	for _, runID := range s.order {
		state.Runs = append(state.Runs, persistRun(s.runs[runID]))
		for _, out := range s.outputs[runID] {
			state.Outputs = append(state.Outputs, persistOutput(out))
		}
	}
	return state
}

func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	if err := writeJSONAtomic(s.path, s.snapshotLocked()); err != nil {
		logrus.Warnf("Failed to persist run state: %v", err)
	}
}

func loadState(path string) (stateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return stateFile{}, err
	}
	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		return stateFile{}, err
	}
	return state, nil
}

// apply replaces the in-memory registry with the loaded state. The
// file is newest first already; runs beyond the cap and outputs whose
// run is gone are dropped.
func (s *Store) apply(state stateFile) {
	order := make([]string, 0, len(state.Runs))
	runs := make(map[string]*apiv1.RunRecord, len(state.Runs))
	outputs := make(map[string][]*apiv1.RunOutput)

	for _, pr := range state.Runs {
		if pr.RunID == "" || runs[pr.RunID] != nil {
			continue
		}
		if len(order) >= maxRuns {
			break
		}
		runs[pr.RunID] = pr.restore()
		order = append(order, pr.RunID)
	}
	for _, po := range state.Outputs {
		if runs[po.RunID] == nil {
			continue
		}
		outputs[po.RunID] = append(outputs[po.RunID], po.restore())
	}
	for runID, run := range runs {
		run.OutputSummary = computeSummary(outputs[runID])
	}

	s.mu.Lock()
	s.order, s.runs, s.outputs = order, runs, outputs
	s.mu.Unlock()
}

// LoadStore builds a registry from the state file. A missing file
// starts empty; a broken one is logged and ignored.
func LoadStore(path string) *Store {
	store := NewStore(path)

	state, err := loadState(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store
	}
	if err != nil {
		logrus.Warnf("Failed to load %s: %v", path, err)
		return store
	}

	store.apply(state)
	if n := store.Len(); n > 0 {
		logrus.Infof("Loaded %d run(s) from %s", n, path)
	}
	return store
}

// Reload re-reads the state file and swaps it into memory, replacing
// whatever was there. Returns the number of runs now tracked.
func (s *Store) Reload() (int, error) {
	if s.path == "" {
		return 0, errors.New("no state path configured")
	}

	state, err := loadState(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		state = stateFile{SchemaVersion: schemaVersion}
	} else if err != nil {
		return 0, err
	}

	s.apply(state)
	return s.Len(), nil
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
