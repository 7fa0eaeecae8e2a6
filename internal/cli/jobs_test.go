package cli

import (
	"bytes"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/aadk-dev/aadk/internal/jobs"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// startJobService serves a real job service on a loopback listener.
func startJobService(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	apiv1.RegisterJobServiceServer(server, jobs.NewService(jobs.NewStore(), nil))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	return lis.Addr().String()
}

// runCommand executes one CLI invocation and returns its output.
func runCommand(t *testing.T, addr string, args ...string) (string, error) {
	t.Helper()
	app := New()
	var out bytes.Buffer
	app.SetOutput(&out, &out)
	app.SetArgs(append(args, "--job-addr", addr, "--observe-addr", addr, "--workflow-addr", addr))
	err := app.Execute()
	return out.String(), err
}

func TestJobsStartAndGet(t *testing.T) {
	addr := startJobService(t)

	out, err := runCommand(t, addr, "jobs", "start", "build.run",
		"--param", "module=app", "--correlation", "corr-cli")
	require.NoError(t, err)
	assert.Contains(t, out, "job_type=build.run")
	assert.Contains(t, out, "correlation_id=corr-cli")

	jobID := extractField(t, out, "job_id")

	out, err = runCommand(t, addr, "jobs", "get", jobID)
	require.NoError(t, err)
	assert.Contains(t, out, "job_id="+jobID)
	assert.Contains(t, out, "state=queued")
}

func TestJobsStartRejectsBadParam(t *testing.T) {
	addr := startJobService(t)

	_, err := runCommand(t, addr, "jobs", "start", "build.run", "--param", "novalue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestJobsCancel(t *testing.T) {
	addr := startJobService(t)

	out, err := runCommand(t, addr, "jobs", "start", "build.run")
	require.NoError(t, err)
	jobID := extractField(t, out, "job_id")

	out, err = runCommand(t, addr, "jobs", "cancel", jobID)
	require.NoError(t, err)
	assert.Contains(t, out, "cancellation requested")

	// A second cancel is not accepted; the job is already terminal.
	out, err = runCommand(t, addr, "jobs", "cancel", jobID)
	require.NoError(t, err)
	assert.Contains(t, out, "not cancellable")
}

func TestJobsListFilters(t *testing.T) {
	addr := startJobService(t)

	_, err := runCommand(t, addr, "jobs", "start", "build.run")
	require.NoError(t, err)
	out, err := runCommand(t, addr, "jobs", "start", "project.create")
	require.NoError(t, err)
	createID := extractField(t, out, "job_id")
	_, err = runCommand(t, addr, "jobs", "cancel", createID)
	require.NoError(t, err)

	out, err = runCommand(t, addr, "jobs", "list", "--type", "project.create")
	require.NoError(t, err)
	assert.Contains(t, out, "job_type=project.create")
	assert.NotContains(t, out, "job_type=build.run")

	out, err = runCommand(t, addr, "jobs", "list", "--state", "cancelled")
	require.NoError(t, err)
	assert.Contains(t, out, "job_id="+createID)

	_, err = runCommand(t, addr, "jobs", "list", "--state", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown state "bogus"`)
}

func TestJobsStreamDemoJob(t *testing.T) {
	addr := startJobService(t)

	out, err := runCommand(t, addr, "jobs", "start", "demo.job")
	require.NoError(t, err)
	jobID := extractField(t, out, "job_id")

	// watch on a non-TTY falls back to plain streaming and stops at
	// the terminal event.
	out, err = runCommand(t, addr, "jobs", "watch", jobID)
	require.NoError(t, err)
	assert.Contains(t, out, "-- completed:")
}

func TestParseParams(t *testing.T) {
	kvs, err := parseParams([]string{"a=1", "b=x=y"})
	require.NoError(t, err)
	require.Len(t, kvs, 2)
	assert.Equal(t, "a", kvs[0].GetKey())
	assert.Equal(t, "1", kvs[0].GetValue())
	assert.Equal(t, "x=y", kvs[1].GetValue())

	_, err = parseParams([]string{"=v"})
	require.Error(t, err)
}

// extractField pulls key=value output apart.
func extractField(t *testing.T, out, key string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return value
		}
	}
	t.Fatalf("field %s not found in output:\n%s", key, out)
	return ""
}
