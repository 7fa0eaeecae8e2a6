package client

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/aadk-dev/aadk/internal/jobs"
	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func TestDialAndCall(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	apiv1.RegisterJobServiceServer(server, jobs.NewService(jobs.NewStore(), nil))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := Dial(lis.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	resp, err := conn.Jobs().StartJob(context.Background(), &apiv1.StartJobRequest{JobType: "build.run"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetJob().GetJobId().GetValue())
}

func TestDialIsLazy(t *testing.T) {
	// No server behind the address; dialing still succeeds.
	conn, err := Dial("127.0.0.1:1")
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}
