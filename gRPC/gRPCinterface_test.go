package proto

import (
	"context"
	"testing"
	"time"

	iface "MaskOutlineServer/interface"
	"MaskOutlineServer/monitor"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type MockBackend struct{}

func (m *MockBackend) Configure(opts iface.Options) error { return nil }

func (m *MockBackend) Process(spec iface.MaskSpec) iface.RetData {
	fakeResult := iface.PathResult{
		Path: "M 2 2 L 8 2 L 8 8 L 2 8 Z",
		Commands: []iface.PathCommand{
			{Op: iface.PathMoveTo, Args: []float64{2, 2}},
			{Op: iface.PathLineTo, Args: []float64{8, 2}},
			{Op: iface.PathLineTo, Args: []float64{8, 8}},
			{Op: iface.PathLineTo, Args: []float64{2, 8}},
			{Op: iface.PathClose},
		},
		Contours: 1,
	}
	return iface.RetData{Success: true, Data: fakeResult}
}

func (m *MockBackend) Destroy() {}

func (m *MockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{
		Threshold:         0.5,
		CurveType:         iface.CurveStraight,
		SimplifyTolerance: 2,
		OverlapThreshold:  0.7,
	}
}

func TestMockEngine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go monitor.StartMon(50052, ctx)

	backend := &MockBackend{}
	worker := &WorkerID{}
	DSequences = make(map[string]WorkerID)
	id := worker.add2Seq(backend, "mock_worker")

	server := StartGRPCServer(50051)
	defer server.GracefulStop()
	t.Log("Mock gRPC server started for testing")

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to connect to gRPC server: %v", err)
	}
	defer conn.Close()

	client := NewOutlineServiceClient(conn)
	JobQueue = make(chan JobPackage, 10)
	StartWorker(1)
	time.Sleep(2 * time.Second)

	t.Run("Test Trace", func(t *testing.T) {
		data := make([]float64, 100)
		for y := 2; y < 8; y++ {
			for x := 2; x < 8; x++ {
				data[y*10+x] = 1
			}
		}
		req := &TraceRequest{
			Id:     id,
			Width:  10,
			Height: 10,
			Data:   data,
		}
		resp, err := client.Trace(context.Background(), req)
		if err != nil {
			t.Fatalf("Trace failed: %v", err)
		}
		assert.True(t, resp.Success)
		assert.Equal(t, "M 2 2 L 8 2 L 8 8 L 2 8 Z", resp.Path)
		assert.Equal(t, int32(1), resp.ContourCount)
	})

	t.Run("Test Trace Empty Payload", func(t *testing.T) {
		req := &TraceRequest{Id: id}
		resp, err := client.Trace(context.Background(), req)
		if err != nil {
			t.Fatalf("Trace failed: %v", err)
		}
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("Test Trace Unknown ID", func(t *testing.T) {
		req := &TraceRequest{Id: "no-such-engine", Width: 1, Height: 1, Data: []float64{0}}
		_, err := client.Trace(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("Test CheckEngine", func(t *testing.T) {
		req := &CheckEngineRequest{Id: id}
		resp, err := client.CheckEngine(context.Background(), req)
		if err != nil {
			t.Fatalf("CheckEngine failed: %v", err)
		}
		info := resp.EngineInfo
		assert.Equal(t, id, info.Id)
		assert.Equal(t, "mock_worker", info.Description)
		assert.InDelta(t, 0.5, info.Threshold, 0.0001)
		assert.Equal(t, "straight", info.CurveType)
	})

	t.Run("Test InitEngine And Destroy", func(t *testing.T) {
		initResp, err := client.InitEngine(context.Background(), &InitEngineRequest{
			Description:       "real_engine",
			Threshold:         0.5,
			CurveType:         "quadratic",
			SimplifyTolerance: 2,
			OverlapThreshold:  0.7,
		})
		if err != nil {
			t.Fatalf("InitEngine failed: %v", err)
		}
		assert.True(t, initResp.Success)
		assert.NotEmpty(t, initResp.Id)

		destroyResp, err := client.DestroyEngine(context.Background(), &DestroyEngineRequest{Id: initResp.Id})
		if err != nil {
			t.Fatalf("DestroyEngine failed: %v", err)
		}
		assert.True(t, destroyResp.Success)

		_, err = client.CheckEngine(context.Background(), &CheckEngineRequest{Id: initResp.Id})
		assert.Error(t, err)
	})

	t.Run("Test InitEngine Rejects Bad Options", func(t *testing.T) {
		_, err := client.InitEngine(context.Background(), &InitEngineRequest{
			Description: "bad_engine",
			Threshold:   1.5,
		})
		assert.Error(t, err)
	})

	cancel()
}
