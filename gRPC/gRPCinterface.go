package proto

import (
	"context"
	"fmt"
	"log"
	"net"
	"runtime"
	"sync"
	"time"

	iface "MaskOutlineServer/interface"
	"MaskOutlineServer/logger"
	"MaskOutlineServer/monitor"
	"MaskOutlineServer/outline"
	"MaskOutlineServer/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

type WorkerID struct {
	backend     iface.Backend
	Description string
}

var (
	DSequences map[string]WorkerID
	mapMu      sync.RWMutex
)

func (d *WorkerID) add2Seq(backend iface.Backend, description string) string {
	d.backend = backend
	d.Description = description
	UUID := uuid.New().String()
	DSequences[UUID] = *d
	output := fmt.Sprintf("Engine %s added with ID %s\n", description, UUID)
	logger.Log().Info(output)
	return UUID
}

type JobPackage struct {
	worker iface.Backend
	mask   iface.MaskSpec
	Result chan jobResult
}

type jobResult struct {
	Data iface.RetData
}

var JobQueue chan JobPackage

var CloseChannel chan bool

func StartWorker(workerNum int) {
	for i := 0; i < workerNum; i++ {
		go runWorker(i)
	}
}

func runWorker(workerID int) {
	defer func() {
		if r := recover(); r != nil {
			output := fmt.Sprintf("Worker %d panic: %v. Restarting in 1s...\n", workerID, r)
			logger.Log().Error(output)
			time.Sleep(1 * time.Second)
			go runWorker(workerID)
		}
	}()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	output := fmt.Sprintf("---Worker %d created\n", workerID)
	logger.Log().Info(output)
	for job := range JobQueue {
		result := job.worker.Process(job.mask)
		job.Result <- jobResult{Data: result}
	}
}

// maskFromRequest builds a MaskSpec from whichever payload the request
// carries: the raw double array wins, encoded image bytes are the
// fallback.
func maskFromRequest(req *TraceRequest) (iface.MaskSpec, error) {
	if len(req.Data) > 0 {
		return iface.MaskSpec{
			Width:  int(req.Width),
			Height: int(req.Height),
			Data:   req.Data,
		}, nil
	}
	if len(req.ImgData) == 0 {
		return iface.MaskSpec{}, fmt.Errorf("request carries neither mask data nor image data")
	}
	mat, err := source.DecodeImage(req.ImgData)
	if err != nil {
		return iface.MaskSpec{}, err
	}
	defer func() {
		_ = mat.Close()
	}()
	return source.MaskFromMat(mat, int(req.Channel))
}

type Server struct {
	UnimplementedOutlineServiceServer
}

func (s *Server) InitEngine(ctx context.Context, req *InitEngineRequest) (*InitEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	if req.Threshold > 1.0 || req.Threshold < 0.0 {
		return nil, fmt.Errorf("threshold must be between 0.0 and 1.0, got %f", req.Threshold)
	}
	if req.OverlapThreshold > 1.0 || req.OverlapThreshold < 0.0 {
		return nil, fmt.Errorf("overlap threshold must be between 0.0 and 1.0, got %f", req.OverlapThreshold)
	}
	if req.SimplifyTolerance < 0.0 {
		return nil, fmt.Errorf("simplify tolerance must not be negative, got %f", req.SimplifyTolerance)
	}
	engine := outline.Engine{}
	engine.New()
	opts := iface.Options{
		Threshold:         req.Threshold,
		CurveType:         iface.CurveType(req.CurveType),
		SimplifyTolerance: req.SimplifyTolerance,
		OverlapThreshold:  req.OverlapThreshold,
		KeepUnpaired:      req.KeepUnpaired,
	}
	if err := engine.Configure(opts); err != nil {
		return nil, err
	}
	seqeng := WorkerID{}
	seqeng.Description = req.Description
	seqeng.backend = &engine
	mapMu.Lock()
	Id := seqeng.add2Seq(&engine, req.Description)
	mapMu.Unlock()
	cfg := engine.CheckConfig()
	logger.Log().Info("Initialized new engine", zap.String("ID", Id), zap.Float64("Threshold", cfg.Threshold), zap.String("CurveType", string(cfg.CurveType)), zap.Float64("SimplifyTolerance", cfg.SimplifyTolerance), zap.Float64("OverlapThreshold", cfg.OverlapThreshold))
	return &InitEngineResponse{
		Success: true,
		Id:      Id,
		Message: "Successfully initialized engine",
	}, nil
}

func (s *Server) Trace(ctx context.Context, req *TraceRequest) (*TraceResponse, error) {
	monitor.GRPCTotal.Inc()
	UUID := req.Id
	mapMu.RLock()
	worker, exists := DSequences[UUID]
	mapMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("engine with ID %s not found", UUID)
	}
	mask, err := maskFromRequest(req)
	if err != nil {
		return &TraceResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}
	traceResult := make(chan jobResult)
	defer close(traceResult)
	job := JobPackage{
		mask:   mask,
		worker: worker.backend,
		Result: traceResult,
	}
	JobQueue <- job
	results := <-traceResult
	if !results.Data.Success {
		msg := "engine returned no result"
		if str, ok := results.Data.Data.(string); ok {
			msg = str
		}
		logger.Log().Error("engine failed to trace mask", zap.String("ID", UUID), zap.String("reason", msg))
		return &TraceResponse{
			Success: false,
			Message: msg,
		}, nil
	}
	switch v := results.Data.Data.(type) {
	case iface.PathResult:
		monitor.FramesTotal.Inc()
		monitor.ContoursTotal.Add(float64(v.Contours))
		return &TraceResponse{
			Success:      true,
			Path:         v.Path,
			ContourCount: int32(v.Contours),
			Message:      "Mask traced successfully",
		}, nil
	default:
		output := fmt.Sprintf("Unknown type: %T", v)
		logger.Log().Error(output)
		return &TraceResponse{
			Success: false,
		}, fmt.Errorf("unexpected data type in results: %T", results.Data.Data)
	}
}

func (s *Server) DestroyEngine(ctx context.Context, req *DestroyEngineRequest) (*DestroyEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	UUID := req.Id
	mapMu.Lock()
	worker, exists := DSequences[UUID]
	if !exists {
		mapMu.Unlock()
		logger.Log().Error("engine not found with ID", zap.String("ID", UUID))
		return nil, fmt.Errorf("engine with ID %s not found", UUID)
	}
	worker.backend.Destroy()
	delete(DSequences, UUID)
	mapMu.Unlock()
	logger.Log().Info("Destroyed engine", zap.String("ID", UUID))
	return &DestroyEngineResponse{
		Success: true,
		Message: "Engine destroyed successfully",
	}, nil
}

func (s *Server) CheckEngine(ctx context.Context, req *CheckEngineRequest) (*CheckEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	UUID := req.Id
	mapMu.RLock()
	worker, exists := DSequences[UUID]
	mapMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("engine with ID %s not found", UUID)
	}
	cfg := worker.backend.CheckConfig()
	ret := &EngineInfo{
		Id:                UUID,
		Description:       worker.Description,
		Threshold:         cfg.Threshold,
		CurveType:         string(cfg.CurveType),
		SimplifyTolerance: cfg.SimplifyTolerance,
		OverlapThreshold:  cfg.OverlapThreshold,
		KeepUnpaired:      cfg.KeepUnpaired,
	}
	return &CheckEngineResponse{
		Success:    true,
		EngineInfo: ret,
		Message:    "Engine status retrieved successfully",
	}, nil
}

func (s *Server) Shutdown(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error) {
	monitor.GRPCTotal.Inc()
	go func() {
		time.Sleep(2 * time.Second)
		mapMu.Lock()
		for id, worker := range DSequences {
			worker.backend.Destroy()
			delete(DSequences, id)
		}
		mapMu.Unlock()
		close(JobQueue)
		fmt.Println("Server shutting down in 1 second...")
		time.Sleep(1 * time.Second)
	}()
	CloseChannel <- true
	logger.Log().Warn("Shutting down in 1 second...")
	close(CloseChannel)
	return &emptypb.Empty{}, nil
}

func StartGRPCServer(addr int) *grpc.Server {
	CloseChannel = make(chan bool)
	port := fmt.Sprintf(":%d", addr)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		fmt.Printf("Failed to listen on port %s: %v\n", port, err)
	}
	s := grpc.NewServer()
	go func() {
		RegisterOutlineServiceServer(s, &Server{})
		log.Printf("server listening on port %s\n", port)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()
	return s
}
